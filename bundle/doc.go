// Package bundle implements the graph container (component C4): a fixed set
// of labeled node anchors plus the vector of edge curves that connect them.
// Beyond storage, Graph performs weight- or percentile-based edge filtering
// at load time, normalizes edge width by the maximum kept weight, and
// computes an inflated bounding box over node positions. The solver package
// mutates Graph.Edges in place during relaxation; ioformat reads the
// finished Graph directly to produce the {nodes, edges} export.
//
// Ported from the original FDEB reference's Graph class: its file-loading
// routine, its bounding-box computation, and the width-normalization pass
// at the tail of loading.
package bundle
