package bundle

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	charmlog "github.com/charmbracelet/log"

	"github.com/fdebgo/fdeb/compat"
	"github.com/fdebgo/fdeb/edge"
	"github.com/fdebgo/fdeb/vector2"
)

// Node is a fixed anchor: a 2D position and the degree accumulated from
// kept edges at load time. Nodes are immutable after loading.
type Node struct {
	Pos    vector2.V
	Degree int
}

// Graph owns the set of nodes and the vector of edge curves. Neighbors is
// a parallel, index-aligned adjacency list built once at load time by the
// compatibility oracle and never updated afterward.
type Graph struct {
	Nodes     map[string]*Node
	Edges     []*edge.Curve
	Neighbors [][]int
}

// rawEdge is an intermediate parse result before node lookup and
// filtering.
type rawEdge struct {
	source, target string
	weight         float64
	line           int
}

// Load reads the whitespace-separated nodes and edges text files, applies
// the filtering mode selected by opts, normalizes width, builds the
// compatibility neighbor lists via the compat package, and returns the
// assembled Graph.
//
// Ported from the original FDEB reference's graph-loading routine. logger
// may be nil, in which case logging is a no-op: logging failures never
// affect correctness.
func Load(nodesPath, edgesPath string, compatThreshold float64, logger *charmlog.Logger, opts ...FilterOption) (*Graph, error) {
	logger = orNop(logger)
	logger.Info("loading network", "nodes", nodesPath, "edges", edgesPath)

	nodes, err := readNodes(nodesPath)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded nodes", "count", len(nodes))

	raw, err := readRawEdges(edgesPath)
	if err != nil {
		return nil, err
	}

	cfg := newFilterConfig(opts...)
	if cfg.conflict() {
		logger.Warn("both weight and percentile filters set; weight threshold takes precedence", "err", ErrConfigConflict)
	}

	kept, err := filterEdges(raw, cfg)
	if err != nil {
		return nil, err
	}

	g := &Graph{Nodes: nodes}
	wmax := 0.0
	for _, re := range kept {
		src, ok := nodes[re.source]
		if !ok {
			return nil, fmt.Errorf("%w: %w: edges file %q line %d: unknown source label %q", ErrInputMalformed, ErrUnknownLabel, edgesPath, re.line, re.source)
		}
		dst, ok := nodes[re.target]
		if !ok {
			return nil, fmt.Errorf("%w: %w: edges file %q line %d: unknown target label %q", ErrInputMalformed, ErrUnknownLabel, edgesPath, re.line, re.target)
		}
		c := edge.New(re.source, re.target, src.Pos, dst.Pos, re.weight+1.0)
		g.Edges = append(g.Edges, c)
		src.Degree++
		dst.Degree++
		if re.weight > wmax {
			wmax = re.weight
		}
	}
	for _, c := range g.Edges {
		c.Width /= wmax + 1.0
	}
	logger.Info("kept edges", "count", len(g.Edges))

	g.Neighbors = compat.BuildNeighbors(g.Edges, compatThreshold)
	pairs := 0
	for _, n := range g.Neighbors {
		pairs += len(n)
	}
	logger.Info("built compatibility lists", "directed pairs", pairs)

	return g, nil
}

// filterEdges applies the priority order: weight threshold, then
// percentile, then none.
func filterEdges(raw []rawEdge, cfg *filterConfig) ([]rawEdge, error) {
	switch {
	case cfg.weightThreshold != nil:
		kept := make([]rawEdge, 0, len(raw))
		for _, re := range raw {
			if re.weight > *cfg.weightThreshold {
				kept = append(kept, re)
			}
		}

		return kept, nil

	case cfg.percentile != nil:
		sorted := append([]rawEdge(nil), raw...)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].weight > sorted[j].weight
		})
		p := *cfg.percentile
		if p < 0 {
			p = 0
		}
		if p > 100 {
			p = 100
		}
		n := int(math.Round(float64(len(sorted)) * p / 100.0))
		if n > len(sorted) {
			n = len(sorted)
		}

		return sorted[:n], nil

	default:
		return raw, nil
	}
}

// readNodes parses the nodes file: a header line followed by
// "<label> <x> <y>" rows.
func readNodes(path string) (map[string]*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: nodes file %q: %v", ErrInputMissing, path, err)
	}
	defer f.Close()

	nodes := make(map[string]*Node)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo == 1 {
			continue // header
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("%w: nodes file %q line %d: expected \"label x y\"", ErrInputMalformed, path, lineNo)
		}
		x, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: nodes file %q line %d: bad x %q", ErrInputMalformed, path, lineNo, fields[1])
		}
		y, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: nodes file %q line %d: bad y %q", ErrInputMalformed, path, lineNo, fields[2])
		}
		nodes[fields[0]] = &Node{Pos: vector2.V{X: x, Y: y}}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: nodes file %q: %v", ErrInputMalformed, path, err)
	}

	return nodes, nil
}

// readRawEdges parses the edges file: a header line followed by
// "<source> <target> [<weight>]" rows, weight defaulting to 1.0.
func readRawEdges(path string) ([]rawEdge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: edges file %q: %v", ErrInputMissing, path, err)
	}
	defer f.Close()

	var raw []rawEdge
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo == 1 {
			continue // header
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: edges file %q line %d: expected \"source target [weight]\"", ErrInputMalformed, path, lineNo)
		}
		weight := 1.0
		if len(fields) >= 3 {
			weight, err = strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: edges file %q line %d: bad weight %q", ErrInputMalformed, path, lineNo, fields[2])
			}
		}
		raw = append(raw, rawEdge{source: fields[0], target: fields[1], weight: weight, line: lineNo})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: edges file %q: %v", ErrInputMalformed, path, err)
	}

	return raw, nil
}

// BoundingBox returns the axis-aligned bounding box over all node
// positions, inflated by frame on every side. Ported from the original
// FDEB reference's bounding-box computation.
func (g *Graph) BoundingBox(frame float64) (min, max vector2.V, err error) {
	if len(g.Nodes) == 0 {
		return vector2.Zero, vector2.Zero, ErrEmptyGraph
	}

	first := true
	for _, n := range g.Nodes {
		if first {
			min, max = n.Pos, n.Pos
			first = false

			continue
		}
		if n.Pos.X < min.X {
			min.X = n.Pos.X
		}
		if n.Pos.Y < min.Y {
			min.Y = n.Pos.Y
		}
		if n.Pos.X > max.X {
			max.X = n.Pos.X
		}
		if n.Pos.Y > max.Y {
			max.Y = n.Pos.Y
		}
	}
	min = vector2.V{X: min.X - frame, Y: min.Y - frame}
	max = vector2.V{X: max.X + frame, Y: max.Y + frame}

	return min, max, nil
}

// orNop returns logger, or a discarding logger if logger is nil.
func orNop(logger *charmlog.Logger) *charmlog.Logger {
	if logger != nil {
		return logger
	}

	return charmlog.NewWithOptions(discard{}, charmlog.Options{})
}

// discard is an io.Writer that drops everything written to it.
type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
