// Package ioformat owns the write side of the file I/O contract: emitting
// a bundled graph as the JSON document consumers render. Reading nodes and
// edges text files lives in bundle.Load instead (mirroring the original
// FDEB reference's graph loader, which does its own file I/O rather than
// delegating to a sibling type); splitting reads out here would create an
// import cycle, since WriteJSON needs a *bundle.Graph.
//
// Grounded on the original FDEB reference's JSON export routine for the
// document shape, and on matzehuels-stacktower's export tagging
// (run_id/generated_at metadata) for the ambient provenance fields.
package ioformat
