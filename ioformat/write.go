package ioformat

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/fdebgo/fdeb/bundle"
)

// number formats a float64 with the shortest representation that
// round-trips exactly, equivalent to the reference implementation's
// %.17g formatting.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(n), 'g', -1, 64)), nil
}

type point struct {
	X number `json:"x"`
	Y number `json:"y"`
}

type nodeDoc struct {
	Label string `json:"label"`
	X     number `json:"x"`
	Y     number `json:"y"`
}

type edgeDoc struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Coords []point `json:"coords"`
}

type document struct {
	RunID       string    `json:"run_id"`
	GeneratedAt string    `json:"generated_at"`
	Nodes       []nodeDoc `json:"nodes"`
	Edges       []edgeDoc `json:"edges"`
}

// WriteJSON encodes g as a {"nodes":[...], "edges":[...]} document and
// writes it to w, tagged with a fresh run_id and now (in UTC, RFC 3339) as
// generated_at.
//
// Grounded on matzehuels-stacktower/pkg/io/export.go's WriteJSON/ExportJSON
// split.
func WriteJSON(g *bundle.Graph, w io.Writer, now time.Time) error {
	doc := document{
		RunID:       uuid.NewString(),
		GeneratedAt: now.UTC().Format(time.RFC3339),
		Nodes:       make([]nodeDoc, 0, len(g.Nodes)),
		Edges:       make([]edgeDoc, 0, len(g.Edges)),
	}

	labels := make([]string, 0, len(g.Nodes))
	for label := range g.Nodes {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		n := g.Nodes[label]
		doc.Nodes = append(doc.Nodes, nodeDoc{Label: label, X: number(n.Pos.X), Y: number(n.Pos.Y)})
	}

	for _, c := range g.Edges {
		coords := make([]point, 0, len(c.Subdivisions)+2)
		coords = append(coords, point{X: number(c.Start.X), Y: number(c.Start.Y)})
		for _, p := range c.Subdivisions {
			coords = append(coords, point{X: number(p.X), Y: number(p.Y)})
		}
		coords = append(coords, point{X: number(c.End.X), Y: number(c.End.Y)})
		doc.Edges = append(doc.Edges, edgeDoc{Source: c.Source, Target: c.Target, Coords: coords})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("%w: encode: %v", ErrOutputFailure, err)
	}

	return nil
}

// ExportJSON creates (or truncates) the file at path and writes g's JSON
// representation to it using WriteJSON.
func ExportJSON(g *bundle.Graph, path string, now time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrOutputFailure, path, err)
	}
	defer f.Close()

	return WriteJSON(g, f, now)
}
