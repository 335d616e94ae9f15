package ioformat_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fdebgo/fdeb/bundle"
	"github.com/fdebgo/fdeb/edge"
	"github.com/fdebgo/fdeb/ioformat"
	"github.com/fdebgo/fdeb/vector2"
)

func sampleGraph() *bundle.Graph {
	c := edge.New("A", "B", vector2.V{X: 0, Y: 0}, vector2.V{X: 10, Y: 0}, 1)

	return &bundle.Graph{
		Nodes: map[string]*bundle.Node{
			"A": {Pos: vector2.V{X: 0, Y: 0}},
			"B": {Pos: vector2.V{X: 10, Y: 0}},
		},
		Edges:     []*edge.Curve{c},
		Neighbors: [][]int{{}},
	}
}

// TestExportJSON_ShapeAndMetadata verifies the document's top-level shape:
// run_id, generated_at, and nodes/edges arrays.
func TestExportJSON_ShapeAndMetadata(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")
	g := sampleGraph()
	stamp := time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC)

	require.NoError(t, ioformat.ExportJSON(g, path, stamp))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))

	assert.NotEmpty(t, doc["run_id"])
	assert.Equal(t, "2026-07-30T12:00:00Z", doc["generated_at"])

	nodes, ok := doc["nodes"].([]any)
	require.True(t, ok)
	assert.Len(t, nodes, 2)

	edges, ok := doc["edges"].([]any)
	require.True(t, ok)
	require.Len(t, edges, 1)

	first := edges[0].(map[string]any)
	assert.Equal(t, "A", first["source"])
	assert.Equal(t, "B", first["target"])
	coords, ok := first["coords"].([]any)
	require.True(t, ok)
	assert.Len(t, coords, 3) // start + one seeded subdivision + end
}

// TestExportJSON_FailsOnUnwritablePath verifies ErrOutputFailure wraps a
// create failure.
func TestExportJSON_FailsOnUnwritablePath(t *testing.T) {
	g := sampleGraph()
	err := ioformat.ExportJSON(g, "/nonexistent/dir/out.json", time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, ioformat.ErrOutputFailure)
}

// TestExportJSON_RunIDsDifferAcrossCalls verifies each export is tagged
// with a fresh run_id.
func TestExportJSON_RunIDsDifferAcrossCalls(t *testing.T) {
	dir := t.TempDir()
	g := sampleGraph()
	stamp := time.Now()

	path1 := filepath.Join(dir, "a.json")
	path2 := filepath.Join(dir, "b.json")
	require.NoError(t, ioformat.ExportJSON(g, path1, stamp))
	require.NoError(t, ioformat.ExportJSON(g, path2, stamp))

	raw1, err := os.ReadFile(path1)
	require.NoError(t, err)
	raw2, err := os.ReadFile(path2)
	require.NoError(t, err)

	var d1, d2 map[string]any
	require.NoError(t, json.Unmarshal(raw1, &d1))
	require.NoError(t, json.Unmarshal(raw2, &d2))
	assert.NotEqual(t, d1["run_id"], d2["run_id"])
}
