package graphio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlight/core"
	"github.com/katalvlaran/pathlight/dijkstra"
	"github.com/katalvlaran/pathlight/graphio"
)

const triangleYAML = `
nodes:
  - name: A
    x: 0
    y: 0
  - id: node-b
    name: B
    x: 10
    y: 10
  - name: C
    x: 10
    y: 5
paths:
  - from: A
    to: node-b
    distance: 20
  - from: node-b
    to: C
    distance: 11
    waypoints: [{x: 10, y: 10}, {x: 10, y: 5}]
  - from: C
    to: A
    distance: 10
`

func TestFromYAML_ResolvesNamesAndAssignsIDs(t *testing.T) {
	g, err := graphio.FromYAML([]byte(triangleYAML))
	require.NoError(t, err)
	require.Len(t, g.Nodes, 3)
	require.Len(t, g.Edges, 3)

	a, ok := g.Lookup("A")
	require.True(t, ok)
	_, err = uuid.Parse(a.ID)
	assert.NoError(t, err, "anonymous node must get a uuid, got %q", a.ID)

	b, ok := g.Node("node-b")
	require.True(t, ok)
	assert.Equal(t, "B", b.Name)
	assert.Equal(t, core.Point{X: 10, Y: 10}, b.Position())

	c, _ := g.Lookup("C")
	assert.Equal(t, core.Edge{From: a.ID, To: "node-b", Distance: 20}, g.Edges[0])
	assert.Equal(t, "node-b", g.Edges[1].From)
	assert.Equal(t, c.ID, g.Edges[1].To)
	assert.Equal(t, []core.Point{{X: 10, Y: 10}, {X: 10, Y: 5}}, g.Edges[1].Waypoints)

	assert.NotEqual(t, a.ID, c.ID)
}

func TestFromJSON(t *testing.T) {
	data := []byte(`{
		"nodes": [{"id": "a", "name": "A"}, {"id": "b", "name": "B", "x": 1.5, "y": 2}],
		"paths": [{"from": "a", "to": "B", "distance": 2.5}]
	}`)
	g, err := graphio.FromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: "a", To: "b", Distance: 2.5}}, g.Edges)
	assert.Equal(t, 1.5, g.Nodes[1].X)
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown endpoint", "nodes: [{id: a}]\npaths: [{from: a, to: zz, distance: 1}]", core.ErrUnknownNode},
		{"negative distance", "nodes: [{id: a}, {id: b}]\npaths: [{from: a, to: b, distance: -3}]", core.ErrNegativeDistance},
		{"duplicate ids", "nodes: [{id: a}, {id: a}]", core.ErrDuplicateNode},
		{"infinite distance", "nodes: [{id: a}, {id: b}]\npaths: [{from: a, to: b, distance: .inf}]", core.ErrBadDistance},
		{"path without from", "nodes: [{id: a, name: A}, {id: b}]\npaths: [{to: a, distance: 3}]", core.ErrUnknownNode},
		{"path with empty to", "nodes: [{id: a, name: A}, {id: b}]\npaths: [{from: a, to: '', distance: 3}]", core.ErrUnknownNode},
		{"path without distance", "nodes: [{id: a}, {id: b}]\npaths: [{from: a, to: b}]", graphio.ErrMissingDistance},
		{"null distance", "nodes: [{id: a}, {id: b}]\npaths: [{from: a, to: b, distance: null}]", graphio.ErrMissingDistance},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graphio.FromYAML([]byte(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := graphio.FromYAML([]byte("nodes: [unterminated"))
	assert.ErrorContains(t, err, "parse yaml")

	_, err = graphio.FromJSON([]byte(`{"nodes":[{"id":"a"},{"id":"b"}],"paths":[{"from":"a","to":"b"}]}`))
	assert.ErrorIs(t, err, graphio.ErrMissingDistance)

	g, err := graphio.FromYAML([]byte("nodes: [{id: a}, {id: b}]\npaths: [{from: a, to: b, distance: 0}]"))
	require.NoError(t, err, "an explicit zero distance is allowed")
	assert.Equal(t, 0.0, g.Edges[0].Distance)

	_, err = graphio.FromJSON([]byte("{"))
	assert.ErrorContains(t, err, "parse json")

	_, err = graphio.Decode([]byte("{}"), graphio.Format("toml"))
	assert.ErrorIs(t, err, graphio.ErrUnsupportedFormat)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]graphio.Format{
		".yaml": graphio.FormatYAML, "yml": graphio.FormatYAML, "JSON": graphio.FormatJSON,
	} {
		got, err := graphio.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := graphio.ParseFormat(".txt")
	assert.ErrorIs(t, err, graphio.ErrUnsupportedFormat)
}

func TestLoad_ByExtension(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "map.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(triangleYAML), 0o600))
	g, err := graphio.Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Len())

	txtPath := filepath.Join(dir, "map.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte(triangleYAML), 0o600))
	_, err = graphio.Load(txtPath)
	assert.ErrorIs(t, err, graphio.ErrUnsupportedFormat)

	_, err = graphio.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	badPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte(`{"nodes":[{"id":"a"}],"paths":[{"from":"a","to":"b"}]}`), 0o600))
	_, err = graphio.Load(badPath)
	assert.ErrorIs(t, err, core.ErrUnknownNode)
	assert.ErrorContains(t, err, "bad.json")
}

// TestEncode_DecodesToSameGraph writes a graph with generated ids and reads
// it back in both formats.
func TestEncode_DecodesToSameGraph(t *testing.T) {
	g, err := graphio.FromYAML([]byte(triangleYAML))
	require.NoError(t, err)

	for _, f := range []graphio.Format{graphio.FormatYAML, graphio.FormatJSON} {
		var buf bytes.Buffer
		require.NoError(t, graphio.Encode(&buf, g, f))

		back, err := graphio.Decode(buf.Bytes(), f)
		require.NoError(t, err, string(buf.Bytes()))
		assert.Equal(t, g, back, "format %s", f)
	}

	assert.ErrorIs(t, graphio.Encode(&bytes.Buffer{}, g, "xml"), graphio.ErrUnsupportedFormat)
}

func TestDemo(t *testing.T) {
	g := graphio.Demo()
	require.Len(t, g.Nodes, 7)
	require.Len(t, g.Edges, 8)
	require.NoError(t, g.Validate())

	c1, _ := g.Lookup("City 1")
	c2, _ := g.Lookup("City 2")
	assert.Equal(t, "53971515-7947-427e-b63a-8be1fdf62667", c1.ID)

	// Direct road City 1-City 2 (20) beats the detour via City 3 (21).
	res := dijkstra.Route(g.Nodes, g.Edges, c1.ID, c2.ID)
	assert.Equal(t, []string{c1.ID, c2.ID}, res.Path)
	assert.Equal(t, 20.0, res.Distance)

	// Each call returns an independent copy.
	g.Nodes[0].Name = "changed"
	assert.Equal(t, "City 1", graphio.Demo().Nodes[0].Name)
}
