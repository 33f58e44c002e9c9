package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlight/server"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PATHLIGHT_GRAPH_FILE", "")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoute_DemoMap(t *testing.T) {
	out, err := run(t, "route", "City 6", "City 7")
	require.NoError(t, err)
	assert.Contains(t, out, "City 6 -> City 3 -> City 2 -> City 4 -> City 5 -> City 7")
	assert.Contains(t, out, "  City 4 -> City 5: 25\n")
	assert.Contains(t, out, "total: 116")
}

func TestRoute_JSON(t *testing.T) {
	out, err := run(t, "route", "City 1", "City 5", "--json")
	require.NoError(t, err)

	var resp server.RouteResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.True(t, resp.Found)
	assert.Equal(t, []string{"City 1", "City 2", "City 4", "City 5"}, resp.Names)
	require.NotNil(t, resp.Distance)
	assert.Equal(t, 60.0, *resp.Distance)
}

func TestRoute_UnknownCity(t *testing.T) {
	_, err := run(t, "route", "City 1", "Atlantis")
	assert.ErrorIs(t, err, server.ErrNodeNotFound)
}

func TestRoute_Unreachable(t *testing.T) {
	file := filepath.Join(t.TempDir(), "split.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
nodes:
  - {id: a, name: A}
  - {id: b, name: B}
  - {id: c, name: C}
paths:
  - {from: a, to: b, distance: 1}
`), 0o600))

	out, err := run(t, "--graph", file, "route", "A", "C")
	require.NoError(t, err)
	assert.Equal(t, "no path from A to C\n", out)
}

func TestRoute_WrongArgs(t *testing.T) {
	_, err := run(t, "route", "City 1")
	assert.Error(t, err)
}

func TestNodesAndPaths(t *testing.T) {
	out, err := run(t, "nodes")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "City 7")

	out, err = run(t, "paths", "--json")
	require.NoError(t, err)
	var edges []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &edges))
	assert.Len(t, edges, 8)
}

func TestExport_RoundTrip(t *testing.T) {
	out, err := run(t, "export", "--format", "json")
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "demo.json")
	require.NoError(t, os.WriteFile(file, []byte(out), 0o600))

	routed, err := run(t, "--graph", file, "route", "City 6", "City 7")
	require.NoError(t, err)
	assert.Contains(t, routed, "total: 116")
}

func TestExport_BadFormat(t *testing.T) {
	_, err := run(t, "export", "--format", "xml")
	assert.Error(t, err)
}

func TestBadGraphFile(t *testing.T) {
	_, err := run(t, "--graph", filepath.Join(t.TempDir(), "missing.yaml"), "nodes")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
