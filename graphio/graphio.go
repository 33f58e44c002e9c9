package graphio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathlight/core"
)

// Format selects the document encoding.
type Format string

const (
	// FormatYAML is the YAML encoding.
	FormatYAML Format = "yaml"
	// FormatJSON is the JSON encoding.
	FormatJSON Format = "json"
)

var (
	// ErrUnsupportedFormat indicates an unknown file extension or Format value.
	ErrUnsupportedFormat = errors.New("graphio: unsupported format")

	// ErrMissingDistance indicates a path entry without a distance.
	ErrMissingDistance = errors.New("graphio: path distance is missing")
)

// ParseFormat maps a name ("yaml", "yml", "json") to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// document is the on-disk shape of a graph.
type document struct {
	Nodes []core.Node `json:"nodes" yaml:"nodes"`
	Paths []pathDoc   `json:"paths" yaml:"paths"`
}

// pathDoc is one path entry. Distance is a pointer so that an absent
// field can be told apart from an explicit zero.
type pathDoc struct {
	From      string       `json:"from" yaml:"from"`
	To        string       `json:"to" yaml:"to"`
	Waypoints []core.Point `json:"waypoints,omitempty" yaml:"waypoints,omitempty"`
	Distance  *float64     `json:"distance" yaml:"distance"`
}

// Load reads a graph definition file, choosing the format by extension.
// Supported extensions: .yaml, .yml, .json
func Load(path string) (*core.Graph, error) {
	format, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph file: %w", err)
	}

	g, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// FromYAML decodes a YAML graph definition.
func FromYAML(data []byte) (*core.Graph, error) { return Decode(data, FormatYAML) }

// FromJSON decodes a JSON graph definition.
func FromJSON(data []byte) (*core.Graph, error) { return Decode(data, FormatJSON) }

// Decode parses data in the given format, assigns missing node ids,
// resolves path endpoints and validates the result.
func Decode(data []byte, format Format) (*core.Graph, error) {
	var doc document
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return build(doc)
}

// build turns a raw document into a validated graph.
func build(doc document) (*core.Graph, error) {
	// 1) Assign ids to anonymous nodes.
	nodes := make([]core.Node, len(doc.Nodes))
	for i, n := range doc.Nodes {
		if n.ID == "" {
			n.ID = uuid.NewString()
		}
		nodes[i] = n
	}

	// 2) Resolve endpoints: ids win over names.
	g := &core.Graph{Nodes: nodes, Edges: make([]core.Edge, len(doc.Paths))}
	for i, p := range doc.Paths {
		from, ok := g.Lookup(p.From)
		if !ok {
			return nil, fmt.Errorf("%w: path #%d from %q", core.ErrUnknownNode, i, p.From)
		}
		to, ok := g.Lookup(p.To)
		if !ok {
			return nil, fmt.Errorf("%w: path #%d to %q", core.ErrUnknownNode, i, p.To)
		}
		if p.Distance == nil {
			return nil, fmt.Errorf("%w: path #%d %s-%s", ErrMissingDistance, i, p.From, p.To)
		}
		g.Edges[i] = core.Edge{From: from.ID, To: to.ID, Waypoints: p.Waypoints, Distance: *p.Distance}
	}

	// 3) Structural checks.
	if err := g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// Encode writes g to w in the given format with endpoints as node ids.
func Encode(w io.Writer, g *core.Graph, format Format) error {
	doc := document{Nodes: g.Nodes, Paths: make([]pathDoc, len(g.Edges))}
	if doc.Nodes == nil {
		doc.Nodes = []core.Node{}
	}
	for i, e := range g.Edges {
		d := e.Distance
		doc.Paths[i] = pathDoc{From: e.From, To: e.To, Waypoints: e.Waypoints, Distance: &d}
	}

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
