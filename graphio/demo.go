package graphio

import (
	_ "embed"
	"fmt"

	"github.com/katalvlaran/pathlight/core"
)

//go:embed demo.yaml
var demoYAML []byte

// Demo returns a fresh copy of the built-in seven-city map.
// Panics if the embedded document is invalid, which only a broken build can cause.
func Demo() *core.Graph {
	g, err := FromYAML(demoYAML)
	if err != nil {
		panic(fmt.Sprintf("graphio: embedded demo graph: %v", err))
	}

	return g
}
