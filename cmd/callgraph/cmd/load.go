package cmd

import (
	"fmt"
	"os"

	"github.com/axgraph/callgraph/csr"
	"github.com/axgraph/callgraph/persist"
)

// loadGraph opens the edge and node CSV files at the given paths and
// rebuilds a *csr.Graph via persist.CSVReader/persist.LoadGraph.
func loadGraph(edgesPath, nodesPath string) (*csr.Graph, error) {
	edgesFile, err := os.Open(edgesPath)
	if err != nil {
		return nil, fmt.Errorf("open edges file: %w", err)
	}
	defer edgesFile.Close()

	nodesFile, err := os.Open(nodesPath)
	if err != nil {
		return nil, fmt.Errorf("open nodes file: %w", err)
	}
	defer nodesFile.Close()

	reader := persist.CSVReader{Edges: edgesFile, Nodes: nodesFile}
	g, err := persist.LoadGraph(reader)
	if err != nil {
		return nil, fmt.Errorf("load graph: %w", err)
	}
	return g, nil
}
