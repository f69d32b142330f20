// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cpkit/apsp"
)

// GraphFile is the YAML representation of a weighted directed graph.
//
//	nodes: 3
//	edges:
//	  - {from: 0, to: 1, weight: 1}
//	  - {from: 1, to: 2, weight: -1}
type GraphFile struct {
	Nodes int        `yaml:"nodes" json:"nodes"`
	Edges []EdgeSpec `yaml:"edges" json:"edges"`
}

// EdgeSpec is one directed edge.
type EdgeSpec struct {
	From   int   `yaml:"from" json:"from"`
	To     int   `yaml:"to" json:"to"`
	Weight int64 `yaml:"weight" json:"weight"`
}

// ParseGraph decodes YAML into a GraphFile.
func ParseGraph(data []byte) (*GraphFile, error) {
	var g GraphFile
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("parse graph: %w", err)
	}

	return &g, nil
}

// LoadGraph reads and decodes a YAML graph file.
func LoadGraph(path string) (*GraphFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph: %w", err)
	}

	return ParseGraph(data)
}

// ToDense builds the distance matrix, keeping the lightest of parallel edges.
func (g *GraphFile) ToDense() (*apsp.Dense, error) {
	d, err := apsp.NewDense(g.Nodes)
	if err != nil {
		return nil, fmt.Errorf("graph: nodes=%d: %w", g.Nodes, err)
	}
	for i, e := range g.Edges {
		if err = d.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("graph: edge #%d: %w", i, err)
		}
	}

	return d, nil
}

// GraphFromDense lists the finite off-diagonal entries of d (and finite
// diagonal self-loops) as edges, row by row.
func GraphFromDense(d *apsp.Dense) *GraphFile {
	g := &GraphFile{Nodes: d.Order(), Edges: []EdgeSpec{}}
	for i, row := range d.ToRows() {
		for j, w := range row {
			if w == apsp.Inf || w == apsp.NegInf {
				continue
			}
			g.Edges = append(g.Edges, EdgeSpec{From: i, To: j, Weight: w})
		}
	}

	return g
}

// Marshal encodes g as YAML.
func (g *GraphFile) Marshal() ([]byte, error) {
	return yaml.Marshal(g)
}
