// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cpkit/apsp"
)

// APSPResult is the JSON payload of the apsp command.
// Distances are strings so the sentinels render as "inf" / "-inf".
type APSPResult struct {
	Nodes         int        `json:"nodes"`
	Distances     [][]string `json:"distances"`
	NegativeCycle bool       `json:"negative_cycle"`
}

// NewAPSPCommand creates the apsp command.
func NewAPSPCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apsp <graph.yaml>",
		Short: "All-pairs shortest paths (Floyd-Warshall)",
		Long: `Run Floyd-Warshall on a YAML graph and print the distance matrix.

Cells read "inf" when unreachable and "-inf" when the shortest path is
undefined because it can pass through a negative-weight cycle.

Graph file:
  nodes: 3
  edges:
    - {from: 0, to: 1, weight: 1}
    - {from: 1, to: 2, weight: -1}

Example:
  cpkit apsp graph.yaml
  cpkit gen cycle -n 5 --weight -1 | cpkit apsp /dev/stdin`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPSP(opts, args[0], cmd)
		},
	}

	return cmd
}

func runAPSP(opts *RootOptions, path string, cmd *cobra.Command) error {
	g, err := LoadGraph(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load graph", err)
	}
	opts.Logger.Debug("graph loaded", "path", path, "nodes", g.Nodes, "edges", len(g.Edges))

	d, err := g.ToDense()
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid graph", err)
	}
	if err = apsp.FloydWarshall(d); err != nil {
		return WrapExitError(ExitFailure, "floyd-warshall failed", err)
	}
	neg, err := apsp.HasNegativeCycle(d)
	if err != nil {
		return WrapExitError(ExitFailure, "negative-cycle check failed", err)
	}
	if neg {
		opts.Logger.Info("negative cycle detected", "path", path)
	}

	res := APSPResult{Nodes: d.Order(), Distances: formatRows(d), NegativeCycle: neg}

	return opts.formatter(cmd).Success(renderAPSP(res), res)
}

func formatRows(d *apsp.Dense) [][]string {
	rows := d.ToRows()
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, len(row))
		for j, v := range row {
			out[i][j] = apsp.FormatDistance(v)
		}
	}
	return out
}

// renderAPSP prints a right-aligned table with a header row of node indices.
func renderAPSP(res APSPResult) string {
	width := len(fmt.Sprint(res.Nodes - 1))
	for _, row := range res.Distances {
		for _, c := range row {
			width = max(width, len(c))
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%*s", width, "")
	for j := 0; j < res.Nodes; j++ {
		fmt.Fprintf(&sb, " %*d", width, j)
	}
	sb.WriteByte('\n')
	for i, row := range res.Distances {
		fmt.Fprintf(&sb, "%*d", width, i)
		for _, c := range row {
			fmt.Fprintf(&sb, " %*s", width, c)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "negative cycle: %t\n", res.NegativeCycle)

	return sb.String()
}
