// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cpkit/apsp"
	"github.com/katalvlaran/cpkit/graphgen"
)

// GenOptions holds flags for the gen command.
type GenOptions struct {
	*RootOptions
	N          int
	Weight     int64
	MinWeight  int64
	MaxWeight  int64
	P          float64
	Seed       int64
	Undirected bool
	Output     string
}

// Topologies accepted by the gen command.
var Topologies = []string{"path", "cycle", "complete", "random"}

// NewGenCommand creates the gen command.
func NewGenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "gen <path|cycle|complete|random>",
		Short: "Generate a graph file for apsp",
		Long: `Generate a weighted graph in the YAML format read by "cpkit apsp".

Weights are constant (--weight) or drawn uniformly from
[--min-weight, --max-weight] when either bound is given.

Example:
  cpkit gen cycle -n 4 --weight 3
  cpkit gen random -n 50 --p 0.1 --seed 7 --min-weight -2 --max-weight 9 -o g.yaml`,
		Args:      exactArgs(1),
		ValidArgs: Topologies,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.N, "nodes", "n", 5, "number of vertices")
	cmd.Flags().Int64Var(&opts.Weight, "weight", graphgen.DefaultEdgeWeight, "constant edge weight")
	cmd.Flags().Int64Var(&opts.MinWeight, "min-weight", graphgen.DefaultEdgeWeight, "lower bound of uniform weights")
	cmd.Flags().Int64Var(&opts.MaxWeight, "max-weight", graphgen.DefaultEdgeWeight, "upper bound of uniform weights")
	cmd.Flags().Float64Var(&opts.P, "p", 0.5, "edge probability (random only)")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 1, "RNG seed")
	cmd.Flags().BoolVar(&opts.Undirected, "undirected", false, "emit both directions of every edge")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write YAML to file instead of stdout")

	return cmd
}

func (o *GenOptions) graphOptions(cmd *cobra.Command) ([]graphgen.Option, error) {
	gopts := []graphgen.Option{graphgen.WithSeed(o.Seed)}
	if o.Undirected {
		gopts = append(gopts, graphgen.WithUndirected())
	}

	uniform := cmd.Flags().Changed("min-weight") || cmd.Flags().Changed("max-weight")
	switch {
	case uniform && cmd.Flags().Changed("weight"):
		return nil, fmt.Errorf("--weight cannot be combined with --min-weight/--max-weight")
	case uniform:
		if o.MinWeight > o.MaxWeight {
			return nil, fmt.Errorf("min-weight %d > max-weight %d", o.MinWeight, o.MaxWeight)
		}
		if !weightInRange(o.MinWeight) || !weightInRange(o.MaxWeight) {
			return nil, fmt.Errorf("weights must lie strictly inside (-inf, inf)")
		}
		gopts = append(gopts, graphgen.WithWeights(o.MinWeight, o.MaxWeight))
	default:
		if !weightInRange(o.Weight) {
			return nil, fmt.Errorf("weight must lie strictly inside (-inf, inf)")
		}
		gopts = append(gopts, graphgen.WithWeight(o.Weight))
	}

	return gopts, nil
}

// weightInRange mirrors the option constructors' bounds so bad flags become
// errors rather than panics.
func weightInRange(w int64) bool {
	return w > apsp.NegInf && w < apsp.Inf
}

func runGen(opts *GenOptions, topology string, cmd *cobra.Command) error {
	gopts, err := opts.graphOptions(cmd)
	if err != nil {
		return WrapExitError(ExitCommandError, "bad flags", err)
	}

	var d *apsp.Dense
	switch topology {
	case "path":
		d, err = graphgen.Path(opts.N, gopts...)
	case "cycle":
		d, err = graphgen.Cycle(opts.N, gopts...)
	case "complete":
		d, err = graphgen.Complete(opts.N, gopts...)
	case "random":
		d, err = graphgen.RandomSparse(opts.N, opts.P, gopts...)
	default:
		return NewExitError(ExitCommandError,
			fmt.Sprintf("unknown topology %q: must be one of %v", topology, Topologies))
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "generate failed", err)
	}

	g := GraphFromDense(d)
	opts.Logger.Debug("graph generated", "topology", topology, "nodes", g.Nodes, "edges", len(g.Edges))

	data, err := g.Marshal()
	if err != nil {
		return WrapExitError(ExitFailure, "encode graph", err)
	}

	if opts.Output != "" {
		if err = os.WriteFile(opts.Output, data, 0o644); err != nil {
			return WrapExitError(ExitFailure, "write graph", err)
		}
		opts.Logger.Info("graph written", "path", opts.Output)
		return opts.formatter(cmd).Success(fmt.Sprintf("wrote %s\n", opts.Output), g)
	}

	return opts.formatter(cmd).Success(string(data), g)
}
