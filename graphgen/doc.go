// Package graphgen builds deterministic distance matrices (*apsp.Dense) for
// tests, benchmarks and the cpkit CLI.
//
// Topologies: Path, Cycle, Complete and RandomSparse (Erdős–Rényi-like).
// Vertices are the indices 0..n-1; edges are emitted in a fixed order
// (i ascending, then j ascending) so a given seed always yields the same matrix.
//
// Weights come from the configured policy:
//   - WithWeight(w)         — every edge weighs w (default 1)
//   - WithWeights(min, max) — uniform integers in [min, max], drawn from the RNG
//
// Stochastic choices require an RNG (WithSeed or WithRand); a missing one is
// reported as ErrNeedRandSource, never silently replaced.
//
//	d, err := graphgen.RandomSparse(50, 0.1, graphgen.WithSeed(7), graphgen.WithWeights(-2, 10))
package graphgen
