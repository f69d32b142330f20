// SPDX-License-Identifier: MIT
// Package: graphgen
//
// options.go — functional options and the resolved generator config.
//
// Contract:
//   • Options are functional (type Option func(*config)) and applied in order;
//     later options override earlier ones.
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: randomness only flows from WithSeed / WithRand.

package graphgen

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/cpkit/apsp"
)

// DefaultEdgeWeight is used when no weight option is given.
const DefaultEdgeWeight int64 = 1

// Option customizes a generator before construction begins.
type Option func(*config)

// config is the single source of truth for generator knobs.
type config struct {
	rng        *rand.Rand
	undirected bool
	uniform    bool  // draw weights from [minW, maxW]
	minW, maxW int64 // inclusive bounds; minW == maxW == weight when !uniform
}

func newConfig(opts ...Option) config {
	c := config{minW: DefaultEdgeWeight, maxW: DefaultEdgeWeight}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// weight draws the next edge weight. The caller has already ensured an RNG
// is present when c.uniform is set.
func (c *config) weight() int64 {
	if !c.uniform || c.minW == c.maxW {
		return c.minW
	}

	return c.minW + c.rng.Int63n(c.maxW-c.minW+1)
}

// needsRand reports whether weight drawing requires an RNG.
func (c *config) needsRand() bool {
	return c.uniform && c.minW != c.maxW
}

// WithSeed attaches a fresh *rand.Rand seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("graphgen: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}

// WithUndirected mirrors every emitted edge (u→v and v→u, same weight).
func WithUndirected() Option {
	return func(c *config) {
		c.undirected = true
	}
}

// WithWeight sets a constant edge weight. Panics if |w| reaches apsp.Inf.
func WithWeight(w int64) Option {
	checkWeight("WithWeight", w)

	return func(c *config) {
		c.uniform = false
		c.minW, c.maxW = w, w
	}
}

// WithWeights draws each edge weight uniformly from [min, max].
// Panics if max < min or either bound reaches apsp.Inf in magnitude.
func WithWeights(min, max int64) Option {
	checkWeight("WithWeights", min)
	checkWeight("WithWeights", max)
	if max < min {
		panic(fmt.Sprintf("graphgen: WithWeights: max=%d < min=%d", max, min))
	}

	return func(c *config) {
		c.uniform = true
		c.minW, c.maxW = min, max
	}
}

func checkWeight(tag string, w int64) {
	if w >= apsp.Inf || w <= apsp.NegInf {
		panic(fmt.Sprintf("graphgen: %s: weight %d out of range", tag, w))
	}
}
