// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go — resolved builder configuration and its options.
//
// builderConfig is passed by value to constructors; options apply in order,
// later ones overriding earlier ones. Defaults are deterministic: no RNG,
// root 0.

package builder

import "math/rand"

// BuilderOption customizes the resolved builderConfig.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	rng  *rand.Rand
	root int
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithRand sets the random source for stochastic constructors.
// Panics on nil, which is a programmer error.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed seeds a fresh random source for stochastic constructors.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRoot designates the root of the built graph. Invalid roots surface as
// an error from BuildGraphWith.
func WithRoot(root int) BuilderOption {
	return func(c *builderConfig) { c.root = root }
}
