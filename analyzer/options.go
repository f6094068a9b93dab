// SPDX-License-Identifier: MIT
// Package: seacanal/analyzer
//
// options.go — functional options for Analyzer construction.
//
// Contract:
//   • Options are functional (type Option func(*analyzerConfig)).
//   • Option constructors validate and panic on meaningless inputs
//     (nil relation, negative parallelism). Searches never panic.
//   • No hidden globals; everything flows through analyzerConfig.

package analyzer

import "github.com/katalvlaran/seacanal/pattern"

// Option customizes an Analyzer before its Choice Sets are built.
type Option func(*analyzerConfig)

type analyzerConfig struct {
	relations   []*pattern.Relation
	meta        bool
	parallelism int
}

func newAnalyzerConfig(opts ...Option) analyzerConfig {
	cfg := analyzerConfig{parallelism: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRelations registers custom relations, extending the vocabulary.
// Repeated use appends. Panics on a nil relation.
func WithRelations(rels ...*pattern.Relation) Option {
	for _, r := range rels {
		if r == nil {
			panic("analyzer: WithRelations(nil)")
		}
	}
	return func(c *analyzerConfig) {
		c.relations = append(c.relations, rels...)
	}
}

// WithMeta enables the meta (second-order) search.
func WithMeta() Option {
	return func(c *analyzerConfig) {
		c.meta = true
	}
}

// WithParallelism computes the per-offset candidates on up to n goroutines.
// n ≤ 1 keeps the search sequential. Results do not depend on n.
// Panics on negative n.
func WithParallelism(n int) Option {
	if n < 0 {
		panic("analyzer: WithParallelism(n < 0)")
	}
	return func(c *analyzerConfig) {
		c.parallelism = n
	}
}
