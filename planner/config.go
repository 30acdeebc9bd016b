// Package planner orchestrates Catalog Fusion (C1), the Prerequisite
// Resolver (C2), the Eligibility Filter (C3), the PERT Analyzer (C4), and
// the Clique Scheduler (C5) behind a single entry point, Plan.
//
// Errors:
//
//	ErrInvalidRequest - malformed input (missing plan ID, bad time range)
//	ErrPlanNotFound   - unknown plan signature with no cached catalog
//
// A request that yields zero feasible schedules (empty eligibility set,
// an exhausted clique search budget, an infeasible line-balance target)
// is not an error: Plan returns a well-formed Response with an empty
// Schedules slice.
//
// Complexity: Plan runs C1-C5 once per invocation, O(catalog size + clique
// search cost); see package clique for the search's own complexity notes.
package planner

import "time"

// Option customizes a planner invocation. It mutates a config before the
// pipeline runs, the same functional-options shape used throughout this
// module's predecessor (builder.BuilderOption).
type Option func(cfg *config)

type config struct {
	topK               int
	cliqueTimeBudget   time.Duration
	totalTimeBudget    time.Duration
	seedAttempts       int
	heuristicThreshold int
	logger             Logger
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		topK:             defaultTopK,
		cliqueTimeBudget: defaultCliqueTimeBudget,
		totalTimeBudget:  defaultTotalTimeBudget,
		seedAttempts:     defaultSeedAttempts,
		logger:           noopLogger{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

const (
	defaultTopK              = 10
	defaultSeedAttempts       = 8
	defaultCliqueTimeBudget   = 500 * time.Millisecond
	defaultTotalTimeBudget    = 3 * time.Second
)

// WithTopK overrides how many diverse schedules Plan attempts to return.
func WithTopK(k int) Option {
	return func(cfg *config) {
		if k > 0 {
			cfg.topK = k
		}
	}
}

// WithSeedAttempts overrides how many tie-break seeds the clique scheduler
// tries per search round.
func WithSeedAttempts(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.seedAttempts = n
		}
	}
}

// WithCliqueTimeBudget overrides the per-search time budget passed to the
// clique scheduler's backtracking search.
func WithCliqueTimeBudget(d time.Duration) Option {
	return func(cfg *config) {
		if d > 0 {
			cfg.cliqueTimeBudget = d
		}
	}
}

// WithTotalTimeBudget overrides the overall deadline for the top-K
// enumeration loop.
func WithTotalTimeBudget(d time.Duration) Option {
	return func(cfg *config) {
		if d > 0 {
			cfg.totalTimeBudget = d
		}
	}
}

// WithLogger injects a Logger; a nil Logger is a no-op (the planner stays
// silent unless the host opts in).
func WithLogger(l Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// WithHeuristicFastPath makes the clique scheduler substitute a
// single-pass greedy construction for the exact backtracking search once
// the compatibility graph exceeds nodeThreshold nodes. Left unset (zero),
// every search is exact regardless of graph size.
func WithHeuristicFastPath(nodeThreshold int) Option {
	return func(cfg *config) {
		if nodeThreshold > 0 {
			cfg.heuristicThreshold = nodeThreshold
		}
	}
}
