// Package regret implements the counterfactual regret minimization family of
// online learners for a single decision point with a fixed set of actions.
//
// A Minimizer is fed one counterfactual reward vector per iteration and
// maintains accumulated regret and strategy sums. Its average strategy
// converges to a Nash equilibrium strategy in self-play of two-player
// zero-sum games. The variants (regret matching, CFR+, DCFR, DCFR+,
// Linear CFR, PCFR+, PDCFR+) differ only in their Schedule.
//
// Minimizers are not safe for concurrent use. Independent minimizers share
// no state and may be updated from different goroutines.
package regret

import (
	"github.com/timpalpant/go-regret/sampling"
)

// RegretMinimizer learns a mixed strategy over a fixed set of actions.
type RegretMinimizer interface {
	// NumActions returns the number of actions, fixed at construction.
	NumActions() int
	// Iter returns the number of successful calls to UpdateRegret.
	Iter() int
	// UpdateRegret observes the reward each action would have earned
	// on this iteration.
	UpdateRegret(rewards []float32) error
	// CurrentStrategy returns the distribution to play on the next iteration.
	CurrentStrategy() []float32
	// AverageStrategy returns the (weighted) average strategy over all
	// iterations. This is the quantity that converges to equilibrium.
	AverageStrategy() []float32
	// SampleAction draws an action from the current strategy.
	SampleAction(rng sampling.Rand) (int, error)
}

// Schedule is the set of numeric policies that distinguishes one
// regret minimization algorithm from another. Iterations t are one-indexed.
type Schedule interface {
	// RegretDiscounts returns the factors by which accumulated positive and
	// negative (or zero) regrets are multiplied before iteration t's
	// instantaneous regret is added with the given weight.
	RegretDiscounts(t int) (positive, negative, weight float32)
	// ClipRegrets reports whether accumulated regrets are floored at zero
	// after every update.
	ClipRegrets() bool
	// StrategyDiscounts returns the factor by which the strategy sum is
	// multiplied before iteration t's strategy is added with the given weight.
	StrategyDiscounts(t int) (discount, weight float32)
	// Prediction reports whether the current strategy is computed
	// optimistically from the accumulated regret (multiplied by discount)
	// plus the last instantaneous regret. Whether a schedule is predictive
	// must not depend on t.
	Prediction(t int) (predictive bool, discount float32)
}
