package regret

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/go-regret/internal/f32"
	"github.com/timpalpant/go-regret/sampling"
)

// Minimizer implements RegretMinimizer by keeping a table of accumulated
// regrets and strategy sums, updated according to its Schedule.
type Minimizer struct {
	schedule Schedule
	iter     int

	currentStrategy []float32
	regretSum       []float32
	strategySum     []float32
	// Instantaneous regret of the last update, used as the prediction
	// of the next one. Nil unless the schedule is predictive.
	lastRegret []float32
}

var _ RegretMinimizer = &Minimizer{}

// New returns a Minimizer over nActions actions that updates
// according to the given Schedule.
func New(nActions int, schedule Schedule) (*Minimizer, error) {
	if nActions <= 0 {
		return nil, errors.Wrapf(ErrInvalidActionCount, "n_actions=%d", nActions)
	}

	m := &Minimizer{
		schedule:        schedule,
		currentStrategy: make([]float32, nActions),
		regretSum:       make([]float32, nActions),
		strategySum:     make([]float32, nActions),
	}
	f32.Uniform(m.currentStrategy)

	if predictive, _ := schedule.Prediction(1); predictive {
		m.lastRegret = make([]float32, nActions)
	}

	glog.V(2).Infof("New %T minimizer with %d actions", schedule, nActions)
	return m, nil
}

// NumActions implements RegretMinimizer.
func (m *Minimizer) NumActions() int {
	return len(m.regretSum)
}

// Iter implements RegretMinimizer.
func (m *Minimizer) Iter() int {
	return m.iter
}

// Schedule returns the Schedule this Minimizer was created with.
func (m *Minimizer) Schedule() Schedule {
	return m.schedule
}

// UpdateRegret implements RegretMinimizer. It runs in O(n) time
// and does not allocate.
//
// rewards must have one entry per action, otherwise ErrDimensionMismatch
// is returned and the Minimizer is unchanged. NaN and infinite rewards
// are not rejected; they propagate into the accumulated state.
func (m *Minimizer) UpdateRegret(rewards []float32) error {
	if len(rewards) != len(m.regretSum) {
		return errors.Wrapf(ErrDimensionMismatch, "got %d rewards for %d actions",
			len(rewards), len(m.regretSum))
	}

	t := m.iter + 1
	discountPos, discountNeg, weight := m.schedule.RegretDiscounts(t)
	clip := m.schedule.ClipRegrets()
	expectedValue := f32.DotUnitary(m.currentStrategy, rewards)
	for i, reward := range rewards {
		instantaneousRegret := reward - expectedValue
		x := m.regretSum[i]
		if x > 0 {
			x *= discountPos
		} else {
			x *= discountNeg
		}

		x += weight * instantaneousRegret
		if clip && x < 0 {
			x = 0.0
		}

		m.regretSum[i] = x
		if m.lastRegret != nil {
			m.lastRegret[i] = instantaneousRegret
		}
	}

	m.nextStrategy(t)

	discountSum, strategyWeight := m.schedule.StrategyDiscounts(t)
	if discountSum != 1.0 {
		f32.ScalUnitary(discountSum, m.strategySum)
	}

	f32.AxpyUnitary(strategyWeight, m.currentStrategy, m.strategySum)
	m.iter++
	return nil
}

func (m *Minimizer) nextStrategy(t int) {
	if m.lastRegret == nil {
		f32.RegretMatch(m.currentStrategy, m.regretSum)
		return
	}

	_, discount := m.schedule.Prediction(t)
	f32.ScalUnitaryTo(m.currentStrategy, discount, m.regretSum)
	f32.AxpyUnitary(1.0, m.lastRegret, m.currentStrategy)
	f32.MakePositive(m.currentStrategy)
	f32.Normalize(m.currentStrategy)
}

// CurrentStrategy implements RegretMinimizer. The returned slice is owned
// by the Minimizer and is overwritten by the next call to UpdateRegret.
// It must not be modified.
func (m *Minimizer) CurrentStrategy() []float32 {
	return m.currentStrategy
}

// AverageStrategy implements RegretMinimizer. Before the first update
// it is the uniform distribution.
func (m *Minimizer) AverageStrategy() []float32 {
	avgStrat := make([]float32, len(m.strategySum))

	total := f32.Sum(m.strategySum)
	if total > 0 {
		f32.ScalUnitaryTo(avgStrat, 1.0/total, m.strategySum)
	} else {
		f32.Uniform(avgStrat)
	}

	return avgStrat
}

// CumulativeStrategy returns the (weighted) sum of strategies played.
// It must not be modified.
func (m *Minimizer) CumulativeStrategy() []float32 {
	return m.strategySum
}

// CumulativeRegret returns the accumulated regret of each action.
// It must not be modified.
func (m *Minimizer) CumulativeRegret() []float32 {
	return m.regretSum
}

// SampleAction implements RegretMinimizer.
func (m *Minimizer) SampleAction(rng sampling.Rand) (int, error) {
	return SampleAction(m.currentStrategy, rng)
}

// SampleAction draws an action from the given strategy.
//
// It builds a transient sampling.AliasTable, allocating O(len(strategy)).
// Callers drawing repeatedly from the same distribution should build
// and reuse an AliasTable instead.
func SampleAction(strategy []float32, rng sampling.Rand) (int, error) {
	table, err := sampling.NewAliasTable(strategy)
	if err != nil {
		return -1, err
	}

	return table.Sample(rng), nil
}
