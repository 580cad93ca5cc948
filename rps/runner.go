package rps

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/go-regret"
	"github.com/timpalpant/go-regret/sampling"
)

// Runner plays repeated rock-paper-scissors between two regret minimizers.
//
// On each round both players sample an action from their current strategy,
// and each accumulates the reward every one of its actions would have earned
// against the opponent's sampled action. UpdateRegret then feeds the
// accumulated rewards to the minimizers.
type Runner struct {
	players [2]regret.RegretMinimizer
	pending [2][]float32
	tables  [2]*sampling.AliasTable
	iter    int
}

// NewRunner returns a Runner with two fresh minimizers configured by params.
func NewRunner(params regret.Params) (*Runner, error) {
	p0, err := regret.NewFromParams(NumActions, params)
	if err != nil {
		return nil, err
	}

	p1, err := regret.NewFromParams(NumActions, params)
	if err != nil {
		return nil, err
	}

	return NewRunnerWithPlayers(p0, p1)
}

// NewRunnerWithPlayers returns a Runner for the given minimizers,
// which must each have NumActions actions.
func NewRunnerWithPlayers(p0, p1 regret.RegretMinimizer) (*Runner, error) {
	r := &Runner{players: [2]regret.RegretMinimizer{p0, p1}}
	for i, p := range r.players {
		if p.NumActions() != NumActions {
			return nil, errors.Wrapf(regret.ErrDimensionMismatch,
				"player %d has %d actions, rock-paper-scissors has %d", i, p.NumActions(), NumActions)
		}

		table, err := sampling.NewAliasTable(p.CurrentStrategy())
		if err != nil {
			return nil, errors.Wrapf(err, "player %d", i)
		}

		r.pending[i] = make([]float32, NumActions)
		r.tables[i] = table
	}

	return r, nil
}

// RunOne plays one round, accumulating rewards for the next UpdateRegret.
func (r *Runner) RunOne(rng sampling.Rand) error {
	var played [2]Action
	for i, p := range r.players {
		if err := r.tables[i].Reset(p.CurrentStrategy()); err != nil {
			return errors.Wrapf(err, "player %d", i)
		}

		a, err := ActionFromIndex(r.tables[i].Sample(rng))
		if err != nil {
			return err
		}

		played[i] = a
	}

	for i := range r.players {
		rewards := played[1-i].Rewards()
		for j, x := range rewards {
			r.pending[i][j] += x
		}
	}

	return nil
}

// UpdateRegret feeds the rewards accumulated since the last update
// to both players.
func (r *Runner) UpdateRegret() error {
	for i, p := range r.players {
		if err := p.UpdateRegret(r.pending[i]); err != nil {
			return errors.Wrapf(err, "player %d", i)
		}

		for j := range r.pending[i] {
			r.pending[i][j] = 0
		}
	}

	r.iter++
	return nil
}

// Step plays one round and updates both players.
func (r *Runner) Step(rng sampling.Rand) error {
	if err := r.RunOne(rng); err != nil {
		return err
	}

	return r.UpdateRegret()
}

// Run performs nIter steps.
func (r *Runner) Run(nIter int, rng sampling.Rand) error {
	logEvery := nIter / 10
	for i := 1; i <= nIter; i++ {
		if err := r.Step(rng); err != nil {
			return err
		}

		if logEvery > 0 && i%logEvery == 0 {
			glog.V(1).Infof("[iter=%d] player 0: %v, player 1: %v",
				r.iter, r.AverageStrategy(0), r.AverageStrategy(1))
		}
	}

	return nil
}

// Iter returns the number of completed updates.
func (r *Runner) Iter() int {
	return r.iter
}

// Player returns the minimizer of the given player (0 or 1).
func (r *Runner) Player(player int) regret.RegretMinimizer {
	return r.players[player]
}

// AverageStrategy returns the average strategy of the given player.
func (r *Runner) AverageStrategy(player int) []float32 {
	return r.players[player].AverageStrategy()
}

// CurrentStrategy returns the current strategy of the given player.
func (r *Runner) CurrentStrategy(player int) []float32 {
	return r.players[player].CurrentStrategy()
}
