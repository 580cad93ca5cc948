// Package rps implements rock-paper-scissors self-play between two regret
// minimizers. Its unique equilibrium is the uniform strategy, which makes it
// a convenient check that a minimizer's average strategy converges.
package rps

import (
	"fmt"
	"math/rand"

	"github.com/pkg/errors"
	"github.com/seehuhn/mt19937"
)

// ErrActionOutOfRange is returned when converting an index that does
// not correspond to an Action.
var ErrActionOutOfRange = errors.New("action out of range")

type Action int

const (
	Rock Action = iota
	Paper
	Scissors
)

// NumActions is the number of actions available to each player.
const NumActions = 3

var actions = [NumActions]Action{Rock, Paper, Scissors}

var actionStr = [NumActions]string{
	"Rock",
	"Paper",
	"Scissors",
}

// payoffs[a][b] is the reward for playing b against an opponent playing a.
// It is fully initialized before main and never modified.
var payoffs = [NumActions][NumActions]float32{
	Rock:     {0, 1, -1},
	Paper:    {-1, 0, 1},
	Scissors: {1, -1, 0},
}

// ActionFromIndex returns the Action with the given index.
func ActionFromIndex(i int) (Action, error) {
	if i < 0 || i >= len(actions) {
		return 0, errors.Wrapf(ErrActionOutOfRange, "index %d", i)
	}

	return actions[i], nil
}

// String implements fmt.Stringer.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionStr) {
		return fmt.Sprintf("Action(%d)", int(a))
	}

	return actionStr[a]
}

// Rewards returns the reward of each action against an opponent playing a.
func (a Action) Rewards() [NumActions]float32 {
	return payoffs[a]
}

// Payoff returns the reward for playing a against an opponent playing opponent.
func (a Action) Payoff(opponent Action) float32 {
	return payoffs[opponent][a]
}

// NewRand returns a Mersenne Twister backed *rand.Rand with the given seed,
// so that self-play runs are reproducible.
func NewRand(seed int64) *rand.Rand {
	rng := rand.New(mt19937.New())
	rng.Seed(seed)
	return rng
}

// Exploitability measures the distance of a strategy from the uniform
// equilibrium as the largest deviation of any action's probability from 1/3.
func Exploitability(strategy []float32) float32 {
	const nash = 1.0 / NumActions
	var result float32
	for _, p := range strategy {
		d := p - nash
		if d < 0 {
			d = -d
		}
		if d > result {
			result = d
		}
	}

	return result
}
