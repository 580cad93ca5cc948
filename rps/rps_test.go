package rps

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/timpalpant/go-regret"
)

func TestActionFromIndex(t *testing.T) {
	for i, want := range []Action{Rock, Paper, Scissors} {
		a, err := ActionFromIndex(i)
		require.NoError(t, err)
		require.Equal(t, want, a)
	}

	for _, i := range []int{-1, 3, 100} {
		_, err := ActionFromIndex(i)
		require.Error(t, err)
		require.Equal(t, ErrActionOutOfRange, errors.Cause(err))
	}
}

func TestAction_String(t *testing.T) {
	require.Equal(t, "Rock", Rock.String())
	require.Equal(t, "Paper", Paper.String())
	require.Equal(t, "Scissors", Scissors.String())
	require.Equal(t, "Action(7)", Action(7).String())
}

func TestAction_Rewards(t *testing.T) {
	require.Equal(t, [NumActions]float32{0, 1, -1}, Rock.Rewards())
	require.Equal(t, [NumActions]float32{-1, 0, 1}, Paper.Rewards())
	require.Equal(t, [NumActions]float32{1, -1, 0}, Scissors.Rewards())

	// Zero-sum and symmetric.
	for _, a := range actions {
		for _, b := range actions {
			require.Equal(t, -a.Payoff(b), b.Payoff(a))
		}
	}

	require.Equal(t, float32(1), Paper.Payoff(Rock))
	require.Equal(t, float32(-1), Scissors.Payoff(Rock))
}

func TestAction_RewardsIsCopy(t *testing.T) {
	r := Rock.Rewards()
	r[0] = 100
	require.Equal(t, float32(0), Rock.Rewards()[0])
}

func TestExploitability(t *testing.T) {
	require.InDelta(t, 0, Exploitability([]float32{1.0 / 3, 1.0 / 3, 1.0 / 3}), 1e-6)
	require.InDelta(t, 2.0/3, Exploitability([]float32{1, 0, 0}), 1e-6)
	require.InDelta(t, 0.1, Exploitability([]float32{0.4333333, 0.3333333, 0.2333333}), 1e-6)
}

func TestNewRand_Deterministic(t *testing.T) {
	a, b := NewRand(123), NewRand(123)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Int63(), b.Int63())
	}
}

func TestNewRunnerWithPlayers_WrongActionCount(t *testing.T) {
	p0, err := regret.NewRegretMatching(NumActions)
	require.NoError(t, err)
	p1, err := regret.NewRegretMatching(4)
	require.NoError(t, err)

	_, err = NewRunnerWithPlayers(p0, p1)
	require.Equal(t, regret.ErrDimensionMismatch, errors.Cause(err))
}

func TestNewRunner_InvalidParams(t *testing.T) {
	_, err := NewRunner(regret.Params{Variant: "nope"})
	require.Equal(t, regret.ErrUnknownVariant, errors.Cause(err))
}

func TestRunner_RunOneAccumulates(t *testing.T) {
	r, err := NewRunner(regret.DefaultParams(regret.VariantCFRPlus))
	require.NoError(t, err)

	rng := NewRand(1)
	for i := 0; i < 5; i++ {
		require.NoError(t, r.RunOne(rng))
	}

	for p := 0; p < 2; p++ {
		var total float32
		for _, x := range r.pending[p] {
			total += x
		}
		// Every payoff row sums to zero.
		require.InDelta(t, 0, total, 1e-6)
	}

	require.NoError(t, r.UpdateRegret())
	require.Equal(t, 1, r.Iter())
	require.Equal(t, 1, r.Player(0).Iter())
	require.Equal(t, []float32{0, 0, 0}, r.pending[0])
	require.Equal(t, []float32{0, 0, 0}, r.pending[1])
}

func TestRunner_Convergence(t *testing.T) {
	for _, v := range regret.Variants() {
		t.Run(v.String(), func(t *testing.T) {
			testConvergence(t, regret.DefaultParams(v), 10000, 0.05)
		})
	}
}

func TestRunner_ConvergenceShort(t *testing.T) {
	testConvergence(t, regret.DefaultParams(regret.VariantDCFRPlus), 5000, 0.1)
}

func testConvergence(t *testing.T, params regret.Params, nIter int, tol float32) {
	r, err := NewRunner(params)
	require.NoError(t, err)

	require.NoError(t, r.Run(nIter, NewRand(42)))
	require.Equal(t, nIter, r.Iter())

	for p := 0; p < 2; p++ {
		strat := r.AverageStrategy(p)
		t.Logf("player %d average strategy: %v", p, strat)
		require.Less(t, Exploitability(strat), tol)
	}
}

func TestRunner_StepAllocs(t *testing.T) {
	r, err := NewRunner(regret.DefaultParams(regret.VariantDCFR))
	require.NoError(t, err)

	rng := NewRand(7)
	allocs := testing.AllocsPerRun(100, func() {
		if err := r.Step(rng); err != nil {
			t.Fatal(err)
		}
	})
	require.Zero(t, allocs)
}

func BenchmarkRunner_Step(b *testing.B) {
	r, err := NewRunner(regret.DefaultParams(regret.VariantPDCFRPlus))
	if err != nil {
		b.Fatal(err)
	}

	rng := NewRand(7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := r.Step(rng); err != nil {
			b.Fatal(err)
		}
	}
}
