package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/coder/quartz"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/go-regret"
	"github.com/timpalpant/go-regret/rps"
)

const nBenchRewards = 64

var errInvalidUpdates = errors.New("updates must be positive")

type BenchCmd struct {
	Variant string `help:"regret minimizer variant (${variants})" default:"dcfr"`
	Actions int    `help:"number of actions" default:"100"`
	Updates int    `help:"number of regret updates to time" default:"1000000"`
	Seed    int64  `help:"random seed for the reward vectors" default:"1"`
}

func (cmd *BenchCmd) Run(clock quartz.Clock, out io.Writer) error {
	v, err := regret.ParseVariant(cmd.Variant)
	if err != nil {
		return errors.Wrap(err, "--variant")
	}

	if cmd.Updates <= 0 {
		return errors.Wrapf(errInvalidUpdates, "--updates=%d", cmd.Updates)
	}

	m, err := regret.NewFromParams(cmd.Actions, regret.DefaultParams(v))
	if err != nil {
		return errors.Wrapf(err, "--actions=%d", cmd.Actions)
	}

	rewards := randomRewards(rps.NewRand(cmd.Seed), nBenchRewards, cmd.Actions)
	glog.Infof("Timing %d %v updates over %d actions", cmd.Updates, v, cmd.Actions)
	result, err := benchmark(clock, m, rewards, cmd.Updates)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%v, %d actions", v, cmd.Actions)))
	fmt.Fprintf(out, "%d updates in %v: %v/update, %.0f updates/s\n",
		result.updates, result.elapsed, result.perUpdate(), result.rate())
	return nil
}

type benchResult struct {
	updates int
	elapsed time.Duration
}

func (r benchResult) perUpdate() time.Duration {
	return r.elapsed / time.Duration(r.updates)
}

func (r benchResult) rate() float64 {
	if r.elapsed <= 0 {
		return 0
	}

	return float64(r.updates) / r.elapsed.Seconds()
}

// benchmark applies nUpdates updates to m, cycling through rewards.
func benchmark(clock quartz.Clock, m regret.RegretMinimizer, rewards [][]float32, nUpdates int) (benchResult, error) {
	start := clock.Now("bench", "start")
	for i := 0; i < nUpdates; i++ {
		if err := m.UpdateRegret(rewards[i%len(rewards)]); err != nil {
			return benchResult{}, err
		}
	}

	end := clock.Now("bench", "end")
	return benchResult{updates: nUpdates, elapsed: end.Sub(start)}, nil
}

func randomRewards(rng *rand.Rand, n, nActions int) [][]float32 {
	result := make([][]float32, n)
	for i := range result {
		result[i] = make([]float32, nActions)
		for j := range result[i] {
			result[i][j] = 2*rng.Float32() - 1
		}
	}

	return result
}
