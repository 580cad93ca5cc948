package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/go-regret"
	"github.com/timpalpant/go-regret/internal/config"
	"github.com/timpalpant/go-regret/rps"
)

const (
	defaultVariant    = regret.VariantDCFR
	defaultIterations = 10000
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	playerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	probStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	exploitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// Flags take precedence over the configuration file, which takes
// precedence over the built-in defaults.
type RunCmd struct {
	Variant    string   `help:"regret minimizer variant (${variants})"`
	Iterations *int     `help:"number of self-play iterations (default 10000)"`
	Seed       *int64   `help:"random seed; 0 uses time seed"`
	Trace      bool     `help:"log both players' current strategy on every iteration"`
	Config     string   `help:"HCL run configuration file" type:"path"`
	Alpha      *float64 `help:"override the positive regret discount exponent"`
	Beta       *float64 `help:"override the negative regret discount exponent"`
	Gamma      *float64 `help:"override the strategy discount exponent"`
}

type runSettings struct {
	params     regret.Params
	iterations int
	seed       int64
	trace      bool
}

func (cmd *RunCmd) settings() (runSettings, error) {
	c := &config.Config{}
	if cmd.Config != "" {
		var err error
		if c, err = config.Load(cmd.Config); err != nil {
			return runSettings{}, errors.Wrap(err, "--config")
		}
	}

	if cmd.Variant != "" {
		c.Variant = cmd.Variant
	} else if c.Variant == "" {
		c.Variant = string(defaultVariant)
	}

	if cmd.Iterations != nil {
		c.Iterations = *cmd.Iterations
		if c.Iterations <= 0 {
			return runSettings{}, errors.Wrapf(config.ErrInvalidIterations, "--iterations=%d", c.Iterations)
		}
	} else if c.Iterations == 0 {
		c.Iterations = defaultIterations
	}

	if cmd.Seed != nil {
		c.Seed = *cmd.Seed
	}

	if cmd.Alpha != nil || cmd.Beta != nil || cmd.Gamma != nil {
		if c.Discount == nil {
			c.Discount = &config.Discount{}
		}
		if cmd.Alpha != nil {
			c.Discount.Alpha = cmd.Alpha
		}
		if cmd.Beta != nil {
			c.Discount.Beta = cmd.Beta
		}
		if cmd.Gamma != nil {
			c.Discount.Gamma = cmd.Gamma
		}
	}

	params, err := c.Params()
	if err != nil {
		if errors.Cause(err) == regret.ErrUnknownVariant {
			return runSettings{}, errors.Wrap(err, "--variant")
		}

		return runSettings{}, errors.Wrap(err, "discount")
	}

	return runSettings{
		params:     params,
		iterations: c.Iterations,
		seed:       c.Seed,
		trace:      cmd.Trace || c.Trace,
	}, nil
}

func (cmd *RunCmd) Run(out io.Writer) error {
	s, err := cmd.settings()
	if err != nil {
		return err
	}

	if s.seed == 0 {
		s.seed = time.Now().UnixNano()
	}

	runner, err := rps.NewRunner(s.params)
	if err != nil {
		return err
	}

	glog.Infof("Running %v self-play for %d iterations (seed=%d, discount=%+v)",
		s.params.Variant, s.iterations, s.seed, s.params.Discount)
	rng := rps.NewRand(s.seed)
	start := time.Now()
	if s.trace {
		for i := 0; i < s.iterations; i++ {
			if err := runner.Step(rng); err != nil {
				return err
			}

			glog.Infof("[iter=%d] player 0: %v, player 1: %v",
				runner.Iter(), runner.CurrentStrategy(0), runner.CurrentStrategy(1))
		}
	} else if err := runner.Run(s.iterations, rng); err != nil {
		return err
	}

	glog.V(1).Infof("Finished %d iterations in %v", s.iterations, time.Since(start))
	printRunResults(out, s.params.Variant, runner)
	return nil
}

func printRunResults(out io.Writer, v regret.Variant, runner *rps.Runner) {
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%v after %d iterations", v, runner.Iter())))
	for p := 0; p < 2; p++ {
		strat := runner.AverageStrategy(p)
		fmt.Fprint(out, playerStyle.Render(fmt.Sprintf("Player %d:", p)))
		for i, prob := range strat {
			a, err := rps.ActionFromIndex(i)
			if err != nil {
				panic(fmt.Errorf("strategy has %d actions: %v", len(strat), err))
			}

			fmt.Fprintf(out, "  %s %s", a, probStyle.Render(fmt.Sprintf("%.4f", prob)))
		}

		fmt.Fprintf(out, "  exploitability %s\n",
			exploitStyle.Render(fmt.Sprintf("%.4f", rps.Exploitability(strat))))
	}
}
