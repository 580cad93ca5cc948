package main

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/timpalpant/go-regret"
	"github.com/timpalpant/go-regret/internal/config"
	"github.com/timpalpant/go-regret/rps"
)

var (
	errInvalidTrials = errors.New("trials must be positive")

	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	bestStyle   = cellStyle.Foreground(lipgloss.Color("10"))
)

type CompareCmd struct {
	Variants   []string `help:"variants to compare (${variants}); all by default"`
	Iterations []int    `help:"iterations at which to measure exploitability" default:"1000,2500,5000,10000"`
	Trials     int      `help:"independent runs per variant" default:"5"`
	Seed       int64    `help:"seed of the first trial; trial i uses seed+i" default:"1"`
	Parallel   int      `help:"maximum concurrent runs (0 is unlimited)" default:"0"`
}

func (cmd *CompareCmd) Run(out io.Writer) error {
	variants := regret.Variants()
	if len(cmd.Variants) > 0 {
		variants = variants[:0:0]
		for _, name := range cmd.Variants {
			v, err := regret.ParseVariant(name)
			if err != nil {
				return errors.Wrap(err, "--variants")
			}

			variants = append(variants, v)
		}
	}

	c, err := compare(context.Background(), variants, cmd.Iterations, cmd.Trials, cmd.Seed, cmd.Parallel)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf(
		"Mean exploitability over %d trials of rock-paper-scissors self-play", cmd.Trials)))
	fmt.Fprintln(out, c.render())
	return nil
}

// comparison holds the mean exploitability of each variant at each checkpoint.
type comparison struct {
	variants       []regret.Variant
	checkpoints    []int
	exploitability [][]float64
}

// compare runs every (variant, trial) pair concurrently. Each run owns its
// minimizers and random source, so no state is shared between goroutines.
func compare(ctx context.Context, variants []regret.Variant, checkpoints []int, trials int, seed int64, parallel int) (*comparison, error) {
	if trials <= 0 {
		return nil, errors.Wrapf(errInvalidTrials, "--trials=%d", trials)
	}

	if len(checkpoints) == 0 {
		return nil, errors.Wrap(config.ErrInvalidIterations, "--iterations is empty")
	}

	checkpoints = append([]int(nil), checkpoints...)
	sort.Ints(checkpoints)
	if checkpoints[0] <= 0 {
		return nil, errors.Wrapf(config.ErrInvalidIterations, "--iterations=%d", checkpoints[0])
	}

	results := make([][][]float32, len(variants))
	g, ctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}

	for i, v := range variants {
		results[i] = make([][]float32, trials)
		for trial := 0; trial < trials; trial++ {
			g.Go(func() error {
				exploitability, err := selfPlay(ctx, regret.DefaultParams(v), checkpoints, seed+int64(trial))
				if err != nil {
					return errors.Wrapf(err, "%v trial %d", v, trial)
				}

				results[i][trial] = exploitability
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	c := &comparison{
		variants:       variants,
		checkpoints:    checkpoints,
		exploitability: make([][]float64, len(variants)),
	}

	for i := range variants {
		c.exploitability[i] = make([]float64, len(checkpoints))
		for _, trial := range results[i] {
			for j, x := range trial {
				c.exploitability[i][j] += float64(x) / float64(trials)
			}
		}
	}

	return c, nil
}

// selfPlay runs until the last checkpoint and returns the exploitability of
// the least converged player at each checkpoint.
func selfPlay(ctx context.Context, params regret.Params, checkpoints []int, seed int64) ([]float32, error) {
	runner, err := rps.NewRunner(params)
	if err != nil {
		return nil, err
	}

	rng := rps.NewRand(seed)
	result := make([]float32, 0, len(checkpoints))
	for _, checkpoint := range checkpoints {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for runner.Iter() < checkpoint {
			if err := runner.Step(rng); err != nil {
				return nil, err
			}
		}

		e := max(rps.Exploitability(runner.AverageStrategy(0)),
			rps.Exploitability(runner.AverageStrategy(1)))
		result = append(result, e)
	}

	glog.V(2).Infof("%v seed=%d: %v", params.Variant, seed, result)
	return result, nil
}

func (c *comparison) render() string {
	headers := []string{"Variant"}
	for _, checkpoint := range c.checkpoints {
		headers = append(headers, fmt.Sprintf("T=%d", checkpoint))
	}

	best := make([]int, len(c.checkpoints))
	for j := range c.checkpoints {
		for i := range c.variants {
			if c.exploitability[i][j] < c.exploitability[best[j]][j] {
				best[j] = i
			}
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return cellStyle.Bold(true)
			case col > 0 && best[col-1] == row:
				return bestStyle
			default:
				return cellStyle
			}
		})

	for i, v := range c.variants {
		row := []string{v.String()}
		for _, x := range c.exploitability[i] {
			row = append(row, fmt.Sprintf("%.4f", x))
		}

		t.Row(row...)
	}

	return t.String()
}
