// Command regret runs regret minimizers on rock-paper-scissors self-play,
// compares the convergence of the available variants, and benchmarks
// regret update throughput.
package main

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/coder/quartz"
	"github.com/golang/glog"

	"github.com/timpalpant/go-regret"
)

var cli struct {
	Verbosity int `short:"v" help:"glog verbosity level" default:"0"`

	Run     RunCmd     `cmd:"" help:"run rock-paper-scissors self-play with one variant"`
	Compare CompareCmd `cmd:"" help:"compare the convergence of several variants"`
	Bench   BenchCmd   `cmd:"" help:"measure regret update throughput"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("regret"),
		kong.Description("CFR-family regret minimizers"),
		kong.UsageOnError(),
		kong.Vars{
			"variants": variantNames(),
		},
	)

	setupLogging(cli.Verbosity)
	defer glog.Flush()

	var err error
	switch ctx.Command() {
	case "run":
		err = cli.Run.Run(os.Stdout)
	case "compare":
		err = cli.Compare.Run(os.Stdout)
	case "bench":
		err = cli.Bench.Run(quartz.NewReal(), os.Stdout)
	default:
		glog.Exitf("unknown command: %s", ctx.Command())
	}

	if err != nil {
		glog.Exitf("%s failed: %v", ctx.Command(), err)
	}
}

// glog registers its flags on the standard flag set, which kong does not parse.
func setupLogging(verbosity int) {
	_ = flag.Set("logtostderr", "true")
	_ = flag.Set("v", strconv.Itoa(verbosity))
	_ = flag.CommandLine.Parse(nil)
}

func variantNames() string {
	var names []string
	for _, v := range regret.Variants() {
		names = append(names, string(v))
	}

	return strings.Join(names, ", ")
}
