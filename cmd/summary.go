package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/mrizzo/pacfolio/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	update bool
	watch  bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio valuation" }
func (*summaryCmd) Usage() string {
	return `pfc summary [-update] [-w]

  Displays the current valuation: invested total, cash reserve, market value,
  profit and loss, tax estimate, per-fund holdings and goal progress.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.update, "update", false, "Refresh prices from the market before reporting.")
	f.BoolVar(&c.watch, "w", false, "Keep refreshing and reporting at the configured interval.")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p := load()

	for {
		if c.update || c.watch {
			if err := p.RefreshPrices(ctx, quotes()); err != nil {
				// Best effort: stale prices are still a report.
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			}
		}

		if c.watch {
			// Clear the terminal between refreshes.
			fmt.Print("\033[H\033[2J")
		}
		printMarkdown(renderer.SummaryMarkdown(p.Valuation()))

		if !c.watch {
			return subcommands.ExitSuccess
		}
		select {
		case <-ctx.Done():
			return subcommands.ExitSuccess
		case <-time.After(appConfig.RefreshInterval):
		}
	}
}
