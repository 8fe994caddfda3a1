package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mrizzo/pacfolio"
	"github.com/mrizzo/pacfolio/renderer"
)

// forecastCmd holds the flags for the 'forecast' subcommand.
type forecastCmd struct {
	monthly  float64
	years    int
	roi      float64
	compound string
}

func (*forecastCmd) Name() string     { return "forecast" }
func (*forecastCmd) Synopsis() string { return "project the portfolio value into the future" }
func (*forecastCmd) Usage() string {
	return `pfc forecast [-monthly <amount>] [-years <n>] [-roi <percent>] [-compound annual|monthly]

  Projects the portfolio value under a constant monthly contribution and
  annual return rate, starting from the current market value. See
  'pfc topic forecast'.
`
}

func (c *forecastCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.monthly, "monthly", 0, "Monthly contribution (defaults to the monthly budget).")
	f.IntVar(&c.years, "years", 10, "Projection horizon in years.")
	f.Float64Var(&c.roi, "roi", 5, "Expected annual return, in percent.")
	f.StringVar(&c.compound, "compound", "annual", "Compounding mode: annual or monthly.")
}

func (c *forecastCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	compounding, err := pacfolio.ParseCompounding(c.compound)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.years < 0 {
		fmt.Fprintf(os.Stderr, "Error: -years must not be negative\n")
		return subcommands.ExitUsageError
	}

	p := load()
	monthly := p.MonthlyBudget
	if c.monthly != 0 {
		monthly, err = pacfolio.ParseAmount(c.monthly, p.Currency)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -monthly: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	rate := pacfolio.Q(c.roi / 100)

	v := p.Valuation()
	printMarkdown(renderer.ForecastMarkdown(v.MarketValue, v.Invested, monthly, rate, c.years, compounding))
	return subcommands.ExitSuccess
}
