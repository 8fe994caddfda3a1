package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type updateCmd struct{}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "refresh fund prices from the market" }
func (*updateCmd) Usage() string {
	return `pfc update

  Fetches the latest price and day change for every fund. Best effort: a
  failed fetch leaves that fund's price untouched.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p := load()

	err := p.RefreshPrices(ctx, quotes())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	for ins := range p.Registry.All() {
		fmt.Printf("%-14s %-10s %10s %8s\n", ins.Code, ins.Ticker, ins.Price, ins.Change.SignedString())
	}
	if err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
