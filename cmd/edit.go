package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// editCmd holds the flags for the 'edit' subcommand.
type editCmd struct {
	index   int
	deposit depositCmd
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "replace a recorded deposit" }
func (*editCmd) Usage() string {
	return `pfc edit -i <index> -amount <amount> [-d <date>] [-set key=value]...

  Replaces the deposit at the given index (see 'pfc history') with a freshly
  allocated one. The whole ledger is replayed afterwards, so holdings and
  figures follow. Fails without touching anything when the new deposit is
  invalid.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", -1, "Index of the deposit to replace. Required.")
	c.deposit.SetFlags(f)
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p := load()

	on, amount, policy, err := c.deposit.prepare(p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	// Keep the original date unless -d was given.
	if on.IsZero() {
		if old, err := p.Ledger.At(c.index); err == nil {
			on = old.Date
		}
	}

	if err := p.EditDeposit(c.index, on, amount, policy); err != nil {
		fmt.Fprintf(os.Stderr, "Error editing deposit: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Replaced deposit #%d with %s on %s.\n", c.index, amount, on)
	return subcommands.ExitSuccess
}
