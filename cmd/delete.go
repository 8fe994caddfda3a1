package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// deleteCmd holds the flags for the 'delete' subcommand.
type deleteCmd struct {
	index int
	force bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove a recorded deposit" }
func (*deleteCmd) Usage() string {
	return `pfc delete -i <index> [-force]

  Removes the deposit at the given index (see 'pfc history') and replays the
  ledger. Asks for confirmation unless -force is given.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", -1, "Index of the deposit to remove. Required.")
	f.BoolVar(&c.force, "force", false, "Skip the confirmation prompt.")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p := load()

	event, err := p.Ledger.At(c.index)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if !c.force {
		fmt.Printf("Delete deposit #%d of %s on %s? [y/N] ", c.index, event.Amount, event.Date)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return subcommands.ExitSuccess
		}
	}

	if err := p.DeleteDeposit(c.index); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting deposit: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted deposit #%d. %d deposits remain.\n", c.index, p.Ledger.Len())
	return subcommands.ExitSuccess
}
