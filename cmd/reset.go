package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// resetCmd holds the flags for the 'reset' subcommand.
type resetCmd struct {
	force bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "erase the plan and start over" }
func (*resetCmd) Usage() string {
	return `pfc reset [-force]

  Deletes the stored snapshot and restores the default settings and funds.
  Irreversible. Asks for confirmation unless -force is given.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "Skip the confirmation prompt.")
}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p := load()

	if !c.force {
		fmt.Printf("Erase all %d deposits and restore defaults? [y/N] ", p.Ledger.Len())
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return subcommands.ExitSuccess
		}
	}

	if err := p.Reset(); err != nil {
		fmt.Fprintf(os.Stderr, "Error resetting: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println("Plan reset to defaults.")
	return subcommands.ExitSuccess
}
