package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mrizzo/pacfolio"
)

// setCmd holds the flags for the 'set' subcommand.
type setCmd struct {
	budget float64
	goal   float64
	cash   float64
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "change the plan settings" }
func (*setCmd) Usage() string {
	return `pfc set [-budget <amount>] [-goal <amount>] [-cash <amount>]

  Changes the monthly budget, the target goal, or records a starting cash
  reserve (an all-cash deposit dated today). Flags can be combined.
`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.budget, "budget", 0, "New monthly budget.")
	f.Float64Var(&c.goal, "goal", 0, "New target goal.")
	f.Float64Var(&c.cash, "cash", 0, "Starting cash reserve, recorded as an all-cash deposit.")
}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.budget == 0 && c.goal == 0 && c.cash == 0 {
		fmt.Fprintln(os.Stderr, "Error: nothing to set, see 'pfc help set'")
		return subcommands.ExitUsageError
	}

	p := load()

	if c.budget != 0 {
		budget, err := pacfolio.ParseAmount(c.budget, p.Currency)
		if err == nil {
			err = p.SetMonthlyBudget(budget)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error setting budget: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Monthly budget set to %s.\n", p.MonthlyBudget)
	}

	if c.goal != 0 {
		goal, err := pacfolio.ParseAmount(c.goal, p.Currency)
		if err == nil {
			err = p.SetTargetGoal(goal)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error setting goal: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Target goal set to %s.\n", p.TargetGoal)
	}

	if c.cash != 0 {
		cash, err := pacfolio.ParseAmount(c.cash, p.Currency)
		if err == nil {
			err = p.SetInitialCash(cash)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error setting cash: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Recorded %s as starting cash.\n", cash)
	}

	return subcommands.ExitSuccess
}
