package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"github.com/mrizzo/pacfolio"
)

// splitFlags collects repeated -set key=value overrides in flag order.
type splitFlags []string

func (s *splitFlags) String() string { return strings.Join(*s, ",") }
func (s *splitFlags) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// depositCmd holds the flags for the 'deposit' subcommand.
type depositCmd struct {
	amount float64
	date   string
	sets   splitFlags
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "record a deposit into the accumulation plan" }
func (*depositCmd) Usage() string {
	return `pfc deposit -amount <amount> [-d <date>] [-set key=value]...

  Records a deposit, split between the cash reserve and the funds by the
  threshold policy. Repeated -set flags override the suggested split; 'key'
  is 'cash' or a fund code. See 'pfc topic splitting'.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Deposit amount. Required.")
	f.StringVar(&c.date, "d", "", "Date of the deposit (defaults to today). See 'pfc topic dates'.")
	f.Var(&c.sets, "set", "Override the split for one key, e.g. -set cash=100. Repeatable.")
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p := load()

	on, amount, policy, err := c.prepare(p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := p.SubmitDeposit(on, amount, policy); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording deposit: %v\n", err)
		return subcommands.ExitFailure
	}

	last, _ := p.Ledger.At(p.Ledger.Len() - 1)
	fmt.Printf("Recorded deposit #%d of %s on %s (%s invested, %s cash).\n",
		p.Ledger.Len()-1, last.Amount, last.Date, last.Invested(), last.Cash)
	return subcommands.ExitSuccess
}

// prepare parses the deposit flags into an allocation request. It is shared
// with the edit command.
func (c *depositCmd) prepare(p *pacfolio.Portfolio) (pacfolio.Date, pacfolio.Money, pacfolio.Policy, error) {
	var on pacfolio.Date
	if c.date != "" {
		var err error
		on, err = pacfolio.ParseDate(c.date)
		if err != nil {
			return on, pacfolio.Money{}, nil, fmt.Errorf("parsing date: %w", err)
		}
	}

	amount, err := pacfolio.ParseAmount(c.amount, p.Currency)
	if err != nil {
		return on, amount, nil, fmt.Errorf("parsing amount: %w", err)
	}

	if len(c.sets) == 0 {
		return on, amount, p.ThresholdPolicy(), nil
	}

	splitter, err := pacfolio.SuggestSplitter(amount, p.ThresholdPolicy(), p.Registry)
	if err != nil {
		return on, amount, nil, err
	}
	for _, set := range c.sets {
		key, raw, found := strings.Cut(set, "=")
		if !found {
			return on, amount, nil, fmt.Errorf("invalid -set %q, want key=value", set)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return on, amount, nil, fmt.Errorf("invalid -set value %q: %w", raw, err)
		}
		if err := splitter.Set(key, pacfolio.M(v, p.Currency)); err != nil {
			return on, amount, nil, err
		}
	}
	// Clamping can eat part of the difference; the deposit follows the
	// actual sum.
	return on, splitter.Total(), splitter.Policy(), nil
}
