package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/mrizzo/pacfolio/renderer"
)

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list all recorded deposits" }
func (*historyCmd) Usage() string {
	return `pfc history

  Lists every deposit in submission order, with the index to use with
  'pfc edit' and 'pfc delete'.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p := load()
	printMarkdown(renderer.HistoryMarkdown(p))
	return subcommands.ExitSuccess
}
