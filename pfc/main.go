// Command pfc manages a personal ETF accumulation plan from the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/mrizzo/pacfolio/cmd"
)

// completion describes the command tree for shell completion.
func completion() *complete.Command {
	depositFlags := map[string]complete.Predictor{
		"amount": predict.Something,
		"d":      predict.Something,
		"set":    predict.Something,
	}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"portfolio-file": predict.Files("*.json"),
		},
		Sub: map[string]*complete.Command{
			"deposit": {Flags: depositFlags},
			"edit": {Flags: map[string]complete.Predictor{
				"i":      predict.Something,
				"amount": predict.Something,
				"d":      predict.Something,
				"set":    predict.Something,
			}},
			"delete": {Flags: map[string]complete.Predictor{
				"i":     predict.Something,
				"force": predict.Nothing,
			}},
			"history": {},
			"summary": {Flags: map[string]complete.Predictor{
				"update": predict.Nothing,
				"w":      predict.Nothing,
			}},
			"forecast": {Flags: map[string]complete.Predictor{
				"monthly":  predict.Something,
				"years":    predict.Something,
				"roi":      predict.Something,
				"compound": predict.Set{"annual", "monthly"},
			}},
			"set": {Flags: map[string]complete.Predictor{
				"budget": predict.Something,
				"goal":   predict.Something,
				"cash":   predict.Something,
			}},
			"update": {},
			"reset": {Flags: map[string]complete.Predictor{
				"force": predict.Nothing,
			}},
			"topic":  {Args: predict.Set{"allocation", "dates", "forecast", "splitting", "valuation", "readme"}},
			"assist": {},
			"help":   {},
		},
	}
}

func main() {
	// A .env next to the binary is a convenience, not a requirement.
	_ = godotenv.Load()

	completion().Complete("pfc")

	if err := cmd.LoadConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
