// Package cmd implements the CLI application to manage an ETF accumulation
// plan.
package cmd

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/google/subcommands"

	"github.com/mrizzo/pacfolio"
	"github.com/mrizzo/pacfolio/quote"
)

// Config holds the application settings read from the environment. Flags
// override it where a flag exists.
type Config struct {
	PortfolioFile   string        `env:"PFC_PORTFOLIO_FILE" envDefault:"portfolio.json"`
	QuoteURL        string        `env:"PFC_QUOTE_URL" envDefault:"https://query1.finance.yahoo.com"`
	RefreshInterval time.Duration `env:"PFC_REFRESH_INTERVAL" envDefault:"60s"`
}

var appConfig Config

// LoadConfig parses the environment into the application config. A main
// package calls it once before Execute.
func LoadConfig() error {
	if err := env.Parse(&appConfig); err != nil {
		return fmt.Errorf("could not parse environment: %w", err)
	}
	return nil
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&depositCmd{}, "deposits")
	c.Register(&editCmd{}, "deposits")
	c.Register(&deleteCmd{}, "deposits")
	c.Register(&historyCmd{}, "deposits")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&forecastCmd{}, "reports")

	c.Register(&setCmd{}, "settings")
	c.Register(&updateCmd{}, "settings")
	c.Register(&resetCmd{}, "settings")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&assistCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioFile = flag.String("portfolio-file", "", "Path to the portfolio snapshot file (overrides PFC_PORTFOLIO_FILE)")

func portfolioPath() string {
	if *portfolioFile != "" {
		return *portfolioFile
	}
	if appConfig.PortfolioFile != "" {
		return appConfig.PortfolioFile
	}
	return "portfolio.json"
}

// load reads the portfolio snapshot, falling back to defaults when the file
// is absent or unreadable.
func load() *pacfolio.Portfolio {
	return pacfolio.LoadPortfolio(portfolioPath())
}

// quotes returns the configured market-data client.
func quotes() *quote.Client {
	return quote.New(appConfig.QuoteURL)
}
