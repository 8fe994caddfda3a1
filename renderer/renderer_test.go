package renderer

import (
	"strings"
	"testing"

	"github.com/mrizzo/pacfolio"
)

func eur(v float64) pacfolio.Money { return pacfolio.M(v, "EUR") }

func testPortfolio(t *testing.T) *pacfolio.Portfolio {
	t.Helper()
	registry, err := pacfolio.NewRegistry(
		&pacfolio.Instrument{Code: "AAA", Name: "Fund A", Ticker: "AAA.AS", Share: pacfolio.Q(0.6), Price: eur(100)},
		&pacfolio.Instrument{Code: "BBB", Name: "Fund B", Ticker: "BBB.L", Share: pacfolio.Q(0.4), Price: eur(50)},
	)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	p := pacfolio.NewPortfolio()
	p.Registry = registry
	return p
}

func TestSummaryMarkdown(t *testing.T) {
	p := testPortfolio(t)
	if err := p.SubmitDeposit(pacfolio.MustParseDate("2026-01-15"), eur(600), p.ThresholdPolicy()); err != nil {
		t.Fatalf("SubmitDeposit() error = %v", err)
	}

	doc := SummaryMarkdown(p.Valuation())

	for _, want := range []string{
		"# Portfolio Summary",
		"## Overview",
		"## Holdings",
		"## Goal",
		"Fund A",
		"AAA.AS",
		"Fund B",
		"Invested",
		"Cash Reserve",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("summary missing %q:\n%s", want, doc)
		}
	}
}

func TestHistoryMarkdown(t *testing.T) {
	p := testPortfolio(t)

	doc := HistoryMarkdown(p)
	if !strings.Contains(doc, "No deposits recorded yet.") {
		t.Errorf("empty history missing placeholder:\n%s", doc)
	}

	if err := p.SubmitDeposit(pacfolio.MustParseDate("2026-01-15"), eur(600), p.ThresholdPolicy()); err != nil {
		t.Fatalf("SubmitDeposit() error = %v", err)
	}
	doc = HistoryMarkdown(p)
	for _, want := range []string{"# Deposit History", "2026-01-15", "1 deposits."} {
		if !strings.Contains(doc, want) {
			t.Errorf("history missing %q:\n%s", want, doc)
		}
	}
}

func TestForecastMarkdown(t *testing.T) {
	doc := ForecastMarkdown(eur(1000), eur(800), eur(100), pacfolio.Q(0.05), 3, pacfolio.Annual)

	for _, want := range []string{
		"# Forecast over 3 years",
		"Now",
		"Year 1",
		"Year 3",
		"## Outcome",
		"Final Balance",
		"Total Invested",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("forecast missing %q:\n%s", want, doc)
		}
	}
	if strings.Contains(doc, "Year 4") {
		t.Error("forecast went past its horizon")
	}
}
