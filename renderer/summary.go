package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/mrizzo/pacfolio"
)

// SummaryMarkdown renders the valuation snapshot as a markdown report:
// headline figures, per-fund holdings, and goal progress.
func SummaryMarkdown(s *pacfolio.ValuationSnapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Summary on %s", pacfolio.Today()))
	doc.PlainText(fmt.Sprintf("Net Value: %s", md.Bold(s.NetValue.String())))

	doc.H2("Overview")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Invested", s.Invested.String()},
			{"Cash Reserve", s.Cash.String()},
			{"Market Value", s.MarketValue.String()},
			{"Profit / Loss", fmt.Sprintf("%s (%s)", s.ProfitLoss.SignedString(), s.ProfitLossPercent.SignedString())},
			{"Tax Estimate", s.TaxEstimate.String()},
			{"Net Value", s.NetValue.String()},
			{"Cash Interest (1y)", s.CashInterest.String()},
		},
	})

	doc.H2("Holdings")
	holdings := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Fund", "Ticker", "Units", "Price", "Value", "Day"},
		Rows:   [][]string{},
	}
	for _, h := range s.Holdings {
		holdings.Rows = append(holdings.Rows, []string{
			h.Name,
			h.Ticker,
			h.Owned.String(),
			h.Price.String(),
			h.Value.String(),
			h.Change.SignedString(),
		})
	}
	doc.Table(holdings)

	doc.H2("Goal")
	doc.PlainText(fmt.Sprintf("%s of %s (%.1f%%)", s.MarketValue, s.Goal, s.Progress*100))

	return doc.String()
}
