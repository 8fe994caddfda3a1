package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/mrizzo/pacfolio"
)

// ForecastMarkdown renders a growth projection: the year-by-year table
// followed by the final figures.
func ForecastMarkdown(current, investedSoFar, monthly pacfolio.Money, annualRate pacfolio.Quantity, years int, compounding pacfolio.Compounding) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Forecast over %d years", years))
	doc.PlainText(fmt.Sprintf("Contributing %s per month at %s%% per year, %s compounding.",
		monthly, annualRate.Mul(pacfolio.Q(100)), compounding))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Horizon", "Balance"},
		Rows:      [][]string{},
	}
	for label, balance := range pacfolio.Project(current, monthly, annualRate, years, compounding) {
		table.Rows = append(table.Rows, []string{label, balance.String()})
	}
	doc.Table(table)

	s := pacfolio.Summarize(current, investedSoFar, monthly, annualRate, years, compounding)
	doc.H2("Outcome")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Final Balance", md.Bold(s.FinalBalance.String())},
			{"Total Invested", s.TotalInvested.String()},
			{"Interest Earned", s.Interest.SignedString()},
		},
	})

	return doc.String()
}
