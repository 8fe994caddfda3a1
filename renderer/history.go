package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"

	"github.com/mrizzo/pacfolio"
)

// HistoryMarkdown renders the deposit ledger in submission order, one row per
// deposit with its cash/invested split. Indexes match what edit and delete
// expect.
func HistoryMarkdown(p *pacfolio.Portfolio) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Deposit History")

	if p.Ledger.Len() == 0 {
		doc.PlainText("No deposits recorded yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"#", "Date", "Amount", "Cash", "Invested"},
		Rows:   [][]string{},
	}
	for i, event := range p.Ledger.Deposits() {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(i),
			event.Date.String(),
			event.Amount.String(),
			event.Cash.String(),
			event.Invested().String(),
		})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("%d deposits.", p.Ledger.Len()))
	return doc.String()
}
