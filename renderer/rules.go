package renderer

import (
	"bytes"

	"github.com/etnz/accrual"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// RulesMarkdown renders the interest rules, sorted by date.
func RulesMarkdown(rules []accrual.Rule) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Interest rules")
	if len(rules) == 0 {
		doc.PlainText("No interest rule.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "RuleId", "Rate (%)"},
		Rows:   [][]string{},
	}
	for _, r := range rules {
		table.Rows = append(table.Rows, []string{r.Date.String(), r.ID, rate(r.Rate)})
	}
	doc.Table(table)
	return doc.String()
}

// rate formats a percent rate with at least 2 decimals, and every decimal it has.
func rate(r decimal.Decimal) string {
	if r.Equal(r.Round(2)) {
		return r.StringFixed(2)
	}
	return r.String()
}
