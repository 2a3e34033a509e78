package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/accrual"
	"github.com/etnz/accrual/date"
	md "github.com/nao1215/markdown"
)

// StatementOptions holds configuration for rendering a statement.
type StatementOptions struct {
	Periods bool // Also render the interest breakdown by period.
}

// StatementMarkdown renders a monthly account statement.
func StatementMarkdown(s *accrual.Statement, opts StatementOptions) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Account: %s", s.Account))
	doc.PlainText(fmt.Sprintf("Statement for %s, opening balance %s.", s.Month, s.Opening))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Txn Id", "Type", "Amount", "Balance"},
		Rows:   [][]string{},
	}
	for _, l := range s.Lines {
		table.Rows = append(table.Rows, []string{
			l.Date.String(),
			l.ID,
			l.Kind.String(),
			l.Amount.StringFixed(2),
			l.Balance.Fixed(),
		})
	}
	doc.Table(table)

	if opts.Periods {
		doc.H2("Interest")
		doc.Table(periodsTable(s.Periods))
		state := "not posted"
		if s.Posted {
			state = "posted"
		}
		doc.PlainText(fmt.Sprintf("Interest for %s: %s (%s).", s.Month, md.Bold(s.Interest.String()), state))
	}

	return doc.String()
}

// InterestMarkdown renders the interest of an account over any range, with its periods.
func InterestMarkdown(account string, r date.Range, periods []accrual.Period, interest accrual.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Interest for %s from %s to %s", account, r.From, r.To))
	if len(periods) == 0 {
		doc.PlainText("No interest rule applies over this range.")
	} else {
		doc.Table(periodsTable(periods))
	}
	doc.PlainText(fmt.Sprintf("Total interest: %s", md.Bold(interest.String())))
	return doc.String()
}

// periodsTable shows how the interest is made: balance × rate × days / 365 per period.
func periodsTable(periods []accrual.Period) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"From", "To", "Days", "Balance", "Rule", "Rate (%)", "Interest"},
		Rows:   [][]string{},
	}
	for _, p := range periods {
		table.Rows = append(table.Rows, []string{
			p.Start.String(),
			p.End.String(),
			fmt.Sprint(p.Days()),
			p.Balance.StringFixed(2),
			p.Rule.ID,
			rate(p.Rule.Rate),
			p.Interest().StringFixed(4),
		})
	}
	return table
}
