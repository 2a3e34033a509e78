package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/accrual"
	md "github.com/nao1215/markdown"
)

// TransactionsMarkdown renders the transactions of an account.
func TransactionsMarkdown(account string, txs []accrual.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Account: %s", account))
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Txn Id", "Type", "Amount"},
		Rows:   [][]string{},
	}
	for _, tx := range txs {
		table.Rows = append(table.Rows, []string{tx.Date.String(), tx.ID, tx.Kind.String(), tx.Amount.StringFixed(2)})
	}
	doc.Table(table)
	return doc.String()
}
