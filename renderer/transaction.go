package renderer

import (
	"fmt"

	"github.com/etnz/accrual"
)

// Transaction renders a transaction to a string.
func Transaction(tx accrual.Transaction, currency string) string {
	amount := accrual.M(tx.Amount, currency)
	switch tx.Kind {
	case accrual.Credit:
		return fmt.Sprintf("Deposited %s on %s", amount, tx.Date)
	case accrual.Debit:
		return fmt.Sprintf("Withdrew %s on %s", amount, tx.Date)
	case accrual.InterestCredit:
		return fmt.Sprintf("Earned %s of interest on %s", amount, tx.Date)
	default:
		return tx.String()
	}
}
