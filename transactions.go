package accrual

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/etnz/accrual/date"
	"github.com/shopspring/decimal"
)

// Kind is the closed set of transaction kinds.
type Kind int

const (
	// Credit is a deposit, it increases the balance.
	Credit Kind = iota
	// Debit is a withdrawal, it decreases the balance.
	Debit
	// InterestCredit is interest paid into the account, it increases the balance.
	InterestCredit
)

// String returns the one-letter code of the kind, as used in commands and statements.
func (k Kind) String() string {
	switch k {
	case Credit:
		return "D"
	case Debit:
		return "W"
	case InterestCredit:
		return "I"
	default:
		return "?"
	}
}

// Sign returns +1 for kinds that increase the balance and -1 for those that decrease it.
func (k Kind) Sign() int {
	switch k {
	case Credit, InterestCredit:
		return 1
	case Debit:
		return -1
	default:
		panic(fmt.Sprintf("unknown transaction kind %d", int(k)))
	}
}

// ParseKind parses a one-letter kind code, case insensitive.
func ParseKind(s string) (Kind, error) {
	switch strings.ToUpper(s) {
	case "D":
		return Credit, nil
	case "W":
		return Debit, nil
	case "I":
		return InterestCredit, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}

// MarshalJSON writes the kind as its code.
func (k Kind) MarshalJSON() ([]byte, error) { return json.Marshal(k.String()) }

// UnmarshalJSON reads a kind from its code.
func (k *Kind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Transaction is an immutable ledger record.
type Transaction struct {
	Date   date.Date
	ID     string
	Kind   Kind
	Amount decimal.Decimal // always positive, the Kind carries the sign.
}

// NewTransaction creates a new Transaction.
func NewTransaction(on date.Date, id string, kind Kind, amount decimal.Decimal) Transaction {
	return Transaction{Date: on, ID: id, Kind: kind, Amount: amount}
}

// Signed returns the contribution of the transaction to the account balance.
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind.Sign() < 0 {
		return t.Amount.Neg()
	}
	return t.Amount
}

func (t Transaction) Equal(o Transaction) bool {
	return t.Date == o.Date && t.ID == o.ID && t.Kind == o.Kind && t.Amount.Equal(o.Amount)
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s %s", t.Date, t.ID, t.Kind, t.Amount.StringFixed(2))
}
