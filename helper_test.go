package accrual

import (
	"github.com/etnz/accrual/date"
	"github.com/shopspring/decimal"
)

// dec is a helper for test to create exact decimals from const.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// day is a helper for test to create dates from const.
func day(s string) date.Date { return date.MustParse(s) }

// SGD is a helper for test to create money in the default currency.
func SGD(s string) Money { return M(dec(s), DefaultCurrency) }

// rule is a helper for test to create a rule.
func rule(on, id, rate string) Rule { return NewRule(day(on), id, dec(rate)) }

// tx is a helper for test to create a transaction without id.
func tx(on string, kind Kind, amount string) Transaction {
	return NewTransaction(day(on), "", kind, dec(amount))
}

// newTestBank returns a bank with the given rules, failing the test on invalid rules.
func newTestBank(rules ...Rule) *Bank {
	b := NewBank(NewLedger(), NewRuleStore(), DefaultCurrency)
	for _, r := range rules {
		if err := b.AddRule(r); err != nil {
			panic(err)
		}
	}
	return b
}
