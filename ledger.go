package accrual

import (
	"iter"
	"maps"
	"slices"
	"sort"

	"github.com/etnz/accrual/date"
	"github.com/shopspring/decimal"
)

// Ledger stores the transactions of every account.
//
// It is a pure append and query store: it does not validate transactions nor enforce a
// non-negative balance, that is the job of the caller (see Bank). Within an account,
// transactions are always in chronological order; transactions on the same day keep
// their insertion order.
//
// A Ledger is not safe for concurrent use.
type Ledger struct {
	accounts map[string][]Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{accounts: make(map[string][]Transaction)}
}

// Append appends a transaction to an account, creating the account if needed.
func (l *Ledger) Append(account string, tx Transaction) {
	txs := append(l.accounts[account], tx)
	// Most transactions arrive in order, only sort when needed.
	if n := len(txs); n > 1 && txs[n-1].Date.Before(txs[n-2].Date) {
		sort.SliceStable(txs, func(i, j int) bool { return txs[i].Date.Before(txs[j].Date) })
	}
	l.accounts[account] = txs
}

// Has reports whether the account has ever received a transaction.
func (l *Ledger) Has(account string) bool {
	_, ok := l.accounts[account]
	return ok
}

// Accounts iterates over account ids in lexicographic order.
func (l *Ledger) Accounts() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, account := range slices.Sorted(maps.Keys(l.accounts)) {
			if !yield(account) {
				return
			}
		}
	}
}

// Transactions returns a copy of all the transactions of an account in chronological order.
func (l *Ledger) Transactions(account string) []Transaction {
	return slices.Clone(l.accounts[account])
}

// BalanceAsOf returns the signed sum of the account's transactions dated on or before
// 'on' when inclusive, strictly before 'on' otherwise. Unknown accounts have a zero
// balance.
func (l *Ledger) BalanceAsOf(account string, on date.Date, inclusive bool) decimal.Decimal {
	balance := decimal.Zero
	for _, tx := range l.accounts[account] {
		if tx.Date.After(on) || (!inclusive && tx.Date == on) {
			// transactions are sorted by date, so it's safe to break.
			break
		}
		balance = balance.Add(tx.Signed())
	}
	return balance
}

// LowestBalanceFrom returns the lowest balance of the account from 'on' onward: the
// balance as of 'on', inclusive, and the balance after every later transaction.
func (l *Ledger) LowestBalanceFrom(account string, on date.Date) decimal.Decimal {
	balance := l.BalanceAsOf(account, on, true)
	lowest := balance
	for _, tx := range l.accounts[account] {
		if !tx.Date.After(on) {
			continue
		}
		balance = balance.Add(tx.Signed())
		if balance.LessThan(lowest) {
			lowest = balance
		}
	}
	return lowest
}

// TransactionsInRange returns the account's transactions dated within [from, to], both
// bounds included, in chronological order. Unknown accounts have none.
func (l *Ledger) TransactionsInRange(account string, from, to date.Date) []Transaction {
	var res []Transaction
	for _, tx := range l.accounts[account] {
		if tx.Date.After(to) {
			break
		}
		if !tx.Date.Before(from) {
			res = append(res, tx)
		}
	}
	return res
}

// CountOn returns the number of transactions of the account on a given day.
func (l *Ledger) CountOn(account string, on date.Date) int {
	return len(l.TransactionsInRange(account, on, on))
}
