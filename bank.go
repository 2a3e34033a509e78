package accrual

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/etnz/accrual/date"
	"github.com/shopspring/decimal"
)

const (
	maxIDLength = 10
	// DefaultCurrency is the display currency when none is configured.
	DefaultCurrency = "SGD"
)

var maxRate = decimal.NewFromInt(100)

// Bank validates and applies commands on a ledger and a rule store, and produces
// statements.
//
// A Bank is single-session: it is not safe for concurrent use. Serving parallel callers
// would require one lock per account around Record, Statement and PostInterest, plus one
// lock around AddRule.
type Bank struct {
	ledger   *Ledger
	rules    *RuleStore
	engine   *Engine
	currency string
}

// NewBank creates a Bank over the given stores. Amounts are displayed in 'currency'.
func NewBank(ledger *Ledger, rules *RuleStore, currency string) *Bank {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Bank{
		ledger:   ledger,
		rules:    rules,
		engine:   NewEngine(ledger, rules),
		currency: currency,
	}
}

func (b *Bank) Ledger() *Ledger   { return b.ledger }
func (b *Bank) Rules() *RuleStore { return b.rules }
func (b *Bank) Engine() *Engine   { return b.engine }
func (b *Bank) Currency() string  { return b.currency }

// M returns an amount as Money in the bank's currency.
func (b *Bank) M(v decimal.Decimal) Money { return M(v, b.currency) }

// Record validates and appends a deposit or a withdrawal. It returns the recorded
// transaction with its generated id.
//
// A withdrawal must not exceed the balance of the account as of its date, nor any later
// balance: a backdated withdrawal never makes the account overdrawn.
func (b *Bank) Record(on date.Date, account string, kind Kind, amount decimal.Decimal) (Transaction, error) {
	if err := validateID(account); err != nil {
		return Transaction{}, fmt.Errorf("%w %q: %v", ErrInvalidAccount, account, err)
	}
	if kind != Credit && kind != Debit {
		return Transaction{}, fmt.Errorf("%w: must be D (deposit) or W (withdrawal), got %s", ErrInvalidKind, kind)
	}
	if !amount.IsPositive() {
		return Transaction{}, fmt.Errorf("%w: must be greater than zero, got %s", ErrInvalidAmount, amount)
	}
	if kind == Debit {
		lowest := b.ledger.LowestBalanceFrom(account, on)
		if lowest.LessThan(amount) {
			return Transaction{}, fmt.Errorf("%w: on %s, cannot withdraw %s from %s, available %s", ErrInsufficientBalance, on, amount.StringFixed(2), account, lowest.StringFixed(2))
		}
	}
	tx := NewTransaction(on, b.nextID(account, on), kind, amount)
	b.ledger.Append(account, tx)
	return tx, nil
}

// nextID returns the id of the next transaction of the account on a given day:
// YYYYMMDD-NN where NN counts the transactions of that day, starting at 01.
func (b *Bank) nextID(account string, on date.Date) string {
	return fmt.Sprintf("%s-%02d", on, b.ledger.CountOn(account, on)+1)
}

// AddRule validates an interest rule and stores it, replacing any rule on the same date.
func (b *Bank) AddRule(r Rule) error {
	if err := validateID(r.ID); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidRuleID, r.ID, err)
	}
	if !r.Rate.IsPositive() || !r.Rate.LessThan(maxRate) {
		return fmt.Errorf("%w: must be between 0 and 100 (exclusive), got %s", ErrInvalidRate, r.Rate)
	}
	if old, replaced := b.rules.ReplaceOnDate(r); replaced {
		log.Printf("%v: replace rule %s (%s%%) with %s (%s%%)", r.Date, old.ID, old.Rate, r.ID, r.Rate)
	}
	return nil
}

// StatementLine is a statement row: a transaction and the balance right after it.
type StatementLine struct {
	Transaction
	Balance Money
}

// Statement is the monthly account statement.
type Statement struct {
	Account  string
	Month    date.Range
	Opening  Money           // balance before the first day of the month.
	Lines    []StatementLine // transactions of the month, the interest line last.
	Interest Money           // interest earned over the month, the sum of the posted credits once posted.
	Periods  []Period        // accruing periods the interest is made of.
	Posted   bool            // true if the interest was already posted in the ledger.
}

// Closing returns the balance at the end of the statement.
func (s *Statement) Closing() Money {
	if len(s.Lines) == 0 {
		return s.Opening
	}
	return s.Lines[len(s.Lines)-1].Balance
}

// Statement builds the statement of an account for a calendar month.
//
// The interest of the month is shown as a last line dated on the month end. It is not
// recorded in the ledger, see PostInterest.
func (b *Bank) Statement(account string, month date.Range) (*Statement, error) {
	if !b.ledger.Has(account) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAccount, account)
	}
	txs := b.ledger.TransactionsInRange(account, month.From, month.To)
	if len(txs) == 0 {
		return nil, fmt.Errorf("%w for %q in %s", ErrNoTransactions, account, month)
	}

	s := &Statement{
		Account:  account,
		Month:    month,
		Opening:  b.M(b.ledger.BalanceAsOf(account, month.From, false)),
		Interest: b.M(decimal.Zero),
	}
	running := s.Opening
	for _, tx := range txs {
		running = running.Add(tx.Signed())
		s.Lines = append(s.Lines, StatementLine{Transaction: tx, Balance: running})
		if tx.Kind == InterestCredit && tx.Date == month.To {
			s.Posted = true
			s.Interest = s.Interest.Add(tx.Amount)
		}
	}
	s.Periods = b.engine.Periods(account, month.From, month.To)
	if s.Posted {
		// the posted interest is in the month end balance, its own accrual must not see it.
		if last := len(s.Periods) - 1; last >= 0 && s.Periods[last].Start == month.To {
			s.Periods[last].Balance = s.Periods[last].Balance.Sub(s.Interest.Decimal())
		}
		return s, nil
	}

	interest := b.engine.ComputeInterest(account, month.From, month.To)
	s.Interest = b.M(interest)
	running = running.Add(interest)
	s.Lines = append(s.Lines, StatementLine{
		Transaction: NewTransaction(month.To, "", InterestCredit, interest),
		Balance:     running,
	})
	return s, nil
}

// PostInterest records the interest earned over a month as an interest credit on the
// month end. Nothing is recorded when the interest is zero. Posting twice the same month
// fails with ErrInterestPosted.
func (b *Bank) PostInterest(account string, month date.Range) (Transaction, bool, error) {
	if !b.ledger.Has(account) {
		return Transaction{}, false, fmt.Errorf("%w: %q", ErrUnknownAccount, account)
	}
	for _, tx := range b.ledger.TransactionsInRange(account, month.To, month.To) {
		if tx.Kind == InterestCredit {
			return Transaction{}, false, fmt.Errorf("%w for %q in %s: %s", ErrInterestPosted, account, month, tx.ID)
		}
	}
	interest := b.engine.ComputeInterest(account, month.From, month.To)
	if !interest.IsPositive() {
		return Transaction{}, false, nil
	}
	tx := NewTransaction(month.To, b.nextID(account, month.To), InterestCredit, interest)
	b.ledger.Append(account, tx)
	log.Printf("%v: post interest %s to %q", tx.Date, interest.StringFixed(2), account)
	return tx, true, nil
}

// validateID checks account and rule identifiers: 1 to 10 characters, no whitespace.
func validateID(id string) error {
	n := utf8.RuneCountInString(id)
	switch {
	case n == 0:
		return errors.New("must not be empty")
	case n > maxIDLength:
		return fmt.Errorf("must be up to %d characters, got %d", maxIDLength, n)
	case strings.IndexFunc(id, unicode.IsSpace) >= 0:
		return errors.New("must not contain spaces")
	}
	return nil
}
