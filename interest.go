package accrual

import (
	"slices"

	"github.com/etnz/accrual/date"
	"github.com/shopspring/decimal"
)

var (
	// yearBasis converts an annualized, percent-scaled accrual into interest: 365 days of
	// a fixed year, regardless of leap years, times 100 for the percentage.
	yearBasis = decimal.NewFromInt(365 * 100)
)

const (
	rawPrecision   = 10 // fractional digits of the interest before the final rounding.
	finalPrecision = 2
)

// Balances is what the Engine needs from a ledger.
type Balances interface {
	BalanceAsOf(account string, on date.Date, inclusive bool) decimal.Decimal
	TransactionsInRange(account string, from, to date.Date) []Transaction
}

// Rates is what the Engine needs from a rule store.
type Rates interface {
	RateOn(on date.Date) (Rule, bool)
	All() []Rule
}

var (
	_ Balances = (*Ledger)(nil)
	_ Rates    = (*RuleStore)(nil)
)

// Period is a maximal run of days over which both the balance and the rate are constant.
type Period struct {
	Start   date.Date
	End     date.Date // inclusive
	Balance decimal.Decimal
	Rule    Rule
}

// Days returns the number of days in the period, both bounds included.
func (p Period) Days() int { return p.End.Sub(p.Start) + 1 }

// Accrual returns balance × rate × days: the annualized, percent-scaled contribution of
// the period, exact.
func (p Period) Accrual() decimal.Decimal {
	return p.Balance.Mul(p.Rule.Rate).Mul(decimal.NewFromInt(int64(p.Days())))
}

// Interest returns the interest earned over the period alone, not rounded.
func (p Period) Interest() decimal.Decimal {
	return p.Accrual().DivRound(yearBasis, rawPrecision)
}

// Engine computes simple daily-accrual interest from a ledger and a rule store.
//
// The Engine holds no state of its own, every computation reads its collaborators.
type Engine struct {
	balances Balances
	rates    Rates
}

// NewEngine creates an Engine reading balances and rates from the given stores.
func NewEngine(balances Balances, rates Rates) *Engine {
	return &Engine{balances: balances, rates: rates}
}

// ComputeInterest returns the interest earned by the account over [from, to], both
// bounds included, rounded half-up to 2 decimals.
//
// With no rule at all, or an empty range (from after to), the interest is zero.
func (e *Engine) ComputeInterest(account string, from, to date.Date) decimal.Decimal {
	return e.RawInterest(account, from, to).Round(finalPrecision)
}

// RawInterest returns the interest over [from, to] with 10 fractional digits, before the
// final rounding.
func (e *Engine) RawInterest(account string, from, to date.Date) decimal.Decimal {
	return e.Accrued(account, from, to).DivRound(yearBasis, rawPrecision)
}

// Accrued returns the exact sum of the periods accruals over [from, to].
func (e *Engine) Accrued(account string, from, to date.Date) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range e.Periods(account, from, to) {
		sum = sum.Add(p.Accrual())
	}
	return sum
}

// Periods splits [from, to] into periods of constant balance and rate and returns those
// that accrue interest, in chronological order.
//
// Periods before the first rule's effective date have no rate and are left out.
func (e *Engine) Periods(account string, from, to date.Date) []Period {
	rules := e.rates.All()
	if len(rules) == 0 || from.After(to) {
		return nil
	}

	breakpoints := e.breakpoints(account, from, to, rules)

	periods := make([]Period, 0, len(breakpoints))
	for i, start := range breakpoints {
		// A period runs up to the day before the next breakpoint, the last one runs
		// through 'to'.
		end := to
		if i+1 < len(breakpoints) {
			end = breakpoints[i+1].Add(-1)
		}
		if end.Before(start) {
			continue
		}
		rule, ok := e.rates.RateOn(start)
		if !ok {
			continue
		}
		periods = append(periods, Period{
			Start:   start,
			End:     end,
			Balance: e.balances.BalanceAsOf(account, start, true),
			Rule:    rule,
		})
	}
	return periods
}

// breakpoints returns the sorted, distinct days within [from, to] on which the balance or
// the rate may change: 'from' itself, every transaction date and every rule effective
// date.
func (e *Engine) breakpoints(account string, from, to date.Date, rules []Rule) []date.Date {
	days := []date.Date{from}
	for _, tx := range e.balances.TransactionsInRange(account, from, to) {
		days = append(days, tx.Date)
	}
	for _, r := range rules {
		if !r.Date.Before(from) && !r.Date.After(to) {
			days = append(days, r.Date)
		}
	}
	slices.SortFunc(days, date.Date.Compare)
	return slices.Compact(days)
}
