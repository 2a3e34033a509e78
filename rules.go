package accrual

import (
	"fmt"
	"slices"
	"sort"

	"github.com/etnz/accrual/date"
	"github.com/shopspring/decimal"
)

// Rule is an interest rule: from its effective date on, and until a later rule takes over,
// balances earn Rate percent per year.
type Rule struct {
	Date date.Date       // effective date, inclusive.
	ID   string          // rule identifier, up to 10 characters.
	Rate decimal.Decimal // annual rate in percent, in (0, 100).
}

// NewRule creates a new Rule.
func NewRule(on date.Date, id string, rate decimal.Decimal) Rule {
	return Rule{Date: on, ID: id, Rate: rate}
}

func (r Rule) Equal(o Rule) bool {
	return r.Date == o.Date && r.ID == o.ID && r.Rate.Equal(o.Rate)
}

func (r Rule) String() string { return fmt.Sprintf("%s %s %s%%", r.Date, r.ID, r.Rate) }

// RuleStore holds at most one interest rule per effective date, sorted by date.
//
// A RuleStore is not safe for concurrent use.
type RuleStore struct {
	rules []Rule
}

// NewRuleStore creates a RuleStore holding the given rules, later rules replacing
// earlier ones on the same date.
func NewRuleStore(rules ...Rule) *RuleStore {
	s := &RuleStore{}
	for _, r := range rules {
		s.ReplaceOnDate(r)
	}
	return s
}

// ReplaceOnDate deletes any rule sharing r's effective date, then inserts r.
// It returns the replaced rule, if any.
func (s *RuleStore) ReplaceOnDate(r Rule) (old Rule, replaced bool) {
	i, found := s.search(r.Date)
	if found {
		old = s.rules[i]
		s.rules = slices.Delete(s.rules, i, i+1)
	}
	s.rules = slices.Insert(s.rules, i, r)
	return old, found
}

// RateOn returns the rule applicable on a given day: the one with the latest effective
// date on or before 'on'. A rule dated after 'on' never applies, however close.
func (s *RuleStore) RateOn(on date.Date) (Rule, bool) {
	// index of the first rule strictly after 'on'
	i := sort.Search(len(s.rules), func(i int) bool { return s.rules[i].Date.After(on) })
	if i == 0 {
		return Rule{}, false
	}
	return s.rules[i-1], true
}

// All returns a copy of all the rules sorted by effective date.
func (s *RuleStore) All() []Rule { return slices.Clone(s.rules) }

// Len returns the number of rules.
func (s *RuleStore) Len() int { return len(s.rules) }

// search returns the index of the first rule on or after 'on', and whether it is on 'on'.
func (s *RuleStore) search(on date.Date) (int, bool) {
	i := sort.Search(len(s.rules), func(i int) bool { return !s.rules[i].Date.Before(on) })
	return i, i < len(s.rules) && s.rules[i].Date == on
}
