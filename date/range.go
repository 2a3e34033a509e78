package date

import (
	"fmt"
	"regexp"
	"time"
)

// Range represents a closed range of dates, both bounds included.
type Range struct{ From, To Date }

// NewRange returns the range [from, to].
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// Month returns the range covering the whole calendar month of d.
func Month(d Date) Range { return Range{From: d.StartOfMonth(), To: d.EndOfMonth()} }

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// IsEmpty reports whether the range contains no day at all, that is From is after To.
func (r Range) IsEmpty() bool { return r.From.After(r.To) }

// Days returns the number of days in the range, bounds included. An empty range has 0 days.
func (r Range) Days() int {
	if r.IsEmpty() {
		return 0
	}
	return r.To.Sub(r.From) + 1
}

// String formats the range; a calendar month is shown as YYYYMM.
func (r Range) String() string {
	if r.From.Day() == 1 && r.From.EndOfMonth() == r.To {
		return r.From.time().Format("200601")
	}
	return fmt.Sprintf("%s..%s", r.From, r.To)
}

var yearMonthRE = regexp.MustCompile(`^\d{6}$`)

// ParseMonth parses a "YYYYMM" string into the range of that calendar month.
func ParseMonth(str string) (Range, error) {
	if !yearMonthRE.MatchString(str) {
		return Range{}, fmt.Errorf("invalid month %q want format YYYYMM", str)
	}
	on, err := time.Parse("200601", str)
	if err != nil {
		return Range{}, fmt.Errorf("invalid month %q want format YYYYMM: %w", str, err)
	}
	return Month(New(on.Year(), on.Month(), 1)), nil
}
