// Package date provides a calendar date with day granularity and closed ranges of dates.
//
// The canonical textual form of a Date is the fixed-width, zero-padded "YYYYMMDD". For
// those strings lexicographic order is chronological order, which lets stores compare
// either representation.
package date

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Format is the canonical compact layout.
const Format = "20060102"

// ISOFormat is the ISO-8601 layout, accepted on read.
const ISOFormat = "2006-01-02"

const readISOFormat = "2006-1-2" // permissive: allows single-digit month/day.

const secondsPerDay = 24 * 60 * 60

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

func (d Date) Year() int         { return d.y }
func (d Date) Month() time.Month { return d.m }
func (d Date) Day() int          { return d.d }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// String formats the date in its canonical YYYYMMDD form.
func (d Date) String() string { return d.time().Format(Format) }

// ISO formats the date as YYYY-MM-DD.
func (d Date) ISO() string { return d.time().Format(ISOFormat) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Compare returns -1, 0 or +1 depending on d being before, equal or after x.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(days int) Date { return New(d.y, d.m, d.d+days) }

// Sub returns the number of days from x to d (negative if d is before x).
//
// It counts on Unix seconds, time.Duration saturates after about 292 years.
func (d Date) Sub(x Date) int { return int((d.time().Unix() - x.time().Unix()) / secondsPerDay) }

// StartOfMonth returns the first day of d's month.
func (d Date) StartOfMonth() Date { return New(d.y, d.m, 1) }

// EndOfMonth returns the last day of d's month.
func (d Date) EndOfMonth() Date { return New(d.y, d.m+1, 0) }

var (
	compactRE  = regexp.MustCompile(`^\d{8}$`)
	relativeRE = regexp.MustCompile(`^([+-])(\d+)([dwmy])$`)
)

// Parse parses a Date.
//
// It accepts the canonical "YYYYMMDD" form, the ISO form (leniently, "2025-7-1" is fine),
// "0d" for today and relative offsets from today like "-1d", "+2w", "-1m" or "+1y".
// Calendar-invalid dates such as "20230230" are rejected.
func Parse(str string) (Date, error) {
	str = strings.TrimSpace(str)

	if compactRE.MatchString(str) {
		on, err := time.Parse(Format, str)
		if err != nil {
			return Date{}, fmt.Errorf("invalid date %q want format YYYYMMDD: %w", str, err)
		}
		return New(on.Date()), nil
	}

	if str == "0d" {
		return Today(), nil
	}

	// sign is mandatory for non-zero offsets.
	if match := relativeRE.FindStringSubmatch(str); match != nil {
		num, err := strconv.Atoi(match[2])
		if err != nil {
			return Date{}, fmt.Errorf("invalid number in relative date %q: %w", str, err)
		}
		if match[1] == "-" {
			num = -num
		}
		today := Today()
		switch match[3] {
		case "d":
			return today.Add(num), nil
		case "w":
			return today.Add(num * 7), nil
		case "m":
			return New(today.Year(), today.Month()+time.Month(num), today.Day()), nil
		case "y":
			return New(today.Year()+num, today.Month(), today.Day()), nil
		}
	}

	on, err := time.Parse(readISOFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format YYYYMMDD: %w", str, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON reads a date from a json string.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	v, err := Parse(str)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
