package accrual

import (
	"fmt"
	"strings"

	"github.com/etnz/accrual/date"
	"github.com/shopspring/decimal"
)

// TransactionCommand is a parsed "<Date> <Account> <Type> <Amount>" command.
type TransactionCommand struct {
	Date    date.Date
	Account string
	Kind    Kind
	Amount  decimal.Decimal
}

// MonthCommand is a parsed "<Account> <Year><Month>" command, used to print a statement
// or to post the interest of a month.
type MonthCommand struct {
	Account string
	Month   date.Range
}

// ParseTransactionCommand parses "<YYYYMMDD> <Account> <D|W> <Amount>".
func ParseTransactionCommand(line string) (TransactionCommand, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return TransactionCommand{}, fmt.Errorf("%w: use <Date> <Account> <Type> <Amount>", ErrInvalidCommand)
	}
	on, err := parseDay(fields[0])
	if err != nil {
		return TransactionCommand{}, err
	}
	kind, err := ParseKind(fields[2])
	if err != nil || kind == InterestCredit {
		return TransactionCommand{}, fmt.Errorf("%w: must be D (deposit) or W (withdrawal), got %q", ErrInvalidKind, fields[2])
	}
	amount, err := decimal.NewFromString(fields[3])
	if err != nil {
		return TransactionCommand{}, fmt.Errorf("%w %q: not a number", ErrInvalidAmount, fields[3])
	}
	return TransactionCommand{Date: on, Account: fields[1], Kind: kind, Amount: amount}, nil
}

// ParseRuleCommand parses "<YYYYMMDD> <RuleId> <Rate in %>".
func ParseRuleCommand(line string) (Rule, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Rule{}, fmt.Errorf("%w: use <Date> <RuleId> <Rate in %%>", ErrInvalidCommand)
	}
	on, err := parseDay(fields[0])
	if err != nil {
		return Rule{}, err
	}
	rate, err := decimal.NewFromString(fields[2])
	if err != nil {
		return Rule{}, fmt.Errorf("%w %q: not a number", ErrInvalidRate, fields[2])
	}
	return NewRule(on, fields[1], rate), nil
}

// ParseMonthCommand parses "<Account> <YYYYMM>".
func ParseMonthCommand(line string) (MonthCommand, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return MonthCommand{}, fmt.Errorf("%w: use <Account> <Year><Month>", ErrInvalidCommand)
	}
	month, err := date.ParseMonth(fields[1])
	if err != nil {
		return MonthCommand{}, fmt.Errorf("%w: %v", ErrInvalidMonth, err)
	}
	return MonthCommand{Account: fields[0], Month: month}, nil
}

// parseDay only accepts the canonical YYYYMMDD form, user commands never use relative
// dates.
func parseDay(s string) (date.Date, error) {
	if len(s) != 8 || strings.Trim(s, "0123456789") != "" {
		return date.Date{}, fmt.Errorf("%w %q: want YYYYMMDD", ErrInvalidDate, s)
	}
	on, err := date.Parse(s)
	if err != nil {
		return date.Date{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return on, nil
}

// Apply records the transaction in the bank.
func (c TransactionCommand) Apply(b *Bank) (Transaction, error) {
	return b.Record(c.Date, c.Account, c.Kind, c.Amount)
}
