package accrual

import "errors"

// Validation errors returned by the Bank and the command parsers. They are wrapped with
// context, test them with errors.Is.
var (
	ErrInvalidDate    = errors.New("invalid date")
	ErrInvalidMonth   = errors.New("invalid month")
	ErrInvalidAccount = errors.New("invalid account")
	ErrInvalidKind    = errors.New("invalid transaction type")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrInvalidRuleID  = errors.New("invalid rule id")
	ErrInvalidRate    = errors.New("invalid rate")
	ErrInvalidCommand = errors.New("invalid command")

	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrUnknownAccount      = errors.New("account does not exist")
	ErrNoTransactions      = errors.New("no transactions")
	ErrInterestPosted      = errors.New("interest already posted")
)
