package accrual

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/etnz/accrual/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// txLine is the JSONL form of a transaction, it carries the account it belongs to.
type txLine struct {
	Account string          `json:"account"`
	Date    date.Date       `json:"date"`
	ID      string          `json:"id"`
	Kind    Kind            `json:"type"`
	Amount  decimal.Decimal `json:"amount"`
}

// DecodeLedger decodes transactions from a stream of JSONL data, one transaction per line,
// and returns the Ledger holding them.
//
// Lines are not checked against the Bank rules (balance, id format), a ledger file is
// trusted the way a bank trusts its own books. Only the structure is validated: a known
// type, a valid date, an account and a positive amount.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	n := 0
	for scanner.Scan() {
		n++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var line txLine
		if err := json.Unmarshal(lineBytes, &line); err != nil {
			return nil, fmt.Errorf("line %d: could not decode transaction %q: %w", n, string(lineBytes), err)
		}
		switch {
		case line.Account == "":
			return nil, fmt.Errorf("line %d: %w: missing account", n, ErrInvalidAccount)
		case line.Date.IsZero():
			return nil, fmt.Errorf("line %d: %w: missing date", n, ErrInvalidDate)
		case !line.Amount.IsPositive():
			return nil, fmt.Errorf("line %d: %w: must be greater than zero, got %s", n, ErrInvalidAmount, line.Amount)
		}
		ledger.Append(line.Account, NewTransaction(line.Date, line.ID, line.Kind, line.Amount))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return ledger, nil
}

// EncodeTransaction marshals a single transaction of an account to JSON and writes it to
// the writer, followed by a newline, in JSONL format.
//
// Keys are written in a fixed order: account, date, id (omitted when empty), type,
// amount.
func EncodeTransaction(w io.Writer, account string, tx Transaction) error {
	var obj jsonObjectWriter
	obj.Append("account", account).
		Append("date", tx.Date).
		Optional("id", tx.ID).
		Append("type", tx.Kind).
		Append("amount", tx.Amount)

	data, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal transaction %s: %w", tx.ID, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	return nil
}

// EncodeLedger writes every transaction of the ledger in JSONL format, accounts in
// lexicographic order, each account's transactions in chronological order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	for account := range ledger.Accounts() {
		if err := EncodeAccount(w, ledger, account); err != nil {
			return err
		}
	}
	return nil
}

// EncodeAccount writes the transactions of a single account in JSONL format.
func EncodeAccount(w io.Writer, ledger *Ledger, account string) error {
	for _, tx := range ledger.Transactions(account) {
		if err := EncodeTransaction(w, account, tx); err != nil {
			return err
		}
	}
	return nil
}
