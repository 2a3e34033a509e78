package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/etnz/accrual"
	"github.com/etnz/accrual/date"
	"github.com/shopspring/decimal"
)

func identity(md string) string { return md }

func newTestSession() (*session, *bytes.Buffer) {
	var out bytes.Buffer
	b := accrual.NewBank(accrual.NewLedger(), accrual.NewRuleStore(), accrual.DefaultCurrency)
	return newSession(b, &out, identity), &out
}

// assertContains checks that every wanted string is in the output, in order.
func assertContains(t *testing.T, got string, wants ...string) {
	t.Helper()
	rest := got
	for _, want := range wants {
		i := strings.Index(rest, want)
		if i < 0 {
			t.Errorf("output does not contain %q after the previous matches:\n%s", want, got)
			return
		}
		rest = rest[i+len(want):]
	}
}

func TestSession_Console(t *testing.T) {
	s, out := newTestSession()
	input := strings.Join([]string{
		"t",
		"20230626 AC001 W 100.00", // no balance yet
		"20230505 AC001 D 100.00",
		"T",
		"20230601 AC001 D 150.00",
		"X",
		"I",
		"20230615 RULE03 2.20",
		"i",
		"20230101 RULE01 1.95",
		"P",
		"",
		"P",
		"AC001 202306",
		"q",
	}, "\n")

	if err := s.Console(strings.NewReader(input)); err != nil {
		t.Fatalf("Console() failed: %v", err)
	}
	assertContains(t, out.String(),
		"Welcome to AwesomeGIC Bank! What would you like to do?",
		"[T] Input transactions",
		"[Q] Quit",
		"Please enter transaction details in <Date> <Account> <Type> <Amount> format",
		"Error: insufficient balance",
		"20230505-01",
		"Is there anything else you'd like to do?",
		"20230601-01",
		"Invalid option. Please try again.",
		"RULE03",
		"RULE01", "RULE03",
		"Please enter account and month to generate the statement <Account> <Year><Month>",
		"Is there anything else you'd like to do?",
		"# Account: AC001",
		"Thank you for banking with AwesomeGIC Bank. Have a nice day!",
	)
}

func TestSession_ConsoleEOF(t *testing.T) {
	s, _ := newTestSession()
	if err := s.Console(strings.NewReader("T\n20230505 AC001 D 100.00\n")); err != nil {
		t.Fatalf("Console() at end of input = %v, want nil", err)
	}
	if !s.bank.Ledger().Has("AC001") {
		t.Error("the transaction before the end of input must be recorded")
	}
}

func TestSession_Script(t *testing.T) {
	s, out := newTestSession()
	script := `
# June 2023
I 20230101 RULE01 1.95
I 20230520 RULE02 1.90
I 20230615 RULE03 2.20
T 20230505 AC001 D 100.00
T 20230601 AC001 D 150.00
T 20230626 AC001 W 20.00
T 20230626 AC001 W 100.00
P AC001 202306
C AC001 202306
`
	failed, err := s.Script(strings.NewReader(script), false)
	if err != nil || failed != 0 {
		t.Fatalf("Script() = %d, %v", failed, err)
	}
	assertContains(t, out.String(),
		"20230626-02",
		"Statement for 202306",
		"0.39", "130.39",
		"20230630-01: Earned $0.39 of interest on 20230630.",
	)
	if got := s.bank.Ledger().BalanceAsOf("AC001", date.MustParse("20230630"), true); got.String() != "130.39" {
		t.Errorf("balance = %s, want 130.39", got)
	}
}

func TestSession_ScriptWhitespace(t *testing.T) {
	s, _ := newTestSession()
	script := "T\t20230505 AC001 D 100.00\nI  20230101\tRULE01 1.95\n\tT 20230506 AC001 D 1\n"
	failed, err := s.Script(strings.NewReader(script), false)
	if err != nil || failed != 0 {
		t.Fatalf("Script() = %d, %v, want no failure", failed, err)
	}
	if got := s.bank.Ledger().BalanceAsOf("AC001", date.MustParse("20230506"), true); !got.Equal(decimal.NewFromInt(101)) {
		t.Errorf("balance = %s, want 101", got)
	}
	if s.bank.Rules().Len() != 1 {
		t.Errorf("Rules().Len() = %d, want 1", s.bank.Rules().Len())
	}
}

func TestSplitKey(t *testing.T) {
	tests := []struct{ line, key, args string }{
		{"T 20230505 AC001 D 100", "T", "20230505 AC001 D 100"},
		{"T\t20230505 AC001 D 100", "T", "20230505 AC001 D 100"},
		{"P \t AC001 202306", "P", "AC001 202306"},
		{"Q", "Q", ""},
	}
	for _, tc := range tests {
		if key, args := splitKey(tc.line); key != tc.key || args != tc.args {
			t.Errorf("splitKey(%q) = %q, %q, want %q, %q", tc.line, key, args, tc.key, tc.args)
		}
	}
}

func TestSession_ScriptErrors(t *testing.T) {
	script := "T 20230505 AC001 D 100\nZ nothing\nT 20230505 AC001 W 1000\nT 20230506 AC001 D 1\n"

	t.Run("stop", func(t *testing.T) {
		s, _ := newTestSession()
		failed, err := s.Script(strings.NewReader(script), false)
		if failed != 1 || !errors.Is(err, accrual.ErrInvalidCommand) || !strings.Contains(err.Error(), "line 2") {
			t.Errorf("Script() = %d, %v, want a failure on line 2", failed, err)
		}
		if s.bank.Ledger().CountOn("AC001", date.MustParse("20230506")) != 0 {
			t.Error("Script() must stop at the first error")
		}
	})

	t.Run("keep going", func(t *testing.T) {
		s, out := newTestSession()
		failed, err := s.Script(strings.NewReader(script), true)
		if failed != 2 || err != nil {
			t.Errorf("Script() = %d, %v, want 2 failures", failed, err)
		}
		assertContains(t, out.String(), "Error: line 2", "Error: line 3: insufficient balance")
		if s.bank.Ledger().CountOn("AC001", date.MustParse("20230506")) != 1 {
			t.Error("Script() must run every line")
		}
	})
}
