package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/etnz/accrual"
	"github.com/etnz/accrual/renderer"
)

// session runs menu commands against a bank. The console and batch scripts share it.
type session struct {
	bank   *accrual.Bank
	out    io.Writer
	render func(md string) string
}

func newSession(b *accrual.Bank, out io.Writer, render func(string) string) *session {
	return &session{bank: b, out: out, render: render}
}

// action is a menu entry.
type action struct {
	key    string
	label  string
	prompt string
	exec   func(s *session, line string) error
}

var actions = []action{
	{"T", "Input transactions", "Please enter transaction details in <Date> <Account> <Type> <Amount> format", (*session).transaction},
	{"I", "Define interest rules", "Please enter interest rule details in <Date> <RuleId> <Rate in %> format", (*session).rule},
	{"P", "Print statement", "Please enter account and month to generate the statement <Account> <Year><Month>", (*session).statement},
	{"C", "Credit monthly interest", "Please enter account and month to credit the interest <Account> <Year><Month>", (*session).post},
}

func findAction(key string) (action, bool) {
	for _, a := range actions {
		if strings.EqualFold(a.key, key) {
			return a, true
		}
	}
	return action{}, false
}

// Exec runs a single menu command, e.g. Exec("T", "20230601 AC001 D 100").
func (s *session) Exec(key, line string) error {
	a, ok := findAction(key)
	if !ok {
		return fmt.Errorf("%w: unknown option %q", accrual.ErrInvalidCommand, key)
	}
	return a.exec(s, line)
}

func (s *session) transaction(line string) error {
	c, err := accrual.ParseTransactionCommand(line)
	if err != nil {
		return err
	}
	if _, err := c.Apply(s.bank); err != nil {
		return err
	}
	s.print(renderer.TransactionsMarkdown(c.Account, s.bank.Ledger().Transactions(c.Account)))
	return nil
}

func (s *session) rule(line string) error {
	r, err := accrual.ParseRuleCommand(line)
	if err != nil {
		return err
	}
	if err := s.bank.AddRule(r); err != nil {
		return err
	}
	s.print(renderer.RulesMarkdown(s.bank.Rules().All()))
	return nil
}

func (s *session) statement(line string) error {
	c, err := accrual.ParseMonthCommand(line)
	if err != nil {
		return err
	}
	st, err := s.bank.Statement(c.Account, c.Month)
	if err != nil {
		return err
	}
	s.print(renderer.StatementMarkdown(st, renderer.StatementOptions{}))
	return nil
}

func (s *session) post(line string) error {
	c, err := accrual.ParseMonthCommand(line)
	if err != nil {
		return err
	}
	tx, ok, err := s.bank.PostInterest(c.Account, c.Month)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(s.out, "No interest earned by %s in %s.\n", c.Account, c.Month)
		return nil
	}
	fmt.Fprintf(s.out, "%s: %s.\n", tx.ID, renderer.Transaction(tx, s.bank.Currency()))
	return nil
}

func (s *session) print(md string) { fmt.Fprint(s.out, s.render(md)) }

// Console runs the interactive menu until the user quits or the input ends.
func (s *session) Console(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	readLine := func() (string, bool) {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			return "", false
		}
		return scanner.Text(), true
	}

	fmt.Fprintln(s.out, "Welcome to AwesomeGIC Bank! What would you like to do?")
	for first := true; ; first = false {
		if !first {
			fmt.Fprintln(s.out, "Is there anything else you'd like to do?")
		}
		for _, a := range actions {
			fmt.Fprintf(s.out, "[%s] %s\n", a.key, a.label)
		}
		fmt.Fprintln(s.out, "[Q] Quit")

		choice, ok := readLine()
		if !ok {
			return scanner.Err()
		}
		choice = strings.TrimSpace(choice)
		if strings.EqualFold(choice, "Q") {
			fmt.Fprintln(s.out, "Thank you for banking with AwesomeGIC Bank. Have a nice day!")
			return nil
		}
		a, found := findAction(choice)
		if !found {
			fmt.Fprintln(s.out, "Invalid option. Please try again.")
			continue
		}

		fmt.Fprintln(s.out, a.prompt)
		fmt.Fprintln(s.out, "(or enter blank to go back to main menu):")
		// retry until success or a blank line.
		for {
			line, ok := readLine()
			if !ok {
				return scanner.Err()
			}
			if strings.TrimSpace(line) == "" {
				break
			}
			if err := a.exec(s, line); err != nil {
				fmt.Fprintf(s.out, "Error: %v\n", err)
				continue
			}
			break
		}
	}
}

// Script runs a batch of menu commands, one per line, each one prefixed by its menu key:
//
//	# comments and blank lines are ignored
//	T 20230601 AC001 D 100.00
//	I 20230601 RULE01 2.20
//	P AC001 202306
//
// It stops at the first failing line unless keepGoing, and returns the number of failed
// lines.
func (s *session) Script(in io.Reader, keepGoing bool) (int, error) {
	scanner := bufio.NewScanner(in)
	failed := 0
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, args := splitKey(line)
		if err := s.Exec(key, args); err != nil {
			failed++
			if !keepGoing {
				return failed, fmt.Errorf("line %d: %w", n, err)
			}
			fmt.Fprintf(s.out, "Error: line %d: %v\n", n, err)
		}
	}
	return failed, scanner.Err()
}

// splitKey splits a script line on its first run of spaces or tabs: the menu key, then the
// command.
func splitKey(line string) (key, args string) {
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i:])
}
