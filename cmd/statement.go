package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/accrual"
	"github.com/etnz/accrual/date"
	"github.com/etnz/accrual/renderer"
	"github.com/google/subcommands"
)

type statementCmd struct {
	account string
	month   string
	periods bool
}

func (*statementCmd) Name() string     { return "statement" }
func (*statementCmd) Synopsis() string { return "print the monthly statement of an account" }
func (*statementCmd) Usage() string {
	return `acc statement -a <account> [-m <YYYYMM>] [-periods]

  Prints the transactions of the account in the month with their running balance, and the
  interest earned over the month as a last line.
`
}

func (c *statementCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account to report on.")
	f.StringVar(&c.month, "m", date.Today().String()[:6], "Month of the statement, in YYYYMM format.")
	f.BoolVar(&c.periods, "periods", false, "Also print how the interest was computed.")
}

func (c *statementCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cmd, err := accrual.ParseMonthCommand(c.account + " " + c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	b, err := OpenBank()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	s, err := b.Statement(cmd.Account, cmd.Month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.StatementMarkdown(s, renderer.StatementOptions{Periods: c.periods}))
	return subcommands.ExitSuccess
}
