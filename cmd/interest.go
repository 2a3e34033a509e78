package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/accrual/date"
	"github.com/etnz/accrual/renderer"
	"github.com/google/subcommands"
)

type interestCmd struct {
	account string
	start   string
	end     string
}

func (*interestCmd) Name() string     { return "interest" }
func (*interestCmd) Synopsis() string { return "compute the interest of an account over a date range" }
func (*interestCmd) Usage() string {
	return `acc interest -a <account> -s <start_date> [-e <end_date>]

  Computes the simple daily interest earned by the account from start to end, both
  included, and shows the periods of constant balance and rate it is made of.
  See 'acc topic interest' for the formula.
`
}

func (c *interestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account to compute the interest of.")
	f.StringVar(&c.start, "s", "-1m", "First day of the range. See the user manual for supported date formats.")
	f.StringVar(&c.end, "e", "0d", "Last day of the range.")
}

func (c *interestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		fmt.Fprintln(os.Stderr, "Error: -a is required.")
		return subcommands.ExitUsageError
	}
	from, err := date.Parse(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}
	to, err := date.Parse(c.end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
		return subcommands.ExitUsageError
	}

	b, err := OpenBank()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	e := b.Engine()
	periods := e.Periods(c.account, from, to)
	interest := b.M(e.ComputeInterest(c.account, from, to))
	printMarkdown(renderer.InterestMarkdown(c.account, date.NewRange(from, to), periods, interest))
	return subcommands.ExitSuccess
}
