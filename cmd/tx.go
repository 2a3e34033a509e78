package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/accrual"
	"github.com/etnz/accrual/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	account string
	json    bool
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the transactions of the ledger" }
func (*txCmd) Usage() string {
	return `acc tx [-a <account>] [-json]

  Lists the transactions of an account, or of every account. With -json, prints them in
  the ledger file format (JSONL) instead.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account to list. All accounts if empty.")
	f.BoolVar(&c.json, "json", false, "Print transactions as JSONL.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := OpenBank()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger := b.Ledger()
	if c.account != "" && !ledger.Has(c.account) {
		fmt.Fprintf(os.Stderr, "Error: %v: %q\n", accrual.ErrUnknownAccount, c.account)
		return subcommands.ExitFailure
	}

	if c.json {
		if c.account != "" {
			err = accrual.EncodeAccount(os.Stdout, ledger, c.account)
		} else {
			err = accrual.EncodeLedger(os.Stdout, ledger)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	accounts := []string{c.account}
	if c.account == "" {
		accounts = accounts[:0]
		for account := range ledger.Accounts() {
			accounts = append(accounts, account)
		}
	}
	for _, account := range accounts {
		printMarkdown(renderer.TransactionsMarkdown(account, ledger.Transactions(account)))
	}
	return subcommands.ExitSuccess
}
