package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type consoleCmd struct{}

func (*consoleCmd) Name() string     { return "console" }
func (*consoleCmd) Synopsis() string { return "run the interactive banking console" }
func (*consoleCmd) Usage() string {
	return `acc console

  Starts the interactive menu: input transactions, define interest rules, print
  statements and credit monthly interest. The session starts from the seed files and
  nothing is saved when it ends.
`
}

func (c *consoleCmd) SetFlags(f *flag.FlagSet) {}

func (c *consoleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := OpenBank()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := newSession(b, os.Stdout, renderMarkdown).Console(os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
