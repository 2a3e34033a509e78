package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
)

type runCmd struct {
	file      string
	keepGoing bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "run a script of console commands" }
func (*runCmd) Usage() string {
	return `acc run [-f <script>] [-k]

  Runs console commands from a script, or from stdin. Each line starts with its menu key:

    T 20230601 AC001 D 100.00
    I 20230601 RULE01 2.20
    P AC001 202306
    C AC001 202306

  Blank lines and lines starting with '#' are ignored.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Script file to run. Reads stdin if empty.")
	f.BoolVar(&c.keepGoing, "k", false, "Keep going after a failing line.")
}

func (c *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var in io.Reader = os.Stdin
	if c.file != "" {
		file, err := os.Open(c.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			return subcommands.ExitUsageError
		}
		defer file.Close()
		in = file
	}

	b, err := OpenBank()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	failed, err := newSession(b, os.Stdout, renderMarkdown).Script(in, c.keepGoing)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d failed lines\n", failed)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
