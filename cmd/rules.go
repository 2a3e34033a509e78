package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/accrual"
	"github.com/etnz/accrual/renderer"
	"github.com/google/subcommands"
)

type rulesCmd struct {
	feed string
	path string
	yaml bool
}

func (*rulesCmd) Name() string     { return "rules" }
func (*rulesCmd) Synopsis() string { return "list the interest rules" }
func (*rulesCmd) Usage() string {
	return `acc rules [-feed <file.json> [-path <jsonpath>]] [-yaml]

  Lists the interest rules of the rules seed file, completed by the rules of a JSON rate
  feed. A feed rule replaces a seed rule on the same date. With -yaml, prints them in the
  rules seed file format, e.g. to turn a rate feed into a seed file.
`
}

func (c *rulesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.feed, "feed", "", "JSON rate feed to import rules from.")
	f.StringVar(&c.path, "path", accrual.DefaultFeedPath, "JSONPath expression selecting the rules in the feed.")
	f.BoolVar(&c.yaml, "yaml", false, "Print rules as YAML.")
}

func (c *rulesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := OpenBank()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.feed != "" {
		rules, err := decodeFile(c.feed, func(r io.Reader) ([]accrual.Rule, error) { return accrual.ImportRules(r, c.path) })
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		for _, r := range rules {
			if err := b.AddRule(r); err != nil {
				fmt.Fprintf(os.Stderr, "Error: rule %s: %v\n", r, err)
				return subcommands.ExitFailure
			}
		}
	}

	if c.yaml {
		if err := accrual.EncodeRules(os.Stdout, b.Rules().All()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.RulesMarkdown(b.Rules().All()))
	return subcommands.ExitSuccess
}
