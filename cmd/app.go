// Package cmd implements the acc command line application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/accrual"
	"github.com/etnz/accrual/config"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	ledgerFile      = flag.String("ledger-file", "", "Path to the ledger seed file (JSONL format). Never written to.")
	rulesFile       = flag.String("rules-file", "", "Path to the interest rules seed file (YAML, or a JSON rate feed with a .json extension).")
	defaultCurrency = flag.String("currency", accrual.DefaultCurrency, "Display currency of amounts.")
	Verbose         = flag.Bool("v", false, "Log notable changes to stderr.")
	raw             = flag.Bool("raw", false, "Print markdown source instead of rendering it for the terminal.")
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range commands {
		c.Register(cmd.Command, cmd.group)
	}
}

type registered struct {
	subcommands.Command
	group string
}

var commands = []registered{
	{&consoleCmd{}, "session"},
	{&runCmd{}, "session"},
	{&statementCmd{}, "reports"},
	{&interestCmd{}, "reports"},
	{&txCmd{}, "reports"},
	{&rulesCmd{}, "reports"},
	{&topicCmd{}, "help"},
}

// Configure sets the global flag values from the configuration. It must be called before
// flag.Parse so that flags on the command line take precedence.
func Configure(c *config.Config) {
	*ledgerFile = c.LedgerFile
	*rulesFile = c.RulesFile
	if c.Currency != "" {
		*defaultCurrency = c.Currency
	}
	*Verbose = c.Verbose
}

// Settings returns the configuration in effect after flag parsing.
func Settings() *config.Config {
	return &config.Config{
		LedgerFile: *ledgerFile,
		RulesFile:  *rulesFile,
		Currency:   *defaultCurrency,
		Verbose:    *Verbose,
	}
}

// SetupLogging silences the log package unless verbose.
func SetupLogging() {
	log.SetFlags(0)
	if !*Verbose {
		log.SetOutput(io.Discard)
	}
}

// OpenBank creates the session bank from the seed files. A missing seed file is not an
// error, the bank starts empty.
func OpenBank() (*accrual.Bank, error) {
	ledger := accrual.NewLedger()
	if *ledgerFile != "" {
		l, err := decodeFile(*ledgerFile, accrual.DecodeLedger)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Printf("warning, ledger %q does not exist, starting with an empty ledger", *ledgerFile)
		case err != nil:
			return nil, err
		default:
			ledger = l
		}
	}

	b := accrual.NewBank(ledger, accrual.NewRuleStore(), *defaultCurrency)
	if *rulesFile == "" {
		return b, nil
	}
	rules, err := decodeFile(*rulesFile, decodeRules(*rulesFile))
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, rules %q do not exist, starting without interest rules", *rulesFile)
		return b, nil
	}
	if err != nil {
		return nil, err
	}
	var errs []error
	for _, r := range rules {
		if err := b.AddRule(r); err != nil {
			errs = append(errs, fmt.Errorf("rule %s: %w", r, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid rules in %q: %w", *rulesFile, err)
	}
	return b, nil
}

// decodeRules picks the rules decoder from the file extension.
func decodeRules(name string) func(io.Reader) ([]accrual.Rule, error) {
	if strings.EqualFold(filepath.Ext(name), ".json") {
		return func(r io.Reader) ([]accrual.Rule, error) { return accrual.ImportRules(r, accrual.DefaultFeedPath) }
	}
	return accrual.DecodeRules
}

// decodeFile opens a file and decodes it.
func decodeFile[T any](name string, decode func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(name)
	if err != nil {
		return zero, err
	}
	defer f.Close()
	v, err := decode(f)
	if err != nil {
		return zero, fmt.Errorf("error decoding %q: %w", name, err)
	}
	return v, nil
}

// renderMarkdown renders markdown for the terminal, or returns it as is with -raw.
func renderMarkdown(md string) string {
	if *raw {
		return md
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		log.Printf("cannot render markdown: %v", err)
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		log.Printf("cannot render markdown: %v", err)
		return md
	}
	return out
}

// printMarkdown prints markdown to stdout.
func printMarkdown(md string) {
	fmt.Print(renderMarkdown(md))
}
