package cmd

import (
	"flag"
	"slices"
	"strings"

	"github.com/etnz/accrual/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of acc: the global flags and every subcommand
// with its own flags.
//
// Install it with COMP_INSTALL=1 acc.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command, len(commands)),
		Flags: flagPredictors(flag.CommandLine),
	}
	for _, c := range commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		root.Sub[c.Name()] = &complete.Command{Flags: flagPredictors(fs)}
	}
	topics, _ := docs.GetAllTopics()
	root.Sub["topic"].Args = predict.Set(append(topics, "readme"))
	return root
}

func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		switch {
		case isBoolFlag(f):
			flags[f.Name] = predict.Nothing
		case f.Name == "f" || f.Name == "feed" || strings.HasSuffix(f.Name, "-file"):
			flags[f.Name] = predict.Files("*")
		case f.Name == "a":
			flags[f.Name] = complete.PredictFunc(predictAccounts)
		default:
			flags[f.Name] = predict.Something
		}
	})
	return flags
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// predictAccounts completes account ids from the ledger seed file.
func predictAccounts(prefix string) []string {
	b, err := OpenBank()
	if err != nil {
		return nil
	}
	var accounts []string
	for account := range b.Ledger().Accounts() {
		if strings.HasPrefix(account, prefix) {
			accounts = append(accounts, account)
		}
	}
	return slices.Clip(accounts)
}
