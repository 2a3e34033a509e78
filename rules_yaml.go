package accrual

import (
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// rulesFile is the YAML layout of a rules seed file:
//
//	rules:
//	  - date: "20230101"
//	    id: RULE01
//	    rate: 1.95
type rulesFile struct {
	Rules []ruleEntry `yaml:"rules"`
}

// ruleEntry reads every field as text, rates are never decoded as floats.
type ruleEntry struct {
	Date string `yaml:"date"`
	ID   string `yaml:"id"`
	Rate string `yaml:"rate"`
}

func (e ruleEntry) rule() (Rule, error) {
	on, err := parseDay(e.Date)
	if err != nil {
		return Rule{}, err
	}
	rate, err := decimal.NewFromString(e.Rate)
	if err != nil {
		return Rule{}, fmt.Errorf("%w %q: not a number", ErrInvalidRate, e.Rate)
	}
	return NewRule(on, e.ID, rate), nil
}

// DecodeRules reads interest rules from a YAML seed file. An empty file holds no rule.
//
// Rules are only parsed, they are validated when added to a Bank.
func DecodeRules(r io.Reader) ([]Rule, error) {
	var file rulesFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	rules := make([]Rule, 0, len(file.Rules))
	var errs []error
	for i, e := range file.Rules {
		r, err := e.rule()
		if err != nil {
			errs = append(errs, fmt.Errorf("rule #%d: %w", i+1, err))
			continue
		}
		rules = append(rules, r)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return rules, nil
}

// EncodeRules writes rules in the YAML layout read by DecodeRules.
func EncodeRules(w io.Writer, rules []Rule) error {
	file := rulesFile{Rules: make([]ruleEntry, 0, len(rules))}
	for _, r := range rules {
		file.Rules = append(file.Rules, ruleEntry{Date: r.Date.String(), ID: r.ID, Rate: r.Rate.String()})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("failed to write YAML: %w", err)
	}
	return enc.Close()
}
