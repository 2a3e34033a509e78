package accrual

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/accrual/date"
	"github.com/shopspring/decimal"
)

// DefaultFeedPath selects a top-level array of rules.
const DefaultFeedPath = "$[*]"

// ImportRules reads interest rules from a JSON rate feed.
//
// The JSONPath expression 'path' selects the rule objects in the document, each one with a
// "date", an "id" and a "rate" field. Dates can be in YYYYMMDD or ISO form, rates can be
// numbers or strings. Every invalid entry is reported.
func ImportRules(r io.Reader, path string) ([]Rule, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber() // rates must not go through float64
	var jobj any
	if err := decoder.Decode(&jobj); err != nil {
		return nil, fmt.Errorf("error decoding rate feed: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error selecting %q in rate feed: %w", path, err)
	}
	// jsonpath returns a list for wildcards and a single value otherwise.
	jlist, ok := jval.([]any)
	if !ok {
		jlist = []any{jval}
	}

	rules := make([]Rule, 0, len(jlist))
	var errs []error
	for i, item := range jlist {
		r, err := feedRule(item)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s #%d: %w", path, i, err))
			continue
		}
		rules = append(rules, r)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return rules, nil
}

func feedRule(item any) (Rule, error) {
	obj, ok := item.(map[string]any)
	if !ok {
		return Rule{}, fmt.Errorf("want an object, got %T", item)
	}
	str, _ := obj["date"].(string)
	on, err := date.Parse(str)
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	id, _ := obj["id"].(string)

	var rate decimal.Decimal
	switch v := obj["rate"].(type) {
	case json.Number:
		rate, err = decimal.NewFromString(v.String())
	case string:
		rate, err = decimal.NewFromString(v)
	default:
		err = fmt.Errorf("unsupported type %T", v)
	}
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %v", ErrInvalidRate, err)
	}
	return NewRule(on, id, rate), nil
}
