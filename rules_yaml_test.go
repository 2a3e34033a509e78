package accrual

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestDecodeRules(t *testing.T) {
	input := `
rules:
  - date: 20230101
    id: RULE01
    rate: 1.95
  - date: "20230520"
    id: RULE02
    rate: "1.90"
  - date: 20230615
    id: RULE03
    rate: 2.20
`
	got, err := DecodeRules(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeRules() failed: %v", err)
	}
	want := []Rule{
		rule("20230101", "RULE01", "1.95"),
		rule("20230520", "RULE02", "1.90"),
		rule("20230615", "RULE03", "2.20"),
	}
	if len(got) != len(want) {
		t.Fatalf("DecodeRules() = %v, want %v", got, want)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("rule #%d = %v, want %v", i, got[i], want[i])
		}
	}

	// The exact rate text is kept.
	if got[2].Rate.String() != "2.2" || got[2].Rate.Exponent() != -2 {
		t.Errorf("rate = %s (exp %d), want 2.20", got[2].Rate, got[2].Rate.Exponent())
	}
}

func TestDecodeRules_Empty(t *testing.T) {
	got, err := DecodeRules(strings.NewReader(""))
	if err != nil || len(got) != 0 {
		t.Errorf("DecodeRules(\"\") = %v, %v, want no rules", got, err)
	}
}

func TestDecodeRules_Errors(t *testing.T) {
	input := `
rules:
  - date: 20230230
    id: RULE01
    rate: 1.95
  - date: 20230520
    id: RULE02
    rate: abc
`
	_, err := DecodeRules(strings.NewReader(input))
	if !errors.Is(err, ErrInvalidDate) || !errors.Is(err, ErrInvalidRate) {
		t.Errorf("DecodeRules() error = %v, want both an invalid date and an invalid rate", err)
	}
}

func TestEncodeRules(t *testing.T) {
	rules := []Rule{rule("20230101", "RULE01", "1.95"), rule("20230615", "RULE03", "2.20")}
	var buf bytes.Buffer
	if err := EncodeRules(&buf, rules); err != nil {
		t.Fatalf("EncodeRules() failed: %v", err)
	}
	back, err := DecodeRules(&buf)
	if err != nil {
		t.Fatalf("DecodeRules() failed: %v", err)
	}
	if len(back) != len(rules) {
		t.Fatalf("DecodeRules() = %v, want %v", back, rules)
	}
	for i := range rules {
		if !back[i].Equal(rules[i]) {
			t.Errorf("rule #%d = %v, want %v", i, back[i], rules[i])
		}
	}
}
