package accrual

import (
	"testing"
)

func TestRuleStore_RateOn(t *testing.T) {
	store := NewRuleStore(
		rule("20230615", "RULE03", "2.20"),
		rule("20230101", "RULE01", "1.95"),
		rule("20230520", "RULE02", "1.90"),
	)

	tests := []struct {
		on     string
		wantID string // "" for no rule
	}{
		{"20221231", ""},
		{"20230101", "RULE01"},
		{"20230519", "RULE01"},
		{"20230520", "RULE02"},
		{"20230614", "RULE02"},
		{"20230615", "RULE03"},
		{"20991231", "RULE03"},
	}
	for _, tc := range tests {
		t.Run(tc.on, func(t *testing.T) {
			r, ok := store.RateOn(day(tc.on))
			if tc.wantID == "" {
				if ok {
					t.Errorf("RateOn(%s) = %v, want none", tc.on, r)
				}
				return
			}
			if !ok || r.ID != tc.wantID {
				t.Errorf("RateOn(%s) = %v, %v, want %s", tc.on, r, ok, tc.wantID)
			}
		})
	}
}

func TestRuleStore_ReplaceOnDate(t *testing.T) {
	store := NewRuleStore(rule("20230101", "RULE01", "1.95"), rule("20230520", "RULE02", "1.90"))

	old, replaced := store.ReplaceOnDate(rule("20230520", "RULE04", "2.00"))
	if !replaced || old.ID != "RULE02" {
		t.Errorf("ReplaceOnDate() = %v, %v, want RULE02 replaced", old, replaced)
	}
	if _, replaced := store.ReplaceOnDate(rule("20230301", "RULE05", "1.00")); replaced {
		t.Error("ReplaceOnDate() on a new date must not replace anything")
	}

	want := []Rule{
		rule("20230101", "RULE01", "1.95"),
		rule("20230301", "RULE05", "1.00"),
		rule("20230520", "RULE04", "2.00"),
	}
	got := store.All()
	if len(got) != len(want) {
		t.Fatalf("All() = %v, want %v", got, want)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("All()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	// All returns a copy.
	got[0].ID = "CHANGED"
	if store.All()[0].ID != "RULE01" {
		t.Error("All() must return a copy of the rules")
	}
}

func TestRuleStore_Empty(t *testing.T) {
	store := NewRuleStore()
	if _, ok := store.RateOn(day("20230101")); ok {
		t.Error("RateOn() on an empty store must find no rule")
	}
	if store.Len() != 0 || len(store.All()) != 0 {
		t.Error("an empty store must have no rules")
	}
}
