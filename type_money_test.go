package accrual

import "testing"

func TestMoney(t *testing.T) {
	tests := []struct {
		value string
		cur   string
		str   string
		fixed string
	}{
		{"1234.5", "USD", "$1,234.50", "1234.50"},
		{"0.005", "SGD", "$0.01", "0.01"},
		{"130", "SGD", "$130.00", "130.00"},
	}
	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			m := M(dec(tc.value), tc.cur)
			if got := m.String(); got != tc.str {
				t.Errorf("String() = %q, want %q", got, tc.str)
			}
			if got := m.Fixed(); got != tc.fixed {
				t.Errorf("Fixed() = %q, want %q", got, tc.fixed)
			}
		})
	}

	if !SGD("1").Add(dec("0.5")).Equal(SGD("1.5")) {
		t.Error("Add() mismatch")
	}
	if SGD("1").Equal(M(dec("1"), "USD")) {
		t.Error("Equal() must compare currencies")
	}
}
