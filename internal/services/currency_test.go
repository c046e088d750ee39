package services

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{"zero", decimal.Zero, "₹0"},
		{"small", decimal.NewFromInt(7), "₹7"},
		{"thousands grouped", decimal.NewFromInt(1234567), "₹1,234,567"},
		{"fraction truncated", decimal.RequireFromString("510.5"), "₹510"},
		{"fraction truncated not rounded", decimal.RequireFromString("999.99"), "₹999"},
		{"negative", decimal.NewFromInt(-2500), "₹-2,500"},
		{"negative fraction truncates toward zero", decimal.RequireFromString("-0.75"), "₹0"},
		{"beyond int64 falls back to plain string", decimal.New(1, 30), "₹1000000000000000000000000000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCurrency(tt.amount); got != tt.want {
				t.Errorf("FormatCurrency(%s) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{42, "42"},
		{1234, "1,234"},
		{9994571, "9,994,571"},
	}
	for _, tt := range tests {
		if got := FormatCount(tt.n); got != tt.want {
			t.Errorf("FormatCount(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
