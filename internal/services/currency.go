package services

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const currencySymbol = "₹"

var displayPrinter = message.NewPrinter(language.English)

// FormatCurrency renders an amount as a whole-currency figure with digit
// grouping, e.g. ₹1,234,567. The fraction truncates rather than rounds;
// amounts whose integer part overflows int64 fall back to the plain
// decimal string.
func FormatCurrency(amount decimal.Decimal) string {
	whole := amount.BigInt()
	if !whole.IsInt64() {
		return currencySymbol + amount.String()
	}
	return displayPrinter.Sprintf("%s%d", currencySymbol, whole.Int64())
}

// FormatCount renders an integer with the same digit grouping.
func FormatCount(n int) string {
	return displayPrinter.Sprintf("%d", n)
}
