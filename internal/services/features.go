package services

import (
	"time"

	"github.com/shopspring/decimal"

	"sales-dashboard/internal/models"
)

var decimalOne = decimal.NewFromInt(1)

// deriveFeatures fills the computed columns in place. Every derivation is
// a pure function of the record's normalized fields, so re-deriving after
// a round trip through export yields identical values. Records with a
// null order date get Year 0 and a zero Month.
func deriveFeatures(records []models.Record) {
	for i := range records {
		r := &records[i]

		if r.OrderDate.IsZero() {
			r.Year = 0
			r.Month = time.Time{}
		} else {
			r.Year = r.OrderDate.Year()
			r.Month = monthOf(r.OrderDate)
		}

		qty := decimal.NewFromInt(int64(r.Quantity))
		r.UnitPrice = r.Sales.Div(qty)
		r.PriceAfterDiscount = r.UnitPrice.Mul(decimalOne.Sub(r.Discount))
		if r.Sales.IsZero() {
			r.ProfitMargin = decimal.Zero
		} else {
			r.ProfitMargin = r.Profit.Div(r.Sales)
		}
	}
}

// monthOf buckets a date to the first day of its calendar month in UTC.
func monthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
