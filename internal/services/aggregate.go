package services

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"sales-dashboard/internal/models"
)

// noDataMessage replaces the computed insights when the filter selection
// matches zero rows.
const noDataMessage = "No sales data for selected filters."

const monthLabel = "2006-01"

// Summary computes the scalar KPIs and the quick-insight lines for the
// view. Every ratio carries an explicit zero-denominator branch, and an
// empty view reports NoData instead of a sea of zeros.
func (v *View) Summary() models.Summary {
	s := models.Summary{Rows: v.Len()}

	var revenue, profit decimal.Decimal
	for _, idx := range v.rows {
		r := &v.ds.Records[idx]
		revenue = revenue.Add(r.Sales)
		profit = profit.Add(r.Profit)
	}
	s.TotalRevenue = revenue
	s.TotalProfit = profit

	s.Orders = v.orderCount()
	if s.Orders > 0 {
		s.AvgOrderValue = revenue.Div(decimal.NewFromInt(int64(s.Orders)))
	}
	s.RepeatCustomerPct = v.repeatCustomerPct()

	s.TotalRevenueDisplay = FormatCurrency(s.TotalRevenue)
	s.TotalProfitDisplay = FormatCurrency(s.TotalProfit)
	s.OrdersDisplay = FormatCount(s.Orders)
	s.AvgOrderDisplay = FormatCurrency(s.AvgOrderValue)

	if v.Len() == 0 {
		s.NoData = true
		s.Insights = []string{noDataMessage}
		return s
	}

	s.Insights = v.insights(s.RepeatCustomerPct)
	return s
}

// orderCount is the number of distinct non-empty Order IDs when the
// source carried the column, else the raw row count. Multi-line orders
// therefore count once per order only in the first mode.
func (v *View) orderCount() int {
	if !v.ds.HasOrderID {
		return v.Len()
	}
	seen := make(map[string]struct{})
	for _, idx := range v.rows {
		if id := v.ds.Records[idx].OrderID; id != "" {
			seen[id] = struct{}{}
		}
	}
	return len(seen)
}

// repeatCustomerPct is the share of customer groups with more than one
// row, as a percentage. The ratio is over customers, not rows.
func (v *View) repeatCustomerPct() float64 {
	rowsPer := make(map[string]int)
	for _, idx := range v.rows {
		rowsPer[v.ds.Records[idx].CustomerID]++
	}
	if len(rowsPer) == 0 {
		return 0
	}
	repeat := 0
	for _, n := range rowsPer {
		if n > 1 {
			repeat++
		}
	}
	return float64(repeat) / float64(len(rowsPer)) * 100
}

func (v *View) insights(repeatPct float64) []string {
	topCategory := "N/A"
	if cats := v.TopCategories(1); len(cats) > 0 {
		topCategory = cats[0].Category
	}
	topRegion := "N/A"
	if regions := v.RegionBreakdown(); len(regions) > 0 {
		topRegion = regions[0].Region
	}
	return []string{
		fmt.Sprintf("Top category by revenue: %s", topCategory),
		fmt.Sprintf("Top region by revenue: %s", topRegion),
		fmt.Sprintf("Repeat customers: %.1f%% of customers made more than one order", repeatPct),
	}
}

// MonthlyRevenue sums Sales per calendar month and gap-fills the axis so
// every month between the earliest and latest appears, zero-valued when
// no row fell in it. Rows without a parseable order date stay out of the
// series.
func (v *View) MonthlyRevenue() []models.MonthlyRevenue {
	sums := make(map[time.Time]decimal.Decimal)
	var first, last time.Time
	for _, idx := range v.rows {
		r := &v.ds.Records[idx]
		if r.Month.IsZero() {
			continue
		}
		sums[r.Month] = sums[r.Month].Add(r.Sales)
		if first.IsZero() || r.Month.Before(first) {
			first = r.Month
		}
		if r.Month.After(last) {
			last = r.Month
		}
	}

	out := make([]models.MonthlyRevenue, 0, len(sums))
	if len(sums) == 0 {
		return out
	}
	for m := first; !m.After(last); m = m.AddDate(0, 1, 0) {
		out = append(out, models.MonthlyRevenue{Month: m.Format(monthLabel), Sales: sums[m]})
	}
	return out
}

// TopCategories ranks categories by summed Sales, descending, ties kept
// in first-seen dataset order. A limit of zero or less means unlimited.
func (v *View) TopCategories(limit int) []models.CategoryRevenue {
	var order []string
	sums := make(map[string]decimal.Decimal)
	for _, idx := range v.rows {
		r := &v.ds.Records[idx]
		if _, ok := sums[r.Category]; !ok {
			order = append(order, r.Category)
		}
		sums[r.Category] = sums[r.Category].Add(r.Sales)
	}

	out := make([]models.CategoryRevenue, 0, len(order))
	for _, c := range order {
		out = append(out, models.CategoryRevenue{Category: c, Sales: sums[c]})
	}
	slices.SortStableFunc(out, func(a, b models.CategoryRevenue) int {
		return b.Sales.Cmp(a.Sales)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// RegionBreakdown ranks every region by summed Sales, descending, ties
// kept in first-seen dataset order.
func (v *View) RegionBreakdown() []models.RegionRevenue {
	var order []string
	sums := make(map[string]decimal.Decimal)
	for _, idx := range v.rows {
		r := &v.ds.Records[idx]
		if _, ok := sums[r.Region]; !ok {
			order = append(order, r.Region)
		}
		sums[r.Region] = sums[r.Region].Add(r.Sales)
	}

	out := make([]models.RegionRevenue, 0, len(order))
	for _, reg := range order {
		out = append(out, models.RegionRevenue{Region: reg, Sales: sums[reg]})
	}
	slices.SortStableFunc(out, func(a, b models.RegionRevenue) int {
		return b.Sales.Cmp(a.Sales)
	})
	return out
}

// TopProducts ranks products by summed Sales, descending, ties kept in
// first-seen dataset order.
func (v *View) TopProducts(limit int) []models.ProductRevenue {
	var order []string
	sums := make(map[string]decimal.Decimal)
	for _, idx := range v.rows {
		r := &v.ds.Records[idx]
		if _, ok := sums[r.ProductName]; !ok {
			order = append(order, r.ProductName)
		}
		sums[r.ProductName] = sums[r.ProductName].Add(r.Sales)
	}

	out := make([]models.ProductRevenue, 0, len(order))
	for _, p := range order {
		out = append(out, models.ProductRevenue{ProductName: p, Sales: sums[p]})
	}
	slices.SortStableFunc(out, func(a, b models.ProductRevenue) int {
		return b.Sales.Cmp(a.Sales)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// TopCustomers ranks customers by summed Sales, descending. Customers
// group by the ID and name pair so distinct names under a reused ID stay
// separate rows.
func (v *View) TopCustomers(limit int) []models.CustomerRevenue {
	type customerKey struct {
		id   string
		name string
	}
	var order []customerKey
	sums := make(map[customerKey]decimal.Decimal)
	for _, idx := range v.rows {
		r := &v.ds.Records[idx]
		k := customerKey{id: r.CustomerID, name: r.CustomerName}
		if _, ok := sums[k]; !ok {
			order = append(order, k)
		}
		sums[k] = sums[k].Add(r.Sales)
	}

	out := make([]models.CustomerRevenue, 0, len(order))
	for _, k := range order {
		out = append(out, models.CustomerRevenue{CustomerID: k.id, CustomerName: k.name, Sales: sums[k]})
	}
	slices.SortStableFunc(out, func(a, b models.CustomerRevenue) int {
		return b.Sales.Cmp(a.Sales)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// FilterOptions computes the selector choices from the full dataset:
// years newest first (year 0 marks records without a parseable date),
// regions and categories alphabetical.
func (d *Dataset) FilterOptions() models.FilterOptions {
	years := make(map[int]struct{})
	regions := make(map[string]struct{})
	categories := make(map[string]struct{})
	for i := range d.Records {
		r := &d.Records[i]
		years[r.Year] = struct{}{}
		regions[r.Region] = struct{}{}
		categories[r.Category] = struct{}{}
	}

	opts := models.FilterOptions{
		Years:      make([]int, 0, len(years)),
		Regions:    make([]string, 0, len(regions)),
		Categories: make([]string, 0, len(categories)),
	}
	for y := range years {
		opts.Years = append(opts.Years, y)
	}
	slices.Sort(opts.Years)
	slices.Reverse(opts.Years)
	for r := range regions {
		opts.Regions = append(opts.Regions, r)
	}
	slices.Sort(opts.Regions)
	for c := range categories {
		opts.Categories = append(opts.Categories, c)
	}
	slices.Sort(opts.Categories)
	return opts
}
