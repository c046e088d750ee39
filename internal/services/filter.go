package services

import (
	"slices"
	"strconv"
	"strings"

	"sales-dashboard/internal/models"
)

// View is a filtered slice of the dataset: the included row indexes plus
// a handle back to the immutable base. Views are request-scoped and cheap
// to build; aggregations run off them without copying records.
type View struct {
	ds   *Dataset
	rows []int
}

// Filter applies the conjunction of all active predicates and returns a
// fresh View. A predicate at its no-op value ("All", empty selection,
// blank search) is skipped entirely, so an all-default selection yields
// the complete dataset.
func (d *Dataset) Filter(f models.Filter) *View {
	yearActive, year := false, 0
	if f.Year != "" && f.Year != models.FilterAll {
		if y, err := strconv.Atoi(strings.TrimSpace(f.Year)); err == nil {
			yearActive, year = true, y
		}
	}

	regionActive := f.Region != "" && f.Region != models.FilterAll

	categoryActive := len(f.Categories) > 0 && !slices.Contains(f.Categories, models.FilterAll)
	var categories map[string]struct{}
	if categoryActive {
		categories = make(map[string]struct{}, len(f.Categories))
		for _, c := range f.Categories {
			categories[c] = struct{}{}
		}
	}

	search := strings.ToLower(strings.TrimSpace(f.Search))

	rows := make([]int, 0, len(d.Records))
	for i := range d.Records {
		r := &d.Records[i]
		if yearActive && r.Year != year {
			continue
		}
		if regionActive && r.Region != f.Region {
			continue
		}
		if categoryActive {
			if _, ok := categories[r.Category]; !ok {
				continue
			}
		}
		if search != "" && !matchesCustomer(r, search) {
			continue
		}
		rows = append(rows, i)
	}

	return &View{ds: d, rows: rows}
}

// matchesCustomer reports whether the lowered query is a substring of
// either the customer ID or the customer name.
func matchesCustomer(r *models.Record, query string) bool {
	return strings.Contains(strings.ToLower(r.CustomerID), query) ||
		strings.Contains(strings.ToLower(r.CustomerName), query)
}

// Len reports how many records the view includes.
func (v *View) Len() int {
	return len(v.rows)
}

// Records materializes a copy of the included rows in dataset order.
func (v *View) Records() []models.Record {
	out := make([]models.Record, len(v.rows))
	for i, idx := range v.rows {
		out[i] = v.ds.Records[idx]
	}
	return out
}
