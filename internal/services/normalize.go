package services

import (
	"context"
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zeebo/xxh3"
	"golang.org/x/sync/errgroup"

	"sales-dashboard/internal/models"
)

const (
	batchSize  = 10000
	maxWorkers = 10

	unknownValue = "Unknown"
	keySeparator = '\x1f'
	utf8BOM      = "﻿"
)

// Source column names, matched exactly after header trimming. Absent
// columns are tolerated; their cells coerce to the field defaults.
const (
	colOrderID      = "Order ID"
	colOrderDate    = "Order Date"
	colCustomerID   = "Customer ID"
	colCustomerName = "Customer Name"
	colRegion       = "Region"
	colCategory     = "Category"
	colProductName  = "Product Name"
	colSales        = "Sales"
	colProfit       = "Profit"
	colQuantity     = "Quantity"
	colDiscount     = "Discount"
)

// Order-date layouts tried in sequence; the first match wins.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
	time.RFC3339,
	"2006/01/02",
	"02-Jan-2006",
}

// Dataset is the immutable working set: normalized, deduplicated and
// feature-enriched records in source order. A loaded dataset is shared
// read-only across requests; filtering always produces a fresh View.
type Dataset struct {
	Records           []models.Record
	HasOrderID        bool
	Source            string
	LoadedAt          time.Time
	SkippedRows       int
	DuplicatesDropped int
}

// columnIndex holds the position of each recognized column, -1 when the
// header did not carry it.
type columnIndex struct {
	orderID      int
	orderDate    int
	customerID   int
	customerName int
	region       int
	category     int
	productName  int
	sales        int
	profit       int
	quantity     int
	discount     int
}

func resolveColumns(headers []string) columnIndex {
	cols := columnIndex{
		orderID:      -1,
		orderDate:    -1,
		customerID:   -1,
		customerName: -1,
		region:       -1,
		category:     -1,
		productName:  -1,
		sales:        -1,
		profit:       -1,
		quantity:     -1,
		discount:     -1,
	}
	for i, h := range headers {
		switch h {
		case colOrderID:
			cols.orderID = i
		case colOrderDate:
			cols.orderDate = i
		case colCustomerID:
			cols.customerID = i
		case colCustomerName:
			cols.customerName = i
		case colRegion:
			cols.region = i
		case colCategory:
			cols.category = i
		case colProductName:
			cols.productName = i
		case colSales:
			cols.sales = i
		case colProfit:
			cols.profit = i
		case colQuantity:
			cols.quantity = i
		case colDiscount:
			cols.discount = i
		}
	}
	return cols
}

// buildDataset runs the full load pipeline over one CSV stream: read the
// rows, normalize them in parallel batches, drop exact duplicates keeping
// first occurrences, then derive the computed columns.
func buildDataset(ctx context.Context, r io.Reader, source string) (*Dataset, error) {
	reader := csv.NewReader(r)

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	headers[0] = strings.TrimPrefix(headers[0], utf8BOM)
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}
	cols := resolveColumns(headers)

	var rows [][]string
	skipped := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil && !stderrors.Is(err, csv.ErrFieldCount) {
			skipped++
			continue
		}
		// Short and long rows still carry data; the per-cell defaults
		// cover whatever is missing.
		rows = append(rows, row)
	}

	records := make([]models.Record, len(rows))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxWorkers)
	for start := 0; start < len(rows); start += batchSize {
		end := min(start+batchSize, len(rows))
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			for i := start; i < end; i++ {
				records[i] = normalizeRow(cols, rows[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	deduped, dropped := dedupRecords(records)
	deriveFeatures(deduped)

	return &Dataset{
		Records:           deduped,
		HasOrderID:        cols.orderID >= 0,
		Source:            source,
		LoadedAt:          time.Now(),
		SkippedRows:       skipped,
		DuplicatesDropped: dropped,
	}, nil
}

// normalizeRow coerces one raw row into a typed record. Cell-level
// problems never fail the row: bad numbers become their defaults and
// missing categoricals become "Unknown".
func normalizeRow(cols columnIndex, row []string) models.Record {
	cell := func(idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	return models.Record{
		OrderID:      cell(cols.orderID),
		OrderDate:    parseOrderDate(cell(cols.orderDate)),
		CustomerID:   orUnknown(cell(cols.customerID)),
		CustomerName: orUnknown(cell(cols.customerName)),
		Region:       orUnknown(cell(cols.region)),
		Category:     orUnknown(cell(cols.category)),
		ProductName:  cell(cols.productName),
		Sales:        parseSales(cell(cols.sales)),
		Profit:       parseAmount(cell(cols.profit)),
		Quantity:     parseQuantity(cell(cols.quantity)),
		Discount:     parseAmount(cell(cols.discount)),
	}
}

// parseAmount coerces a financial cell to a decimal, defaulting to zero.
func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseSales additionally floors at zero: sales amounts are non-negative
// by contract, while profit and discount keep their sign.
func parseSales(s string) decimal.Decimal {
	d := parseAmount(s)
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// parseQuantity truncates to an integer and never returns less than 1,
// so unit-price division is always defined.
func parseQuantity(s string) int {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 1
	}
	n := int(d.IntPart())
	if n <= 0 {
		return 1
	}
	return n
}

func parseOrderDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

func orUnknown(s string) string {
	if s == "" {
		return unknownValue
	}
	return s
}

// dedupRecords collapses rows that are identical across every normalized
// field, keeping the first occurrence in source order.
func dedupRecords(records []models.Record) ([]models.Record, int) {
	seen := make(map[xxh3.Uint128]struct{}, len(records))
	out := make([]models.Record, 0, len(records))
	dropped := 0
	for i := range records {
		key := xxh3.HashString128(dedupKey(&records[i]))
		if _, ok := seen[key]; ok {
			dropped++
			continue
		}
		seen[key] = struct{}{}
		out = append(out, records[i])
	}
	return out, dropped
}

// dedupKey encodes the normalized fields joined by a separator that
// cannot appear in cell data, so field boundaries never collide.
func dedupKey(r *models.Record) string {
	var b strings.Builder
	b.WriteString(r.OrderID)
	b.WriteByte(keySeparator)
	b.WriteString(r.OrderDate.Format(time.RFC3339))
	b.WriteByte(keySeparator)
	b.WriteString(r.CustomerID)
	b.WriteByte(keySeparator)
	b.WriteString(r.CustomerName)
	b.WriteByte(keySeparator)
	b.WriteString(r.Region)
	b.WriteByte(keySeparator)
	b.WriteString(r.Category)
	b.WriteByte(keySeparator)
	b.WriteString(r.ProductName)
	b.WriteByte(keySeparator)
	b.WriteString(canonicalAmount(r.Sales))
	b.WriteByte(keySeparator)
	b.WriteString(canonicalAmount(r.Profit))
	b.WriteByte(keySeparator)
	b.WriteString(strconv.Itoa(r.Quantity))
	b.WriteByte(keySeparator)
	b.WriteString(canonicalAmount(r.Discount))
	return b.String()
}

// canonicalAmount renders numerically equal decimals identically, so
// source cells "1.5" and "1.50" collapse to the same key.
func canonicalAmount(d decimal.Decimal) string {
	return strconv.FormatFloat(d.InexactFloat64(), 'g', -1, 64)
}
