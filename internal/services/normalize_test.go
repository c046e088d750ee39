package services

import (
	"context"
	"strings"
	"testing"

	"sales-dashboard/internal/models"
)

const csvHeader = "Order ID,Order Date,Customer ID,Customer Name,Region,Category,Product Name,Sales,Profit,Quantity,Discount\n"

const sampleCSV = csvHeader +
	"ORD-1,2024-01-05,CUST-1,Acme Corp,East,Furniture,Desk,100,20,2,0.1\n" +
	"ORD-2,2024-02-10,CUST-2,Beta LLC,West,Technology,Phone,250.5,-10.25,1,0\n" +
	"ORD-2,2024-02-10,CUST-2,Beta LLC,West,Technology,Cable,25,5,3,0\n" +
	"ORD-3,2023-11-20,CUST-1,Acme Corp,East,Office Supplies,Paper,75,15,5,0.2\n"

func mustBuildDataset(t *testing.T, csvData string) *Dataset {
	t.Helper()
	ds, err := buildDataset(context.Background(), strings.NewReader(csvData), "test.csv")
	if err != nil {
		t.Fatalf("buildDataset: %v", err)
	}
	return ds
}

func TestBuildDatasetSample(t *testing.T) {
	ds := mustBuildDataset(t, sampleCSV)

	if len(ds.Records) != 4 {
		t.Fatalf("records = %d, want 4", len(ds.Records))
	}
	if !ds.HasOrderID {
		t.Error("HasOrderID = false, want true")
	}
	if ds.SkippedRows != 0 {
		t.Errorf("SkippedRows = %d, want 0", ds.SkippedRows)
	}

	r := ds.Records[0]
	if r.OrderID != "ORD-1" || r.CustomerName != "Acme Corp" || r.Region != "East" {
		t.Errorf("unexpected first record: %+v", r)
	}
	if r.OrderDate.Year() != 2024 || r.OrderDate.Month() != 1 {
		t.Errorf("OrderDate = %v, want 2024-01-05", r.OrderDate)
	}
}

func TestNormalizeRowCoercion(t *testing.T) {
	tests := []struct {
		name         string
		row          string
		wantSales    string
		wantProfit   string
		wantQty      int
		wantDiscount string
		wantRegion   string
		wantYear     int
	}{
		{
			name:      "clean row",
			row:       "O1,2024-01-05,C1,Acme,East,Furniture,Desk,100,20,2,0.1",
			wantSales: "100", wantProfit: "20", wantQty: 2, wantDiscount: "0.1",
			wantRegion: "East", wantYear: 2024,
		},
		{
			name:      "unparsable sales defaults to zero",
			row:       "O1,2024-01-05,C1,Acme,East,Furniture,Desk,abc,20,2,0",
			wantSales: "0", wantProfit: "20", wantQty: 2, wantDiscount: "0",
			wantRegion: "East", wantYear: 2024,
		},
		{
			name:      "negative sales floored at zero",
			row:       "O1,2024-01-05,C1,Acme,East,Furniture,Desk,-50,20,2,0",
			wantSales: "0", wantProfit: "20", wantQty: 2, wantDiscount: "0",
			wantRegion: "East", wantYear: 2024,
		},
		{
			name:      "negative profit keeps sign",
			row:       "O1,2024-01-05,C1,Acme,East,Furniture,Desk,100,-33.5,2,0",
			wantSales: "100", wantProfit: "-33.5", wantQty: 2, wantDiscount: "0",
			wantRegion: "East", wantYear: 2024,
		},
		{
			name:      "empty quantity defaults to one",
			row:       "O1,2024-01-05,C1,Acme,East,Furniture,Desk,100,20,,0",
			wantSales: "100", wantProfit: "20", wantQty: 1, wantDiscount: "0",
			wantRegion: "East", wantYear: 2024,
		},
		{
			name:      "fractional quantity truncates",
			row:       "O1,2024-01-05,C1,Acme,East,Furniture,Desk,100,20,2.9,0",
			wantSales: "100", wantProfit: "20", wantQty: 2, wantDiscount: "0",
			wantRegion: "East", wantYear: 2024,
		},
		{
			name:      "non-positive quantity coerces to one",
			row:       "O1,2024-01-05,C1,Acme,East,Furniture,Desk,100,20,-3,0",
			wantSales: "100", wantProfit: "20", wantQty: 1, wantDiscount: "0",
			wantRegion: "East", wantYear: 2024,
		},
		{
			name:      "out of range discount passes through",
			row:       "O1,2024-01-05,C1,Acme,East,Furniture,Desk,100,20,2,1.5",
			wantSales: "100", wantProfit: "20", wantQty: 2, wantDiscount: "1.5",
			wantRegion: "East", wantYear: 2024,
		},
		{
			name:      "empty region becomes Unknown",
			row:       "O1,2024-01-05,C1,Acme,,Furniture,Desk,100,20,2,0",
			wantSales: "100", wantProfit: "20", wantQty: 2, wantDiscount: "0",
			wantRegion: "Unknown", wantYear: 2024,
		},
		{
			name:      "garbage date yields year zero",
			row:       "O1,not-a-date,C1,Acme,East,Furniture,Desk,100,20,2,0",
			wantSales: "100", wantProfit: "20", wantQty: 2, wantDiscount: "0",
			wantRegion: "East", wantYear: 0,
		},
		{
			name:      "padded cells are trimmed",
			row:       "O1,2024-01-05,C1,Acme, East ,Furniture,Desk, 100 ,20,2,0",
			wantSales: "100", wantProfit: "20", wantQty: 2, wantDiscount: "0",
			wantRegion: "East", wantYear: 2024,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := mustBuildDataset(t, csvHeader+tt.row+"\n")
			if len(ds.Records) != 1 {
				t.Fatalf("records = %d, want 1", len(ds.Records))
			}
			r := ds.Records[0]
			if got := r.Sales.String(); got != tt.wantSales {
				t.Errorf("Sales = %s, want %s", got, tt.wantSales)
			}
			if got := r.Profit.String(); got != tt.wantProfit {
				t.Errorf("Profit = %s, want %s", got, tt.wantProfit)
			}
			if r.Quantity != tt.wantQty {
				t.Errorf("Quantity = %d, want %d", r.Quantity, tt.wantQty)
			}
			if got := r.Discount.String(); got != tt.wantDiscount {
				t.Errorf("Discount = %s, want %s", got, tt.wantDiscount)
			}
			if r.Region != tt.wantRegion {
				t.Errorf("Region = %q, want %q", r.Region, tt.wantRegion)
			}
			if r.Year != tt.wantYear {
				t.Errorf("Year = %d, want %d", r.Year, tt.wantYear)
			}
		})
	}
}

func TestBuildDatasetDateLayouts(t *testing.T) {
	tests := []struct {
		cell string
		want string
	}{
		{"2024-01-05", "2024-01-05"},
		{"2024-01-05 13:30:00", "2024-01-05"},
		{"01/05/2024", "2024-01-05"},
		{"1/5/2024", "2024-01-05"},
		{"2024/01/05", "2024-01-05"},
		{"05-Jan-2024", "2024-01-05"},
	}
	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			ds := mustBuildDataset(t, csvHeader+"O1,"+tt.cell+",C1,Acme,East,Furniture,Desk,100,20,2,0\n")
			got := ds.Records[0].OrderDate.Format("2006-01-02")
			if got != tt.want {
				t.Errorf("OrderDate = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestBuildDatasetHeaderBOM(t *testing.T) {
	ds := mustBuildDataset(t, "\uFEFF"+sampleCSV)
	if !ds.HasOrderID {
		t.Error("HasOrderID = false, want true after BOM strip")
	}
	if len(ds.Records) != 4 {
		t.Errorf("records = %d, want 4", len(ds.Records))
	}
}

func TestBuildDatasetMissingColumns(t *testing.T) {
	ds := mustBuildDataset(t, "Customer ID,Sales\nC1,50\n")

	if ds.HasOrderID {
		t.Error("HasOrderID = true, want false")
	}
	r := ds.Records[0]
	if r.OrderID != "" {
		t.Errorf("OrderID = %q, want empty", r.OrderID)
	}
	if r.CustomerName != "Unknown" || r.Region != "Unknown" || r.Category != "Unknown" {
		t.Errorf("missing categoricals not defaulted: %+v", r)
	}
	if got := r.Sales.String(); got != "50" {
		t.Errorf("Sales = %s, want 50", got)
	}
	if r.Quantity != 1 {
		t.Errorf("Quantity = %d, want 1", r.Quantity)
	}
	if !r.OrderDate.IsZero() {
		t.Errorf("OrderDate = %v, want zero", r.OrderDate)
	}
}

func TestBuildDatasetRaggedRows(t *testing.T) {
	data := csvHeader +
		"O1,2024-01-05,C1\n" +
		"O2,2024-02-10,C2,Beta,West,Technology,Phone,250,10,1,0,extra,cells\n"
	ds := mustBuildDataset(t, data)

	if len(ds.Records) != 2 {
		t.Fatalf("records = %d, want 2", len(ds.Records))
	}
	if ds.SkippedRows != 0 {
		t.Errorf("SkippedRows = %d, want 0", ds.SkippedRows)
	}

	short := ds.Records[0]
	if short.OrderID != "O1" || short.CustomerID != "C1" {
		t.Errorf("short row not kept: %+v", short)
	}
	if short.Region != "Unknown" {
		t.Errorf("short row Region = %q, want Unknown", short.Region)
	}
	if got := short.Sales.String(); got != "0" {
		t.Errorf("short row Sales = %s, want 0", got)
	}

	long := ds.Records[1]
	if long.OrderID != "O2" || long.ProductName != "Phone" {
		t.Errorf("long row not kept: %+v", long)
	}
}

func TestBuildDatasetSkipsUnreadableRows(t *testing.T) {
	data := csvHeader +
		"O1,2024-01-05,C1,Acme,East,Furniture,Desk,100,20,2,0\n" +
		"O2,2024-02-10,C2,Bad\"Quote,West,Technology,Phone,250,10,1,0\n"
	ds := mustBuildDataset(t, data)

	if len(ds.Records) != 1 {
		t.Fatalf("records = %d, want 1", len(ds.Records))
	}
	if ds.SkippedRows != 1 {
		t.Errorf("SkippedRows = %d, want 1", ds.SkippedRows)
	}
}

func TestBuildDatasetEmptyInput(t *testing.T) {
	if _, err := buildDataset(context.Background(), strings.NewReader(""), "test.csv"); err == nil {
		t.Fatal("expected error for empty input")
	}

	ds := mustBuildDataset(t, csvHeader)
	if len(ds.Records) != 0 {
		t.Errorf("records = %d, want 0 for header-only input", len(ds.Records))
	}
}

func TestDedupKeepsFirstOccurrence(t *testing.T) {
	data := csvHeader +
		"O1,2024-01-05,C1,Acme,East,Furniture,Desk,100,20,2,0.1\n" +
		"O1,2024-01-05,C1,Acme,East,Furniture,Desk,100,20,2,0.1\n" +
		"O1,2024-01-05,C1,Acme,East,Furniture,Desk,100.0,20.00,2,0.10\n" +
		"O1,2024-01-05,C1,Acme,East,Furniture,Desk,100,20,3,0.1\n"
	ds := mustBuildDataset(t, data)

	// Rows 2 and 3 are duplicates of row 1 (numeric equality, not text);
	// row 4 differs in quantity and must survive.
	if len(ds.Records) != 2 {
		t.Fatalf("records = %d, want 2", len(ds.Records))
	}
	if ds.DuplicatesDropped != 2 {
		t.Errorf("DuplicatesDropped = %d, want 2", ds.DuplicatesDropped)
	}
	if ds.Records[0].Quantity != 2 || ds.Records[1].Quantity != 3 {
		t.Errorf("kept records out of order: %+v", ds.Records)
	}
}

func TestDedupIdempotent(t *testing.T) {
	ds := mustBuildDataset(t, sampleCSV)

	again, dropped := dedupRecords(ds.Records)
	if dropped != 0 {
		t.Errorf("second dedup dropped %d records, want 0", dropped)
	}
	if len(again) != len(ds.Records) {
		t.Errorf("second dedup len = %d, want %d", len(again), len(ds.Records))
	}
}

func TestDedupDistinguishesFieldBoundaries(t *testing.T) {
	a := models.Record{CustomerID: "AB", CustomerName: "C"}
	b := models.Record{CustomerID: "A", CustomerName: "BC"}
	out, dropped := dedupRecords([]models.Record{a, b})
	if dropped != 0 || len(out) != 2 {
		t.Errorf("boundary-shifted records collapsed: kept %d, dropped %d", len(out), dropped)
	}
}
