package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"sales-dashboard/internal/models"
)

// exportColumns is the download schema: every source column plus the
// derived ones, in a fixed order. Re-importing an export reproduces the
// same records because derived columns are recomputed, not read.
var exportColumns = []string{
	"Order ID", "Order Date", "Customer ID", "Customer Name", "Region",
	"Category", "Product Name", "Sales", "Profit", "Quantity", "Discount",
	"Year", "Month", "UnitPrice", "PriceAfterDiscount", "ProfitMargin",
}

const exportDateLayout = "2006-01-02"

func exportRow(r *models.Record) []string {
	orderDate := ""
	if !r.OrderDate.IsZero() {
		orderDate = r.OrderDate.Format(exportDateLayout)
	}
	month := ""
	if !r.Month.IsZero() {
		month = r.Month.Format(exportDateLayout)
	}
	return []string{
		r.OrderID,
		orderDate,
		r.CustomerID,
		r.CustomerName,
		r.Region,
		r.Category,
		r.ProductName,
		r.Sales.String(),
		r.Profit.String(),
		strconv.Itoa(r.Quantity),
		r.Discount.String(),
		strconv.Itoa(r.Year),
		month,
		r.UnitPrice.String(),
		r.PriceAfterDiscount.String(),
		r.ProfitMargin.String(),
	}
}

// WriteCSV streams the rows as UTF-8 CSV with a header row and no index
// column.
func WriteCSV(w io.Writer, records []models.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range records {
		if err := cw.Write(exportRow(&records[i])); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX renders the same row set as a single-sheet workbook.
func WriteXLSX(w io.Writer, records []models.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for c, name := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	for i := range records {
		row := exportRow(&records[i])
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, i+2)
			if err != nil {
				return fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}
	return f.Write(w)
}
