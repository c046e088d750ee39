package handlers

import (
	"net/http"

	"sales-dashboard/internal/observability"
	"sales-dashboard/internal/services"
)

const (
	csvFilename  = "sales_filtered.csv"
	xlsxFilename = "sales_filtered.xlsx"
)

// HandleExportCSV streams the filtered rows as a CSV download. The same
// filter params as the JSON endpoints apply, so the download always
// matches what the dashboard shows.
func (h *APIHandlers) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	view, ok := h.filteredView(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+csvFilename+`"`)

	if err := services.WriteCSV(w, view.Records()); err != nil {
		// Headers are already out; logging is all that is left.
		h.logger.Error("stream csv export",
			"error", err,
			"request_id", observability.GetRequestID(r.Context()),
		)
	}
}

// HandleExportXLSX streams the filtered rows as a single-sheet workbook.
func (h *APIHandlers) HandleExportXLSX(w http.ResponseWriter, r *http.Request) {
	view, ok := h.filteredView(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+xlsxFilename+`"`)

	if err := services.WriteXLSX(w, view.Records()); err != nil {
		h.logger.Error("stream xlsx export",
			"error", err,
			"request_id", observability.GetRequestID(r.Context()),
		)
	}
}
