package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"sales-dashboard/internal/errors"
	"sales-dashboard/internal/models"
	"sales-dashboard/internal/observability"
	"sales-dashboard/internal/services"
)

const (
	topRankings    = 10
	defaultPreview = 300
	maxPreview     = 5000
)

var cacheHeaders = map[string]string{
	"Cache-Control": "public, max-age=300",
}

type APIHandlers struct {
	analytics *services.Analytics
	logger    *slog.Logger
	validate  *validator.Validate
}

func NewAPIHandlers(analytics *services.Analytics, logger *slog.Logger) *APIHandlers {
	return &APIHandlers{
		analytics: analytics,
		logger:    logger,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

// parseFilter reads the filter selection from the query string. Absent
// selectors mean "All"; category repeats, q searches customers.
func parseFilter(r *http.Request) models.Filter {
	q := r.URL.Query()
	f := models.Filter{
		Year:       q.Get("year"),
		Region:     q.Get("region"),
		Categories: q["category"],
		Search:     q.Get("q"),
	}
	if f.Year == "" {
		f.Year = models.FilterAll
	}
	if f.Region == "" {
		f.Region = models.FilterAll
	}
	return f
}

// filteredView validates the selection and applies it to the current
// dataset. On failure it has already written the error response.
func (h *APIHandlers) filteredView(w http.ResponseWriter, r *http.Request) (*services.View, bool) {
	requestID := observability.GetRequestID(r.Context())

	f := parseFilter(r)
	if err := h.validate.Struct(f); err != nil {
		errors.WriteError(w, h.logger, errors.ValidationWrap(err, "Invalid filter parameters"), requestID)
		return nil, false
	}

	ds, err := h.analytics.Dataset(r.Context())
	if err != nil {
		errors.WriteError(w, h.logger, err, requestID)
		return nil, false
	}

	return ds.Filter(f), true
}

func (h *APIHandlers) HandleFilterOptions(w http.ResponseWriter, r *http.Request) {
	ds, err := h.analytics.Dataset(r.Context())
	if err != nil {
		errors.WriteError(w, h.logger, err, observability.GetRequestID(r.Context()))
		return
	}

	errors.WriteSuccessWithHeaders(w, ds.FilterOptions(), cacheHeaders)
}

func (h *APIHandlers) HandleSummary(w http.ResponseWriter, r *http.Request) {
	view, ok := h.filteredView(w, r)
	if !ok {
		return
	}

	errors.WriteSuccessWithHeaders(w, view.Summary(), cacheHeaders)
}

func (h *APIHandlers) HandleMonthlyRevenue(w http.ResponseWriter, r *http.Request) {
	view, ok := h.filteredView(w, r)
	if !ok {
		return
	}

	errors.WriteSuccessWithHeaders(w, view.MonthlyRevenue(), cacheHeaders)
}

func (h *APIHandlers) HandleTopCategories(w http.ResponseWriter, r *http.Request) {
	view, ok := h.filteredView(w, r)
	if !ok {
		return
	}

	errors.WriteSuccessWithHeaders(w, view.TopCategories(topRankings), cacheHeaders)
}

func (h *APIHandlers) HandleRegionBreakdown(w http.ResponseWriter, r *http.Request) {
	view, ok := h.filteredView(w, r)
	if !ok {
		return
	}

	errors.WriteSuccessWithHeaders(w, view.RegionBreakdown(), cacheHeaders)
}

func (h *APIHandlers) HandleTopProducts(w http.ResponseWriter, r *http.Request) {
	view, ok := h.filteredView(w, r)
	if !ok {
		return
	}

	errors.WriteSuccessWithHeaders(w, view.TopProducts(topRankings), cacheHeaders)
}

func (h *APIHandlers) HandleTopCustomers(w http.ResponseWriter, r *http.Request) {
	view, ok := h.filteredView(w, r)
	if !ok {
		return
	}

	errors.WriteSuccessWithHeaders(w, view.TopCustomers(topRankings), cacheHeaders)
}

// HandleRecords returns a bounded preview of the filtered rows plus the
// total match count.
func (h *APIHandlers) HandleRecords(w http.ResponseWriter, r *http.Request) {
	requestID := observability.GetRequestID(r.Context())

	limit := defaultPreview
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			errors.WriteError(w, h.logger, errors.BadRequestWrap(err, "Invalid limit parameter"), requestID)
			return
		}
		if err := h.validate.Var(n, "gte=1,lte="+strconv.Itoa(maxPreview)); err != nil {
			errors.WriteError(w, h.logger, errors.ValidationWrap(err, "Limit out of range"), requestID)
			return
		}
		limit = n
	}

	view, ok := h.filteredView(w, r)
	if !ok {
		return
	}

	records := view.Records()
	if len(records) > limit {
		records = records[:limit]
	}

	errors.WriteSuccess(w, map[string]any{
		"records": records,
		"total":   view.Len(),
	})
}

func (h *APIHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	healthData := map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   "1.0.0",
	}

	errors.WriteSuccess(w, healthData)
}

func (h *APIHandlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats := h.analytics.Stats()

	errors.WriteSuccess(w, stats)
}
