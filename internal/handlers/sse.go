package handlers

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"sales-dashboard/internal/models"
	"sales-dashboard/internal/services"
)

var summaryTemplate = template.Must(template.New("summary").Parse(`
<div id="summary-content">
<div class="kpi-grid">
<div class="kpi-card"><div class="kpi-label">Total Revenue</div><div class="kpi-value">{{.TotalRevenueDisplay}}</div></div>
<div class="kpi-card"><div class="kpi-label">Total Profit</div><div class="kpi-value">{{.TotalProfitDisplay}}</div></div>
<div class="kpi-card"><div class="kpi-label">Orders</div><div class="kpi-value">{{.OrdersDisplay}}</div></div>
<div class="kpi-card"><div class="kpi-label">Avg Order Value</div><div class="kpi-value">{{.AvgOrderDisplay}}</div></div>
</div>
<ul class="insights">
{{range .Insights}}<li>{{.}}</li>
{{end}}</ul>
</div>`))

type SSEHandlers struct {
	analytics *services.Analytics
	logger    *slog.Logger
}

func NewSSEHandlers(analytics *services.Analytics, logger *slog.Logger) *SSEHandlers {
	return &SSEHandlers{
		analytics: analytics,
		logger:    logger,
	}
}

// view resolves the current dataset and applies the request's filter
// selection. SSE handlers log failures and end the stream quietly; the
// JSON API is where callers get structured errors.
func (h *SSEHandlers) view(r *http.Request) (*services.View, error) {
	ds, err := h.analytics.Dataset(r.Context())
	if err != nil {
		return nil, err
	}
	return ds.Filter(parseFilter(r)), nil
}

func (h *SSEHandlers) renderSummary(s models.Summary) (string, error) {
	var buf strings.Builder
	err := summaryTemplate.Execute(&buf, s)
	return buf.String(), err
}

func (h *SSEHandlers) HandleSummary(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	view, err := h.view(r)
	if err != nil {
		h.logger.Error("resolve dataset for summary", "error", err)
		return
	}

	html, err := h.renderSummary(view.Summary())
	if err != nil {
		h.logger.Error("render summary", "error", err)
		return
	}

	sse.PatchElements(html)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func (h *SSEHandlers) HandleMonthlyRevenue(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	view, err := h.view(r)
	if err != nil {
		h.logger.Error("resolve dataset for monthly revenue", "error", err)
		return
	}

	jsonData, err := json.Marshal(map[string]any{
		"monthlyData": view.MonthlyRevenue(),
	})
	if err != nil {
		h.logger.Error("marshal monthly data", "error", err)
		return
	}
	sse.PatchSignals(jsonData)

	sse.PatchElements(`<div id="monthly-content">✅ Monthly revenue chart data loaded</div>`)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func (h *SSEHandlers) HandleTopCategories(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	view, err := h.view(r)
	if err != nil {
		h.logger.Error("resolve dataset for categories", "error", err)
		return
	}

	jsonData, err := json.Marshal(map[string]any{
		"categoriesData": view.TopCategories(topRankings),
	})
	if err != nil {
		h.logger.Error("marshal categories data", "error", err)
		return
	}
	sse.PatchSignals(jsonData)

	sse.PatchElements(`<div id="categories-content">✅ Categories chart data loaded</div>`)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func (h *SSEHandlers) HandleRegionBreakdown(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	view, err := h.view(r)
	if err != nil {
		h.logger.Error("resolve dataset for regions", "error", err)
		return
	}

	jsonData, err := json.Marshal(map[string]any{
		"regionsData": view.RegionBreakdown(),
	})
	if err != nil {
		h.logger.Error("marshal regions data", "error", err)
		return
	}
	sse.PatchSignals(jsonData)

	sse.PatchElements(`<div id="regions-content">✅ Regions chart data loaded</div>`)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func (h *SSEHandlers) HandleTopProducts(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	view, err := h.view(r)
	if err != nil {
		h.logger.Error("resolve dataset for products", "error", err)
		return
	}

	jsonData, err := json.Marshal(map[string]any{
		"productsData": view.TopProducts(topRankings),
	})
	if err != nil {
		h.logger.Error("marshal products data", "error", err)
		return
	}
	sse.PatchSignals(jsonData)

	sse.PatchElements(`<div id="products-content">✅ Products chart data loaded</div>`)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func (h *SSEHandlers) HandleTopCustomers(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	view, err := h.view(r)
	if err != nil {
		h.logger.Error("resolve dataset for customers", "error", err)
		return
	}

	jsonData, err := json.Marshal(map[string]any{
		"customersData": view.TopCustomers(topRankings),
	})
	if err != nil {
		h.logger.Error("marshal customers data", "error", err)
		return
	}
	sse.PatchSignals(jsonData)

	sse.PatchElements(`<div id="customers-content">✅ Customers table data loaded</div>`)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

// HandleRefreshAll recomputes every dashboard view for the current
// filter selection and pushes the whole lot over one stream: the summary
// fragment as HTML, the chart series and selector options as signals.
func (h *SSEHandlers) HandleRefreshAll(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	ds, err := h.analytics.Dataset(r.Context())
	if err != nil {
		h.logger.Error("resolve dataset for refresh", "error", err)
		return
	}
	view := ds.Filter(parseFilter(r))

	html, err := h.renderSummary(view.Summary())
	if err != nil {
		h.logger.Error("render summary", "error", err)
		return
	}
	sse.PatchElements(html)

	allSignals, err := json.Marshal(map[string]any{
		"monthlyData":    view.MonthlyRevenue(),
		"categoriesData": view.TopCategories(topRankings),
		"regionsData":    view.RegionBreakdown(),
		"productsData":   view.TopProducts(topRankings),
		"customersData":  view.TopCustomers(topRankings),
		"filtersData":    ds.FilterOptions(),
	})
	if err != nil {
		h.logger.Error("marshal refresh signals", "error", err)
		return
	}
	sse.PatchSignals(allSignals)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}
