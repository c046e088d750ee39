package server

import (
	"log/slog"
	"net/http"

	"sales-dashboard/internal/handlers"
	"sales-dashboard/internal/observability"
	"sales-dashboard/internal/services"
)

type Server struct {
	analytics   *services.Analytics
	mux         *http.ServeMux
	logger      *slog.Logger
	apiHandlers *handlers.APIHandlers
	sseHandlers *handlers.SSEHandlers
}

type TemplateHandlers struct {
	Dashboard http.HandlerFunc
}

func NewServer(analytics *services.Analytics, logger *slog.Logger, metrics *observability.Metrics, templateHandlers *TemplateHandlers) *Server {
	s := &Server{
		analytics:   analytics,
		mux:         http.NewServeMux(),
		logger:      logger,
		apiHandlers: handlers.NewAPIHandlers(analytics, logger),
		sseHandlers: handlers.NewSSEHandlers(analytics, logger),
	}
	s.setupRoutes(metrics, templateHandlers)
	return s
}

func (s *Server) setupRoutes(metrics *observability.Metrics, templateHandlers *TemplateHandlers) {
	// Dashboard and operational routes
	s.mux.HandleFunc("GET /", templateHandlers.Dashboard)
	s.mux.HandleFunc("GET /health", s.apiHandlers.HandleHealth)
	s.mux.HandleFunc("GET /admin/stats", s.apiHandlers.HandleStats)
	s.mux.Handle("GET /metrics", metrics.Handler())

	// REST API endpoints; all accept the same filter query params
	s.mux.HandleFunc("GET /api/filters", s.apiHandlers.HandleFilterOptions)
	s.mux.HandleFunc("GET /api/summary", s.apiHandlers.HandleSummary)
	s.mux.HandleFunc("GET /api/monthly-revenue", s.apiHandlers.HandleMonthlyRevenue)
	s.mux.HandleFunc("GET /api/top-categories", s.apiHandlers.HandleTopCategories)
	s.mux.HandleFunc("GET /api/region-breakdown", s.apiHandlers.HandleRegionBreakdown)
	s.mux.HandleFunc("GET /api/top-products", s.apiHandlers.HandleTopProducts)
	s.mux.HandleFunc("GET /api/top-customers", s.apiHandlers.HandleTopCustomers)
	s.mux.HandleFunc("GET /api/records", s.apiHandlers.HandleRecords)

	// Filtered downloads
	s.mux.HandleFunc("GET /export/csv", s.apiHandlers.HandleExportCSV)
	s.mux.HandleFunc("GET /export/xlsx", s.apiHandlers.HandleExportXLSX)

	// Datastar SSE endpoints
	s.mux.HandleFunc("GET /sse/summary", s.sseHandlers.HandleSummary)
	s.mux.HandleFunc("GET /sse/monthly-revenue", s.sseHandlers.HandleMonthlyRevenue)
	s.mux.HandleFunc("GET /sse/top-categories", s.sseHandlers.HandleTopCategories)
	s.mux.HandleFunc("GET /sse/region-breakdown", s.sseHandlers.HandleRegionBreakdown)
	s.mux.HandleFunc("GET /sse/top-products", s.sseHandlers.HandleTopProducts)
	s.mux.HandleFunc("GET /sse/top-customers", s.sseHandlers.HandleTopCustomers)
	s.mux.HandleFunc("GET /sse/refresh-all", s.sseHandlers.HandleRefreshAll)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
