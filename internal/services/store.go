package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"sales-dashboard/internal/errors"
	"sales-dashboard/internal/models"
	"sales-dashboard/internal/observability"
)

// sourceSignature identifies one version of the source file. A changed
// signature invalidates the cached dataset on the next access.
type sourceSignature struct {
	path    string
	modTime int64
	size    int64
}

// Analytics owns the process-scoped dataset cache. The dataset loads once
// per source signature and is shared read-only; every filter application
// gets a fresh View instead of touching the cache.
type Analytics struct {
	mu      sync.RWMutex
	csvPath string
	sig     sourceSignature
	dataset *Dataset

	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewAnalytics creates an empty in-memory store. Call Load to attach a
// CSV source or SetData to install records directly.
func NewAnalytics(logger *slog.Logger, metrics *observability.Metrics) *Analytics {
	return &Analytics{
		dataset: &Dataset{},
		logger:  logger,
		metrics: metrics,
	}
}

// Load points the store at a CSV path and performs the initial load, so
// startup fails fast when the source is unreadable.
func (a *Analytics) Load(ctx context.Context, path string) error {
	a.mu.Lock()
	a.csvPath = path
	a.dataset = nil
	a.sig = sourceSignature{}
	a.mu.Unlock()

	_, err := a.Dataset(ctx)
	return err
}

// SetData installs an in-memory dataset directly, running the same dedup
// and derivation pipeline as a file load. Used by tests and tooling that
// bypass the CSV source.
func (a *Analytics) SetData(records []models.Record, hasOrderID bool) {
	deduped, dropped := dedupRecords(records)
	deriveFeatures(deduped)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.csvPath = ""
	a.sig = sourceSignature{}
	a.dataset = &Dataset{
		Records:           deduped,
		HasOrderID:        hasOrderID,
		LoadedAt:          time.Now(),
		DuplicatesDropped: dropped,
	}
}

// Dataset returns the cached dataset, reloading first when the source
// signature (path, mtime, size) no longer matches the cached one. An
// unchanged file is never re-read.
func (a *Analytics) Dataset(ctx context.Context) (*Dataset, error) {
	a.mu.RLock()
	path := a.csvPath
	cached := a.dataset
	cachedSig := a.sig
	a.mu.RUnlock()

	if path == "" {
		return cached, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.LoadFailed(path, err)
	}
	sig := sourceSignature{path: path, modTime: info.ModTime().UnixNano(), size: info.Size()}
	if cached != nil && cachedSig == sig {
		return cached, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.dataset != nil && a.sig == sig {
		return a.dataset, nil
	}
	ds, err := a.loadDataset(ctx, path)
	if err != nil {
		return nil, err
	}
	a.dataset = ds
	a.sig = sig
	return ds, nil
}

func (a *Analytics) loadDataset(ctx context.Context, path string) (*Dataset, error) {
	ctx, span := observability.StartSpan(ctx, "dataset.load")
	defer span.Finish()
	span.SetTag("source", path)

	start := time.Now()
	a.logger.Info("loading sales csv", "source", path)

	file, err := os.Open(path)
	if err != nil {
		span.SetError(err)
		return nil, errors.LoadFailed(path, err)
	}
	defer file.Close()

	ds, err := buildDataset(ctx, file, path)
	if err != nil {
		span.SetError(err)
		return nil, errors.LoadFailed(path, err)
	}

	duration := time.Since(start)
	a.metrics.DatasetLoads.Inc()
	a.metrics.RowsLoaded.Add(float64(len(ds.Records)))
	a.metrics.RowsSkipped.Add(float64(ds.SkippedRows))
	a.metrics.DuplicatesDropped.Add(float64(ds.DuplicatesDropped))
	a.metrics.LoadDuration.Observe(duration.Seconds())

	a.logger.Info("sales csv loaded",
		"records", len(ds.Records),
		"skipped_rows", ds.SkippedRows,
		"duplicates_dropped", ds.DuplicatesDropped,
		"duration", duration,
		"rate", fmt.Sprintf("%.0f records/sec", float64(len(ds.Records))/duration.Seconds()))

	return ds, nil
}

// Stats reports dataset shape for the admin endpoint.
func (a *Analytics) Stats() map[string]any {
	a.mu.RLock()
	defer a.mu.RUnlock()

	ds := a.dataset
	if ds == nil {
		return map[string]any{"records": 0}
	}

	months := make(map[time.Time]struct{})
	regions := make(map[string]struct{})
	categories := make(map[string]struct{})
	customers := make(map[string]struct{})
	for i := range ds.Records {
		r := &ds.Records[i]
		if !r.Month.IsZero() {
			months[r.Month] = struct{}{}
		}
		regions[r.Region] = struct{}{}
		categories[r.Category] = struct{}{}
		customers[r.CustomerID] = struct{}{}
	}

	return map[string]any{
		"records":            len(ds.Records),
		"skipped_rows":       ds.SkippedRows,
		"duplicates_dropped": ds.DuplicatesDropped,
		"has_order_id":       ds.HasOrderID,
		"source":             ds.Source,
		"loaded_at":          ds.LoadedAt,
		"months":             len(months),
		"regions":            len(regions),
		"categories":         len(categories),
		"customers":          len(customers),
	}
}
