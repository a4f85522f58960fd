package usecase

import (
	"context"
	"time"

	"dogweb/internal/domain"
	"dogweb/internal/infrastructure/logger"
	"dogweb/internal/infrastructure/metrics"
	"dogweb/internal/infrastructure/sentry"
	"dogweb/internal/infrastructure/storage"
)

const (
	PageViewsMetric = "web.page_views"
	PageViewsTag    = "tag:web.page_views"
	QueryTimeMetric = "database.query.time"
	QueryTimeTag    = "tag:database.query.time"
)

type EntryService struct {
	store    *storage.Handle
	emitter  *metrics.BestEffort
	metrics  metrics.Metrics
	reporter sentry.Reporter
	logger   logger.Logger
}

func NewEntryService(
	store *storage.Handle,
	emitter metrics.Emitter,
	collector metrics.Metrics,
	reporter sentry.Reporter,
	logger logger.Logger,
) *EntryService {
	if reporter == nil {
		reporter = sentry.NewNoopReporter()
	}

	return &EntryService{
		store:    store,
		emitter:  metrics.NewBestEffort(emitter, logger),
		metrics:  collector,
		reporter: reporter,
		logger:   logger,
	}
}

// GetName counts the page view, reads the seed entry under exclusive store
// access and reports how long the read took. Metric failures never affect
// the result; a failed read is returned as is.
func (s *EntryService) GetName(ctx context.Context) (string, error) {
	s.emitter.Increment(PageViewsMetric, PageViewsTag)

	// Запрос доводится до конца даже если клиент отключился
	lookupCtx := context.WithoutCancel(ctx)

	start := time.Now()

	var name string
	err := s.store.Do(func(store storage.Store) error {
		var err error
		name, err = store.LookupNameByID(lookupCtx, domain.SeedEntryID)
		return err
	})

	elapsed := time.Since(start)

	s.emitter.Histogram(QueryTimeMetric, float64(WholeSeconds(elapsed)), QueryTimeTag)
	s.observeLookup(elapsed, err)

	if err != nil {
		s.logger.Error("Failed to look up entry", "id", domain.SeedEntryID, "error", err)
		s.reporter.Report(err, map[string]string{"operation": "lookup"})
		return "", err
	}

	s.logger.Debug("Entry looked up", "id", domain.SeedEntryID, "elapsed", elapsed)

	return name, nil
}

func (s *EntryService) observeLookup(elapsed time.Duration, err error) {
	if s.metrics == nil {
		return
	}

	status := metrics.LookupStatusOK
	if err != nil {
		status = metrics.LookupStatusError
	}
	s.metrics.ObserveStoreLookup(status, elapsed.Seconds())
}

// WholeSeconds truncates d to whole seconds. Sub-second lookups report 0.
func WholeSeconds(d time.Duration) int64 {
	if d < 0 {
		return 0
	}
	return int64(d / time.Second)
}
