// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Arun1457/olympics-dashboard/internal/adapters/dataset"
	"github.com/Arun1457/olympics-dashboard/internal/adapters/export"
	"github.com/Arun1457/olympics-dashboard/internal/domain/memo"
	"github.com/Arun1457/olympics-dashboard/internal/domain/model"
	"github.com/Arun1457/olympics-dashboard/internal/domain/query"
	"github.com/Arun1457/olympics-dashboard/internal/domain/types"
	"github.com/Arun1457/olympics-dashboard/pkg/logger"
	"github.com/Arun1457/olympics-dashboard/pkg/metrics"
)

// Service wires the loaded table, the aggregation engine and the view
// memo together behind the API dependency surface.
type Service struct {
	mu sync.RWMutex

	// Core components
	store *dataset.Store
	views *memo.Cache[query.View]

	// Configuration
	athletesPath   string
	regionsPath    string
	defaultTopN    int
	maxTopLimit    int
	maxRecordsPage int
	viewCacheSize  int
	histogramBins  int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDataFiles sets the paths of the athlete events and NOC region
// files loaded on Start.
func WithDataFiles(athletes, regions string) Option {
	return func(s *Service) {
		if athletes != "" {
			s.athletesPath = athletes
		}
		if regions != "" {
			s.regionsPath = regions
		}
	}
}

// WithStore injects an already-built store, skipping the file load.
func WithStore(store *dataset.Store) Option {
	return func(s *Service) {
		s.store = store
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDefaultTopN sets the ranking length used when a request names
// none.
func WithDefaultTopN(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.defaultTopN = n
		}
	}
}

// WithMaxTopLimit caps the ranking length a request may ask for.
func WithMaxTopLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxTopLimit = n
		}
	}
}

// WithMaxRecordsPage caps the page size of raw record listings.
func WithMaxRecordsPage(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxRecordsPage = n
		}
	}
}

// WithViewCacheSize bounds the memoized view cache.
func WithViewCacheSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.viewCacheSize = n
		}
	}
}

// WithHistogramBins sets the default age histogram bucket count.
func WithHistogramBins(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.histogramBins = n
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		athletesPath:   "athlete_events.csv",
		regionsPath:    "noc_regions.csv",
		defaultTopN:    10,
		maxTopLimit:    100,
		maxRecordsPage: 1000,
		viewCacheSize:  4096,
		histogramBins:  30,
		logger:         nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start loads the dataset (unless a store was injected) and prepares
// the view memo. Safe to call once; further calls are no-ops.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting dashboard service...")

	if s.store == nil {
		store, err := dataset.Load(ctx, s.athletesPath, s.regionsPath,
			dataset.WithMetrics(true),
		)
		if err != nil {
			return fmt.Errorf("load dataset: %w", err)
		}
		s.store = store
	}

	s.views = memo.New(memo.WithMaxEntries[query.View](s.viewCacheSize))

	s.started = true
	s.logger.Info(ctx, "dashboard service started",
		logger.Int("rows", s.store.Len()),
		logger.Int("unmatchedRegions", s.store.UnmatchedRegions()),
		logger.Int("years", len(s.store.Years())),
		logger.Int("regions", len(s.store.Regions())),
		logger.Int("sports", len(s.store.Sports())),
	)

	return nil
}

// Stop shuts the service down. The table is in-memory only, so there is
// nothing to flush.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "dashboard service stopped")
}

// table returns the loaded store, or ErrNotStarted before Start.
func (s *Service) table() (*dataset.Store, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started || s.store == nil {
		return nil, ErrNotStarted
	}
	return s.store, nil
}

// Domains returns the observed filter domains of the loaded table.
func (s *Service) Domains(ctx context.Context) (types.Domains, error) {
	store, err := s.table()
	if err != nil {
		return types.Domains{}, err
	}
	return types.Domains{
		Years:   store.Years(),
		Regions: store.Regions(),
		Sports:  store.Sports(),
		Medals: []string{
			string(model.MedalGold),
			string(model.MedalSilver),
			string(model.MedalBronze),
		},
	}, nil
}

// Records returns one page of the rows selected by the scope. A
// non-positive limit asks for the maximum page; offsets past the end
// yield an empty page with the true total.
func (s *Service) Records(ctx context.Context, scope query.Scope, offset, limit int) (types.RecordsPage, error) {
	store, err := s.table()
	if err != nil {
		return types.RecordsPage{}, err
	}

	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > s.maxRecordsPage {
		limit = s.maxRecordsPage
	}

	subset := query.Filter(store, scope)
	total := subset.Len()

	page := types.RecordsPage{Total: total, Offset: offset, Limit: limit}
	if offset >= total {
		page.Records = []model.Record{}
		return page, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	page.Records = make([]model.Record, 0, end-offset)
	for i := offset; i < end; i++ {
		page.Records = append(page.Records, subset.Row(i))
	}
	return page, nil
}

// View computes one of the fixed aggregate views over the scope,
// memoized by the canonical scope key. Presentation options are
// normalized before they enter the key so equivalent requests share an
// entry.
func (s *Service) View(ctx context.Context, scope query.Scope, kind query.ViewKind, opts query.Options) (query.View, error) {
	store, err := s.table()
	if err != nil {
		return query.View{}, err
	}

	opts = s.normalize(kind, opts)
	if _, err := query.ParseViewKind(string(kind)); err != nil {
		return query.View{}, err
	}

	key := viewKey(scope, kind, opts)
	computed := false
	v := s.views.GetOrCompute(ctx, key, func() query.View {
		computed = true
		start := time.Now()
		subset := query.Filter(store, scope)
		view, aggErr := query.AggregateFor(subset, kind, opts)
		if aggErr != nil {
			// Unreachable after ParseViewKind, but keep the engine honest.
			err = aggErr
			return query.View{}
		}
		metrics.RecordQueryLatency(string(kind), float64(time.Since(start).Milliseconds()))
		return view
	})
	if err != nil {
		return query.View{}, err
	}

	if computed {
		metrics.RecordViewCacheMiss()
	} else {
		metrics.RecordViewCacheHit()
	}
	metrics.UpdateViewCacheSize(s.views.Size())

	return v, nil
}

// Summary computes the headline metrics of the scope.
func (s *Service) Summary(ctx context.Context, scope query.Scope) (query.SummaryMetrics, error) {
	store, err := s.table()
	if err != nil {
		return query.SummaryMetrics{}, err
	}
	return query.Summary(query.Filter(store, scope)), nil
}

// ExportRecords streams the selected rows as delimited text and returns
// the byte count written.
func (s *Service) ExportRecords(ctx context.Context, scope query.Scope, w io.Writer) (int, error) {
	store, err := s.table()
	if err != nil {
		return 0, err
	}
	cw := &countingWriter{w: w}
	subset := query.Filter(store, scope)
	if err := export.WriteRecords(cw, subset.Records()); err != nil {
		return cw.n, err
	}
	metrics.RecordExport("records", cw.n)
	return cw.n, nil
}

// ExportTally streams the medal tally of the scope as delimited text
// and returns the byte count written.
func (s *Service) ExportTally(ctx context.Context, scope query.Scope, w io.Writer) (int, error) {
	store, err := s.table()
	if err != nil {
		return 0, err
	}
	cw := &countingWriter{w: w}
	tally := query.MedalTally(query.Filter(store, scope))
	if err := export.WriteTally(cw, tally); err != nil {
		return cw.n, err
	}
	metrics.RecordExport("tally", cw.n)
	return cw.n, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started": s.started,
	}

	if s.started {
		stats["rows"] = s.store.Len()
		stats["unmatchedRegions"] = s.store.UnmatchedRegions()
		stats["loadedAt"] = s.store.LoadedAt()
		stats["viewCacheSize"] = s.views.Size()
		stats["viewCacheHits"] = s.views.Hits()
		stats["viewCacheMisses"] = s.views.Misses()

		metrics.UpdateDatasetRows(s.store.Len())
		metrics.UpdateDatasetUnmatchedRegions(s.store.UnmatchedRegions())
	}

	return stats
}

// normalize applies configured defaults and caps to the presentation
// options of a view request.
func (s *Service) normalize(kind query.ViewKind, opts query.Options) query.Options {
	switch kind {
	case query.ViewTopAthletes, query.ViewTopSports:
		if opts.TopN <= 0 {
			opts.TopN = s.defaultTopN
		}
	}
	if opts.TopN > s.maxTopLimit {
		opts.TopN = s.maxTopLimit
	}
	if opts.Bins <= 0 {
		opts.Bins = s.histogramBins
	}
	return opts
}

// viewKey builds the memo key for a view request. The scope key is
// already canonical; the normalized options complete it.
func viewKey(scope query.Scope, kind query.ViewKind, opts query.Options) string {
	var b strings.Builder
	b.WriteString(scope.Key())
	b.WriteString("|view=")
	b.WriteString(string(kind))
	b.WriteString("|n=")
	b.WriteString(strconv.Itoa(opts.TopN))
	b.WriteString("|bins=")
	b.WriteString(strconv.Itoa(opts.Bins))
	return b.String()
}

// countingWriter counts bytes on their way to the response.
type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}
