// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"sync"

	repository "github.com/okian/copa/internal/adapters/repository"
	"github.com/okian/copa/internal/domain/dataset"
	"github.com/okian/copa/internal/domain/types"
	"github.com/okian/copa/internal/domain/view"
	"github.com/okian/copa/pkg/logger"
	"github.com/okian/copa/pkg/metrics"
)

// Service wires the dataset snapshot and the view resolver together and
// implements the read API. Everything it owns is immutable after Start.
type Service struct {
	mu sync.RWMutex

	// Core components
	store    repository.Store
	resolver *view.Resolver

	// Configuration
	records []types.Record
	style   view.Style

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStyle overrides the figure styling.
func WithStyle(style view.Style) Option {
	return func(s *Service) {
		s.style = style
	}
}

// WithRecords replaces the compiled-in dataset. Intended for tests.
func WithRecords(records []types.Record) Option {
	return func(s *Service) {
		if len(records) > 0 {
			s.records = records
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		records: dataset.Records(),
		style:   view.DefaultStyle(),
		logger:  nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start builds the dataset snapshot and the resolver. Calling Start on a
// started service is a no-op.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting dashboard service...")

	store, err := repository.NewSnapshotStore(ctx, s.records)
	if err != nil {
		return err
	}
	s.store = store
	s.resolver = view.NewResolver(
		store.Records(ctx),
		store.WinCounts(ctx),
		view.WithStyle(s.style),
	)

	s.started = true
	s.logger.Info(ctx, "dashboard service started",
		logger.Int("records", len(s.records)),
		logger.Int("winningCountries", store.Count(ctx)),
	)
	return nil
}

// Stop releases the service. The snapshot holds no external resources, so
// this only flips state.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = false
}

// Figure resolves the current selection into a figure.
func (s *Service) Figure(ctx context.Context, sel view.Selection) view.Figure {
	fig := s.resolver.Figure(sel)
	metrics.RecordFigureRender(string(fig.Mode))
	if fig.Mode == view.ModeYear && len(fig.Traces) == 0 {
		metrics.RecordEmptyResult()
		s.logger.Warn(ctx, "no record for selected year", logger.Int("year", sel.Year))
	}
	return fig
}

// WinSummary returns the title count and status line for a country.
// Wins is zero for countries that never won.
func (s *Service) WinSummary(ctx context.Context, country string) (int, string) {
	metrics.RecordSummaryRequest("wins")
	wins, err := s.store.Wins(ctx, country)
	if err != nil && !errors.Is(err, repository.ErrCountryNotFound) {
		s.logger.Error(ctx, "wins lookup failed", logger.String("country", country), logger.Error(err))
	}
	return wins, s.resolver.WinSummary(country)
}

// MatchSummary returns the record and status line for a year. Found is
// false when the year is outside the dataset; the summary still carries
// the user-facing no-data message.
func (s *Service) MatchSummary(ctx context.Context, year int) (types.Record, string, bool) {
	metrics.RecordSummaryRequest("match")
	rec, err := s.store.Match(ctx, year)
	if err != nil {
		metrics.RecordEmptyResult()
		return types.Record{}, s.resolver.MatchSummary(year), false
	}
	return rec, s.resolver.MatchSummary(year), true
}

// Controls evaluates the selector interlock for the current selection.
func (s *Service) Controls(_ context.Context, sel view.Selection) view.Controls {
	return view.ResolveControls(sel)
}

// SelectorOptions returns the dropdown option lists: the sentinel followed
// by every winning country, and every tournament year.
func (s *Service) SelectorOptions(ctx context.Context) ([]string, []int) {
	countries := append([]string{view.AllWinners}, s.store.Countries(ctx)...)
	return countries, s.store.Years(ctx)
}

// GetStats returns current service statistics.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started": s.started,
	}
	if s.store != nil {
		ctx := context.Background()
		stats["records"] = len(s.store.Records(ctx))
		stats["winningCountries"] = s.store.Count(ctx)
		years := s.store.Years(ctx)
		if len(years) > 0 {
			stats["firstYear"] = years[0]
			stats["lastYear"] = years[len(years)-1]
		}
	}
	return stats
}
