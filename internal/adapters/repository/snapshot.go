package repository

import (
	"context"

	"github.com/okian/copa/internal/domain/tally"
	"github.com/okian/copa/internal/domain/types"
	"github.com/okian/copa/pkg/metrics"
)

// SnapshotStore is an immutable in-memory Store built once at startup.
// All derived indexes are computed in the constructor; afterwards the
// store is never written, so reads take no locks.
type SnapshotStore struct {
	records   []types.Record
	counts    []types.WinCount
	byYear    map[int]types.Record
	byCountry map[string]int
	years     []int
	countries []string

	publishMetrics bool
}

// compile-time interface check.
var _ Store = (*SnapshotStore)(nil)

// NewSnapshotStore builds the store and all its indexes from records.
// Returns ErrEmptyDataset when records is empty.
func NewSnapshotStore(ctx context.Context, records []types.Record, opts ...Option) (*SnapshotStore, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	s := &SnapshotStore{
		records:        records,
		counts:         tally.Count(records),
		byYear:         make(map[int]types.Record, len(records)),
		publishMetrics: true,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.years = make([]int, len(records))
	for i, r := range records {
		s.byYear[r.Year] = r
		s.years[i] = r.Year
	}

	s.byCountry = make(map[string]int, len(s.counts))
	s.countries = make([]string, len(s.counts))
	for i, c := range s.counts {
		s.byCountry[c.Country] = c.Wins
		s.countries[i] = c.Country
	}

	if s.publishMetrics {
		metrics.UpdateDatasetRecords(len(s.records))
		metrics.UpdateDatasetWinners(len(s.counts))
	}
	return s, nil
}

// Records returns all tournament records in year order.
func (s *SnapshotStore) Records(_ context.Context) []types.Record {
	out := make([]types.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Match returns the record for a year.
func (s *SnapshotStore) Match(_ context.Context, year int) (types.Record, error) {
	rec, ok := s.byYear[year]
	if !ok {
		return types.Record{}, ErrYearNotFound
	}
	return rec, nil
}

// Wins returns the title count for a country.
func (s *SnapshotStore) Wins(_ context.Context, country string) (int, error) {
	wins, ok := s.byCountry[country]
	if !ok {
		return 0, ErrCountryNotFound
	}
	return wins, nil
}

// WinCounts returns the aggregate entries ordered by wins descending.
func (s *SnapshotStore) WinCounts(_ context.Context) []types.WinCount {
	out := make([]types.WinCount, len(s.counts))
	copy(out, s.counts)
	return out
}

// Years returns every selectable year in dataset order.
func (s *SnapshotStore) Years(_ context.Context) []int {
	out := make([]int, len(s.years))
	copy(out, s.years)
	return out
}

// Countries returns every winning country in win-count order.
func (s *SnapshotStore) Countries(_ context.Context) []string {
	out := make([]string, len(s.countries))
	copy(out, s.countries)
	return out
}

// Count returns the number of distinct winning countries.
func (s *SnapshotStore) Count(_ context.Context) int {
	return len(s.counts)
}
