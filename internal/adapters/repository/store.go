// Package repository defines the dataset store interface and errors.
package repository

import (
	"context"

	"github.com/okian/copa/internal/domain/types"
)

// Store provides read access to the tournament results and the aggregates
// derived from them. Implementations are immutable once built: every method
// is safe for concurrent use without locking.
type Store interface {
	// Records returns all tournament records in year order.
	Records(ctx context.Context) []types.Record

	// Match returns the record for a year.
	// Returns ErrYearNotFound if the year is not in the dataset.
	Match(ctx context.Context, year int) (types.Record, error)

	// Wins returns the title count for a country.
	// Returns ErrCountryNotFound if the country never won.
	Wins(ctx context.Context, country string) (int, error)

	// WinCounts returns the aggregate entries ordered by wins descending.
	WinCounts(ctx context.Context) []types.WinCount

	// Years returns every selectable year in dataset order.
	Years(ctx context.Context) []int

	// Countries returns every winning country in win-count order.
	Countries(ctx context.Context) []string

	// Count returns the number of distinct winning countries.
	Count(ctx context.Context) int
}
