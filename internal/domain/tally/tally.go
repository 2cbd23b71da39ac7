// Package tally derives per-country win counts from the results table.
package tally

import (
	"sort"

	"github.com/okian/copa/internal/domain/types"
)

// Count groups records by winner and counts titles per country.
//
// Entries are ordered by wins descending; countries with equal counts keep
// the order in which they first won. The result is deterministic for a
// given input, and the sum of all counts equals the number of records.
func Count(records []types.Record) []types.WinCount {
	wins := make(map[string]int, len(records))
	var order []string
	for _, r := range records {
		if _, ok := wins[r.Winner]; !ok {
			order = append(order, r.Winner)
		}
		wins[r.Winner]++
	}

	counts := make([]types.WinCount, len(order))
	for i, country := range order {
		counts[i] = types.WinCount{Country: country, Wins: wins[country]}
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Wins > counts[j].Wins
	})
	return counts
}

// Wins returns the title count for a single country, scanning the
// aggregated entries. A country that never won reports zero.
func Wins(counts []types.WinCount, country string) int {
	for _, c := range counts {
		if c.Country == country {
			return c.Wins
		}
	}
	return 0
}
