// Package dataset holds the compiled-in World Cup results table.
//
// The table is the single source of truth for the service: every dropdown
// option, win count and figure trace is derived from it. It is fixed at
// build time and never mutated, so readers need no synchronization.
package dataset

import (
	"github.com/okian/copa/internal/domain/types"
)

// records lists every World Cup final from 1930 through 2022.
// Years are strictly increasing; qualifying editions cancelled during
// WWII (1942, 1946) are absent.
var records = []types.Record{
	{Year: 1930, Winner: "Uruguay", RunnerUp: "Argentina"},
	{Year: 1934, Winner: "Italy", RunnerUp: "Czechoslovakia"},
	{Year: 1938, Winner: "Italy", RunnerUp: "Hungary"},
	{Year: 1950, Winner: "Uruguay", RunnerUp: "Brazil"},
	{Year: 1954, Winner: "Germany", RunnerUp: "Hungary"},
	{Year: 1958, Winner: "Brazil", RunnerUp: "Sweden"},
	{Year: 1962, Winner: "Brazil", RunnerUp: "Czechoslovakia"},
	{Year: 1966, Winner: "England", RunnerUp: "Germany"},
	{Year: 1970, Winner: "Brazil", RunnerUp: "Italy"},
	{Year: 1974, Winner: "Germany", RunnerUp: "Netherlands"},
	{Year: 1978, Winner: "Argentina", RunnerUp: "Netherlands"},
	{Year: 1982, Winner: "Italy", RunnerUp: "Germany"},
	{Year: 1986, Winner: "Argentina", RunnerUp: "Germany"},
	{Year: 1990, Winner: "Germany", RunnerUp: "Argentina"},
	{Year: 1994, Winner: "Brazil", RunnerUp: "Italy"},
	{Year: 1998, Winner: "France", RunnerUp: "Brazil"},
	{Year: 2002, Winner: "Brazil", RunnerUp: "Germany"},
	{Year: 2006, Winner: "Italy", RunnerUp: "France"},
	{Year: 2010, Winner: "Spain", RunnerUp: "Netherlands"},
	{Year: 2014, Winner: "Germany", RunnerUp: "Argentina"},
	{Year: 2018, Winner: "France", RunnerUp: "Croatia"},
	{Year: 2022, Winner: "Argentina", RunnerUp: "France"},
}

// Records returns a copy of the full results table in tournament order.
// Callers own the returned slice and may not reach the package table
// through it.
func Records() []types.Record {
	out := make([]types.Record, len(records))
	copy(out, records)
	return out
}

// Match returns the record for the given year. The second return value
// reports whether the year exists in the table.
func Match(year int) (types.Record, bool) {
	for _, r := range records {
		if r.Year == year {
			return r, true
		}
	}
	return types.Record{}, false
}

// Years returns every tournament year in table order.
func Years() []int {
	years := make([]int, len(records))
	for i, r := range records {
		years[i] = r.Year
	}
	return years
}

// Nations returns every country appearing in the table, winners and
// runners-up alike, in order of first appearance.
func Nations() []string {
	seen := make(map[string]struct{}, len(records))
	var nations []string
	for _, r := range records {
		for _, c := range []string{r.Winner, r.RunnerUp} {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			nations = append(nations, c)
		}
	}
	return nations
}
