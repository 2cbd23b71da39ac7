package view

import "fmt"

// WinSummary renders the status line under the country selector.
// The cleared selector and the sentinel both produce an empty string.
func (r *Resolver) WinSummary(country string) string {
	if country == "" || country == AllWinners {
		return ""
	}
	for _, c := range r.counts {
		if c.Country == country {
			return fmt.Sprintf("%s has won the World Cup %d times.", country, c.Wins)
		}
	}
	return fmt.Sprintf("%s has never won the World Cup.", country)
}

// MatchSummary renders the status line under the year selector. A zero year
// produces an empty string; a year outside the table reports no data rather
// than failing.
func (r *Resolver) MatchSummary(year int) string {
	if year == 0 {
		return ""
	}
	rec, ok := r.byYear[year]
	if !ok {
		return "No data available for the selected year."
	}
	return fmt.Sprintf("In %d, %s won the World Cup, and %s was the runner-up.", rec.Year, rec.Winner, rec.RunnerUp)
}
