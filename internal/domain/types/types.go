// Package types contains common types used across the application
package types

// Record represents one World Cup edition: the year it was played,
// the winning nation and the runner-up.
type Record struct {
	Year     int    `json:"year"`
	Winner   string `json:"winner"`
	RunnerUp string `json:"runner_up"`
}

// WinCount represents the aggregate number of titles won by one country.
type WinCount struct {
	Country string `json:"country"`
	Wins    int    `json:"wins"`
}
