// Package probe exercises a running COPA server and verifies the
// dashboard invariants end to end: figure shapes per view mode, win-count
// totals, summary strings and the selector interlock.
package probe

import "time"

// Config holds configuration for the probe run. Log destination is set up
// separately via SetupLogging before Run.
type Config struct {
	BaseURL string        // Base URL of the service
	Workers int           // Number of concurrent workers
	Timeout time.Duration // HTTP request timeout
	Verbose bool          // Enable verbose logging
}

// Check is one named verification against the server.
type Check struct {
	Name string
	Do   func() error
}

// Stats holds probe statistics
type Stats struct {
	ChecksBuilt  int
	ChecksRun    int64
	ChecksPassed int64
	ChecksFailed int64
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
}

// Response shapes mirrored from the API package.

// Options lists the values the two dropdowns may take.
type Options struct {
	Countries []string `json:"countries"`
	Years     []int    `json:"years"`
}

// Wins is the GET /wins/{country} response.
type Wins struct {
	Country string `json:"country"`
	Wins    int    `json:"wins"`
	Summary string `json:"summary"`
}

// Match is the GET /match/{year} response.
type Match struct {
	Year     int    `json:"year"`
	Winner   string `json:"winner"`
	RunnerUp string `json:"runner_up"`
	Summary  string `json:"summary"`
	Found    bool   `json:"found"`
}

// Controls is the GET /controls response.
type Controls struct {
	CountryDisabled bool `json:"country_disabled"`
	YearDisabled    bool `json:"year_disabled"`
}

// Trace is one drawable layer of a figure.
type Trace struct {
	Kind       string    `json:"kind"`
	Name       string    `json:"name"`
	Locations  []string  `json:"locations"`
	Values     []float64 `json:"values"`
	Labels     []string  `json:"labels"`
	SolidColor string    `json:"solid_color"`
}

// Figure is the GET /figure response.
type Figure struct {
	Mode        string  `json:"mode"`
	Traces      []Trace `json:"traces"`
	Annotations []struct {
		Text string `json:"text"`
	} `json:"annotations"`
}
