package probe

import (
	"context"
	"fmt"
	"net/url"
)

// An out-of-dataset year used for the defensive no-data checks; the first
// World Cup was 1930, so 1931 can never appear.
const missingYear = 1931

// buildChecks enumerates every verification for one sweep: all years, all
// winning countries, the overview, the interlock and the defensive paths.
func buildChecks(ctx context.Context, client *Client, opts Options) []Check {
	var checks []Check

	for _, year := range opts.Years {
		checks = append(checks,
			yearFigureCheck(ctx, client, year),
			matchCheck(ctx, client, year),
		)
	}

	winners := winnersFrom(opts)
	for _, country := range winners {
		checks = append(checks,
			countryFigureCheck(ctx, client, country),
			winsCheck(ctx, client, country),
		)
	}

	checks = append(checks, overviewCheck(ctx, client, len(winners), len(opts.Years)))
	checks = append(checks, interlockChecks(ctx, client)...)
	checks = append(checks, missingYearChecks(ctx, client)...)
	return checks
}

// winnersFrom strips the sentinel from the country option list.
func winnersFrom(opts Options) []string {
	var winners []string
	for _, c := range opts.Countries {
		if c == sentinelAllWinners {
			continue
		}
		winners = append(winners, c)
	}
	return winners
}

const sentinelAllWinners = "All winners"

// yearFigureCheck asserts the year view shape: exactly two solid
// choropleth traces with distinct colors plus a legend annotation.
func yearFigureCheck(ctx context.Context, client *Client, year int) Check {
	return Check{
		Name: fmt.Sprintf("figure_year_%d", year),
		Do: func() error {
			var fig Figure
			if err := client.GetJSON(ctx, "/figure"+query("", year), &fig); err != nil {
				return err
			}
			if fig.Mode != "year" {
				return fmt.Errorf("year %d: mode %q, want year", year, fig.Mode)
			}
			if len(fig.Traces) != 2 {
				return fmt.Errorf("year %d: got %d traces, want 2", year, len(fig.Traces))
			}
			winner, runnerUp := fig.Traces[0], fig.Traces[1]
			if winner.Name != "Winner" || runnerUp.Name != "Runner-up" {
				return fmt.Errorf("year %d: trace names %q/%q", year, winner.Name, runnerUp.Name)
			}
			if len(winner.Locations) != 1 || len(runnerUp.Locations) != 1 {
				return fmt.Errorf("year %d: traces must carry one region each", year)
			}
			if winner.SolidColor == runnerUp.SolidColor {
				return fmt.Errorf("year %d: winner and runner-up share color %q", year, winner.SolidColor)
			}
			if len(fig.Annotations) != 1 {
				return fmt.Errorf("year %d: got %d annotations, want 1 legend", year, len(fig.Annotations))
			}
			return nil
		},
	}
}

// matchCheck asserts the match summary for a dataset year.
func matchCheck(ctx context.Context, client *Client, year int) Check {
	return Check{
		Name: fmt.Sprintf("match_%d", year),
		Do: func() error {
			var m Match
			if err := client.GetJSON(ctx, fmt.Sprintf("/match/%d", year), &m); err != nil {
				return err
			}
			if !m.Found {
				return fmt.Errorf("year %d: not found", year)
			}
			if m.Winner == "" || m.RunnerUp == "" {
				return fmt.Errorf("year %d: blank winner or runner-up", year)
			}
			want := fmt.Sprintf("In %d, %s won the World Cup, and %s was the runner-up.", year, m.Winner, m.RunnerUp)
			if m.Summary != want {
				return fmt.Errorf("year %d: summary %q, want %q", year, m.Summary, want)
			}
			return nil
		},
	}
}

// countryFigureCheck asserts the single-country view shape.
func countryFigureCheck(ctx context.Context, client *Client, country string) Check {
	return Check{
		Name: "figure_country_" + country,
		Do: func() error {
			var fig Figure
			if err := client.GetJSON(ctx, "/figure"+query(country, 0), &fig); err != nil {
				return err
			}
			if fig.Mode != "country" {
				return fmt.Errorf("%s: mode %q, want country", country, fig.Mode)
			}
			if len(fig.Traces) != 2 {
				return fmt.Errorf("%s: got %d traces, want region + overlay", country, len(fig.Traces))
			}
			if len(fig.Traces[0].Locations) != 1 {
				return fmt.Errorf("%s: got %d regions, want 1", country, len(fig.Traces[0].Locations))
			}
			return nil
		},
	}
}

// winsCheck asserts that every dropdown country reports at least one title.
func winsCheck(ctx context.Context, client *Client, country string) Check {
	return Check{
		Name: "wins_" + country,
		Do: func() error {
			var w Wins
			if err := client.GetJSON(ctx, "/wins/"+url.PathEscape(country), &w); err != nil {
				return err
			}
			if w.Wins < 1 {
				return fmt.Errorf("%s: %d wins, want >= 1 for a dropdown country", country, w.Wins)
			}
			want := fmt.Sprintf("%s has won the World Cup %d times.", country, w.Wins)
			if w.Summary != want {
				return fmt.Errorf("%s: summary %q, want %q", country, w.Summary, want)
			}
			return nil
		},
	}
}

// overviewCheck asserts the all-winners view: one region per winner and
// win counts summing to the number of tournaments.
func overviewCheck(ctx context.Context, client *Client, winners, years int) Check {
	return Check{
		Name: "figure_overview",
		Do: func() error {
			var fig Figure
			if err := client.GetJSON(ctx, "/figure", &fig); err != nil {
				return err
			}
			if fig.Mode != "overview" {
				return fmt.Errorf("overview: mode %q", fig.Mode)
			}
			if len(fig.Traces) != 2 {
				return fmt.Errorf("overview: got %d traces, want region + overlay", len(fig.Traces))
			}
			regions := fig.Traces[0]
			if len(regions.Locations) != winners {
				return fmt.Errorf("overview: got %d regions, want %d", len(regions.Locations), winners)
			}
			var sum float64
			for _, v := range regions.Values {
				sum += v
			}
			if int(sum) != years {
				return fmt.Errorf("overview: win counts sum to %d, want %d", int(sum), years)
			}
			return nil
		},
	}
}

// interlockChecks covers the select/clear round trip of both dropdowns.
func interlockChecks(ctx context.Context, client *Client) []Check {
	cases := []struct {
		name            string
		country         string
		year            int
		countryDisabled bool
		yearDisabled    bool
	}{
		{"interlock_cleared", "", 0, false, false},
		{"interlock_country", "Brazil", 0, false, true},
		{"interlock_sentinel", sentinelAllWinners, 0, false, true},
		{"interlock_year", "", 1970, true, false},
	}

	checks := make([]Check, 0, len(cases))
	for _, tc := range cases {
		checks = append(checks, Check{
			Name: tc.name,
			Do: func() error {
				var c Controls
				if err := client.GetJSON(ctx, "/controls"+query(tc.country, tc.year), &c); err != nil {
					return err
				}
				if c.CountryDisabled != tc.countryDisabled || c.YearDisabled != tc.yearDisabled {
					return fmt.Errorf("%s: got country=%v year=%v, want country=%v year=%v",
						tc.name, c.CountryDisabled, c.YearDisabled, tc.countryDisabled, tc.yearDisabled)
				}
				return nil
			},
		})
	}
	return checks
}

// missingYearChecks covers the defensive no-data paths.
func missingYearChecks(ctx context.Context, client *Client) []Check {
	return []Check{
		{
			Name: "figure_missing_year",
			Do: func() error {
				var fig Figure
				if err := client.GetJSON(ctx, "/figure"+query("", missingYear), &fig); err != nil {
					return err
				}
				if len(fig.Traces) != 0 {
					return fmt.Errorf("missing year: got %d traces, want empty figure", len(fig.Traces))
				}
				return nil
			},
		},
		{
			Name: "match_missing_year",
			Do: func() error {
				var m Match
				if err := client.GetJSON(ctx, fmt.Sprintf("/match/%d", missingYear), &m); err != nil {
					return err
				}
				if m.Found {
					return fmt.Errorf("missing year: reported found")
				}
				if m.Summary != "No data available for the selected year." {
					return fmt.Errorf("missing year: summary %q", m.Summary)
				}
				return nil
			},
		},
		{
			Name: "wins_never_won",
			Do: func() error {
				// Netherlands lost three finals and never won one.
				var w Wins
				if err := client.GetJSON(ctx, "/wins/Netherlands", &w); err != nil {
					return err
				}
				if w.Wins != 0 {
					return fmt.Errorf("Netherlands: %d wins, want 0", w.Wins)
				}
				if w.Summary != "Netherlands has never won the World Cup." {
					return fmt.Errorf("Netherlands: summary %q", w.Summary)
				}
				return nil
			},
		},
	}
}
