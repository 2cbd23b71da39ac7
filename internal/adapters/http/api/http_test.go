package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/okian/copa/internal/adapters/http/api"
	"github.com/okian/copa/internal/domain/types"
	"github.com/okian/copa/internal/domain/view"
	. "github.com/smartystreets/goconvey/convey"
)

// Mock implementations for testing
type mockDeps struct {
	figure    view.Figure
	wins      int
	winText   string
	match     types.Record
	matchText string
	found     bool
	countries []string
	years     []int

	lastSelection view.Selection
}

func (m *mockDeps) Figure(_ context.Context, sel view.Selection) view.Figure {
	m.lastSelection = sel
	return m.figure
}

func (m *mockDeps) WinSummary(_ context.Context, _ string) (int, string) {
	return m.wins, m.winText
}

func (m *mockDeps) MatchSummary(_ context.Context, _ int) (types.Record, string, bool) {
	return m.match, m.matchText, m.found
}

func (m *mockDeps) Controls(_ context.Context, sel view.Selection) view.Controls {
	return view.ResolveControls(sel)
}

func (m *mockDeps) SelectorOptions(_ context.Context) ([]string, []int) {
	return m.countries, m.years
}

type mockStats struct{}

func (mockStats) GetStats() map[string]interface{} {
	return map[string]interface{}{"started": true}
}

func newTestServer(deps *mockDeps) *httptest.Server {
	mux := http.NewServeMux()
	api.NewServer(deps, mockStats{}).Register(context.Background(), mux)
	return httptest.NewServer(mux)
}

func TestFigureEndpoint(t *testing.T) {
	Convey("Given the figure endpoint", t, func() {
		deps := &mockDeps{
			figure: view.Figure{Mode: view.ModeYear, Traces: []view.Trace{{Kind: view.TraceChoropleth}}},
		}
		ts := newTestServer(deps)
		defer ts.Close()

		Convey("When requesting a valid selection", func() {
			resp, err := http.Get(ts.URL + "/figure?country=Brazil&year=1970")
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			Convey("Then the resolved figure should come back", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var fig view.Figure
				So(json.NewDecoder(resp.Body).Decode(&fig), ShouldBeNil)
				So(fig.Mode, ShouldEqual, view.ModeYear)
				So(deps.lastSelection, ShouldResemble, view.Selection{Country: "Brazil", Year: 1970})
			})
		})

		Convey("When the year is not an integer", func() {
			resp, err := http.Get(ts.URL + "/figure?year=nineteen")
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			Convey("Then the request should be rejected with an annotated error", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
				var body struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				}
				So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
				So(body.Code, ShouldEqual, "bad_request")
				So(body.Message, ShouldEqual, "api.get_figure: bad request")
			})
		})

		Convey("When using the wrong method", func() {
			resp, err := http.Post(ts.URL+"/figure", "application/json", nil)
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			Convey("Then the route should not match", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestWinsEndpoint(t *testing.T) {
	Convey("Given the wins endpoint", t, func() {
		deps := &mockDeps{wins: 5, winText: "Brazil has won the World Cup 5 times."}
		ts := newTestServer(deps)
		defer ts.Close()

		Convey("When requesting a country", func() {
			resp, err := http.Get(ts.URL + "/wins/Brazil")
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			Convey("Then count and summary should come back", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var body struct {
					Country string `json:"country"`
					Wins    int    `json:"wins"`
					Summary string `json:"summary"`
				}
				So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
				So(body.Country, ShouldEqual, "Brazil")
				So(body.Wins, ShouldEqual, 5)
				So(body.Summary, ShouldContainSubstring, "5 times")
			})
		})

		Convey("When the path carries no country", func() {
			resp, err := http.Get(ts.URL + "/wins/")
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			Convey("Then the request should be rejected", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When the path is nested", func() {
			resp, err := http.Get(ts.URL + "/wins/Brazil/extra")
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			Convey("Then the request should be rejected", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
			})
		})
	})
}

func TestMatchEndpoint(t *testing.T) {
	Convey("Given the match endpoint", t, func() {
		deps := &mockDeps{
			match:     types.Record{Year: 1966, Winner: "England", RunnerUp: "Germany"},
			matchText: "In 1966, England won the World Cup, and Germany was the runner-up.",
			found:     true,
		}
		ts := newTestServer(deps)
		defer ts.Close()

		Convey("When requesting a year", func() {
			resp, err := http.Get(ts.URL + "/match/1966")
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			Convey("Then the result should come back", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var body struct {
					Year     int    `json:"year"`
					Winner   string `json:"winner"`
					RunnerUp string `json:"runner_up"`
					Found    bool   `json:"found"`
				}
				So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
				So(body.Year, ShouldEqual, 1966)
				So(body.Winner, ShouldEqual, "England")
				So(body.RunnerUp, ShouldEqual, "Germany")
				So(body.Found, ShouldBeTrue)
			})
		})

		Convey("When the year is not an integer", func() {
			resp, err := http.Get(ts.URL + "/match/sixtysix")
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			Convey("Then the request should be rejected", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
			})
		})
	})
}

func TestControlsEndpoint(t *testing.T) {
	Convey("Given the controls endpoint", t, func() {
		ts := newTestServer(&mockDeps{})
		defer ts.Close()

		fetch := func(query string) view.Controls {
			resp, err := http.Get(ts.URL + "/controls" + query)
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			var c view.Controls
			So(json.NewDecoder(resp.Body).Decode(&c), ShouldBeNil)
			return c
		}

		Convey("When a country is selected", func() {
			c := fetch("?country=Brazil")

			Convey("Then the year selector should be disabled", func() {
				So(c.YearDisabled, ShouldBeTrue)
				So(c.CountryDisabled, ShouldBeFalse)
			})
		})

		Convey("When a year is selected", func() {
			c := fetch("?year=1970")

			Convey("Then the country selector should be disabled", func() {
				So(c.CountryDisabled, ShouldBeTrue)
				So(c.YearDisabled, ShouldBeFalse)
			})
		})

		Convey("When nothing is selected", func() {
			c := fetch("")

			Convey("Then both selectors should be enabled", func() {
				So(c.CountryDisabled, ShouldBeFalse)
				So(c.YearDisabled, ShouldBeFalse)
			})
		})

		Convey("When the year is not an integer", func() {
			resp, err := http.Get(ts.URL + "/controls?year=seventy")
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			Convey("Then the request should be rejected with an annotated error", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
				var body struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				}
				So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
				So(body.Code, ShouldEqual, "bad_request")
				So(body.Message, ShouldEqual, "api.get_controls: bad request")
			})
		})
	})
}

func TestOptionsEndpoint(t *testing.T) {
	Convey("Given the options endpoint", t, func() {
		deps := &mockDeps{
			countries: []string{view.AllWinners, "Brazil", "Italy"},
			years:     []int{1930, 1934},
		}
		ts := newTestServer(deps)
		defer ts.Close()

		Convey("When requesting the option lists", func() {
			resp, err := http.Get(ts.URL + "/options")
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			Convey("Then both lists should come back", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var body struct {
					Countries []string `json:"countries"`
					Years     []int    `json:"years"`
				}
				So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
				So(body.Countries, ShouldResemble, deps.countries)
				So(body.Years, ShouldResemble, deps.years)
			})
		})
	})
}

func TestStatsAndHealthEndpoints(t *testing.T) {
	Convey("Given the operational endpoints", t, func() {
		ts := newTestServer(&mockDeps{})
		defer ts.Close()

		Convey("When requesting stats", func() {
			resp, err := http.Get(ts.URL + "/stats")
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			Convey("Then the provider's map should come back", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var stats map[string]interface{}
				So(json.NewDecoder(resp.Body).Decode(&stats), ShouldBeNil)
				So(stats["started"], ShouldEqual, true)
			})
		})

		Convey("When requesting health", func() {
			resp, err := http.Get(ts.URL + "/healthz")
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			Convey("Then Prometheus text should come back", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
			})
		})
	})
}
