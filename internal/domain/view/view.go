// Package view resolves dropdown selection state into renderable output:
// a geographic figure, two summary strings and the selector interlock.
//
// Conventions:
// - Resolvers are pure: the same selection against the same dataset always
//   yields the same output.
// - The Figure type is a plain serializable description; it carries no
//   dependency on any charting library.
package view

import (
	"fmt"

	"github.com/okian/copa/internal/domain/geo"
	"github.com/okian/copa/internal/domain/tally"
	"github.com/okian/copa/internal/domain/types"
)

// AllWinners is the country-selector sentinel meaning "no single country";
// it is also the selector's initial value.
const AllWinners = "All winners"

// Selection is the current dropdown state. An empty Country means the
// selector is cleared; a zero Year means no year is chosen.
type Selection struct {
	Country string
	Year    int
}

// Mode identifies which of the three mutually exclusive views a selection
// resolves to.
type Mode string

// View modes, in priority order.
const (
	ModeYear     Mode = "year"
	ModeCountry  Mode = "country"
	ModeOverview Mode = "overview"
)

// Mode classifies the selection. A chosen year always wins over a chosen
// country; the sentinel and the cleared state both fall through to the
// overview.
func (s Selection) Mode() Mode {
	switch {
	case s.Year != 0:
		return ModeYear
	case s.Country != "" && s.Country != AllWinners:
		return ModeCountry
	default:
		return ModeOverview
	}
}

// TraceKind distinguishes filled regions from floating text overlays.
type TraceKind string

// Trace kinds understood by the map layer.
const (
	TraceChoropleth TraceKind = "choropleth"
	TraceText       TraceKind = "text"
)

// Trace is one drawable layer of the figure. Locations hold display names;
// Labels carry hover or overlay text aligned index-for-index with them.
type Trace struct {
	Kind            TraceKind `json:"kind"`
	Name            string    `json:"name,omitempty"`
	Locations       []string  `json:"locations"`
	Values          []float64 `json:"values,omitempty"`
	Labels          []string  `json:"labels,omitempty"`
	Colorscale      string    `json:"colorscale,omitempty"`
	SolidColor      string    `json:"solid_color,omitempty"`
	ShowScale       bool      `json:"show_scale"`
	MarkerLineColor string    `json:"marker_line_color,omitempty"`
}

// Annotation is a fixed text box in paper coordinates.
type Annotation struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Text       string  `json:"text"`
	Align      string  `json:"align,omitempty"`
	Border     string  `json:"border,omitempty"`
	Background string  `json:"background,omitempty"`
	FontSize   int     `json:"font_size,omitempty"`
}

// Layout holds figure-wide rendering hints.
type Layout struct {
	Height         int    `json:"height"`
	Projection     string `json:"projection"`
	ShowCoastlines bool   `json:"show_coastlines"`
}

// Figure is the full rendering instruction set for one selection state.
// An empty Traces slice means there is nothing to draw.
type Figure struct {
	Mode        Mode         `json:"mode"`
	Traces      []Trace      `json:"traces"`
	Annotations []Annotation `json:"annotations,omitempty"`
	Layout      Layout       `json:"layout"`
}

// Resolver turns selections into figures against one immutable dataset.
type Resolver struct {
	byYear map[int]types.Record
	counts []types.WinCount
	style  Style
}

// NewResolver builds a resolver over the given records and win counts.
// Both slices are captured as-is and must not be mutated afterwards.
func NewResolver(records []types.Record, counts []types.WinCount, opts ...Option) *Resolver {
	r := &Resolver{
		byYear: make(map[int]types.Record, len(records)),
		counts: counts,
		style:  DefaultStyle(),
	}
	for _, rec := range records {
		r.byYear[rec.Year] = rec
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Figure resolves the selection into a figure. The three branches are
// mutually exclusive and exhaustive; an unknown year yields an empty
// figure rather than an error.
func (r *Resolver) Figure(sel Selection) Figure {
	fig := Figure{
		Mode: sel.Mode(),
		Layout: Layout{
			Height:         r.style.MapHeight,
			Projection:     r.style.Projection,
			ShowCoastlines: true,
		},
	}

	switch fig.Mode {
	case ModeYear:
		r.addYearTraces(&fig, sel.Year)
	case ModeCountry:
		r.addCountryTraces(&fig, sel.Country)
	case ModeOverview:
		r.addOverviewTraces(&fig)
	}
	return fig
}

// addYearTraces highlights the winner and runner-up of one edition as two
// solid single-region traces plus a legend box. A year outside the table
// leaves the figure empty.
func (r *Resolver) addYearTraces(fig *Figure, year int) {
	rec, ok := r.byYear[year]
	if !ok {
		return
	}

	fig.Traces = append(fig.Traces,
		Trace{
			Kind:            TraceChoropleth,
			Name:            "Winner",
			Locations:       []string{geo.DisplayName(rec.Winner)},
			Values:          []float64{1},
			Labels:          []string{winLabel(rec.Winner, tally.Wins(r.counts, rec.Winner))},
			SolidColor:      r.style.WinnerColor,
			MarkerLineColor: r.style.MarkerLineColor,
		},
		Trace{
			Kind:            TraceChoropleth,
			Name:            "Runner-up",
			Locations:       []string{geo.DisplayName(rec.RunnerUp)},
			Values:          []float64{1},
			Labels:          []string{winLabel(rec.RunnerUp, tally.Wins(r.counts, rec.RunnerUp))},
			SolidColor:      r.style.RunnerUpColor,
			MarkerLineColor: r.style.MarkerLineColor,
		},
	)

	fig.Annotations = append(fig.Annotations, Annotation{
		X: r.style.LegendX,
		Y: r.style.LegendY,
		Text: "<b>Legend</b><br>" +
			"<span style='color:" + r.style.WinnerColor + ";'>&#9632;</span> Winner<br>" +
			"<span style='color:" + r.style.RunnerUpColor + ";'>&#9632;</span> Runner-up",
		Align:      "left",
		Border:     "black",
		Background: "rgba(255,255,255,0.7)",
		FontSize:   r.style.TextSize,
	})
}

// addCountryTraces draws a single country's region on the continuous scale
// with its win count overlaid as text.
func (r *Resolver) addCountryTraces(fig *Figure, country string) {
	wins := tally.Wins(r.counts, country)
	subset := []types.WinCount{{Country: country, Wins: wins}}
	r.addScaledTraces(fig, subset)
}

// addOverviewTraces draws every winning country on the continuous scale
// with per-country count overlays.
func (r *Resolver) addOverviewTraces(fig *Figure) {
	r.addScaledTraces(fig, r.counts)
}

// addScaledTraces emits the shared choropleth-plus-overlay pair used by the
// country and overview modes.
func (r *Resolver) addScaledTraces(fig *Figure, counts []types.WinCount) {
	locations := make([]string, len(counts))
	values := make([]float64, len(counts))
	labels := make([]string, len(counts))
	overlays := make([]string, len(counts))
	for i, c := range counts {
		locations[i] = geo.DisplayName(c.Country)
		values[i] = float64(c.Wins)
		labels[i] = winLabel(c.Country, c.Wins)
		overlays[i] = fmt.Sprintf("%d", c.Wins)
	}

	fig.Traces = append(fig.Traces,
		Trace{
			Kind:            TraceChoropleth,
			Name:            "Wins",
			Locations:       locations,
			Values:          values,
			Labels:          labels,
			Colorscale:      r.style.Colorscale,
			ShowScale:       true,
			MarkerLineColor: r.style.MarkerLineColor,
		},
		Trace{
			Kind:       TraceText,
			Locations:  locations,
			Labels:     overlays,
			SolidColor: r.style.TextColor,
		},
	)
}

// winLabel formats the hover label for a region. The raw dataset name is
// shown even when the region itself is keyed by a display name.
func winLabel(country string, wins int) string {
	return fmt.Sprintf("%s (%d wins)", country, wins)
}
