package view

// Style collects the rendering knobs that varied between historical copies
// of the dashboard. Defaults reproduce the canonical look.
type Style struct {
	// WinnerColor and RunnerUpColor fill the two single-region traces of
	// the year view.
	WinnerColor   string
	RunnerUpColor string

	// Colorscale names the continuous scale for win-count regions.
	Colorscale string

	// Projection selects the map projection, e.g. "natural earth".
	Projection string

	// MapHeight is the figure height in pixels.
	MapHeight int

	// MarkerLineColor outlines region borders.
	MarkerLineColor string

	// TextColor and TextSize style count overlays and the legend box.
	TextColor string
	TextSize  int

	// LegendX and LegendY position the year-view legend in paper coords.
	LegendX float64
	LegendY float64
}

// DefaultStyle returns the canonical dashboard styling.
func DefaultStyle() Style {
	return Style{
		WinnerColor:     "#6a0dad",
		RunnerUpColor:   "grey",
		Colorscale:      "Viridis",
		Projection:      "natural earth",
		MapHeight:       800,
		MarkerLineColor: "white",
		TextColor:       "black",
		TextSize:        12,
		LegendX:         0.95,
		LegendY:         0.7,
	}
}

// Option applies a configuration option to the Resolver.
type Option func(*Resolver)

// WithStyle replaces the whole style at once.
func WithStyle(s Style) Option {
	return func(r *Resolver) {
		r.style = s
	}
}

// WithColors overrides the winner and runner-up fill colors.
func WithColors(winner, runnerUp string) Option {
	return func(r *Resolver) {
		if winner != "" {
			r.style.WinnerColor = winner
		}
		if runnerUp != "" {
			r.style.RunnerUpColor = runnerUp
		}
	}
}

// WithColorscale overrides the continuous colorscale name.
func WithColorscale(name string) Option {
	return func(r *Resolver) {
		if name != "" {
			r.style.Colorscale = name
		}
	}
}

// WithProjection overrides the map projection.
func WithProjection(name string) Option {
	return func(r *Resolver) {
		if name != "" {
			r.style.Projection = name
		}
	}
}

// WithMapHeight overrides the figure height.
func WithMapHeight(px int) Option {
	return func(r *Resolver) {
		if px > 0 {
			r.style.MapHeight = px
		}
	}
}
