// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8090".
	Addr string `koanf:"addr"`

	// WinnerColor fills the winner region in the year view.
	WinnerColor string `koanf:"winner_color"`

	// RunnerUpColor fills the runner-up region in the year view.
	RunnerUpColor string `koanf:"runner_up_color"`

	// Colorscale names the continuous scale for win-count regions.
	Colorscale string `koanf:"colorscale"`

	// Projection selects the map projection for the figure layout.
	Projection string `koanf:"projection"`

	// MapHeight is the rendered figure height in pixels.
	MapHeight int `koanf:"map_height"`
}

// New creates a Config with the canonical dashboard defaults.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		Addr:          ":8090",
		WinnerColor:   "#6a0dad",
		RunnerUpColor: "grey",
		Colorscale:    "Viridis",
		Projection:    "natural earth",
		MapHeight:     800,
	}
}
