// Package geo translates historical country names from the results table
// into the identifiers a world-map renderer recognizes.
package geo

// displayNames is a closed lookup table. It covers exactly the two names in
// the dataset that map renderers reject; do not extend it without a new
// confirmed case, and never guess a mapping from string similarity.
var displayNames = map[string]string{
	"Czechoslovakia": "Czechia",        // dissolved 1993; maps carry the successor state
	"England":        "United Kingdom", // map data keys on the sovereign state
}

// DisplayName returns the identifier a map layer should use for country.
// Names without a known correction pass through unchanged.
func DisplayName(country string) string {
	if mapped, ok := displayNames[country]; ok {
		return mapped
	}
	return country
}
