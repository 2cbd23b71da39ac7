package view

// Controls carries the disabled flags for the two selectors.
type Controls struct {
	CountryDisabled bool `json:"country_disabled"`
	YearDisabled    bool `json:"year_disabled"`
}

// ResolveControls implements the selector interlock: each dropdown is
// disabled while the other one carries any value, the sentinel included.
// Clearing a selector re-enables its counterpart, so the interlock is
// idempotent over select/clear round trips.
func ResolveControls(sel Selection) Controls {
	return Controls{
		CountryDisabled: sel.Year != 0,
		YearDisabled:    sel.Country != "",
	}
}
