package repository

import "errors"

// Sentinel kinds for dataset store errors.
var (
	ErrYearNotFound    = errors.New("year not found")
	ErrCountryNotFound = errors.New("country not found")
	ErrEmptyDataset    = errors.New("empty dataset")
)
