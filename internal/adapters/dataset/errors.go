// Package dataset loads the two source tables and holds the joined,
// immutable athlete table for the lifetime of the process.
package dataset

import "errors"

// Sentinel kinds for dataset errors.
var (
	ErrLoad      = errors.New("dataset load failed")
	ErrNoRows    = errors.New("dataset contains no rows")
	ErrBadColumn = errors.New("required column missing")
)
