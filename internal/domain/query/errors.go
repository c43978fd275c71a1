package query

import "errors"

// Sentinel kinds for query errors.
var (
	ErrUnknownView = errors.New("unknown view kind")
)
