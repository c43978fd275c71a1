package service

import "errors"

// ErrNotStarted is returned when a query arrives before Start loaded
// the table.
var ErrNotStarted = errors.New("service not started")
