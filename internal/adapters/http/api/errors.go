package api

import (
	"errors"
	"fmt"
)

// Sentinel kinds for API errors.
var (
	ErrServe      = errors.New("api serve failed")
	ErrBadRequest = errors.New("bad request")
)

// NewKind tags a sentinel with the operation that raised it.
func NewKind(op string, kind error) error {
	return fmt.Errorf("%s: %w", op, kind)
}

// WrapKind tags a sentinel with the operation and keeps the cause.
func WrapKind(op string, kind, err error) error {
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}

// Wrap tags any error with the operation that surfaced it.
func Wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
