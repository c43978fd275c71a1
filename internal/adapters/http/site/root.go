// Package site serves the embedded dashboard frontend.
package site

import (
	"context"
	"errors"
	"net/http"
)

// Error constants
var (
	ErrGenerate = errors.New("site generation failed")
	ErrServe    = errors.New("site serve failed")
)

// Register attaches the embedded dashboard routes to mux. The page is
// a static shell; everything it shows comes from the JSON API.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	files := http.FileServer(FS())
	mux.Handle("/", files)
}
