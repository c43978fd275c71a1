package render

import "errors"

// Sentinel kinds for render errors.
var (
	ErrUnsupportedChart = errors.New("unsupported chart type")
	ErrEmptyChart       = errors.New("chart has no data")
)
