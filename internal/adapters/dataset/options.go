package dataset

// Option applies a configuration option to the loader.
type Option func(*loader)

// WithMetrics toggles load-time metric updates. Tests disable them to
// keep the global registry quiet.
func WithMetrics(enabled bool) Option {
	return func(l *loader) {
		l.metricsEnabled = enabled
	}
}

// WithComma overrides the field delimiter of both source files.
func WithComma(c rune) Option {
	return func(l *loader) {
		if c != 0 {
			l.comma = c
		}
	}
}
