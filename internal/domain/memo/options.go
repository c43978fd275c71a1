package memo

// Option applies a configuration option to the Cache.
type Option[V any] func(*Cache[V])

// WithMaxEntries bounds the cache. Zero or negative disables the bound.
func WithMaxEntries[V any](n int) Option[V] {
	return func(c *Cache[V]) {
		c.maxSize = n
	}
}
