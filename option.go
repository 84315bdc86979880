package tokencache

import "time"

type Option func(*Cache)

// WithFetcher sets the fetcher consulted by scheduled refreshes.
func WithFetcher(fetcher Fetcher) Option {
	return func(c *Cache) {
		c.fetcher = fetcher
	}
}

// WithRefreshMargin overrides the lead time before expiry at which a
// proactive refresh fires.
func WithRefreshMargin(margin time.Duration) Option {
	return func(c *Cache) {
		c.margin = margin
	}
}

// WithClock injects the time source used by expiry checks and refresh
// scheduling.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// WithErrorHandler replaces the default handler invoked when a scheduled
// refresh fetch fails.
func WithErrorHandler(handler func(key Key, err error)) Option {
	return func(c *Cache) {
		c.onError = handler
	}
}
