package tokencache

import "context"

// Fetcher mints a replacement token for a cache key. It is consulted only by
// the refresh scheduler, never by Add or Lookup. Retry and backoff policy
// belong to the implementation: an error returned here ends the refresh
// chain for the key.
type Fetcher interface {
	Fetch(ctx context.Context, key Key) (*Token, error)
}

// FetchFunc adapts a function to the Fetcher interface.
type FetchFunc func(ctx context.Context, key Key) (*Token, error)

func (f FetchFunc) Fetch(ctx context.Context, key Key) (*Token, error) {
	return f(ctx, key)
}
