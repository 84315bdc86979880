package tokencache

import "errors"

// ErrClosed is returned by Add once the cache has been closed.
var ErrClosed = errors.New("tokencache: cache is closed")
