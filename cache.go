package tokencache

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/viant/tokencache/internal/collection"
)

// DefaultRefreshMargin is the lead time before expiry at which a proactive
// refresh fires.
const DefaultRefreshMargin = 10 * time.Second

// Cache keeps short-lived credentials keyed by Key and replaces them before
// they expire. Lookups are served lock-free from a read mirror and fall back
// to the serialized authoritative map, which is the only place entries are
// evicted. A failed refresh ends the chain for its key: the entry goes stale
// until an external Add, the fetcher owns any retry policy.
type Cache struct {
	mu      sync.Mutex
	tokens  map[Key]*Token                   // authoritative state
	mirror  *collection.SyncMap[Key, *Token] // fast path, write-through only
	pending map[Key]*Handle

	fetcher Fetcher
	margin  time.Duration
	now     func() time.Time
	onError func(key Key, err error)

	ctx    context.Context
	cancel context.CancelFunc
	closed bool
}

// New creates an empty cache. With no Fetcher configured entries are not
// proactively refreshed, they just age out.
func New(options ...Option) *Cache {
	ctx, cancel := context.WithCancel(context.Background())
	ret := &Cache{
		tokens:  map[Key]*Token{},
		mirror:  collection.NewSyncMap[Key, *Token](),
		pending: map[Key]*Handle{},
		margin:  DefaultRefreshMargin,
		now:     time.Now,
		onError: func(key Key, err error) {
			log.Printf("tokencache: refresh %v failed: %v", key, err)
		},
		ctx:    ctx,
		cancel: cancel,
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Add stores token under key, replacing any previous entry, and arms the
// next proactive refresh for the key. A unit armed earlier for the same key
// is canceled first, so at most one unit stays pending per key. The returned
// handle is nil when no fetcher is configured.
func (c *Cache) Add(key Key, token *Token) (*Handle, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	key = key.normalize()
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrClosed
	}
	c.tokens[key] = token
	c.mirror.Put(key, token)
	if c.fetcher == nil {
		return nil, nil
	}
	if prev := c.pending[key]; prev != nil {
		prev.Cancel()
	}
	handle := c.arm(key, token)
	c.pending[key] = handle
	return handle, nil
}

// Lookup returns the live token for key. A missing entry and an expired one
// both report false; an expired entry found in the authoritative map is
// evicted on the way out. The mirror is never evicted here, an expired
// mirror entry just fails the validity check and falls through.
func (c *Cache) Lookup(key Key) (*Token, bool) {
	key = key.normalize()
	if token, ok := c.mirror.Get(key); ok && token.IsValid(c.now()) {
		return token, true
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	token, ok := c.tokens[key]
	if !ok {
		return nil, false
	}
	if !token.IsValid(c.now()) {
		delete(c.tokens, key)
		return nil, false
	}
	return token, true
}

// Range visits a point-in-time copy of the authoritative entries.
func (c *Cache) Range(f func(key Key, token *Token) bool) {
	c.mu.Lock()
	entries := make(map[Key]*Token, len(c.tokens))
	for k, v := range c.tokens {
		entries[k] = v
	}
	c.mu.Unlock()
	for k, v := range entries {
		if !f(k, v) {
			return
		}
	}
}

// arm schedules the refresh unit for key; callers hold c.mu. A token already
// within the margin of expiry fires immediately.
func (c *Cache) arm(key Key, token *Token) *Handle {
	delay := token.ExpiresAt.Sub(c.now()) - c.margin
	if delay < 0 {
		delay = 0
	}
	handle := newHandle(key, c.now().Add(delay))
	handle.timer = time.AfterFunc(delay, func() {
		c.refresh(handle)
	})
	return handle
}

// refresh runs on the timer goroutine. The fetch happens outside any lock
// and its result re-enters through Add, which arms the next unit. No unit is
// armed on fetch failure, the key stays stale until an external Add.
func (c *Cache) refresh(handle *Handle) {
	c.mu.Lock()
	current := !c.closed && c.pending[handle.Key] == handle
	if current {
		delete(c.pending, handle.Key)
	}
	c.mu.Unlock()
	if !current || handle.isCanceled() {
		return
	}
	token, err := c.fetcher.Fetch(c.ctx, handle.Key)
	if err != nil {
		c.onError(handle.Key, err)
		return
	}
	if _, err = c.Add(handle.Key, token); err != nil {
		c.onError(handle.Key, err)
	}
}

// Close cancels every pending refresh and the context seen by in-flight
// fetches. Cached tokens stay readable until they expire.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	c.closed = true
	c.cancel()
	for key, handle := range c.pending {
		handle.Cancel()
		delete(c.pending, key)
	}
	return nil
}
