package tokencache

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Handle references one scheduled refresh unit. At most one live handle
// exists per key: arming a key cancels the previous one.
type Handle struct {
	ID     string
	Key    Key
	FireAt time.Time

	timer    *time.Timer
	canceled atomic.Bool
}

func newHandle(key Key, fireAt time.Time) *Handle {
	return &Handle{ID: uuid.New().String(), Key: key, FireAt: fireAt}
}

// Cancel stops the scheduled refresh. It reports whether the unit was still
// pending; false means it already fired or was canceled earlier.
func (h *Handle) Cancel() bool {
	if h == nil || !h.canceled.CompareAndSwap(false, true) {
		return false
	}
	if h.timer == nil {
		return false
	}
	return h.timer.Stop()
}

func (h *Handle) isCanceled() bool {
	return h.canceled.Load()
}
