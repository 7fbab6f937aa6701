package streaming

import (
	"sync/atomic"
	"time"
)

// WatermarkClock tracks the maximum event timestamp observed on one time
// column and derives the watermark as max(seen) - tolerance. The maximum is
// advanced with compare-and-swap so it never regresses regardless of event
// arrival order; reads are lock-free and may be momentarily stale.
type WatermarkClock struct {
	tolerance time.Duration
	maxSeen   atomic.Int64 // unix nanos, 0 = nothing observed yet
}

func NewWatermarkClock(tolerance time.Duration) *WatermarkClock {
	return &WatermarkClock{tolerance: tolerance}
}

// Observe records an event timestamp and reports whether the maximum
// advanced. Timestamps at or before the current maximum are no-ops.
func (c *WatermarkClock) Observe(ts time.Time) bool {
	nanos := ts.UnixNano()
	for {
		cur := c.maxSeen.Load()
		if cur != 0 && nanos <= cur {
			return false
		}
		if c.maxSeen.CompareAndSwap(cur, nanos) {
			return true
		}
	}
}

// Watermark returns the current late-event floor. Before any event has been
// observed it returns the zero time, so nothing is considered late.
func (c *WatermarkClock) Watermark() time.Time {
	cur := c.maxSeen.Load()
	if cur == 0 {
		return time.Time{}
	}
	return time.Unix(0, cur).Add(-c.tolerance).UTC()
}
