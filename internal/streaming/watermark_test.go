package streaming

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWatermarkClock_ZeroBeforeFirstObserve(t *testing.T) {
	t.Parallel()

	clock := NewWatermarkClock(3 * time.Hour)
	assert.True(t, clock.Watermark().IsZero())
}

func TestWatermarkClock_WatermarkIsMaxSeenMinusTolerance(t *testing.T) {
	t.Parallel()

	clock := NewWatermarkClock(3 * time.Hour)
	ts := time.Date(2026, 1, 15, 13, 0, 0, 0, time.UTC)

	advanced := clock.Observe(ts)
	assert.True(t, advanced)
	assert.Equal(t, ts.Add(-3*time.Hour), clock.Watermark())
}

func TestWatermarkClock_NeverRegresses(t *testing.T) {
	t.Parallel()

	clock := NewWatermarkClock(time.Hour)
	late := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	max := time.Date(2026, 1, 15, 13, 0, 0, 0, time.UTC)

	assert.True(t, clock.Observe(max))
	high := clock.Watermark()

	// An out-of-order event must not move the watermark backwards.
	assert.False(t, clock.Observe(late))
	assert.Equal(t, high, clock.Watermark())

	// Re-observing the maximum is a no-op as well.
	assert.False(t, clock.Observe(max))
	assert.Equal(t, high, clock.Watermark())
}

func TestWatermarkClock_MonotonicUnderConcurrentObserve(t *testing.T) {
	t.Parallel()

	clock := NewWatermarkClock(time.Hour)
	base := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				clock.Observe(base.Add(time.Duration(offset*200+i) * time.Second))
			}
		}(g)
	}
	wg.Wait()

	// 8*200 observations, the max offset is 1599 seconds.
	want := base.Add(1599 * time.Second).Add(-time.Hour)
	assert.Equal(t, want, clock.Watermark())
}
