package livemark

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerCoalescesBurst(t *testing.T) {
	var fired int32
	d := newDebouncer(20*time.Millisecond, func() { atomic.AddInt32(&fired, 1) })
	defer d.stop()

	for i := 0; i < 5; i++ {
		d.touch()
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)
	if got := atomic.LoadInt32(&fired); got != 1 {
		t.Errorf("fired %d times, want 1", got)
	}
}

func TestDebouncerFiresPerSettledBurst(t *testing.T) {
	var fired int32
	d := newDebouncer(10*time.Millisecond, func() { atomic.AddInt32(&fired, 1) })
	defer d.stop()

	d.touch()
	time.Sleep(80 * time.Millisecond)
	d.touch()
	time.Sleep(80 * time.Millisecond)

	if got := atomic.LoadInt32(&fired); got != 2 {
		t.Errorf("fired %d times, want 2", got)
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	var fired int32
	d := newDebouncer(20*time.Millisecond, func() { atomic.AddInt32(&fired, 1) })

	d.touch()
	d.stop()

	time.Sleep(100 * time.Millisecond)
	if got := atomic.LoadInt32(&fired); got != 0 {
		t.Errorf("fired %d times after stop, want 0", got)
	}

	// touch after stop is a no-op.
	d.touch()
	time.Sleep(60 * time.Millisecond)
	if got := atomic.LoadInt32(&fired); got != 0 {
		t.Errorf("fired %d times, want 0", got)
	}
}
