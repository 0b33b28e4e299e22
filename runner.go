package holdmenu

import (
	"container/heap"
	"time"
)

// Runner is the frame-driven clock that owns running tweens and pending
// timers. Call Update once per frame with the elapsed time in seconds. All
// callbacks run inside Update on the caller's goroutine; a Runner is not
// safe for concurrent use.
type Runner struct {
	now    time.Duration
	tweens []*Tween
	buf    []*Tween
	timers timerHeap
	seq    uint64
}

// NewRunner creates an idle runner at time zero.
func NewRunner() *Runner {
	return &Runner{}
}

// Now returns the accumulated time of all Update calls.
func (r *Runner) Now() time.Duration {
	return r.now
}

// Active returns the number of running tweens.
func (r *Runner) Active() int {
	return len(r.tweens)
}

// Pending returns the number of timers that have neither fired nor been stopped.
func (r *Runner) Pending() int {
	return len(r.timers)
}

// Update advances the clock by dt seconds, fires every timer that has come
// due (earliest first, ties in scheduling order), then advances running
// tweens. Tweens started by a timer callback take their first step in the
// same Update; tweens started when another tween completes take theirs on
// the next one.
func (r *Runner) Update(dt float32) {
	r.now += time.Duration(float64(dt) * float64(time.Second))

	// Timers scheduled by a callback in this loop wait for the next Update.
	last := r.seq
	for len(r.timers) > 0 && r.timers[0].when <= r.now && r.timers[0].seq <= last {
		t := heap.Pop(&r.timers).(*Timer)
		t.fired = true
		t.fn()
	}

	if len(r.tweens) == 0 {
		return
	}
	r.buf = append(r.buf[:0], r.tweens...)
	r.tweens = r.tweens[:0]
	for i, tw := range r.buf {
		r.buf[i] = nil
		if tw.Done {
			continue // stopped
		}
		if tw.update(dt) {
			tw.finish()
			continue
		}
		r.tweens = append(r.tweens, tw)
	}
}

func (r *Runner) add(t *Tween) {
	r.tweens = append(r.tweens, t)
}

// After schedules fn to run inside the first Update at which at least d has
// elapsed. A non-positive d fires on the next Update, never synchronously.
func (r *Runner) After(d time.Duration, fn func()) *Timer {
	r.seq++
	t := &Timer{runner: r, when: r.now + d, seq: r.seq, fn: fn}
	heap.Push(&r.timers, t)
	return t
}

// Timer is a pending callback scheduled with Runner.After.
type Timer struct {
	runner  *Runner
	when    time.Duration
	seq     uint64
	fn      func()
	index   int
	fired   bool
	stopped bool
}

// Stop cancels the timer. It returns false if the timer already fired or was
// already stopped. Stop on a nil timer is a no-op.
func (t *Timer) Stop() bool {
	if t == nil || t.fired || t.stopped {
		return false
	}
	t.stopped = true
	heap.Remove(&t.runner.timers, t.index)
	return true
}

// Fired reports whether the timer's callback has run.
func (t *Timer) Fired() bool {
	return t != nil && t.fired
}

// timerHeap orders timers by due time, then by scheduling order.
type timerHeap []*Timer

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].when != h[j].when {
		return h[i].when < h[j].when
	}
	return h[i].seq < h[j].seq
}
func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*Timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}
