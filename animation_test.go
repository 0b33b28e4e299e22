package holdmenu

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/tanema/gween/ease"
)

func TestTweenPositionReachesTarget(t *testing.T) {
	r := NewRunner()
	node := NewContainer("pos")
	node.X = 10
	node.Y = 20

	done := 0
	tw := r.TweenPosition(node, 100, 200, time.Second, ease.Linear)
	tw.Start(func() { done++ })

	// Exact halves avoid float32 accumulation drift.
	r.Update(0.5)
	if math.Abs(node.X-55) > 0.5 {
		t.Errorf("X at half time = %f, want ~55", node.X)
	}
	r.Update(0.5)

	if !tw.Done {
		t.Fatal("expected Done after full duration")
	}
	if node.X != 100 || node.Y != 200 {
		t.Errorf("position = (%f, %f), want (100, 200)", node.X, node.Y)
	}
	if done != 1 {
		t.Errorf("completion called %d times, want 1", done)
	}
	if r.Active() != 0 {
		t.Errorf("Active = %d, want 0", r.Active())
	}
}

func TestTweenReadsBeginValueAtStart(t *testing.T) {
	r := NewRunner()
	node := NewContainer("alpha")
	tw := r.TweenAlpha(node, 0, time.Second, ease.Linear)

	node.Alpha = 0.5 // changed after the tween was built
	tw.Start(nil)
	r.Update(0.5)

	if math.Abs(node.Alpha-0.25) > 0.01 {
		t.Errorf("Alpha = %f, want ~0.25", node.Alpha)
	}
}

func TestTweenScaleAndBlur(t *testing.T) {
	r := NewRunner()
	node := NewContainer("n")
	r.TweenScale(node, 2, 3, 500*time.Millisecond, ease.OutQuad).Start(nil)
	r.TweenBlur(node, 20, 500*time.Millisecond, ease.Linear).Start(nil)
	r.Update(0.25)
	r.Update(0.25)

	if node.ScaleX != 2 || node.ScaleY != 3 || node.Blur != 20 {
		t.Errorf("scale, blur = (%f, %f), %f; want (2, 3), 20", node.ScaleX, node.ScaleY, node.Blur)
	}
}

func TestTweenStop(t *testing.T) {
	r := NewRunner()
	node := NewContainer("n")
	done := 0
	tw := r.TweenAlpha(node, 0, time.Second, ease.Linear)
	tw.Start(func() { done++ })
	r.Update(0.5)
	tw.Stop()
	tw.Stop()
	r.Update(0.5)

	if done != 1 {
		t.Errorf("completion called %d times, want 1", done)
	}
	if math.Abs(node.Alpha-0.5) > 0.01 {
		t.Errorf("Alpha = %f, want stopped near 0.5", node.Alpha)
	}

	// Starting a finished tween completes at once.
	again := false
	tw.Start(func() { again = true })
	if !again {
		t.Error("Start on a finished tween should complete immediately")
	}
}

func TestTweenStopBeforeStart(t *testing.T) {
	r := NewRunner()
	node := NewContainer("n")
	tw := r.TweenAlpha(node, 0, time.Second, ease.Linear)
	tw.Stop()

	done := false
	tw.Start(func() { done = true })
	if !done {
		t.Error("Start after Stop should complete immediately")
	}
	if node.Alpha != 1 {
		t.Errorf("Alpha = %f, want untouched 1", node.Alpha)
	}
}

func TestTweenDisposedTarget(t *testing.T) {
	r := NewRunner()
	node := NewContainer("n")
	done := 0
	r.TweenAlpha(node, 0, time.Second, ease.Linear).Start(func() { done++ })
	node.Dispose()
	r.Update(0.1)

	if done != 1 {
		t.Errorf("completion called %d times, want 1", done)
	}

	// Starting against an already disposed node completes immediately.
	r.TweenAlpha(node, 1, time.Second, ease.Linear).Start(func() { done++ })
	if done != 2 {
		t.Errorf("completion called %d times, want 2", done)
	}
}

func TestNilTweenIsComplete(t *testing.T) {
	var tw *Tween
	done := false
	tw.Start(func() { done = true })
	if !done {
		t.Error("nil tween should complete immediately")
	}
	tw.Stop()
}

func TestJoinAll(t *testing.T) {
	r := NewRunner()
	a := NewContainer("a")
	b := NewContainer("b")

	done := 0
	JoinAll(
		r.TweenAlpha(a, 0, 200*time.Millisecond, ease.Linear),
		nil,
		(*Tween)(nil),
		r.TweenAlpha(b, 0, 500*time.Millisecond, ease.Linear),
	).Start(func() { done++ })

	r.Update(0.25)
	if done != 0 {
		t.Fatal("join completed before its slowest constituent")
	}
	r.Update(0.25)
	if done != 1 {
		t.Errorf("completion called %d times, want 1", done)
	}
}

func TestJoinAllEmptyCompletesSynchronously(t *testing.T) {
	done := 0
	JoinAll().Start(func() { done++ })
	JoinAll(nil, nil).Start(func() { done++ })
	if done != 2 {
		t.Errorf("completion called %d times, want 2", done)
	}
}

func TestJoinAllIgnoresRepeatedCompletion(t *testing.T) {
	chatty := AnimatorFunc(func(onComplete func()) {
		onComplete()
		onComplete()
	})
	var pending func()
	slow := AnimatorFunc(func(onComplete func()) { pending = onComplete })

	done := 0
	JoinAll(chatty, slow).Start(func() { done++ })
	if done != 0 {
		t.Fatal("repeated completion from one constituent satisfied the join")
	}
	pending()
	if done != 1 {
		t.Errorf("completion called %d times, want 1", done)
	}
}

func TestSequence(t *testing.T) {
	r := NewRunner()
	node := NewContainer("n")
	var order []string
	step := func(name string) Animator {
		return AnimatorFunc(func(onComplete func()) {
			order = append(order, name)
			onComplete()
		})
	}

	done := false
	Sequence(
		step("first"),
		nil,
		r.TweenAlpha(node, 0, 100*time.Millisecond, ease.Linear),
		step("last"),
	).Start(func() { done = true })

	if diff := cmp.Diff([]string{"first"}, order); diff != "" {
		t.Fatalf("order before tween (-want +got):\n%s", diff)
	}
	r.Update(0.2)
	if diff := cmp.Diff([]string{"first", "last"}, order); diff != "" {
		t.Errorf("order after tween (-want +got):\n%s", diff)
	}
	if !done {
		t.Error("sequence did not complete")
	}
}
