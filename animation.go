package holdmenu

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animator is anything that runs over time and reports when it is finished.
// Start must invoke onComplete exactly once, possibly synchronously.
type Animator interface {
	Start(onComplete func())
}

// AnimatorFunc adapts a function to the Animator interface.
type AnimatorFunc func(onComplete func())

// Start calls f(onComplete).
func (f AnimatorFunc) Start(onComplete func()) {
	f(onComplete)
}

// isNilAnimator treats both an untyped nil and a nil *Tween as absent.
func isNilAnimator(a Animator) bool {
	if a == nil {
		return true
	}
	t, ok := a.(*Tween)
	return ok && t == nil
}

func callDone(fn func()) {
	if fn != nil {
		fn()
	}
}

// JoinAll returns an Animator that starts every constituent in the same tick
// and completes once all of them have completed. Nil entries count as
// already complete; a join with nothing to wait for completes synchronously.
func JoinAll(animators ...Animator) Animator {
	return &joinAnimator{parts: animators}
}

type joinAnimator struct {
	parts []Animator
}

func (j *joinAnimator) Start(onComplete func()) {
	pending := 0
	for _, a := range j.parts {
		if !isNilAnimator(a) {
			pending++
		}
	}
	if pending == 0 {
		callDone(onComplete)
		return
	}
	for _, a := range j.parts {
		if isNilAnimator(a) {
			continue
		}
		reported := false
		a.Start(func() {
			if reported {
				return
			}
			reported = true
			pending--
			if pending == 0 {
				callDone(onComplete)
			}
		})
	}
}

// Sequence returns an Animator that runs its constituents one after another.
// Nil entries are skipped.
func Sequence(animators ...Animator) Animator {
	return AnimatorFunc(func(onComplete func()) {
		runSequence(animators, onComplete)
	})
}

func runSequence(animators []Animator, onComplete func()) {
	for len(animators) > 0 && isNilAnimator(animators[0]) {
		animators = animators[1:]
	}
	if len(animators) == 0 {
		callDone(onComplete)
		return
	}
	rest := animators[1:]
	animators[0].Start(func() { runSequence(rest, onComplete) })
}

// Tween animates up to 4 float64 fields on a Node simultaneously. Begin
// values are read when the tween starts, so a Tween can be built ahead of
// time and still pick up from wherever the node is. The runner applies
// values each frame and marks the node dirty. If the target node is
// disposed, the tween stops and reports completion.
//
// A nil *Tween is a valid Animator that completes immediately.
type Tween struct {
	runner   *Runner
	target   *Node
	fields   [4]*float64
	to       [4]float64
	tweens   [4]*gween.Tween
	count    int
	duration float32
	fn       ease.TweenFunc

	onComplete func()
	started    bool
	Done       bool
}

func (r *Runner) newTween(node *Node, d time.Duration, fn ease.TweenFunc) *Tween {
	if fn == nil {
		fn = ease.Linear
	}
	return &Tween{runner: r, target: node, duration: float32(d.Seconds()), fn: fn}
}

func (t *Tween) add(field *float64, to float64) *Tween {
	t.fields[t.count] = field
	t.to[t.count] = to
	t.count++
	return t
}

// Start begins the tween. Starting an already running tween does nothing;
// starting a finished one completes immediately.
func (t *Tween) Start(onComplete func()) {
	if t == nil {
		callDone(onComplete)
		return
	}
	if t.Done {
		callDone(onComplete)
		return
	}
	if t.started {
		return
	}
	t.started = true
	t.onComplete = onComplete
	if t.target != nil && t.target.IsDisposed() {
		t.finish()
		return
	}
	for i := 0; i < t.count; i++ {
		t.tweens[i] = gween.New(float32(*t.fields[i]), float32(t.to[i]), t.duration, t.fn)
	}
	t.runner.add(t)
}

// update advances all fields by dt seconds and reports whether the tween
// has finished.
func (t *Tween) update(dt float32) bool {
	if t.target != nil && t.target.IsDisposed() {
		return true
	}
	allDone := true
	for i := 0; i < t.count; i++ {
		val, finished := t.tweens[i].Update(dt)
		if finished {
			*t.fields[i] = t.to[i]
		} else {
			*t.fields[i] = float64(val)
			allDone = false
		}
	}
	if t.target != nil {
		t.target.MarkDirty()
	}
	return allDone
}

// Stop ends the tween where it is and reports completion to whoever
// started it. Fields keep their current values. Stopping a tween that has
// not started yet makes a later Start complete immediately.
func (t *Tween) Stop() {
	if t == nil || t.Done {
		return
	}
	t.started = true
	t.finish()
}

func (t *Tween) finish() {
	if t.Done {
		return
	}
	t.Done = true
	done := t.onComplete
	t.onComplete = nil
	callDone(done)
}

// TweenPosition creates a Tween that animates node.X and node.Y.
func (r *Runner) TweenPosition(node *Node, toX, toY float64, d time.Duration, fn ease.TweenFunc) *Tween {
	return r.newTween(node, d, fn).add(&node.X, toX).add(&node.Y, toY)
}

// TweenScale creates a Tween that animates node.ScaleX and node.ScaleY.
func (r *Runner) TweenScale(node *Node, toSX, toSY float64, d time.Duration, fn ease.TweenFunc) *Tween {
	return r.newTween(node, d, fn).add(&node.ScaleX, toSX).add(&node.ScaleY, toSY)
}

// TweenAlpha creates a Tween that animates node.Alpha.
func (r *Runner) TweenAlpha(node *Node, to float64, d time.Duration, fn ease.TweenFunc) *Tween {
	return r.newTween(node, d, fn).add(&node.Alpha, to)
}

// TweenBlur creates a Tween that animates node.Blur.
func (r *Runner) TweenBlur(node *Node, to float64, d time.Duration, fn ease.TweenFunc) *Tween {
	return r.newTween(node, d, fn).add(&node.Blur, to)
}

// TweenValue creates a Tween that animates an arbitrary field owned by node.
// node may be nil for fields that do not belong to a scene node.
func (r *Runner) TweenValue(node *Node, field *float64, to float64, d time.Duration, fn ease.TweenFunc) *Tween {
	return r.newTween(node, d, fn).add(field, to)
}
