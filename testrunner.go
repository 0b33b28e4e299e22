package holdmenu

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string        `yaml:"action"`
	X      float64       `yaml:"x,omitempty"`
	Y      float64       `yaml:"y,omitempty"`
	For    time.Duration `yaml:"for,omitempty"`
	Frames int           `yaml:"frames,omitempty"`
}

type scriptFile struct {
	FrameRate int          `yaml:"frameRate"`
	Steps     []scriptStep `yaml:"steps"`
}

// ErrInvalidScript is returned by LoadScript for malformed scripts.
var ErrInvalidScript = errors.New("holdmenu: invalid script")

// Script replays injected pointer input against a Scene for automated
// testing and demos. Scripts are YAML:
//
//	frameRate: 60
//	steps:
//	  - {action: press, x: 120, y: 300}
//	  - {action: wait, for: 500ms}
//	  - {action: release, x: 120, y: 300}
//	  - {action: tap, x: 10, y: 10}
//	  - {action: wait, frames: 30}
//
// A press keeps the pointer held until the matching release.
type Script struct {
	steps  []scriptStep
	dt     float32
	cursor int
	wait   int
}

// LoadScript parses a YAML input script.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps: %w", ErrInvalidScript)
	}
	if f.FrameRate <= 0 {
		f.FrameRate = 60
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "press", "release", "move", "tap", "wait":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q: %w", i, st.Action, ErrInvalidScript)
		}
	}
	return &Script{steps: f.Steps, dt: 1 / float32(f.FrameRate)}, nil
}

// FrameTime returns the frame length the script advances by, in seconds.
func (r *Script) FrameTime() float32 {
	return r.dt
}

// Done reports whether every step has been executed.
func (r *Script) Done() bool {
	return r.cursor >= len(r.steps) && r.wait == 0
}

// Step queues the input for the current frame and advances s by one frame.
func (r *Script) Step(s *Scene) {
	r.queue(s)
	s.Advance(r.dt)
}

// Play steps the scene until the script is done and the inject queue has
// drained.
func (r *Script) Play(s *Scene) {
	for !r.Done() || len(s.injectQueue) > 0 {
		r.Step(s)
	}
}

func (r *Script) queue(s *Scene) {
	// Pending injections drain before the next step runs.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.wait > 0 {
		r.wait--
		return
	}
	if r.cursor >= len(r.steps) {
		return
	}
	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		s.InjectPress(st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "tap":
		s.InjectClick(st.X, st.Y)
	case "wait":
		frames := st.Frames
		if st.For > 0 {
			frames += int(st.For.Seconds()/float64(r.dt) + 0.5)
		}
		if frames > 0 {
			r.wait = frames - 1 // this frame counts as one
		}
	}
}
