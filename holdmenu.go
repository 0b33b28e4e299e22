package holdmenu

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied color.RGBA scaled by alpha.
func (c Color) toRGBA(alpha float64) color.RGBA {
	a := clamp01(c.A * alpha)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions and offsets throughout the API.
type Vec2 struct {
	X, Y float64
}

// Size is a width/height pair, typically the viewport.
type Size struct {
	Width, Height float64
}

// Insets are the layout margins around a wrapped element, in pixels.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// Phase is the stage a MenuSession is in. Phases only move forward, except
// that PhasePressOverlay may fall back to PhaseIdle when a press is released
// before it becomes a long press.
type Phase uint8

const (
	PhaseIdle         Phase = iota // nothing shown
	PhasePressOverlay              // press highlight shown, long press not yet recognized
	PhaseBouncing                  // lifted duplicate shrinking then expanding
	PhaseRevealing                 // background effects started, menu not yet mounted
	PhaseRevealed                  // menu mounted and interactive
	PhaseClosing                   // teardown animations running
	PhaseClosed                    // overlay unmounted, session finished
)

var phaseNames = [...]string{
	PhaseIdle:         "idle",
	PhasePressOverlay: "press-overlay",
	PhaseBouncing:     "bouncing",
	PhaseRevealing:    "revealing",
	PhaseRevealed:     "revealed",
	PhaseClosing:      "closing",
	PhaseClosed:       "closed",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// canTransition reports whether a session may move from one phase to another.
func canTransition(from, to Phase) bool {
	if from == PhasePressOverlay && to == PhaseIdle {
		return true
	}
	return to > from
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)
