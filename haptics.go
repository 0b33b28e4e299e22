package holdmenu

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Haptics plays a short tactile pulse.
type Haptics interface {
	Pulse()
}

// HapticsFunc adapts a plain function to Haptics.
type HapticsFunc func()

// Pulse calls f.
func (f HapticsFunc) Pulse() { f() }

// EbitenHaptics vibrates the device through ebiten.Vibrate. It does nothing
// on platforms without a vibration motor.
type EbitenHaptics struct {
	Duration  time.Duration
	Magnitude float64
}

// Pulse implements Haptics.
func (h EbitenHaptics) Pulse() {
	ebiten.Vibrate(&ebiten.VibrateOptions{
		Duration:  h.Duration,
		Magnitude: h.Magnitude,
	})
}

// hapticPulse returns an Animator that plays h and completes in the same
// tick. A nil h completes without a pulse.
func hapticPulse(h Haptics) Animator {
	return AnimatorFunc(func(onComplete func()) {
		if h != nil {
			h.Pulse()
		}
		callDone(onComplete)
	})
}
