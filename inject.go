package holdmenu

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	button  MouseButton
	long    bool // count the press as already held for LongPressDuration
}

// InjectPress queues a pointer press event at the given screen coordinates
// (left button). The event is consumed on the next frame. The pointer stays
// held on later frames until an injected release.
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: true,
		button:  MouseButtonLeft,
	})
}

// InjectMove queues a pointer move event at the given screen coordinates
// with the button held down.
func (s *Scene) InjectMove(x, y float64) {
	s.InjectPress(x, y)
}

// InjectRelease queues a pointer release event at the given screen coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: false,
		button:  MouseButtonLeft,
	})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectLongPress queues a press that counts as already held for
// Config.LongPressDuration, so the long press fires on the frame after it is
// consumed. The pointer stays held until an injected release.
func (s *Scene) InjectLongPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: true,
		button:  MouseButtonLeft,
		long:    true,
	})
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer as pointer 0. Returns true if an event was consumed
// (real mouse input should be skipped).
func (s *Scene) processInjectedInput(dt float32) bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.injectHeld = evt.pressed
	s.processPointer(0, evt.x, evt.y, evt.pressed, evt.button, dt)
	if evt.long && s.pointers[0].down {
		s.pointers[0].held = s.cfg.LongPressDuration.Seconds()
	}
	return true
}
