package holdmenu

// ScrollLocker is the surrounding scrollable container's scroll switch.
type ScrollLocker interface {
	SetScrollEnabled(enabled bool)
}

// ScrollLockFunc adapts a plain callback to ScrollLocker.
type ScrollLockFunc func(enabled bool)

// SetScrollEnabled calls f(enabled).
func (f ScrollLockFunc) SetScrollEnabled(enabled bool) {
	f(enabled)
}

// InteractionGate guards one menu session's input. It disables the external
// scroll exactly once when the long press is recognized and re-enables it
// exactly once at teardown, however many times close is requested. Separately
// it holds the local input lock that makes menu items single-activation.
type InteractionGate struct {
	scroll      ScrollLocker
	locked      bool
	unlocked    bool
	inputLocked bool
}

// NewInteractionGate returns a gate driving scroll. A nil scroll locker is
// allowed; lock and unlock then skip the external call.
func NewInteractionGate(scroll ScrollLocker) *InteractionGate {
	return &InteractionGate{scroll: scroll}
}

// Lock disables scrolling. It returns false, without calling the locker, on
// every call after the first.
func (g *InteractionGate) Lock() bool {
	if g.locked {
		return false
	}
	g.locked = true
	if g.scroll != nil {
		g.scroll.SetScrollEnabled(false)
	}
	return true
}

// Unlock re-enables scrolling. It only acts once, and only after a
// successful Lock.
func (g *InteractionGate) Unlock() bool {
	if !g.locked || g.unlocked {
		return false
	}
	g.unlocked = true
	if g.scroll != nil {
		g.scroll.SetScrollEnabled(true)
	}
	return true
}

// ScrollLocked reports whether scrolling is currently disabled by this gate.
func (g *InteractionGate) ScrollLocked() bool {
	return g.locked && !g.unlocked
}

// TryActivate claims the single activation allowed per session. The first
// call sets the input lock and returns true; later calls return false.
func (g *InteractionGate) TryActivate() bool {
	if g.inputLocked {
		return false
	}
	g.inputLocked = true
	return true
}

// InputLocked reports whether a menu item has already been activated.
func (g *InteractionGate) InputLocked() bool {
	return g.inputLocked
}
