package holdmenu

import "go.uber.org/zap"

// Layout describes how a wrapped element sits on screen.
type Layout struct {
	// Margins around the element. The lifted element and its menu are
	// translated to stay inside the viewport shrunk by these insets.
	Margins      Insets
	BorderRadius float64
}

// ContextMenu wraps an anchor node with a long-press menu. Each time the
// menu is shown a new MenuSession is created; at most one session is alive
// per ContextMenu.
//
// Pressing the anchor again while its session is past PhaseIdle and not
// yet closed is ignored: the running session is never restarted.
type ContextMenu struct {
	scene   *Scene
	anchor  *Node
	items   []MenuItem
	layout  Layout
	log     *zap.Logger
	session *MenuSession

	// OnPhaseChange, if set, is installed on every session this menu creates.
	OnPhaseChange func(from, to Phase)

	disposed bool
}

// NewContextMenu makes anchor interactable and attaches the menu's press,
// release and long-press handlers to it, replacing any it already had.
func NewContextMenu(scene *Scene, anchor *Node, items []MenuItem, layout Layout) *ContextMenu {
	c := &ContextMenu{
		scene:  scene,
		anchor: anchor,
		items:  append([]MenuItem(nil), items...),
		layout: layout,
		log:    scene.Logger().With(zap.String("anchor", anchor.Name)),
	}
	anchor.Interactable = true
	anchor.OnPointerDown = func(PointerContext) { c.press() }
	anchor.OnPointerUp = func(PointerContext) {
		if c.session != nil {
			c.session.Release()
		}
	}
	anchor.OnLongPress = func(PointerContext) {
		if err := c.Open(); err != nil {
			c.log.Warn("open failed", zap.Error(err))
		}
	}
	return c
}

// Session returns the live session, or nil when no menu is in progress.
func (c *ContextMenu) Session() *MenuSession {
	return c.session
}

// Items returns the menu items. The returned slice MUST NOT be mutated.
func (c *ContextMenu) Items() []MenuItem {
	return c.items
}

// acquire returns the session a new press or open should use, creating one
// if needed. It returns nil when a session is already past PhaseIdle.
func (c *ContextMenu) acquire() *MenuSession {
	if c.disposed {
		return nil
	}
	if s := c.session; s != nil {
		if s.Phase() == PhaseIdle {
			return s
		}
		c.log.Debug("press ignored, menu busy", zap.Stringer("phase", s.Phase()))
		return nil
	}
	s := newMenuSession(c.scene, c.anchor, c.items, c.layout, c.log)
	s.OnPhaseChange = c.OnPhaseChange
	s.onClosed = func(done *MenuSession) {
		if c.session == done {
			c.session = nil
		}
	}
	c.session = s
	return s
}

func (c *ContextMenu) press() {
	if s := c.acquire(); s != nil {
		s.Press()
	}
}

// Open shows the menu without a gesture. It returns nil without doing
// anything if a session is already showing, and returns the measurement
// error if the anchor is not mounted.
func (c *ContextMenu) Open() error {
	if c.session != nil && c.session.Phase() == PhasePressOverlay {
		return c.session.Open()
	}
	s := c.acquire()
	if s == nil {
		return nil
	}
	return s.Open()
}

// Close dismisses the menu as a background tap would.
func (c *ContextMenu) Close() {
	if c.session != nil {
		c.session.Close(ChildAnimations{})
	}
}

// Dispose unmounts the menu immediately and detaches it from the anchor.
// Activation callbacks already scheduled still run.
func (c *ContextMenu) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	if c.session != nil {
		c.session.Dispose()
		c.session = nil
	}
	c.anchor.OnPointerDown = nil
	c.anchor.OnPointerUp = nil
	c.anchor.OnLongPress = nil
}
