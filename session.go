package holdmenu

import (
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// SessionState is the mutable state of one show-interact-dismiss cycle.
// Only the owning MenuSession writes it.
type SessionState struct {
	Phase Phase

	CollapsedAnchor GeometrySnapshot
	HasCollapsed    bool
	ExpandedAnchor  GeometrySnapshot
	HasExpanded     bool
	MenuGeometry    Vec2
	HasGeometry     bool
	MenuHeight      float64
	EdgeOffset      float64
	// MenuAbove and MenuRightAligned record the side of the anchor the
	// menu was placed on. The menu grows from the corner they name.
	MenuAbove        bool
	MenuRightAligned bool

	revealTimer    *Timer
	closeRequested bool
	childShrink    Animator
	childFade      Animator
}

// MenuSession drives one context menu from press to teardown. Create it
// through ContextMenu; a session is single use and ends in PhaseClosed.
type MenuSession struct {
	scene  *Scene
	runner *Runner
	cfg    Config
	log    *zap.Logger

	anchor *Node
	items  []MenuItem
	layout Layout

	gate  *InteractionGate
	state SessionState

	highlight   *Node
	highlightIn *Tween
	layer       *Node // session root inside the scene overlay
	backdrop    *Node
	lifted      *Node // pivot-centered wrapper: bounce, restore and edge translation
	liftedBody  *Node // visual duplicate of the anchor
	home        Vec2  // lifted wrapper position before any translation
	menu        *Menu
	tweens      []*Tween

	// OnPhaseChange, if set, is called after every phase transition.
	OnPhaseChange func(from, to Phase)
	onClosed      func(*MenuSession)
}

func newMenuSession(scene *Scene, anchor *Node, items []MenuItem, layout Layout, log *zap.Logger) *MenuSession {
	cfg := scene.Config()
	return &MenuSession{
		scene:  scene,
		runner: scene.Runner(),
		cfg:    cfg,
		log:    log,
		anchor: anchor,
		items:  append([]MenuItem(nil), items...),
		layout: layout,
		gate:   NewInteractionGate(cfg.ScrollLock),
	}
}

// Phase returns the current phase.
func (s *MenuSession) Phase() Phase { return s.state.Phase }

// State returns a copy of the session state.
func (s *MenuSession) State() SessionState { return s.state }

// InputLocked reports whether a menu item has been activated.
func (s *MenuSession) InputLocked() bool { return s.gate.InputLocked() }

// RevealPending reports whether the reveal delay timer is armed.
func (s *MenuSession) RevealPending() bool { return s.state.revealTimer != nil }

// Menu returns the mounted menu, or nil before the reveal.
func (s *MenuSession) Menu() *Menu { return s.menu }

// Lifted returns the overlay duplicate of the anchor, or nil before Open.
func (s *MenuSession) Lifted() *Node { return s.liftedBody }

// Backdrop returns the full-screen blur layer, or nil before Open.
func (s *MenuSession) Backdrop() *Node { return s.backdrop }

func (s *MenuSession) setPhase(to Phase) {
	from := s.state.Phase
	if !canTransition(from, to) {
		s.log.Warn("rejected phase transition", zap.Stringer("from", from), zap.Stringer("to", to))
		return
	}
	s.state.Phase = to
	s.log.Debug("phase", zap.Stringer("from", from), zap.Stringer("to", to))
	if s.OnPhaseChange != nil {
		s.OnPhaseChange(from, to)
	}
}

// track records a tween so Dispose can stop it. Finished tweens are
// dropped on the way.
func (s *MenuSession) track(t *Tween) *Tween {
	kept := s.tweens[:0]
	for _, old := range s.tweens {
		if !old.Done {
			kept = append(kept, old)
		}
	}
	for i := len(kept); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = append(kept, t)
	return t
}

// Press shows the press highlight over the anchor. It only acts in
// PhaseIdle.
func (s *MenuSession) Press() bool {
	if s.state.Phase != PhaseIdle {
		return false
	}
	h := NewBox("press-highlight", s.anchor.Width, s.anchor.Height, Color{A: 1})
	h.Alpha = 0
	h.BorderRadius = s.layout.BorderRadius
	s.anchor.AddChild(h)
	s.highlight = h
	s.highlightIn = s.track(s.runner.TweenAlpha(h, s.cfg.HighlightAlpha, s.cfg.FadeSpeed, ease.Linear))
	s.highlightIn.Start(nil)
	s.setPhase(PhasePressOverlay)
	return true
}

// Release drops the press highlight when the press ends before it became a
// long press. It only acts in PhasePressOverlay.
func (s *MenuSession) Release() bool {
	if s.state.Phase != PhasePressOverlay {
		return false
	}
	s.setPhase(PhaseIdle)
	h := s.highlight
	s.highlight = nil
	s.highlightIn.Stop()
	s.highlightIn = nil
	s.track(s.runner.TweenAlpha(h, 0, s.cfg.FadeSpeed, ease.Linear)).Start(h.Dispose)
	return true
}

// Open lifts the anchor and starts the bounce. It acts in PhaseIdle and
// PhasePressOverlay; in any other phase it does nothing and returns nil.
// A failed anchor measurement ends the session and is returned.
func (s *MenuSession) Open() error {
	if s.state.Phase != PhaseIdle && s.state.Phase != PhasePressOverlay {
		s.log.Debug("open ignored", zap.Stringer("phase", s.state.Phase))
		return nil
	}
	s.gate.Lock()
	collapsed, err := Measure(s.anchor)
	if err != nil {
		s.log.Debug("collapsed measurement failed", zap.Error(err))
		s.abort()
		return err
	}
	s.state.CollapsedAnchor = collapsed
	s.state.HasCollapsed = true
	s.log.Debug("collapsed anchor", zap.Any("box", collapsed))

	s.mount(collapsed)
	s.setPhase(PhaseBouncing)

	r := s.runner
	cfg := s.cfg
	var highlightOut *Tween
	if s.highlight != nil {
		highlightOut = s.track(r.TweenAlpha(s.highlight, 0, cfg.FadeSpeed, ease.Linear))
	}
	Sequence(
		s.track(r.TweenScale(s.lifted, cfg.ShrinkFactor, cfg.ShrinkFactor, cfg.FadeSpeed, ease.OutQuad)),
		hapticPulse(cfg.Haptics),
		JoinAll(
			s.track(r.TweenScale(s.lifted, cfg.ExpandFactor, cfg.ExpandFactor, cfg.AppearSpeed, ease.OutBack)),
			highlightOut,
		),
	).Start(s.bounceDone)
	return nil
}

// mount builds the overlay: a backdrop that catches outside taps and the
// lifted duplicate of the anchor at its collapsed position. The anchor
// itself is hidden until teardown.
func (s *MenuSession) mount(at GeometrySnapshot) {
	vp := s.scene.Viewport()

	s.layer = NewContainer("holdmenu")
	s.backdrop = NewBox("backdrop", vp.Width, vp.Height, Color{A: 0})
	s.backdrop.Interactable = true
	s.backdrop.OnClick = func(PointerContext) { s.Close(ChildAnimations{}) }
	s.layer.AddChild(s.backdrop)

	s.home = Vec2{X: at.X + at.Width/2, Y: at.Y + at.Height/2}
	s.lifted = NewContainer("lifted")
	s.lifted.SetPivot(at.Width/2, at.Height/2)
	s.lifted.SetPosition(s.home.X, s.home.Y)

	body := NewBox(s.anchor.Name+"-lifted", at.Width, at.Height, s.anchor.Color)
	body.SetPivot(at.Width/2, at.Height/2)
	body.SetPosition(at.Width/2, at.Height/2)
	body.Image = s.anchor.Image
	body.Label = s.anchor.Label
	body.LabelColor = s.anchor.LabelColor
	body.BorderRadius = s.layout.BorderRadius
	s.liftedBody = body
	s.lifted.AddChild(body)

	if s.highlight != nil {
		s.highlightIn.Stop()
		s.highlight.Width, s.highlight.Height = at.Width, at.Height
		body.AddChild(s.highlight)
	}

	s.layer.AddChild(s.lifted)
	s.scene.Overlay().AddChild(s.layer)
	s.anchor.Visible = false
}

// bounceDone measures the expanded duplicate, places the menu and arms the
// reveal delay.
func (s *MenuSession) bounceDone() {
	if s.state.Phase != PhaseBouncing {
		return
	}
	expanded, err := Measure(s.liftedBody)
	if err != nil {
		s.log.Warn("expanded measurement failed", zap.Error(err))
		s.teardown()
		return
	}
	s.state.ExpandedAnchor = expanded
	s.state.HasExpanded = true
	s.place(expanded)

	if s.state.closeRequested {
		s.teardown()
		return
	}
	s.state.revealTimer = s.runner.After(s.cfg.RevealDelay, s.reveal)
}

// place computes the menu geometry. It runs once per session.
func (s *MenuSession) place(anchor GeometrySnapshot) {
	if s.state.HasGeometry {
		return
	}
	cfg := s.cfg
	vp := s.scene.Viewport()
	h := MenuHeight(len(s.items), cfg.MenuItemHeight, cfg.DividerHeight)
	p := PlaceMenu(anchor, h, cfg.MenuWidth, vp, cfg.MenuMargin)
	pos := p.Pos
	if cfg.ClampToViewport {
		pos = ClampToViewport(pos, cfg.MenuWidth, h, vp, s.layout.Margins)
	}
	s.state.MenuGeometry = pos
	s.state.MenuHeight = h
	s.state.MenuAbove = p.Above
	s.state.MenuRightAligned = p.RightAligned
	s.state.EdgeOffset = EdgeOffset(anchor, pos, h, vp, s.layout.Margins)
	s.state.HasGeometry = true
	s.log.Debug("menu placed",
		zap.Any("anchor", anchor),
		zap.Float64("x", pos.X), zap.Float64("y", pos.Y),
		zap.Float64("height", h), zap.Float64("edgeOffset", s.state.EdgeOffset),
		zap.Bool("above", p.Above), zap.Bool("rightAligned", p.RightAligned))
}

// reveal starts the background effects and mounts the menu.
func (s *MenuSession) reveal() {
	s.state.revealTimer = nil
	if s.state.Phase != PhaseBouncing {
		return
	}
	s.setPhase(PhaseRevealing)
	if s.state.Phase != PhaseRevealing {
		return // closed from a phase hook
	}

	r := s.runner
	cfg := s.cfg
	offset := s.state.EdgeOffset
	var translate *Tween
	if offset != 0 {
		translate = s.track(r.TweenPosition(s.lifted, s.home.X, s.home.Y+offset, cfg.AppearSpeed, ease.OutQuad))
	}
	JoinAll(
		s.track(r.TweenBlur(s.backdrop, cfg.BlurIntensity, cfg.FadeSpeed, ease.Linear)),
		s.track(r.TweenScale(s.scene.Content(), cfg.ScreenShrinkFactor, cfg.ScreenShrinkFactor, cfg.AppearSpeed, ease.OutQuad)),
		translate,
	).Start(nil)

	pos := s.state.MenuGeometry
	pos.Y += offset
	s.menu = newMenu(s, pos, s.state.MenuHeight, s.scene.Icons)
	s.layer.AddChild(s.menu.node)
	s.menu.enter()
	s.mergeChild(s.menu.childAnimations())
	s.setPhase(PhaseRevealed)
}

// Close dismisses the menu. Non-nil child animations replace the ones the
// session holds; once the menu is mounted those are its own shrink and fade. Close is a no-op when idle or already closing; during the
// press it acts like Release; during the bounce it waits for the bounce to
// finish, then tears down instead of revealing.
func (s *MenuSession) Close(child ChildAnimations) {
	switch s.state.Phase {
	case PhaseIdle, PhaseClosing, PhaseClosed:
		s.log.Debug("close ignored", zap.Stringer("phase", s.state.Phase))
		return
	case PhasePressOverlay:
		s.Release()
		return
	}
	s.mergeChild(child)
	if s.state.Phase == PhaseBouncing {
		if s.state.revealTimer.Stop() {
			s.state.revealTimer = nil
			s.teardown()
			return
		}
		s.state.closeRequested = true
		return
	}
	s.teardown()
}

func (s *MenuSession) mergeChild(child ChildAnimations) {
	if !isNilAnimator(child.Shrink) {
		s.state.childShrink = child.Shrink
	}
	if !isNilAnimator(child.Fade) {
		s.state.childFade = child.Fade
	}
}

// teardown reverses every entrance effect in parallel and unmounts the
// overlay once they have all finished.
func (s *MenuSession) teardown() {
	s.setPhase(PhaseClosing)

	// Entrance tweens still in flight would fight the reversal.
	s.stopRunning()

	r := s.runner
	cfg := s.cfg
	JoinAll(
		s.state.childShrink,
		s.state.childFade,
		s.track(r.TweenBlur(s.backdrop, 0, cfg.FadeSpeed, ease.Linear)),
		s.track(r.TweenScale(s.lifted, 1, 1, cfg.FadeSpeed, ease.OutQuad)),
		s.track(r.TweenPosition(s.lifted, s.home.X, s.home.Y, cfg.FadeSpeed, ease.OutQuad)),
		s.track(r.TweenScale(s.scene.Content(), 1, 1, cfg.FadeSpeed, ease.OutQuad)),
	).Start(s.teardownDone)
}

// stopRunning stops every started tween. Tweens built but not started yet,
// such as the menu's child handles, are kept.
func (s *MenuSession) stopRunning() {
	kept := s.tweens[:0]
	for _, t := range s.tweens {
		if t.started {
			t.Stop()
			continue
		}
		kept = append(kept, t)
	}
	for i := len(kept); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = kept
}

// activate handles a press on item i.
func (s *MenuSession) activate(i int) {
	if s.state.Phase != PhaseRevealed || i < 0 || i >= len(s.items) {
		return
	}
	item := s.items[i]
	if item.IsTitle {
		return
	}
	if !s.gate.TryActivate() {
		s.log.Debug("activation ignored, input locked", zap.Int("item", i))
		return
	}
	s.log.Debug("item activated", zap.Int("item", i), zap.String("text", item.Text))
	s.Close(s.menu.childAnimations())
	if item.OnActivate != nil {
		// Not tracked: the action runs even if the session is disposed.
		s.runner.After(s.cfg.ActivationDelay, item.OnActivate)
	}
}

func (s *MenuSession) teardownDone() {
	if s.state.Phase != PhaseClosing {
		return
	}
	s.gate.Unlock()
	s.unmount()
	s.setPhase(PhaseClosed)
	if s.onClosed != nil {
		s.onClosed(s)
	}
}

// unmount removes the overlay and shows the anchor again. Safe to call more
// than once.
func (s *MenuSession) unmount() {
	if s.highlight != nil && s.highlight.Parent == s.anchor {
		s.highlight.Dispose()
	}
	s.highlight = nil
	if s.layer != nil {
		s.layer.Dispose()
		s.layer = nil
		s.anchor.Visible = true
		s.anchor.MarkDirty()
	}
}

// abort ends a session that failed to open.
func (s *MenuSession) abort() {
	s.gate.Unlock()
	s.unmount()
	s.setPhase(PhaseClosed)
	if s.onClosed != nil {
		s.onClosed(s)
	}
}

// Dispose tears the session down immediately, without animation: the
// reveal timer is cancelled, running tweens are stopped, the overlay is
// unmounted and scrolling is re-enabled if this session disabled it.
// Activation callbacks already scheduled still run. Dispose is idempotent.
func (s *MenuSession) Dispose() {
	if s.state.Phase == PhaseClosed {
		return
	}
	s.state.revealTimer.Stop()
	s.state.revealTimer = nil
	s.setPhase(PhaseClosed)

	for _, t := range s.tweens {
		t.Stop()
	}
	s.tweens = nil
	if s.layer != nil {
		s.scene.Content().SetScale(1, 1)
	}
	s.unmount()
	s.gate.Unlock()
	if s.onClosed != nil {
		s.onClosed(s)
	}
}
