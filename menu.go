package holdmenu

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// MenuItem is one row of a context menu.
type MenuItem struct {
	Text string
	// Icon names an entry in the scene's IconSet. Unknown names draw no icon.
	Icon          string
	IsDestructive bool
	// IsTitle marks a non-interactive heading row.
	IsTitle bool
	// OnActivate runs after Config.ActivationDelay once the row is pressed.
	OnActivate func()
}

// IconSet resolves icon names to images.
type IconSet map[string]*ebiten.Image

// Resolve returns the image registered for name, or nil when there is none.
func (s IconSet) Resolve(name string) *ebiten.Image {
	if name == "" || s == nil {
		return nil
	}
	return s[name]
}

var (
	menuRowColor     = Color{R: 0.96, G: 0.96, B: 0.97, A: 1}
	menuDividerColor = Color{R: 0.8, G: 0.8, B: 0.82, A: 1}
	menuTextColor    = Color{R: 0.1, G: 0.1, B: 0.12, A: 1}
	menuTitleColor   = Color{R: 0.45, G: 0.45, B: 0.5, A: 1}
	menuDangerColor  = Color{R: 0.86, G: 0.15, B: 0.15, A: 1}
)

// ChildAnimations are the exit animations a closer hands to
// MenuSession.Close. A mounted menu supplies its own shrink and fade.
type ChildAnimations struct {
	Shrink Animator
	Fade   Animator
}

// Menu is the mounted list of rows for one session.
type Menu struct {
	node    *Node
	rows    []*Node
	height  float64
	session *MenuSession

	// Exit tweens, built with the menu and started by the session's
	// teardown.
	childShrink *Tween
	childFade   *Tween
}

// newMenu builds the row nodes at pos. The menu scales from the corner
// nearest the anchor.
func newMenu(s *MenuSession, pos Vec2, height float64, icons IconSet) *Menu {
	cfg := s.cfg
	m := &Menu{
		node:    NewContainer("menu"),
		height:  height,
		session: s,
	}

	var pivot Vec2
	if s.state.MenuAbove {
		pivot.Y = height
	}
	if s.state.MenuRightAligned {
		pivot.X = cfg.MenuWidth
	}
	m.node.Width = cfg.MenuWidth
	m.node.Height = height
	m.node.BorderRadius = s.layout.BorderRadius
	m.node.Interactable = true // swallow taps that land on dividers
	m.node.SetPivot(pivot.X, pivot.Y)
	m.node.SetPosition(pos.X+pivot.X, pos.Y+pivot.Y)

	y := 0.0
	for i, item := range s.items {
		if i > 0 {
			if cfg.DividerHeight > 0 {
				div := NewBox(fmt.Sprintf("divider-%d", i), cfg.MenuWidth, cfg.DividerHeight, menuDividerColor)
				div.Y = y
				m.node.AddChild(div)
			}
			y += cfg.DividerHeight
		}

		row := NewBox(fmt.Sprintf("item-%d", i), cfg.MenuWidth, cfg.MenuItemHeight, menuRowColor)
		row.Y = y
		row.Label = item.Text
		row.Image = icons.Resolve(item.Icon)
		switch {
		case item.IsTitle:
			row.LabelColor = menuTitleColor
		case item.IsDestructive:
			row.LabelColor = menuDangerColor
		default:
			row.LabelColor = menuTextColor
		}
		if !item.IsTitle {
			index := i
			row.Interactable = true
			row.OnClick = func(PointerContext) { s.activate(index) }
		}
		m.node.AddChild(row)
		m.rows = append(m.rows, row)
		y += cfg.MenuItemHeight
	}

	r := s.runner
	m.childShrink = s.track(r.TweenScale(m.node, 0, 0, cfg.FadeSpeed, ease.InQuad))
	m.childFade = s.track(r.TweenAlpha(m.node, 0, cfg.FadeSpeed, ease.Linear))
	return m
}

// enter starts the menu's entrance: scale and opacity from 0 to 1.
func (m *Menu) enter() {
	s := m.session
	r := s.runner
	m.node.SetScale(0, 0)
	m.node.SetAlpha(0)
	JoinAll(
		s.track(r.TweenScale(m.node, 1, 1, s.cfg.AppearSpeed, ease.OutBack)),
		s.track(r.TweenAlpha(m.node, 1, s.cfg.FadeSpeed, ease.Linear)),
	).Start(nil)
}

// childAnimations returns the handles this menu supplies when one of its
// items closes the session.
func (m *Menu) childAnimations() ChildAnimations {
	return ChildAnimations{Shrink: m.childShrink, Fade: m.childFade}
}

// Rows returns the row nodes in item order. The returned slice MUST NOT be
// mutated.
func (m *Menu) Rows() []*Node {
	return m.rows
}

// Node returns the menu's container node.
func (m *Menu) Node() *Node {
	return m.node
}

// Height returns the laid-out menu height.
func (m *Menu) Height() float64 {
	return m.height
}
