package holdmenu

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// --- Per-pointer state ---

type pointerState struct {
	down        bool
	startX      float64
	startY      float64
	lastX       float64
	lastY       float64
	hitNode     *Node
	button      MouseButton // button captured at press time
	held        float64     // seconds held since the press frame
	moved       bool        // drifted past LongPressSlop, long press no longer possible
	longPressed bool
}

// --- Hit testing ---

// nodeContainsLocal tests whether (lx, ly) falls inside a node's
// Width x Height box. Zero-sized nodes are not hit-testable.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.Width == 0 && n.Height == 0 {
		return false
	}
	return lx >= 0 && lx <= n.Width && ly >= 0 && ly <= n.Height
}

// collectInteractable walks the tree in paint order, appending interactable
// nodes to buf. Invisible subtrees are skipped.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible {
		return buf
	}
	if n.Interactable {
		buf = append(buf, n)
	}
	for _, child := range n.children {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (x, y).
// Returns nil if nothing is hit.
func (s *Scene) hitTest(x, y float64) *Node {
	s.hitBuf = collectInteractable(s.root, s.hitBuf[:0])

	// Iterate backward (reverse paint order): topmost visual node first.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		if singular(n.worldTransform) {
			continue // scaled to nothing
		}
		lx, ly := n.WorldToLocal(x, y)
		if nodeContainsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

// processInput handles injected input and, when readDevices is set, the
// real mouse and touch screen.
func (s *Scene) processInput(dt float32, readDevices bool) {
	if s.processInjectedInput(dt) {
		return
	}
	if s.injectHeld {
		// An injected press stays held until an injected release.
		ps := &s.pointers[0]
		s.processPointer(0, ps.lastX, ps.lastY, true, ps.button, dt)
		return
	}
	if !readDevices {
		return
	}
	s.processMousePointer(dt)
	s.processTouchPointers(dt)
}

// processMousePointer handles mouse input (pointer 0).
func (s *Scene) processMousePointer(dt float32) {
	mx, my := ebiten.CursorPosition()

	// If the pointer is already down, keep the stored button to avoid
	// changing mid-interaction.
	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}

	s.processPointer(0, float64(mx), float64(my), pressed, button, dt)
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *Scene) processTouchPointers(dt float32) {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		s.processPointer(slot, float64(tx), float64(ty), true, MouseButtonLeft, dt)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			ps := &s.pointers[i]
			if ps.down {
				s.processPointer(i, ps.lastX, ps.lastY, false, MouseButtonLeft, dt)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Scene) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the press / long-press / click state machine for a
// single pointer. Up events go to the node that received the press, even if
// the pointer has moved off it.
func (s *Scene) processPointer(pointerID int, x, y float64, pressed bool, button MouseButton, dt float32) {
	ps := &s.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		target := s.hitTest(x, y)
		*ps = pointerState{
			down:    true,
			button:  button,
			startX:  x,
			startY:  y,
			lastX:   x,
			lastY:   y,
			hitNode: target,
		}
		s.firePointer(target, pointerID, x, y, button, eventDown)

	case pressed && ps.down:
		ps.lastX = x
		ps.lastY = y
		if !ps.moved && math.Hypot(x-ps.startX, y-ps.startY) > s.cfg.LongPressSlop {
			ps.moved = true
		}
		ps.held += float64(dt)
		if !ps.longPressed && !ps.moved && ps.hitNode != nil && ps.hitNode.OnLongPress != nil &&
			ps.held >= s.cfg.LongPressDuration.Seconds() {
			ps.longPressed = true
			s.firePointer(ps.hitNode, pointerID, x, y, ps.button, eventLongPress)
		}

	case !pressed && ps.down:
		target := s.hitTest(x, y)
		pressNode := ps.hitNode
		clicked := !ps.longPressed && pressNode != nil && pressNode == target
		btn := ps.button
		*ps = pointerState{lastX: x, lastY: y}

		s.firePointer(pressNode, pointerID, x, y, btn, eventUp)
		if clicked {
			s.firePointer(pressNode, pointerID, x, y, btn, eventClick)
		}
	}
}

type pointerEvent uint8

const (
	eventDown pointerEvent = iota
	eventUp
	eventClick
	eventLongPress
)

// firePointer invokes the node callback for ev. Disposed or nil nodes are
// skipped.
func (s *Scene) firePointer(node *Node, pointerID int, x, y float64, button MouseButton, ev pointerEvent) {
	if node == nil || node.IsDisposed() {
		return
	}
	var fn func(PointerContext)
	switch ev {
	case eventDown:
		fn = node.OnPointerDown
	case eventUp:
		fn = node.OnPointerUp
	case eventClick:
		fn = node.OnClick
	case eventLongPress:
		fn = node.OnLongPress
	}
	if fn == nil {
		return
	}
	lx, ly := node.WorldToLocal(x, y)
	fn(PointerContext{
		Node: node, GlobalX: x, GlobalY: y, LocalX: lx, LocalY: ly,
		Button: button, PointerID: pointerID,
	})
}
