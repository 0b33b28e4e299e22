package holdmenu

import (
	"testing"
	"time"
)

type pointerCounts struct {
	down, up, click, long int
}

func countingBox(s *Scene, name string, x, y, w, h float64) (*Node, *pointerCounts) {
	n := NewBox(name, w, h, ColorWhite)
	n.SetPosition(x, y)
	n.Interactable = true
	c := &pointerCounts{}
	n.OnPointerDown = func(PointerContext) { c.down++ }
	n.OnPointerUp = func(PointerContext) { c.up++ }
	n.OnClick = func(PointerContext) { c.click++ }
	n.OnLongPress = func(PointerContext) { c.long++ }
	s.Content().AddChild(n)
	return n, c
}

func TestNodeContainsLocal(t *testing.T) {
	n := NewBox("b", 100, 50, ColorWhite)
	tests := []struct {
		name   string
		lx, ly float64
		want   bool
	}{
		{"inside", 50, 25, true},
		{"corner", 100, 50, true},
		{"left of box", -1, 25, false},
		{"below box", 50, 51, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nodeContainsLocal(n, tt.lx, tt.ly); got != tt.want {
				t.Errorf("nodeContainsLocal(%v, %v) = %v, want %v", tt.lx, tt.ly, got, tt.want)
			}
		})
	}
	if nodeContainsLocal(NewContainer("c"), 0, 0) {
		t.Error("zero-sized node should not be hit")
	}
}

func TestHitTestTopmost(t *testing.T) {
	s := NewScene(Size{Width: 400, Height: 800})
	bottom, _ := countingBox(s, "bottom", 0, 0, 100, 100)
	top, _ := countingBox(s, "top", 50, 50, 100, 100)
	s.Advance(frame)

	if got := s.hitTest(75, 75); got != top {
		t.Errorf("hitTest(75, 75) = %v, want top", got)
	}
	if got := s.hitTest(25, 25); got != bottom {
		t.Errorf("hitTest(25, 25) = %v, want bottom", got)
	}
	if got := s.hitTest(300, 300); got != nil {
		t.Errorf("hitTest(300, 300) = %v, want nil", got)
	}

	top.Visible = false
	if got := s.hitTest(75, 75); got != bottom {
		t.Errorf("hidden node should not be hit, got %v", got)
	}
}

func TestInjectClick(t *testing.T) {
	s := NewScene(Size{Width: 400, Height: 800})
	_, c := countingBox(s, "box", 0, 0, 100, 100)

	s.InjectClick(50, 50)
	s.Advance(frame)
	s.Advance(frame)

	if c.down != 1 || c.up != 1 || c.click != 1 || c.long != 0 {
		t.Errorf("counts = %+v, want one down, up and click", *c)
	}
}

func TestLongPressSuppressesClick(t *testing.T) {
	s := NewScene(Size{Width: 400, Height: 800})
	_, c := countingBox(s, "box", 0, 0, 100, 100)

	s.InjectPress(50, 50)
	advanceFor(s, 300*time.Millisecond)
	if c.long != 0 {
		t.Fatal("long press fired before LongPressDuration")
	}
	advanceFor(s, 200*time.Millisecond)
	if c.long != 1 {
		t.Fatalf("long = %d, want 1", c.long)
	}
	advanceFor(s, 500*time.Millisecond)
	s.InjectRelease(50, 50)
	s.Advance(frame)

	if c.long != 1 || c.click != 0 || c.up != 1 {
		t.Errorf("counts = %+v, want one long press, one up, no click", *c)
	}
}

func TestLongPressCancelledBySlop(t *testing.T) {
	s := NewScene(Size{Width: 400, Height: 800})
	_, c := countingBox(s, "box", 0, 0, 100, 100)

	s.InjectPress(20, 50)
	s.Advance(frame)
	s.InjectMove(20+s.Config().LongPressSlop+5, 50)
	advanceFor(s, time.Second)
	s.InjectRelease(40, 50)
	s.Advance(frame)

	if c.long != 0 {
		t.Errorf("long = %d, want 0 after drifting past the slop", c.long)
	}
}

func TestUpGoesToPressedNode(t *testing.T) {
	s := NewScene(Size{Width: 400, Height: 800})
	_, a := countingBox(s, "a", 0, 0, 100, 100)
	_, b := countingBox(s, "b", 200, 0, 100, 100)

	s.InjectPress(50, 50)
	s.Advance(frame)
	s.InjectRelease(250, 50)
	s.Advance(frame)

	if a.down != 1 || a.up != 1 || a.click != 0 {
		t.Errorf("a = %+v, want down and up without click", *a)
	}
	if b.down != 0 || b.up != 0 || b.click != 0 {
		t.Errorf("b = %+v, want no events", *b)
	}
}

func TestDisposedNodeGetsNoEvents(t *testing.T) {
	s := NewScene(Size{Width: 400, Height: 800})
	n, c := countingBox(s, "box", 0, 0, 100, 100)

	s.InjectPress(50, 50)
	s.Advance(frame)
	n.Dispose()
	s.InjectRelease(50, 50)
	s.Advance(frame)

	if c.down != 1 || c.up != 0 {
		t.Errorf("counts = %+v, want only the down before disposal", *c)
	}
}

func TestInjectLongPress(t *testing.T) {
	s := NewScene(Size{Width: 400, Height: 800})
	_, c := countingBox(s, "box", 0, 0, 100, 100)

	s.InjectLongPress(50, 50)
	s.Advance(frame)
	if c.long != 0 {
		t.Fatal("long press fired on the press frame")
	}
	s.Advance(frame)
	if c.long != 1 {
		t.Fatalf("long = %d, want 1", c.long)
	}
	s.InjectRelease(50, 50)
	s.Advance(frame)
	if c.click != 0 || c.up != 1 {
		t.Errorf("counts = %+v, want an up and no click", *c)
	}
}
