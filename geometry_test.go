package holdmenu

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestMeasureUnavailable(t *testing.T) {
	if _, err := Measure(nil); !errors.Is(err, ErrMeasurementUnavailable) {
		t.Errorf("Measure(nil) error = %v, want ErrMeasurementUnavailable", err)
	}

	detached := NewBox("detached", 10, 10, ColorWhite)
	if _, err := Measure(detached); !errors.Is(err, ErrMeasurementUnavailable) {
		t.Errorf("Measure(detached) error = %v, want ErrMeasurementUnavailable", err)
	}

	s := NewScene(Size{Width: 400, Height: 800})
	gone := NewBox("gone", 10, 10, ColorWhite)
	s.Content().AddChild(gone)
	gone.Dispose()
	if _, err := Measure(gone); !errors.Is(err, ErrMeasurementUnavailable) {
		t.Errorf("Measure(disposed) error = %v, want ErrMeasurementUnavailable", err)
	}
}

func TestMeasure(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)

	t.Run("plain box", func(t *testing.T) {
		s := NewScene(Size{Width: 400, Height: 800})
		n := NewBox("box", 100, 50, ColorWhite)
		n.SetPosition(10, 20)
		s.Content().AddChild(n)

		got, err := Measure(n)
		if err != nil {
			t.Fatal(err)
		}
		want := GeometrySnapshot{X: 10, Y: 20, Width: 100, Height: 50}
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("Measure mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("scaled around pivot", func(t *testing.T) {
		s := NewScene(Size{Width: 400, Height: 800})
		n := NewBox("box", 100, 50, ColorWhite)
		n.SetPivot(50, 25)
		n.SetPosition(60, 45)
		n.SetScale(2, 2)
		s.Content().AddChild(n)

		got, err := Measure(n)
		if err != nil {
			t.Fatal(err)
		}
		want := GeometrySnapshot{X: -40, Y: -5, Width: 200, Height: 100}
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("Measure mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("inherits shrunk content", func(t *testing.T) {
		s := NewScene(Size{Width: 400, Height: 800})
		n := NewBox("box", 100, 100, ColorWhite)
		s.Content().AddChild(n)
		s.Content().SetScale(0.5, 0.5)

		// No frame has run since the scale change.
		got, err := Measure(n)
		if err != nil {
			t.Fatal(err)
		}
		want := GeometrySnapshot{X: 100, Y: 200, Width: 50, Height: 50}
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("Measure mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestGeometrySnapshotEdges(t *testing.T) {
	g := GeometrySnapshot{X: 10, Y: 20, Width: 30, Height: 40}
	if g.Right() != 40 || g.Bottom() != 60 {
		t.Errorf("Right, Bottom = %v, %v, want 40, 60", g.Right(), g.Bottom())
	}
	if !g.Contains(40, 60) || g.Contains(math.Nextafter(40, 41), 30) {
		t.Error("Contains should include edges and nothing past them")
	}
}

var approxFloats = cmpopts.EquateApprox(0, 1e-9)
