package holdmenu

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMenuHeight(t *testing.T) {
	tests := []struct {
		name string
		rows int
		want float64
	}{
		{"empty", 0, 0},
		{"negative", -2, 0},
		{"single row", 1, 44},
		{"three rows", 3, 3*44 + 2*1},
		{"four rows", 4, 179},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MenuHeight(tt.rows, 44, 1); got != tt.want {
				t.Errorf("MenuHeight(%d, 44, 1) = %v, want %v", tt.rows, got, tt.want)
			}
		})
	}
}

func TestComputeMenuPosition(t *testing.T) {
	vp := Size{Width: 800, Height: 600}

	tests := []struct {
		name   string
		anchor GeometrySnapshot
		height float64
		width  float64
		want   Vec2
	}{
		{
			// above = |500-7-300| = 193, below = |547-300| = 247; left 350 >= right 250
			name:   "lower left anchor opens above, left aligned",
			anchor: GeometrySnapshot{X: 50, Y: 500, Width: 100, Height: 40},
			height: 130, width: 250,
			want: Vec2{X: 50, Y: 363},
		},
		{
			name:   "upper anchor opens below",
			anchor: GeometrySnapshot{X: 50, Y: 40, Width: 100, Height: 40},
			height: 130, width: 250,
			want: Vec2{X: 50, Y: 87},
		},
		{
			// left = |600-400| = 200 < right = |750-400| = 350
			name:   "right anchor right aligns",
			anchor: GeometrySnapshot{X: 600, Y: 40, Width: 150, Height: 40},
			height: 130, width: 250,
			want: Vec2{X: 500, Y: 87},
		},
		{
			name:   "vertical tie goes below",
			anchor: GeometrySnapshot{X: 50, Y: 280, Width: 100, Height: 40},
			height: 130, width: 250,
			want: Vec2{X: 50, Y: 327},
		},
		{
			name:   "horizontal tie left aligns",
			anchor: GeometrySnapshot{X: 300, Y: 40, Width: 200, Height: 40},
			height: 130, width: 250,
			want: Vec2{X: 300, Y: 87},
		},
		{
			name:   "no clamping near the top edge",
			anchor: GeometrySnapshot{X: 50, Y: 400, Width: 100, Height: 40},
			height: 500, width: 250,
			want: Vec2{X: 50, Y: -107},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeMenuPosition(tt.anchor, tt.height, tt.width, vp, 7)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ComputeMenuPosition mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPlaceMenu(t *testing.T) {
	vp := Size{Width: 800, Height: 600}

	tests := []struct {
		name   string
		anchor GeometrySnapshot
		width  float64
		want   Placement
	}{
		{
			name:   "above, left aligned",
			anchor: GeometrySnapshot{X: 50, Y: 500, Width: 100, Height: 40},
			width:  250,
			want:   Placement{Pos: Vec2{X: 50, Y: 363}, Above: true},
		},
		{
			name:   "below, right aligned",
			anchor: GeometrySnapshot{X: 600, Y: 40, Width: 150, Height: 40},
			width:  250,
			want:   Placement{Pos: Vec2{X: 500, Y: 87}, RightAligned: true},
		},
		{
			// Right aligned, yet the left edges coincide.
			name:   "menu as wide as the anchor",
			anchor: GeometrySnapshot{X: 600, Y: 40, Width: 250, Height: 40},
			width:  250,
			want:   Placement{Pos: Vec2{X: 600, Y: 87}, RightAligned: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlaceMenu(tt.anchor, 130, tt.width, vp, 7)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("PlaceMenu mismatch (-want +got):\n%s", diff)
			}
			if pos := ComputeMenuPosition(tt.anchor, 130, tt.width, vp, 7); pos != got.Pos {
				t.Errorf("ComputeMenuPosition = %v, want %v", pos, got.Pos)
			}
		})
	}
}

func TestComputeMenuPositionIsPure(t *testing.T) {
	anchor := GeometrySnapshot{X: 123, Y: 456, Width: 78, Height: 90}
	vp := Size{Width: 390, Height: 844}
	first := ComputeMenuPosition(anchor, 179, 250, vp, 7)
	for i := 0; i < 100; i++ {
		if got := ComputeMenuPosition(anchor, 179, 250, vp, 7); got != first {
			t.Fatalf("call %d = %v, want %v", i, got, first)
		}
	}
}

func TestClampToViewport(t *testing.T) {
	vp := Size{Width: 400, Height: 800}
	insets := Insets{Top: 40, Right: 10, Bottom: 30, Left: 10}

	tests := []struct {
		name string
		pos  Vec2
		w, h float64
		want Vec2
	}{
		{"inside untouched", Vec2{X: 50, Y: 100}, 250, 179, Vec2{X: 50, Y: 100}},
		{"past left and top", Vec2{X: -87, Y: -20}, 250, 179, Vec2{X: 10, Y: 40}},
		{"past right and bottom", Vec2{X: 300, Y: 700}, 250, 179, Vec2{X: 140, Y: 591}},
		{"taller than safe area pins top", Vec2{X: 50, Y: 100}, 250, 900, Vec2{X: 50, Y: 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampToViewport(tt.pos, tt.w, tt.h, vp, insets)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ClampToViewport mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEdgeOffset(t *testing.T) {
	vp := Size{Width: 400, Height: 800}
	insets := Insets{Top: 44, Bottom: 34}

	tests := []struct {
		name   string
		anchor GeometrySnapshot
		menu   Vec2
		height float64
		want   float64
	}{
		{
			name:   "fits",
			anchor: GeometrySnapshot{X: 40, Y: 200, Width: 120, Height: 80},
			menu:   Vec2{X: 40, Y: 287}, height: 179,
			want: 0,
		},
		{
			name:   "menu past bottom moves up",
			anchor: GeometrySnapshot{X: 40, Y: 500, Width: 120, Height: 80},
			menu:   Vec2{X: 40, Y: 587}, height: 200,
			want: 766 - 787,
		},
		{
			name:   "anchor past top moves down",
			anchor: GeometrySnapshot{X: 40, Y: 20, Width: 120, Height: 80},
			menu:   Vec2{X: 40, Y: 107}, height: 179,
			want: 24,
		},
		{
			name:   "taller than safe area aligns top",
			anchor: GeometrySnapshot{X: 40, Y: 300, Width: 120, Height: 400},
			menu:   Vec2{X: 40, Y: 707}, height: 400,
			want: 44 - 300,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EdgeOffset(tt.anchor, tt.menu, tt.height, vp, insets); got != tt.want {
				t.Errorf("EdgeOffset = %v, want %v", got, tt.want)
			}
		})
	}
}
