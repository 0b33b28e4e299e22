package holdmenu

import "math"

// MenuHeight returns the height of a menu with the given number of rows.
// Every row, title rows included, is rowHeight tall and rows are separated by
// one divider each.
func MenuHeight(rows int, rowHeight, dividerHeight float64) float64 {
	if rows <= 0 {
		return 0
	}
	return float64(rows)*rowHeight + float64(rows-1)*dividerHeight
}

// Placement is the result of PlaceMenu: where the menu goes and which side
// of the anchor it was put on.
type Placement struct {
	Pos Vec2
	// Above is set when the menu sits above the anchor.
	Above bool
	// RightAligned is set when the menu's right edge lines up with the
	// anchor's right edge.
	RightAligned bool
}

// PlaceMenu chooses the menu's box for an anchor box.
//
// Vertically the menu goes on whichever side of the anchor puts its
// candidate top edge closer to the viewport's horizontal midline; a tie
// places it below. Horizontally the menu is left-aligned to the anchor
// unless the anchor's left edge is strictly closer to the vertical
// midline, in which case it is right-aligned.
//
// The position is not clamped and may extend past the viewport for anchors
// close to an edge. See ClampToViewport.
func PlaceMenu(anchor GeometrySnapshot, menuHeight, menuWidth float64, viewport Size, margin float64) Placement {
	midY := viewport.Height / 2
	midX := viewport.Width / 2

	var p Placement

	above := math.Abs(anchor.Y - margin - midY)
	below := math.Abs(anchor.Y + anchor.Height + margin - midY)
	if above < below {
		p.Above = true
		p.Pos.Y = anchor.Y - margin - menuHeight
	} else {
		p.Pos.Y = anchor.Y + anchor.Height + margin
	}

	left := math.Abs(anchor.X - midX)
	right := math.Abs(anchor.X + anchor.Width - midX)
	if left >= right {
		p.Pos.X = anchor.X
	} else {
		p.RightAligned = true
		p.Pos.X = anchor.X + anchor.Width - menuWidth
	}
	return p
}

// ComputeMenuPosition returns the top-left corner PlaceMenu picks.
func ComputeMenuPosition(anchor GeometrySnapshot, menuHeight, menuWidth float64, viewport Size, margin float64) Vec2 {
	return PlaceMenu(anchor, menuHeight, menuWidth, viewport, margin).Pos
}

// ClampToViewport moves a menu position so the menu lies inside the viewport
// shrunk by insets. When the menu is larger than the available space on an
// axis, it is pinned to the top or left inset.
func ClampToViewport(pos Vec2, menuWidth, menuHeight float64, viewport Size, insets Insets) Vec2 {
	pos.X = clampSpan(pos.X, menuWidth, insets.Left, viewport.Width-insets.Right)
	pos.Y = clampSpan(pos.Y, menuHeight, insets.Top, viewport.Height-insets.Bottom)
	return pos
}

func clampSpan(start, length, lo, hi float64) float64 {
	if start+length > hi {
		start = hi - length
	}
	if start < lo {
		start = lo
	}
	return start
}

// EdgeOffset returns the vertical translation that keeps the lifted anchor
// and its menu, taken together, inside the viewport shrunk by insets.
// Positive values move the block down. The result is zero when the block
// already fits. A block taller than the safe area is aligned to its top.
func EdgeOffset(anchor GeometrySnapshot, menu Vec2, menuHeight float64, viewport Size, insets Insets) float64 {
	top := math.Min(anchor.Y, menu.Y)
	bottom := math.Max(anchor.Bottom(), menu.Y+menuHeight)
	safeTop := insets.Top
	safeBottom := viewport.Height - insets.Bottom

	switch {
	case bottom-top > safeBottom-safeTop:
		return safeTop - top
	case top < safeTop:
		return safeTop - top
	case bottom > safeBottom:
		return safeBottom - bottom
	}
	return 0
}
