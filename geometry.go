package holdmenu

import (
	"errors"
	"fmt"
	"math"
)

// ErrMeasurementUnavailable is returned by Measure when the node is not
// attached to a scene.
var ErrMeasurementUnavailable = errors.New("holdmenu: measurement unavailable")

// GeometrySnapshot is an element's on-screen bounding box, captured at one
// point in time. Coordinates are screen space with the origin top-left.
type GeometrySnapshot struct {
	X, Y, Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (g GeometrySnapshot) Right() float64 { return g.X + g.Width }

// Bottom returns the y coordinate of the bottom edge.
func (g GeometrySnapshot) Bottom() float64 { return g.Y + g.Height }

// Contains reports whether the point (x, y) lies inside the box.
// Points on the edge are considered inside.
func (g GeometrySnapshot) Contains(x, y float64) bool {
	return x >= g.X && x <= g.X+g.Width &&
		y >= g.Y && y <= g.Y+g.Height
}

// Measure returns the screen-space bounding box of n's local
// Width x Height rectangle. The world matrix is composed from the ancestor
// chain at call time, so the result reflects property changes made earlier
// in the same frame.
func Measure(n *Node) (GeometrySnapshot, error) {
	if n == nil {
		return GeometrySnapshot{}, fmt.Errorf("measure <nil>: %w", ErrMeasurementUnavailable)
	}
	if !n.IsMounted() {
		return GeometrySnapshot{}, fmt.Errorf("measure %q: %w", n.Name, ErrMeasurementUnavailable)
	}
	m := composeWorldTransform(n)

	x0, y0 := transformPoint(m, 0, 0)
	x1, y1 := transformPoint(m, n.Width, 0)
	x2, y2 := transformPoint(m, 0, n.Height)
	x3, y3 := transformPoint(m, n.Width, n.Height)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return GeometrySnapshot{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}, nil
}
