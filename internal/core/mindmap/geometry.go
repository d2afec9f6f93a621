package mindmap

import "math"

// Point is a position in screen or canvas coordinates.
type Point struct {
	X, Y float64
}

// Rect is the canvas area on screen: Left/Top is the canvas origin in screen
// coordinates, Width/Height its size in canvas units.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// Origin returns the top-left corner of the rectangle.
func (r Rect) Origin() Point {
	return Point{X: r.Left, Y: r.Top}
}

// Viewport reports the current canvas bounds. It is consulted whenever a node
// is created or clamped, so implementations should return live values.
type Viewport interface {
	Bounds() Rect
}

// FixedViewport is a Viewport with constant bounds.
type FixedViewport Rect

// Bounds implements Viewport.
func (v FixedViewport) Bounds() Rect {
	return Rect(v)
}

// Layout holds the geometry constants used for placing nodes.
type Layout struct {
	NodeWidth  float64
	NodeHeight float64
	// Margin is the gap added to half a node's size when placing a new node
	// next to an anchor.
	Margin float64
	// RootTop is the vertical position of the root node.
	RootTop float64
	// LoadMargin keeps randomly placed nodes away from the canvas edges.
	LoadMargin    float64
	DefaultAnchor Point
}

// DefaultLayout returns geometry sized for terminal cells.
func DefaultLayout() Layout {
	return Layout{
		NodeWidth:     20,
		NodeHeight:    3,
		Margin:        2,
		RootTop:       1,
		LoadMargin:    2,
		DefaultAnchor: Point{X: 2, Y: 2},
	}
}

// Clamp moves p so that a node placed at p lies fully inside bounds.
// Bounds smaller than a node pin the node to the top-left corner.
func (l Layout) Clamp(p Point, bounds Rect) Point {
	return Point{
		X: clamp(p.X, 0, bounds.Width-l.NodeWidth),
		Y: clamp(p.Y, 0, bounds.Height-l.NodeHeight),
	}
}

// RootPosition is the default root placement: horizontally centered at RootTop.
func (l Layout) RootPosition(bounds Rect) Point {
	return l.Clamp(Point{
		X: bounds.Width/2 - l.NodeWidth/2,
		Y: l.RootTop,
	}, bounds)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
