package mindmap

// RootID is the reserved id of the permanent root node.
const RootID = "root"

// Node is a free-floating text box on the canvas.
type Node struct {
	ID   string
	Text string
	// X and Y are the top-left corner in canvas coordinates.
	X, Y float64
}

// IsRoot reports whether n is the root node.
func (n Node) IsRoot() bool {
	return n.ID == RootID
}

// Position returns the node's top-left corner.
func (n Node) Position() Point {
	return Point{X: n.X, Y: n.Y}
}

// Contains reports whether canvas point p falls inside the node's box.
func (n Node) Contains(p Point, l Layout) bool {
	return p.X >= n.X && p.X < n.X+l.NodeWidth &&
		p.Y >= n.Y && p.Y < n.Y+l.NodeHeight
}

// Patch describes a partial node update. Nil fields are left unchanged.
type Patch struct {
	Text     *string
	Position *Point
}

// TextPatch returns a patch that only replaces the text.
func TextPatch(text string) Patch {
	return Patch{Text: &text}
}

// MovePatch returns a patch that only replaces the position.
func MovePatch(p Point) Patch {
	return Patch{Position: &p}
}

func (p Patch) apply(n Node) Node {
	if p.Text != nil {
		n.Text = *p.Text
	}
	if p.Position != nil {
		n.X = p.Position.X
		n.Y = p.Position.Y
	}
	return n
}
