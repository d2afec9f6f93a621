package tui

import (
	"math"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/hay-kot/mindmap/internal/core/mindmap"
	"github.com/hay-kot/mindmap/internal/core/styles"
	"github.com/hay-kot/mindmap/internal/tui/components"
)

const (
	headerHeight = 1
	footerHeight = 1
)

// CanvasViewport tracks the terminal size and exposes the canvas area, the
// screen minus the header and footer rows, to the node store.
type CanvasViewport struct {
	width  int
	height int
}

// NewCanvasViewport creates a viewport for a terminal of the given size.
func NewCanvasViewport(width, height int) *CanvasViewport {
	return &CanvasViewport{width: width, height: height}
}

// Resize records a new terminal size.
func (v *CanvasViewport) Resize(width, height int) {
	v.width = width
	v.height = height
}

// Size returns the terminal size.
func (v *CanvasViewport) Size() (int, int) {
	return v.width, v.height
}

// Bounds implements mindmap.Viewport.
func (v *CanvasViewport) Bounds() mindmap.Rect {
	return mindmap.Rect{
		Left:   0,
		Top:    headerHeight,
		Width:  float64(max(v.width, 0)),
		Height: float64(max(v.height-headerHeight-footerHeight, 0)),
	}
}

// cell maps a canvas coordinate to the terminal cell a node edge is drawn
// in. A cell c is covered by a node when its center c+0.5 lies inside the
// node's box, which is the smallest integer at or above v-0.5.
func cell(v float64) int {
	return int(math.Ceil(v - 0.5))
}

// cellCenter returns the screen point at the center of cell (x, y).
func cellCenter(x, y int) mindmap.Point {
	return mindmap.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}

// nodeAt returns the topmost node under screen cell (x, y).
func nodeAt(store *mindmap.Store, x, y int) (mindmap.Node, bool) {
	b := store.Viewport().Bounds()
	p := cellCenter(x, y)
	p.X -= b.Left
	p.Y -= b.Top
	if p.X < 0 || p.Y < 0 || p.X >= b.Width || p.Y >= b.Height {
		return mindmap.Node{}, false
	}
	return store.HitTest(p)
}

// inCanvas reports whether screen row y belongs to the canvas.
func inCanvas(store *mindmap.Store, y int) bool {
	b := store.Viewport().Bounds()
	return float64(y) >= b.Top && float64(y) < b.Top+b.Height
}

// onTextArea reports whether screen cell (x, y) lies inside the node's
// border, where its text is drawn.
func onTextArea(store *mindmap.Store, n mindmap.Node, x, y int) bool {
	b := store.Viewport().Bounds()
	l := store.Layout()

	col := x - int(b.Left) - cell(n.X)
	row := y - int(b.Top) - cell(n.Y)

	return col >= 1 && col <= int(l.NodeWidth)-2 &&
		row >= 1 && row <= int(l.NodeHeight)-2
}

// canvasRenderer draws the node collection for one frame.
type canvasRenderer struct {
	store    *mindmap.Store
	state    mindmap.State
	hint     string
	editView string
}

// render composites one layer per node over a blank canvas. Later nodes
// are stacked above earlier ones, matching hit-test order.
func (r canvasRenderer) render() string {
	b := r.store.Viewport().Bounds()
	w, h := int(b.Width), int(b.Height)
	if w <= 0 || h <= 0 {
		return ""
	}

	layers := []*lipgloss.Layer{lipgloss.NewLayer(components.Blank(w, h))}
	for i, n := range r.store.Nodes() {
		layer := lipgloss.NewLayer(r.renderNode(n))
		layer.X(cell(n.X)).Y(cell(n.Y)).Z(i + 1)
		layers = append(layers, layer)
	}

	out := lipgloss.NewCompositor(layers...).Render()
	return lipgloss.NewStyle().MaxWidth(w).MaxHeight(h).Render(out)
}

func (r canvasRenderer) renderNode(n mindmap.Node) string {
	l := r.store.Layout()
	innerW := max(int(l.NodeWidth)-2, 1)
	innerH := max(int(l.NodeHeight)-2, 1)

	style := r.nodeStyle(n)

	var content string
	switch {
	case r.state.IsEditing(n.ID):
		content = r.editView
		style = style.Align(lipgloss.Left)
	case strings.TrimSpace(n.Text) == "":
		content = styles.NodeHintStyle.Render(ansi.Truncate(r.hint, innerW, "…"))
	default:
		content = ansi.Truncate(n.Text, innerW, "…")
	}

	return style.
		Width(innerW).
		Height(innerH).
		AlignVertical(lipgloss.Center).
		Render(content)
}

func (r canvasRenderer) nodeStyle(n mindmap.Node) lipgloss.Style {
	switch {
	case r.state.IsEditing(n.ID):
		return styles.NodeEditingStyle
	case r.state.IsDragging(n.ID):
		return styles.NodeDraggingStyle
	case r.state.IsSelected(n.ID) && n.IsRoot():
		return styles.NodeRootStyle.BorderForeground(styles.ColorPrimary)
	case r.state.IsSelected(n.ID):
		return styles.NodeSelectedStyle
	case n.IsRoot():
		return styles.NodeRootStyle
	default:
		return styles.NodeStyle
	}
}
