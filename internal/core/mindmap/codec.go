package mindmap

import (
	"math/rand/v2"
	"strings"
)

// Encode serializes nodes as text: the root's text on the first line followed
// by every other node's text in collection order. Ids and positions are not
// written.
func Encode(nodes []Node) string {
	lines := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if n.IsRoot() {
			lines = append([]string{n.Text}, lines...)
			continue
		}
		lines = append(lines, n.Text)
	}
	return strings.Join(lines, "\n")
}

// Decode splits content into node texts, dropping blank lines. Line text is
// otherwise kept verbatim. Content with no remaining lines yields ErrEmptyLoad.
func Decode(content string) ([]string, error) {
	var lines []string
	for line := range strings.SplitSeq(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyLoad
	}
	return lines, nil
}

// Format rewrites content in the form Save produces: blank lines and
// carriage returns are removed and there is no trailing newline.
func Format(content string) (string, error) {
	lines, err := Decode(content)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// Save serializes the store. An empty store encodes to the empty string.
func (s *Store) Save() string {
	if s.Len() == 0 {
		return ""
	}
	return Encode(s.Nodes())
}

// Load replaces the collection with nodes decoded from content. The first
// line becomes the root, reset to its default position; every other line
// becomes a new node scattered randomly inside the canvas, away from the
// edges by the layout's load margin. On ErrEmptyLoad nothing changes.
func (s *Store) Load(content string, rng *rand.Rand) error {
	lines, err := Decode(content)
	if err != nil {
		return err
	}

	bounds := s.viewport.Bounds()
	nodes := make([]Node, 0, len(lines))
	nodes = append(nodes, s.newRoot(lines[0]))
	for _, text := range lines[1:] {
		pos := s.scatter(bounds, rng)
		nodes = append(nodes, Node{
			ID:   s.newID(),
			Text: text,
			X:    pos.X,
			Y:    pos.Y,
		})
	}

	return s.ReplaceAll(nodes)
}

// scatter picks a random position in
// [margin, W-nodeW-margin] x [margin, H-nodeH-margin].
func (s *Store) scatter(bounds Rect, rng *rand.Rand) Point {
	m := s.layout.LoadMargin
	spanX := max(bounds.Width-s.layout.NodeWidth-2*m, 0)
	spanY := max(bounds.Height-s.layout.NodeHeight-2*m, 0)

	return s.layout.Clamp(Point{
		X: rng.Float64()*spanX + m,
		Y: rng.Float64()*spanY + m,
	}, bounds)
}
