package mindmap

import (
	"fmt"

	"github.com/hay-kot/mindmap/pkg/kv"
)

// Texts holds the default strings assigned to nodes.
type Texts struct {
	// Root is the text of a freshly initialized root node.
	Root string
	// Placeholder is the text of a newly added node.
	Placeholder string
	// Fallback replaces blank text when an edit is committed.
	Fallback string
}

// DefaultTexts returns the built-in node texts.
func DefaultTexts() Texts {
	return Texts{
		Root:        "Central Topic",
		Placeholder: "New Idea",
		Fallback:    "Untitled",
	}
}

// Store is the authoritative, insertion-ordered collection of nodes. It always
// holds exactly one root node.
type Store struct {
	nodes    *kv.Store[string, Node]
	layout   Layout
	texts    Texts
	viewport Viewport
	newID    func() string
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithIDFunc replaces the id generator.
func WithIDFunc(fn func() string) StoreOption {
	return func(s *Store) {
		s.newID = fn
	}
}

// NewStore creates an initialized store holding only the root node.
func NewStore(layout Layout, texts Texts, viewport Viewport, opts ...StoreOption) *Store {
	s := &Store{
		nodes:    kv.New[string, Node](),
		layout:   layout,
		texts:    texts,
		viewport: viewport,
		newID:    NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Initialize()
	return s
}

// Initialize discards all nodes and recreates the root at its default position.
func (s *Store) Initialize() {
	s.nodes.Replace([]kv.Entry[string, Node]{{Key: RootID, Value: s.newRoot(s.texts.Root)}})
}

func (s *Store) newRoot(text string) Node {
	pos := s.layout.RootPosition(s.viewport.Bounds())
	return Node{ID: RootID, Text: text, X: pos.X, Y: pos.Y}
}

// Layout returns the store's geometry.
func (s *Store) Layout() Layout {
	return s.layout
}

// Texts returns the store's default node texts.
func (s *Store) Texts() Texts {
	return s.texts
}

// Viewport returns the viewport used for placement and clamping.
func (s *Store) Viewport() Viewport {
	return s.viewport
}

// Add appends a node with placeholder text, offset from after by half a node
// plus the layout margin on both axes. A nil anchor places the node relative
// to the layout's default anchor.
func (s *Store) Add(after *Node) Node {
	anchor := s.layout.DefaultAnchor
	if after != nil {
		anchor = after.Position()
	}

	pos := s.layout.Clamp(Point{
		X: anchor.X + s.layout.NodeWidth/2 + s.layout.Margin,
		Y: anchor.Y + s.layout.NodeHeight/2 + s.layout.Margin,
	}, s.viewport.Bounds())

	n := Node{
		ID:   s.newID(),
		Text: s.texts.Placeholder,
		X:    pos.X,
		Y:    pos.Y,
	}
	s.nodes.Set(n.ID, n)
	return n
}

// Update applies patch to the node with the given id.
func (s *Store) Update(id string, patch Patch) error {
	n, ok := s.nodes.Get(id)
	if !ok {
		return fmt.Errorf("update %q: %w", id, ErrAbsentNode)
	}
	s.nodes.Set(id, patch.apply(n))
	return nil
}

// ClampAll moves every node back inside the viewport's current bounds, as
// needed after the viewport shrinks. It returns the number of nodes moved.
func (s *Store) ClampAll() int {
	bounds := s.viewport.Bounds()
	moved := 0
	for _, n := range s.nodes.Values() {
		pos := s.layout.Clamp(n.Position(), bounds)
		if pos == n.Position() {
			continue
		}
		if err := s.Update(n.ID, MovePatch(pos)); err == nil {
			moved++
		}
	}
	return moved
}

// Delete removes the node with the given id. The root cannot be deleted.
func (s *Store) Delete(id string) error {
	if id == RootID {
		return ErrProtectedNode
	}
	if !s.nodes.Delete(id) {
		return fmt.Errorf("delete %q: %w", id, ErrAbsentNode)
	}
	return nil
}

// ReplaceAll swaps the entire collection. The root is moved to the front if
// it is not already there; a collection without a root is rejected and the
// store is left unchanged.
func (s *Store) ReplaceAll(nodes []Node) error {
	entries := make([]kv.Entry[string, Node], 0, len(nodes))
	hasRoot := false
	for _, n := range nodes {
		if n.IsRoot() {
			hasRoot = true
			entries = append([]kv.Entry[string, Node]{{Key: n.ID, Value: n}}, entries...)
			continue
		}
		entries = append(entries, kv.Entry[string, Node]{Key: n.ID, Value: n})
	}
	if !hasRoot {
		return fmt.Errorf("replace nodes: %w", ErrMissingRoot)
	}

	s.nodes.Replace(entries)
	return nil
}

// Get returns the node with the given id.
func (s *Store) Get(id string) (Node, bool) {
	return s.nodes.Get(id)
}

// Root returns the root node.
func (s *Store) Root() Node {
	n, _ := s.nodes.Get(RootID)
	return n
}

// Last returns the most recently added node.
func (s *Store) Last() (Node, bool) {
	e, ok := s.nodes.Last()
	return e.Value, ok
}

// Nodes returns a copy of the collection in insertion order.
func (s *Store) Nodes() []Node {
	return s.nodes.Values()
}

// Len returns the number of nodes, root included.
func (s *Store) Len() int {
	return s.nodes.Len()
}

// HitTest returns the topmost node containing canvas point p. Later nodes are
// drawn over earlier ones, so the search runs from the end.
func (s *Store) HitTest(p Point) (Node, bool) {
	nodes := s.nodes.Values()
	for i := len(nodes) - 1; i >= 0; i-- {
		if nodes[i].Contains(p, s.layout) {
			return nodes[i], true
		}
	}
	return Node{}, false
}
