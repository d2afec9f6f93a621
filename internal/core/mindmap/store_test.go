package mindmap

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_OnlyRoot(t *testing.T) {
	s := newTestStore(t)

	require.Equal(t, 1, s.Len())
	root := s.Root()
	assert.Equal(t, RootID, root.ID)
	assert.Equal(t, "Central Topic", root.Text)
	assert.Equal(t, Point{X: 30, Y: 1}, root.Position())
}

func TestStore_Add(t *testing.T) {
	s := newTestStore(t)
	root := s.Root()

	n := s.Add(&root)

	assert.Equal(t, "n1", n.ID)
	assert.Equal(t, "New Idea", n.Text)
	assert.Equal(t, Point{X: 42, Y: 4.5}, n.Position())

	last, ok := s.Last()
	require.True(t, ok)
	assert.Equal(t, n, last)
}

func TestStore_Add_DefaultAnchor(t *testing.T) {
	s := newTestStore(t)

	n := s.Add(nil)

	assert.Equal(t, Point{X: 14, Y: 5.5}, n.Position())
}

func TestStore_Add_ClampsToViewport(t *testing.T) {
	s := newTestStore(t)

	anchor := Node{X: 75, Y: 23}
	n := s.Add(&anchor)

	assert.Equal(t, Point{X: 60, Y: 21}, n.Position())
}

func TestStore_Update(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Update(RootID, TextPatch("Topic")))
	require.NoError(t, s.Update(RootID, MovePatch(Point{X: 3, Y: 4})))

	root := s.Root()
	assert.Equal(t, "Topic", root.Text)
	assert.Equal(t, Point{X: 3, Y: 4}, root.Position())
}

func TestStore_Update_Absent(t *testing.T) {
	s := newTestStore(t)

	err := s.Update("missing", TextPatch("x"))

	require.ErrorIs(t, err, ErrAbsentNode)
	assert.Equal(t, 1, s.Len())
}

type resizableViewport struct{ bounds Rect }

func (v *resizableViewport) Bounds() Rect { return v.bounds }

func TestStore_ClampAll(t *testing.T) {
	vp := &resizableViewport{bounds: testBounds}
	s := NewStore(DefaultLayout(), DefaultTexts(), vp, WithIDFunc(sequentialIDs()))

	require.NoError(t, s.Update(RootID, MovePatch(Point{X: 60, Y: 21})))
	inside := s.Add(nil)

	vp.bounds = Rect{Top: 1, Width: 40, Height: 10}
	assert.Equal(t, 1, s.ClampAll())

	assert.Equal(t, Point{X: 20, Y: 7}, s.Root().Position())
	got, ok := s.Get(inside.ID)
	require.True(t, ok)
	assert.Equal(t, Point{X: 14, Y: 5.5}, got.Position())

	assert.Zero(t, s.ClampAll(), "nodes already inside stay put")
}

func TestStore_Delete(t *testing.T) {
	s := newTestStore(t)
	a := s.Add(nil)
	b := s.Add(&a)

	require.NoError(t, s.Delete(a.ID))

	nodes := s.Nodes()
	require.Len(t, nodes, 2)
	assert.Equal(t, RootID, nodes[0].ID)
	assert.Equal(t, b.ID, nodes[1].ID)
}

func TestStore_Delete_Errors(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want error
	}{
		{name: "root is protected", id: RootID, want: ErrProtectedNode},
		{name: "absent id", id: "missing", want: ErrAbsentNode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			before := s.Nodes()

			err := s.Delete(tt.id)

			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, before, s.Nodes())
		})
	}
}

func TestStore_ReplaceAll(t *testing.T) {
	s := newTestStore(t)
	s.Add(nil)

	err := s.ReplaceAll([]Node{
		{ID: "a", Text: "A"},
		{ID: RootID, Text: "R"},
		{ID: "b", Text: "B"},
	})
	require.NoError(t, err)

	nodes := s.Nodes()
	require.Len(t, nodes, 3)
	assert.Equal(t, []string{RootID, "a", "b"}, []string{nodes[0].ID, nodes[1].ID, nodes[2].ID})
}

func TestStore_ReplaceAll_MissingRoot(t *testing.T) {
	s := newTestStore(t)
	before := s.Nodes()

	err := s.ReplaceAll([]Node{{ID: "a", Text: "A"}})

	require.ErrorIs(t, err, ErrMissingRoot)
	assert.Equal(t, before, s.Nodes())
}

func TestStore_HitTest(t *testing.T) {
	s := newTestStore(t)
	root := s.Root()
	// Anchor chosen so the new node lands at (35, 2), overlapping the root.
	over := s.Add(&Node{X: 23, Y: -1.5})
	require.Equal(t, Point{X: 35, Y: 2}, over.Position())

	hit, ok := s.HitTest(Point{X: 36, Y: 3})
	require.True(t, ok)
	assert.Equal(t, over.ID, hit.ID, "later nodes are on top")

	hit, ok = s.HitTest(Point{X: root.X + 1, Y: root.Y})
	require.True(t, ok)
	assert.Equal(t, RootID, hit.ID)

	_, ok = s.HitTest(Point{X: 0, Y: 20})
	assert.False(t, ok)
}

func TestStore_RootSurvivesAddDelete(t *testing.T) {
	s := newTestStore(t)
	rng := rand.New(rand.NewPCG(7, 11))

	for range 500 {
		nodes := s.Nodes()
		if rng.IntN(2) == 0 {
			last := nodes[len(nodes)-1]
			s.Add(&last)
		} else {
			_ = s.Delete(nodes[rng.IntN(len(nodes))].ID)
		}

		roots := 0
		for _, n := range s.Nodes() {
			if n.IsRoot() {
				roots++
			}
		}
		require.Equal(t, 1, roots)
		require.Equal(t, RootID, s.Nodes()[0].ID)
	}
}

func TestLayout_Clamp(t *testing.T) {
	l := DefaultLayout()
	b := Rect{Width: 80, Height: 24}

	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{name: "inside", in: Point{X: 10, Y: 10}, want: Point{X: 10, Y: 10}},
		{name: "negative", in: Point{X: -5, Y: -1}, want: Point{X: 0, Y: 0}},
		{name: "beyond", in: Point{X: 79, Y: 23}, want: Point{X: 60, Y: 21}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.Clamp(tt.in, b))
		})
	}
}

func TestNewID_Format(t *testing.T) {
	assert.Regexp(t, `^node-\d+-[a-z0-9]{7}$`, NewID())
	assert.NotEqual(t, NewID(), NewID())
}
