package mindmap

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_RootFirst(t *testing.T) {
	got := Encode([]Node{
		{ID: "a", Text: "first"},
		{ID: RootID, Text: "center"},
		{ID: "b", Text: "second"},
	})

	assert.Equal(t, "center\nfirst\nsecond", got)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
		wantErr error
	}{
		{name: "single line", content: "OnlyRoot", want: []string{"OnlyRoot"}},
		{name: "drops blank lines", content: "a\n\n   \nb\n", want: []string{"a", "b"}},
		{name: "crlf", content: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "keeps inner spacing", content: "  padded  \nx", want: []string{"  padded  ", "x"}},
		{name: "empty", content: "", wantErr: ErrEmptyLoad},
		{name: "only blanks", content: "\n \t\n\r\n", wantErr: ErrEmptyLoad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.content)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStore_RoundTrip(t *testing.T) {
	src := newTestStore(t)
	require.NoError(t, src.Update(RootID, TextPatch("中心")))
	n := src.Add(nil)
	require.NoError(t, src.Update(n.ID, TextPatch("Idea")))

	content := src.Save()
	assert.Equal(t, "中心\nIdea", content)

	dst := newTestStore(t)
	require.NoError(t, dst.Load(content, rand.New(rand.NewPCG(1, 1))))

	nodes := dst.Nodes()
	require.Len(t, nodes, 2)
	assert.Equal(t, "中心", nodes[0].Text)
	assert.Equal(t, RootID, nodes[0].ID)
	assert.Equal(t, "Idea", nodes[1].Text)
	assert.NotEqual(t, RootID, nodes[1].ID)
}

func TestStore_Load_OnlyRoot(t *testing.T) {
	s := newTestStore(t)
	s.Add(nil)
	s.Add(nil)

	require.NoError(t, s.Load("OnlyRoot", rand.New(rand.NewPCG(1, 1))))

	require.Equal(t, 1, s.Len())
	assert.Equal(t, "OnlyRoot", s.Root().Text)
}

func TestStore_Load_ResetsRootPosition(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Update(RootID, MovePatch(Point{X: 0, Y: 0})))

	require.NoError(t, s.Load("Topic\nChild", rand.New(rand.NewPCG(1, 1))))

	assert.Equal(t, Point{X: 30, Y: 1}, s.Root().Position())
}

func TestStore_Load_Empty(t *testing.T) {
	s := newTestStore(t)
	s.Add(nil)
	before := s.Nodes()

	err := s.Load("\n\n", rand.New(rand.NewPCG(1, 1)))

	require.ErrorIs(t, err, ErrEmptyLoad)
	assert.Equal(t, before, s.Nodes())
}

func TestStore_Load_ScatterWithinMargins(t *testing.T) {
	s := newTestStore(t)
	content := "root"
	for range 200 {
		content += "\nchild"
	}

	require.NoError(t, s.Load(content, rand.New(rand.NewPCG(3, 4))))

	l := s.Layout()
	for _, n := range s.Nodes()[1:] {
		assert.GreaterOrEqual(t, n.X, l.LoadMargin)
		assert.LessOrEqual(t, n.X, testBounds.Width-l.NodeWidth-l.LoadMargin)
		assert.GreaterOrEqual(t, n.Y, l.LoadMargin)
		assert.LessOrEqual(t, n.Y, testBounds.Height-l.NodeHeight-l.LoadMargin)
	}
}

func TestStore_Load_TinyViewport(t *testing.T) {
	s := NewStore(DefaultLayout(), DefaultTexts(), FixedViewport{Width: 21, Height: 4}, WithIDFunc(sequentialIDs()))

	require.NoError(t, s.Load("root\na\nb", rand.New(rand.NewPCG(5, 6))))

	for _, n := range s.Nodes() {
		assert.GreaterOrEqual(t, n.X, 0.0)
		assert.LessOrEqual(t, n.X, 1.0)
		assert.GreaterOrEqual(t, n.Y, 0.0)
		assert.LessOrEqual(t, n.Y, 1.0)
	}
}

func TestFormat(t *testing.T) {
	got, err := Format("\r\nHub\r\n\n  spaced  \nleaf\n\n")
	require.NoError(t, err)
	assert.Equal(t, "Hub\n  spaced  \nleaf", got)

	_, err = Format(" \n\t")
	require.ErrorIs(t, err, ErrEmptyLoad)
}
