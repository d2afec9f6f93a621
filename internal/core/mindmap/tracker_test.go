package mindmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker_DispatchAndRelease(t *testing.T) {
	tr := NewTracker()

	var moves []Point
	ends := 0
	sub := tr.Subscribe(PointerHandlers{
		Move: func(p Point) { moves = append(moves, p) },
		End:  func() { ends++ },
	})
	assert.Equal(t, 1, tr.Active())

	tr.PointerMove(Point{X: 1, Y: 2})
	tr.PointerUp()
	tr.PointerLeave()

	assert.Equal(t, []Point{{X: 1, Y: 2}}, moves)
	assert.Equal(t, 2, ends)

	sub.Release()
	assert.Equal(t, 0, tr.Active())

	tr.PointerMove(Point{X: 3, Y: 4})
	tr.PointerUp()
	assert.Len(t, moves, 1)
	assert.Equal(t, 2, ends)
}

func TestTracker_ReleaseFromHandler(t *testing.T) {
	tr := NewTracker()

	calls := 0
	var sub Subscription
	sub = tr.Subscribe(PointerHandlers{
		End: func() {
			calls++
			sub.Release()
		},
	})
	other := 0
	tr.Subscribe(PointerHandlers{End: func() { other++ }})

	tr.PointerUp()
	tr.PointerUp()

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, other)
	assert.Equal(t, 1, tr.Active())
}

func TestSubscription_ReleaseIsIdempotent(t *testing.T) {
	tr := NewTracker()
	sub := tr.Subscribe(PointerHandlers{})
	keep := tr.Subscribe(PointerHandlers{})

	sub.Release()
	sub.Release()
	Subscription{}.Release()

	assert.Equal(t, 1, tr.Active())
	keep.Release()
	assert.Equal(t, 0, tr.Active())
}
