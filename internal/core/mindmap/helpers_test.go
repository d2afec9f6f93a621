package mindmap

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/rs/zerolog"
)

// testBounds puts the canvas one row below the top of the screen, the way the
// terminal UI reserves a header line.
var testBounds = Rect{Left: 0, Top: 1, Width: 80, Height: 24}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("n%d", n)
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(DefaultLayout(), DefaultTexts(), FixedViewport(testBounds), WithIDFunc(sequentialIDs()))
}

func newTestController(t *testing.T) *Controller {
	t.Helper()
	return NewController(
		newTestStore(t),
		WithRand(rand.New(rand.NewPCG(1, 2))),
		WithLogger(zerolog.Nop()),
	)
}

// screen converts a canvas point to the screen coordinates a binding reports.
func screen(x, y float64) Point {
	return Point{X: x + testBounds.Left, Y: y + testBounds.Top}
}
