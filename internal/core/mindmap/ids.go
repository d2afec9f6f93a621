package mindmap

import (
	"fmt"
	"time"

	"github.com/hay-kot/mindmap/pkg/randid"
)

// NewID returns a node id of the form node-<unix millis>-<7 random [a-z0-9]>.
// Uniqueness is probabilistic; see DESIGN.md for the collision bound.
func NewID() string {
	return fmt.Sprintf("node-%d-%s", time.Now().UnixMilli(), randid.Generate(7))
}
