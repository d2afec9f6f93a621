package mindmap

import (
	"errors"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hay-kot/mindmap/internal/core/logging"
)

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// Drag describes an in-progress node drag. The offset is the pointer position
// minus the node's top-left corner and the canvas origin at drag start.
type Drag struct {
	ID      string
	OffsetX float64
	OffsetY float64
}

// State is a snapshot of the interaction state. Empty ids mean "none".
type State struct {
	SelectedID  string
	EditingID   string
	EditingText string
	Dragging    *Drag
}

// IsSelected reports whether id is the selected node.
func (s State) IsSelected(id string) bool {
	return id != "" && s.SelectedID == id
}

// IsEditing reports whether id is in edit mode.
func (s State) IsEditing(id string) bool {
	return id != "" && s.EditingID == id
}

// IsDragging reports whether id is being dragged.
func (s State) IsDragging(id string) bool {
	return s.Dragging != nil && s.Dragging.ID == id
}

// gesture accumulates what happened during one physical press/release so
// that decisions depending on the whole gesture run once it is over.
type gesture struct {
	active bool
	// stopped is set once a node handled the press or click; the canvas
	// background must not react to the same gesture.
	stopped bool
	// moved is set when a drag changed a node position during the gesture.
	moved bool
	// editID is the node whose edit-start was requested by a text click.
	editID string
}

// Controller is the interaction state machine. It is not safe for concurrent
// use; every method is expected to run on the UI's event loop.
type Controller struct {
	store   *Store
	tracker *Tracker
	rng     *rand.Rand
	logger  zerolog.Logger

	state   State
	gesture gesture
	dragSub Subscription
}

// Option configures a Controller.
type Option func(*Controller)

// WithRand sets the random source used to scatter loaded nodes.
func WithRand(r *rand.Rand) Option {
	return func(c *Controller) {
		c.rng = r
	}
}

// WithLogger sets the controller's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// WithTracker shares an existing pointer tracker with the controller.
func WithTracker(t *Tracker) Option {
	return func(c *Controller) {
		c.tracker = t
	}
}

// NewController creates a controller operating on store.
func NewController(store *Store, opts ...Option) *Controller {
	now := uint64(time.Now().UnixNano())
	c := &Controller{
		store:   store,
		tracker: NewTracker(),
		rng:     rand.New(rand.NewPCG(now, now>>1)),
		logger:  logging.Component("controller"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Store returns the node store.
func (c *Controller) Store() *Store {
	return c.store
}

// Tracker returns the pointer tracker that drag subscriptions are held on.
func (c *Controller) Tracker() *Tracker {
	return c.tracker
}

// State returns a copy of the current interaction state.
func (c *Controller) State() State {
	s := c.state
	if s.Dragging != nil {
		d := *s.Dragging
		s.Dragging = &d
	}
	return s
}

// BeginGesture marks the start of one physical pointer gesture.
func (c *Controller) BeginGesture() {
	c.gesture = gesture{active: true}
}

// EndGesture closes the current gesture and runs deferred work: a text click
// enters edit mode only if no drag is in progress and the gesture did not
// move a node.
func (c *Controller) EndGesture() {
	g := c.gesture
	c.gesture = gesture{}

	if g.editID == "" {
		return
	}
	if c.state.Dragging != nil || g.moved {
		c.logger.Debug().Str("node_id", g.editID).Msg("edit start suppressed by drag")
		return
	}
	c.StartEdit(g.editID)
}

// PressNode handles a button press on a node and starts dragging it. Only the
// primary button starts a drag, and never on the node being edited. Any press
// on a node hides the gesture from the background. It reports whether a drag
// started.
func (c *Controller) PressNode(id string, button Button, pointer Point) bool {
	n, ok := c.store.Get(id)
	if !ok {
		return false
	}
	c.gesture.stopped = true

	if button != ButtonPrimary || c.state.EditingID == id {
		return false
	}

	c.endDrag()

	origin := c.store.Viewport().Bounds().Origin()
	c.state.Dragging = &Drag{
		ID:      id,
		OffsetX: pointer.X - n.X - origin.X,
		OffsetY: pointer.Y - n.Y - origin.Y,
	}
	c.state.SelectedID = id
	c.dragSub = c.tracker.Subscribe(PointerHandlers{
		Move: c.dragMove,
		End:  c.endDrag,
	})

	c.logger.Debug().
		Str("node_id", id).
		Float64("offset_x", c.state.Dragging.OffsetX).
		Float64("offset_y", c.state.Dragging.OffsetY).
		Msg("drag started")
	return true
}

// ClickNode handles a click on a node. It selects the node unless a drag is in
// progress; a click on the node's text area also requests edit mode, which is
// decided when the gesture ends.
func (c *Controller) ClickNode(id string, onText bool) {
	if _, ok := c.store.Get(id); !ok {
		return
	}
	c.gesture.stopped = true

	if c.state.Dragging != nil {
		return
	}
	c.state.SelectedID = id

	if !onText {
		return
	}
	if !c.gesture.active {
		c.StartEdit(id)
		return
	}
	c.gesture.editID = id
}

// ClickBackground handles a click on empty canvas: selection and edit mode
// are cleared. It is ignored when a node already handled the same gesture.
func (c *Controller) ClickBackground() {
	if c.gesture.active && c.gesture.stopped {
		return
	}
	c.state.SelectedID = ""
	c.state.EditingID = ""
	c.state.EditingText = ""
}

// StartEdit puts node id into edit mode, seeding the scratch text with its
// committed text, and selects it. A pending edit on another node is
// committed first.
func (c *Controller) StartEdit(id string) bool {
	if c.state.Dragging != nil {
		return false
	}
	n, ok := c.store.Get(id)
	if !ok {
		return false
	}
	if c.state.EditingID != "" && c.state.EditingID != id {
		c.CommitEdit()
	}
	c.state.EditingID = id
	c.state.EditingText = n.Text
	c.state.SelectedID = id

	c.logger.Debug().Str("node_id", id).Msg("edit started")
	return true
}

// SetEditingText replaces the scratch text of the node being edited.
func (c *Controller) SetEditingText(text string) {
	if c.state.EditingID == "" {
		return
	}
	c.state.EditingText = text
}

// CommitEdit writes the trimmed scratch text into the edited node, falling
// back to the placeholder when it is blank, and leaves edit mode. It reports
// whether an edit was committed.
func (c *Controller) CommitEdit() bool {
	id := c.state.EditingID
	if id == "" {
		return false
	}

	text := strings.TrimSpace(c.state.EditingText)
	if text == "" {
		text = c.store.Texts().Fallback
	}

	if err := c.store.Update(id, TextPatch(text)); err != nil {
		c.logger.Debug().Err(err).Str("node_id", id).Msg("commit on missing node")
	}
	c.state.EditingID = ""
	c.state.EditingText = text

	c.logger.Debug().Str("node_id", id).Msg("edit committed")
	return true
}

// CancelEdit leaves edit mode without touching the store. The scratch text is
// reset to the node's committed text.
func (c *Controller) CancelEdit() {
	id := c.state.EditingID
	if id == "" {
		return
	}
	n, _ := c.store.Get(id)
	c.state.EditingID = ""
	c.state.EditingText = n.Text

	c.logger.Debug().Str("node_id", id).Msg("edit cancelled")
}

// CanDelete reports whether DeleteSelected would remove a node.
func (c *Controller) CanDelete() bool {
	return c.state.SelectedID != "" && c.state.SelectedID != RootID
}

// DeleteSelected removes the selected node. With nothing selected it does
// nothing. Selecting the root returns ErrProtectedNode and changes nothing.
func (c *Controller) DeleteSelected() error {
	id := c.state.SelectedID
	if id == "" {
		return nil
	}

	if err := c.store.Delete(id); err != nil {
		if errors.Is(err, ErrProtectedNode) {
			c.logger.Debug().Str("node_id", id).Msg("delete of protected node rejected")
			return err
		}
		c.logger.Debug().Err(err).Msg("delete of absent node ignored")
	}

	if c.state.EditingID == id {
		c.state.EditingID = ""
		c.state.EditingText = ""
	}
	if c.state.IsDragging(id) {
		c.endDrag()
	}
	c.state.SelectedID = ""

	c.logger.Debug().Str("node_id", id).Msg("node deleted")
	return nil
}

// Add appends a node after the last one and opens it in edit mode with its
// placeholder text. An edit in progress on another node is committed first.
func (c *Controller) Add() Node {
	c.CommitEdit()

	var anchor *Node
	if last, ok := c.store.Last(); ok {
		anchor = &last
	}
	n := c.store.Add(anchor)

	c.state.SelectedID = n.ID
	c.state.EditingID = n.ID
	c.state.EditingText = n.Text

	c.logger.Debug().Str("node_id", n.ID).Msg("node added")
	return n
}

// Load replaces the collection with decoded content and resets all
// interaction state. Blank content returns ErrEmptyLoad and changes nothing.
func (c *Controller) Load(content string) error {
	if err := c.store.Load(content, c.rng); err != nil {
		return err
	}

	c.endDrag()
	c.state = State{}
	c.gesture = gesture{}

	c.logger.Debug().Int("nodes", c.store.Len()).Msg("document loaded")
	return nil
}

// Save serializes the committed node texts.
func (c *Controller) Save() string {
	return c.store.Save()
}

func (c *Controller) dragMove(pointer Point) {
	d := c.state.Dragging
	if d == nil {
		return
	}
	n, ok := c.store.Get(d.ID)
	if !ok {
		c.endDrag()
		return
	}

	bounds := c.store.Viewport().Bounds()
	pos := c.store.Layout().Clamp(Point{
		X: pointer.X - d.OffsetX - bounds.Left,
		Y: pointer.Y - d.OffsetY - bounds.Top,
	}, bounds)

	if pos == n.Position() {
		return
	}
	_ = c.store.Update(d.ID, MovePatch(pos))
	c.gesture.moved = true
}

func (c *Controller) endDrag() {
	c.dragSub.Release()
	c.dragSub = Subscription{}
	if c.state.Dragging != nil {
		c.logger.Debug().Str("node_id", c.state.Dragging.ID).Msg("drag ended")
	}
	c.state.Dragging = nil
}
