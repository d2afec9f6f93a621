package mindmap

// PointerHandlers receives surface-level pointer events for one subscription.
type PointerHandlers struct {
	Move func(Point)
	// End fires on pointer release or when the pointer leaves the surface.
	End func()
}

type subscription struct {
	id       uint32
	handlers PointerHandlers
}

// Tracker fans surface-wide pointer motion and release out to the
// subscriptions that are currently held. With no subscriptions it does
// nothing, so bindings can forward every event unconditionally.
type Tracker struct {
	subs   []subscription
	nextID uint32
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Subscription is a handle to a registration on a Tracker.
type Subscription struct {
	id uint32
	t  *Tracker
}

// Subscribe registers handlers until the returned Subscription is released.
func (t *Tracker) Subscribe(h PointerHandlers) Subscription {
	t.nextID++
	t.subs = append(t.subs, subscription{id: t.nextID, handlers: h})
	return Subscription{id: t.nextID, t: t}
}

// Release unregisters the subscription. Releasing twice, or releasing the
// zero Subscription, is a no-op.
func (s Subscription) Release() {
	if s.t == nil {
		return
	}
	subs := s.t.subs
	for i := range subs {
		if subs[i].id == s.id {
			copy(subs[i:], subs[i+1:])
			subs[len(subs)-1] = subscription{}
			s.t.subs = subs[:len(subs)-1]
			return
		}
	}
}

// Active returns the number of live subscriptions.
func (t *Tracker) Active() int {
	return len(t.subs)
}

// PointerMove dispatches a pointer position in screen coordinates.
func (t *Tracker) PointerMove(p Point) {
	for _, s := range t.snapshot() {
		if s.handlers.Move != nil {
			s.handlers.Move(p)
		}
	}
}

// PointerUp dispatches a pointer release.
func (t *Tracker) PointerUp() {
	t.end()
}

// PointerLeave dispatches the pointer leaving the tracked surface.
func (t *Tracker) PointerLeave() {
	t.end()
}

func (t *Tracker) end() {
	for _, s := range t.snapshot() {
		if s.handlers.End != nil {
			s.handlers.End()
		}
	}
}

// snapshot copies the subscriptions so handlers may release themselves
// while being dispatched.
func (t *Tracker) snapshot() []subscription {
	if len(t.subs) == 0 {
		return nil
	}
	out := make([]subscription, len(t.subs))
	copy(out, t.subs)
	return out
}
