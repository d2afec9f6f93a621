// Package notify publishes document notifications to the editor's toast
// stack and history.
package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hay-kot/mindmap/internal/core/notify"
)

// Subscriber is invoked for every published notification.
type Subscriber func(notify.Notification)

// Bus records document notifications in a Store and hands them to
// subscribers inline, on the caller's goroutine.
type Bus struct {
	store       notify.Store
	subscribers []Subscriber
	mu          sync.Mutex
}

// NewBus creates a bus backed by store. A nil store keeps no history.
func NewBus(store notify.Store) *Bus {
	return &Bus{store: store}
}

// Subscribe registers fn for every later Publish.
func (b *Bus) Subscribe(fn Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, fn)
}

// Publish records n and dispatches it to all subscribers. A failed save is
// logged; subscribers still see n, without an ID.
func (b *Bus) Publish(n notify.Notification) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	if b.store != nil {
		id, err := b.store.Save(context.Background(), n)
		if err != nil {
			log.Error().Err(err).
				Str("event", string(n.Event)).
				Str("document", n.Document).
				Msg("failed to record notification")
		} else {
			n.ID = id
		}
	}

	b.mu.Lock()
	subs := make([]Subscriber, len(b.subscribers))
	copy(subs, b.subscribers)
	b.mu.Unlock()

	for _, fn := range subs {
		fn(n)
	}
}

// Document returns a publisher for events about the document at path.
func (b *Bus) Document(path string) Publisher {
	return Publisher{bus: b, document: path}
}

// History returns every recorded notification, newest first.
func (b *Bus) History() ([]notify.Notification, error) {
	if b.store == nil {
		return nil, nil
	}
	return b.store.List(context.Background())
}

// DocumentHistory returns the notifications about path, newest first.
func (b *Bus) DocumentHistory(path string) ([]notify.Notification, error) {
	if b.store == nil {
		return nil, nil
	}
	return b.store.ListDocument(context.Background(), path)
}

// Publisher publishes notifications bound to one document.
type Publisher struct {
	bus      *Bus
	document string
}

func (p Publisher) publish(level notify.Level, ev notify.Event, format string, args []any) {
	p.bus.Publish(notify.Notification{
		Level:    level,
		Event:    ev,
		Document: p.document,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Infof reports a successful ev.
func (p Publisher) Infof(ev notify.Event, format string, args ...any) {
	p.publish(notify.LevelInfo, ev, format, args)
}

// Warnf reports an ev that was skipped or deferred.
func (p Publisher) Warnf(ev notify.Event, format string, args ...any) {
	p.publish(notify.LevelWarning, ev, format, args)
}

// Errorf reports a failed ev.
func (p Publisher) Errorf(ev notify.Event, format string, args ...any) {
	p.publish(notify.LevelError, ev, format, args)
}
