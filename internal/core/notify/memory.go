package notify

import (
	"context"
	"sync/atomic"

	"github.com/hay-kot/mindmap/pkg/kv"
)

// DefaultRetention is the number of notifications a MemoryStore keeps when
// created with a non-positive limit.
const DefaultRetention = 50

// MemoryStore is an in-process Store that retains the most recent
// notifications. It is safe for concurrent use.
type MemoryStore struct {
	items  *kv.Store[int64, Notification]
	nextID atomic.Int64
	limit  int
}

// NewMemoryStore creates a store holding at most limit notifications.
func NewMemoryStore(limit int) *MemoryStore {
	if limit <= 0 {
		limit = DefaultRetention
	}
	return &MemoryStore{
		items: kv.New[int64, Notification](),
		limit: limit,
	}
}

// Save assigns an ID to n and stores it, evicting the oldest entries beyond
// the retention limit.
func (m *MemoryStore) Save(_ context.Context, n Notification) (int64, error) {
	n.ID = m.nextID.Add(1)
	m.items.Set(n.ID, n)

	for m.items.Len() > m.limit {
		keys := m.items.Keys()
		m.items.Delete(keys[0])
	}
	return n.ID, nil
}

// List returns the retained notifications, newest first.
func (m *MemoryStore) List(_ context.Context) ([]Notification, error) {
	values := m.items.Values()
	out := make([]Notification, len(values))
	for i, n := range values {
		out[len(values)-1-i] = n
	}
	return out, nil
}

// ListDocument returns the retained notifications about document, newest
// first.
func (m *MemoryStore) ListDocument(ctx context.Context, document string) ([]Notification, error) {
	all, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, n := range all {
		if n.Document == document {
			out = append(out, n)
		}
	}
	return out, nil
}

// Clear removes every retained notification.
func (m *MemoryStore) Clear(_ context.Context) error {
	m.items.Clear()
	return nil
}

// Count returns the number of retained notifications.
func (m *MemoryStore) Count(_ context.Context) (int64, error) {
	return int64(m.items.Len()), nil
}
