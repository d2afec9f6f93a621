// Package kv provides a generic thread-safe key-value store that remembers
// insertion order.
package kv

import (
	"slices"
	"sync"
)

// Entry is a single key-value pair.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Store is a thread-safe generic key-value store. Iteration follows the order
// in which keys were first inserted; overwriting a key keeps its position.
type Store[K comparable, V any] struct {
	mu   sync.RWMutex
	keys []K
	data map[K]V
}

// New creates a new key-value store.
func New[K comparable, V any]() *Store[K, V] {
	return &Store[K, V]{
		data: make(map[K]V),
	}
}

// Get retrieves a value by key.
func (s *Store[K, V]) Get(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.data[key]
	return val, ok
}

// Has reports whether key is present.
func (s *Store[K, V]) Has(key K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[key]
	return ok
}

// Set stores a value by key. New keys are appended to the end of the order.
func (s *Store[K, V]) Set(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.data[key] = value
}

// Delete removes a key from the store. It reports whether the key existed.
func (s *Store[K, V]) Delete(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; !ok {
		return false
	}
	delete(s.data, key)
	s.keys = slices.DeleteFunc(s.keys, func(k K) bool { return k == key })
	return true
}

// Replace discards all entries and loads entries in the given order.
// Duplicate keys keep the position of their first occurrence and the value
// of their last.
func (s *Store[K, V]) Replace(entries []Entry[K, V]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys = make([]K, 0, len(entries))
	s.data = make(map[K]V, len(entries))
	for _, e := range entries {
		if _, ok := s.data[e.Key]; !ok {
			s.keys = append(s.keys, e.Key)
		}
		s.data[e.Key] = e.Value
	}
}

// Clear removes all entries from the store.
func (s *Store[K, V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys = nil
	s.data = make(map[K]V)
}

// Len returns the number of items in the store.
func (s *Store[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Keys returns all keys in insertion order.
func (s *Store[K, V]) Keys() []K {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.keys)
}

// Values returns all values in insertion order.
func (s *Store[K, V]) Values() []V {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vals := make([]V, 0, len(s.keys))
	for _, k := range s.keys {
		vals = append(vals, s.data[k])
	}
	return vals
}

// Last returns the most recently inserted entry.
func (s *Store[K, V]) Last() (Entry[K, V], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.keys) == 0 {
		return Entry[K, V]{}, false
	}
	k := s.keys[len(s.keys)-1]
	return Entry[K, V]{Key: k, Value: s.data[k]}, true
}
