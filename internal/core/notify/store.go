// Package notify defines document notifications and their history store.
package notify

import (
	"context"
	"time"
)

// Level represents the severity of a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Event names the document operation a notification reports on.
type Event string

const (
	EventLoad   Event = "load"   // a document was opened or failed to open
	EventReload Event = "reload" // the watched file changed on disk
	EventSave   Event = "save"
	EventEdit   Event = "edit" // node operations on the open map
)

// Notification reports the outcome of an operation on a document.
// Document is the path the event concerns and is empty for a map that was
// never opened from or saved to a file.
type Notification struct {
	ID        int64
	Level     Level
	Event     Event
	Document  string
	Message   string
	CreatedAt time.Time
}

// Supersedes reports whether n replaces other in a toast stack: both describe
// the same event on the same document, so only the newer one matters.
func (n Notification) Supersedes(other Notification) bool {
	return n.Event != "" && n.Event == other.Event && n.Document == other.Document
}

// Store keeps a history of published notifications.
type Store interface {
	Save(ctx context.Context, n Notification) (int64, error)
	// List returns every retained notification, newest first.
	List(ctx context.Context) ([]Notification, error)
	// ListDocument returns the notifications about one document, newest first.
	ListDocument(ctx context.Context, document string) ([]Notification, error)
	Clear(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}
