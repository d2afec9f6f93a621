package mindmap

import "errors"

var (
	// ErrProtectedNode is returned when deleting the root node. Callers are
	// expected to surface it to the user; the store is never modified.
	ErrProtectedNode = errors.New("the root node cannot be deleted")

	// ErrAbsentNode is returned when an update or delete names an unknown id.
	// It is informational and safe to ignore.
	ErrAbsentNode = errors.New("node not found")

	// ErrEmptyLoad is returned when loaded content has no non-blank lines.
	// The existing nodes are kept.
	ErrEmptyLoad = errors.New("nothing to load")

	// ErrMissingRoot is returned by ReplaceAll when the new collection has no root.
	ErrMissingRoot = errors.New("collection has no root node")
)
