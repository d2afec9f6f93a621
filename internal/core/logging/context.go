package logging

import "context"

type contextKey string

const (
	documentKey  contextKey = "document"
	operationKey contextKey = "operation"
)

// WithDocument adds the path of the mind map file being worked on.
func WithDocument(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, documentKey, path)
}

// WithOperation adds the name of the document operation (load, save).
func WithOperation(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, operationKey, op)
}

// GetDocument retrieves the document path from the context.
// Returns empty string if not present.
func GetDocument(ctx context.Context) string {
	if v, ok := ctx.Value(documentKey).(string); ok {
		return v
	}
	return ""
}

// GetOperation retrieves the operation name from the context.
// Returns empty string if not present.
func GetOperation(ctx context.Context) string {
	if v, ok := ctx.Value(operationKey).(string); ok {
		return v
	}
	return ""
}
