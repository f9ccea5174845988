package ports

import "context"

// Tracer records spans around the expensive resolution steps: graph
// construction, icon indexing and cache-missing lookups.
type Tracer interface {
	// Start opens a span. The returned function ends it; pass the operation
	// error (or nil) so the span records the outcome.
	Start(ctx context.Context, name string, attrs ...Attr) (context.Context, func(error))
}

// Attr is one key/value annotation on a span.
type Attr struct {
	Key   string
	Value string
}

// String creates a string span attribute.
func String(key, value string) Attr {
	return Attr{Key: key, Value: value}
}
