// Package reqmeta carries dispatch metadata through a context.
//
// Overview:
//   - Responsibility: Attach and read the request id, adapter and operation of a dispatch
//   - Key Types: Meta
//   - Concurrency Model: Meta values are immutable once stored
//   - Error Semantics: Lookups return a presence boolean
//
// Usage:
//
//	ctx = reqmeta.With(ctx, &reqmeta.Meta{RequestID: id, Adapter: "Hello", Operation: "sayHello"})
//	m, ok := reqmeta.From(ctx)
package reqmeta

import (
	"context"

	"github.com/google/uuid"
)

// Meta describes one dispatch.
type Meta struct {
	RequestID string // Unique request identifier
	Adapter   string // Object adapter handling the request
	Identity  string // Stringified target identity
	Operation string // Operation name
}

type contextKey struct{}

// With stores m in ctx.
func With(ctx context.Context, m *Meta) context.Context {
	return context.WithValue(ctx, contextKey{}, m)
}

// From returns the metadata stored in ctx.
func From(ctx context.Context) (*Meta, bool) {
	m, ok := ctx.Value(contextKey{}).(*Meta)
	return m, ok && m != nil
}

// Ensure returns ctx unchanged when it already carries a request id.
// Otherwise it attaches a copy of m with a freshly generated id.
func Ensure(ctx context.Context, m Meta) (context.Context, *Meta) {
	if existing, ok := From(ctx); ok && existing.RequestID != "" {
		return ctx, existing
	}
	if m.RequestID == "" {
		m.RequestID = uuid.NewString()
	}
	return With(ctx, &m), &m
}
