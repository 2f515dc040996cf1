// Package correlation threads an opaque request identifier through one
// logical operation so failures can be traced across the chat layer,
// this service and the CRM.
package correlation

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

// New returns a fresh correlation id.
func New() string {
	return uuid.NewString()
}

// With stores the correlation id on the context.
func With(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the correlation id on the context, minting one
// when absent so downstream code always has an id to attach.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok && id != "" {
		return id
	}
	return New()
}
