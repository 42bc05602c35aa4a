package conlog

import "context"

type ctxKey struct{}

// NewContext returns a copy of ctx carrying the scope. This is how a scope
// travels with its unit of work through call trees and worker handoffs.
func NewContext(ctx context.Context, s *Scope) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the scope carried by ctx. A context without one yields
// a fresh unconfigured scope of the default logger, so callers can always
// log; they just log wide open.
func FromContext(ctx context.Context) *Scope {
	if s, ok := ctx.Value(ctxKey{}).(*Scope); ok {
		return s
	}
	return Default().Scope("")
}
