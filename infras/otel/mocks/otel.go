// Package mocks provides an in-memory otel.Otel for tests.
package mocks

import (
	"context"
	"hotel/infras/otel"
	"sync"
)

// Otel hands out recording scopes and keeps them for later inspection.
type Otel struct {
	mu     sync.Mutex
	scopes []*Scope
}

func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	scope := newScope(spanName)

	o.mu.Lock()
	o.scopes = append(o.scopes, scope)
	o.mu.Unlock()

	return ctx, scope
}

func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

// Scope returns the first scope opened with spanName, or nil.
func (o *Otel) Scope(spanName string) *Scope {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, scope := range o.scopes {
		if scope.name == spanName {
			return scope
		}
	}

	return nil
}

func NewOtel() otel.Otel {
	return NewRecorder()
}

func NewRecorder() *Otel {
	return &Otel{}
}
