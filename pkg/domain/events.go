package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventAttempt EventType = "attempt"
	EventResolve EventType = "resolve"
)

// AttemptEvent reports a single renderer attempt inside a chain.
type AttemptEvent struct {
	Type       EventType     `json:"type"`
	Kind       Kind          `json:"kind"`
	Renderer   string        `json:"renderer"`
	Succeeded  bool          `json:"succeeded"`
	Duration   time.Duration `json:"duration"`
	Diagnostic string        `json:"diagnostic,omitempty"`
}

// ResolveEvent reports the end of a chain walk.
// Source is the winning renderer name, or SourceBuiltin.
type ResolveEvent struct {
	Type     EventType     `json:"type"`
	Kind     Kind          `json:"kind"`
	Source   string        `json:"source"`
	Attempts int           `json:"attempts"`
	Duration time.Duration `json:"duration"`
}

// Hooks defines callbacks for engine observability.
type Hooks struct {
	OnAttempt func(context.Context, *AttemptEvent)
	OnResolve func(context.Context, *ResolveEvent)
}

// Merge returns hooks that call h first and then other.
func (h Hooks) Merge(other Hooks) Hooks {
	return Hooks{
		OnAttempt: chain(h.OnAttempt, other.OnAttempt),
		OnResolve: chain(h.OnResolve, other.OnResolve),
	}
}

func chain[E any](a, b func(context.Context, *E)) func(context.Context, *E) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *E) {
		a(ctx, e)
		b(ctx, e)
	}
}
