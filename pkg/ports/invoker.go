package ports

import (
	"context"
	"time"

	"github.com/aretw0/prettifier/pkg/domain"
)

// Invoker runs a single external command.
// Implementations must never return a partially running child: on timeout or
// cancellation the process is terminated and reaped before Invoke returns.
type Invoker interface {
	// Invoke starts argv[0] with argv[1:], writes stdin to it and waits at most timeout.
	// A zero timeout means domain.DefaultTimeout.
	Invoke(ctx context.Context, argv []string, stdin string, timeout time.Duration) domain.Outcome
}

// InvokerFunc adapts a plain function to the Invoker interface.
type InvokerFunc func(ctx context.Context, argv []string, stdin string, timeout time.Duration) domain.Outcome

// Invoke calls f.
func (f InvokerFunc) Invoke(ctx context.Context, argv []string, stdin string, timeout time.Duration) domain.Outcome {
	return f(ctx, argv, stdin, timeout)
}
