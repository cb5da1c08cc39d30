package runtime

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/aretw0/prettifier/internal/fallback"
	"github.com/aretw0/prettifier/internal/logging"
	"github.com/aretw0/prettifier/pkg/domain"
	"github.com/aretw0/prettifier/pkg/ports"
)

// Fallbacks supplies the total formatter that ends each chain.
type Fallbacks interface {
	For(kind domain.Kind) ports.Formatter
}

// Engine walks fallback chains. It holds only state fixed at construction and
// is safe for concurrent use.
type Engine struct {
	caps      domain.Capabilities
	invoker   ports.Invoker
	chains    Chains
	renderers map[string]ports.Renderer
	fallbacks Fallbacks
	hooks     domain.Hooks
	logger    *slog.Logger
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithCapabilities sets the resolved renderer map. Steps missing from it are skipped.
func WithCapabilities(caps domain.Capabilities) EngineOption {
	return func(e *Engine) {
		e.caps = caps
	}
}

// WithInvoker sets the process invoker used by external steps.
// Without one, every external step is skipped.
func WithInvoker(inv ports.Invoker) EngineOption {
	return func(e *Engine) {
		e.invoker = inv
	}
}

// WithRenderer appends an in-process renderer to the end of kind's chain.
func WithRenderer(kind domain.Kind, r ports.Renderer) EngineOption {
	return func(e *Engine) {
		e.renderers[r.Name()] = r
		e.chains = e.chains.With(kind, Step{Name: r.Name()})
	}
}

// WithFallbacks sets the built-in formatters.
func WithFallbacks(f Fallbacks) EngineOption {
	return func(e *Engine) {
		e.fallbacks = f
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.Hooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine with the default chains and built-ins.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		caps:      domain.Capabilities{},
		chains:    DefaultChains(),
		renderers: make(map[string]ports.Renderer),
		fallbacks: fallback.New(),
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Chain returns the steps tried for kind, in order.
func (e *Engine) Chain(kind domain.Kind) []Step {
	return append([]Step(nil), e.chains[kind]...)
}

// Resolve returns the output of the first successful step of req.Kind's chain,
// or the built-in result when none succeeds. The only error is the context's,
// returned when ctx ends before an answer is produced.
func (e *Engine) Resolve(ctx context.Context, req domain.Request) (string, error) {
	start := time.Now()
	attempts := 0

	for _, step := range e.chains[req.Kind] {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if !e.available(step) {
			continue
		}
		attempts++
		if out, ok := e.attempt(ctx, req, step); ok {
			e.resolved(ctx, req.Kind, step.Name, attempts, start)
			return out, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	out := e.fallbacks.For(req.Kind).Format(req)
	e.resolved(ctx, req.Kind, domain.SourceBuiltin, attempts, start)
	return out, nil
}

func (e *Engine) available(step Step) bool {
	if step.External() {
		return e.invoker != nil && e.caps.Available(step.Name)
	}
	if _, ok := e.renderers[step.Name]; !ok {
		return false
	}
	if d, ok := e.caps.Descriptor(step.Name); ok {
		return d.Available
	}
	return true
}

func (e *Engine) attempt(ctx context.Context, req domain.Request, step Step) (string, bool) {
	start := time.Now()

	var outcome domain.Outcome
	if step.External() {
		argv, timeout := e.command(step, req.Options)
		outcome = e.invoker.Invoke(ctx, argv, req.Text, timeout)
	} else {
		outcome = renderInProcess(ctx, e.renderers[step.Name], req)
	}
	elapsed := time.Since(start)

	event := &domain.AttemptEvent{
		Type:      domain.EventAttempt,
		Kind:      req.Kind,
		Renderer:  step.Name,
		Succeeded: outcome.Succeeded,
		Duration:  elapsed,
	}
	if !outcome.Succeeded {
		event.Diagnostic = outcome.Output
		e.logger.Debug("Renderer attempt failed",
			"kind", req.Kind,
			"renderer", step.Name,
			"duration", elapsed,
			"diagnostic", outcome.Output,
		)
	}
	if e.hooks.OnAttempt != nil {
		e.hooks.OnAttempt(ctx, event)
	}

	if !outcome.Succeeded {
		return "", false
	}
	return outcome.Output, true
}

// command builds the argv and timeout of an external step from its descriptor.
func (e *Engine) command(step Step, opts domain.Options) ([]string, time.Duration) {
	d, _ := e.caps.Descriptor(step.Name)
	name := d.Command
	if name == "" {
		name = step.Name
	}
	return append([]string{name}, step.Args(opts)...), d.Timeout
}

func renderInProcess(ctx context.Context, r ports.Renderer, req domain.Request) domain.Outcome {
	out, err := r.Render(ctx, req)
	if err != nil {
		return domain.Failure(err.Error())
	}
	if strings.TrimSpace(out) == "" {
		return domain.Failure(domain.ErrEmptyOutput.Error())
	}
	return domain.Success(out)
}

func (e *Engine) resolved(ctx context.Context, kind domain.Kind, source string, attempts int, start time.Time) {
	elapsed := time.Since(start)
	e.logger.Debug("Request resolved",
		"kind", kind,
		"renderer", source,
		"attempts", attempts,
		"duration", elapsed,
	)
	if e.hooks.OnResolve != nil {
		e.hooks.OnResolve(ctx, &domain.ResolveEvent{
			Type:     domain.EventResolve,
			Kind:     kind,
			Source:   source,
			Attempts: attempts,
			Duration: elapsed,
		})
	}
}
