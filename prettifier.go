package prettifier

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/prettifier/internal/fallback"
	"github.com/aretw0/prettifier/internal/logging"
	"github.com/aretw0/prettifier/internal/presentation/tui"
	"github.com/aretw0/prettifier/internal/runtime"
	"github.com/aretw0/prettifier/pkg/adapters/process"
	"github.com/aretw0/prettifier/pkg/domain"
	"github.com/aretw0/prettifier/pkg/observability"
	"github.com/aretw0/prettifier/pkg/ports"
)

// Service is the high-level entry point: it owns the resolved capabilities and
// the engine, and maps operation calls onto formatting requests.
// A Service is safe for concurrent use.
type Service struct {
	engine *runtime.Engine
	caps   domain.Capabilities

	invoker           ports.Invoker
	timeout           time.Duration
	overrides         map[string]process.RendererConfig
	env               []string
	tableStyle        fallback.TableStyle
	tableColor        bool
	inProcessMarkdown bool
	inProcessCode     bool
	hooks             domain.Hooks
	metrics           *observability.Metrics
	logger            *slog.Logger
}

// New resolves the host for renderers and builds the service.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		timeout:    domain.DefaultTimeout,
		tableStyle: fallback.TableRich,
		tableColor: true,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := process.ValidateOverrides(s.overrides); err != nil {
		return nil, fmt.Errorf("invalid renderer overrides: %w", err)
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	if s.caps == nil {
		s.caps = process.Locate(domain.ExternalRenderers,
			process.WithOverrides(s.overrides),
			process.WithDefaultTimeout(s.timeout),
		)
	}
	if s.invoker == nil {
		s.invoker = process.NewInvoker(
			process.WithTimeout(s.timeout),
			process.WithEnv(s.env...),
		)
	}

	hooks := s.hooks
	if s.metrics != nil {
		hooks = hooks.Merge(s.metrics.Hooks())
	}

	engineOpts := []runtime.EngineOption{
		runtime.WithInvoker(s.invoker),
		runtime.WithFallbacks(fallback.New(
			fallback.WithTableStyle(s.tableStyle),
			fallback.WithTableColor(s.tableColor),
		)),
		runtime.WithLifecycleHooks(hooks),
		runtime.WithLogger(s.logger),
	}
	if s.inProcessMarkdown {
		md := tui.NewMarkdownRenderer()
		s.caps = s.caps.With(domain.RendererDescriptor{Name: md.Name(), Available: true, InProcess: true})
		engineOpts = append(engineOpts, runtime.WithRenderer(domain.KindMarkdown, md))
	}
	if s.inProcessCode {
		code := tui.NewCodeRenderer()
		s.caps = s.caps.With(domain.RendererDescriptor{Name: code.Name(), Available: true, InProcess: true})
		engineOpts = append(engineOpts, runtime.WithRenderer(domain.KindCode, code))
	}
	engineOpts = append(engineOpts, runtime.WithCapabilities(s.caps))
	s.engine = runtime.NewEngine(engineOpts...)

	var available []string
	for _, name := range s.caps.Names() {
		if s.caps.Available(name) {
			available = append(available, name)
		}
	}
	s.logger.Debug("Renderers resolved", "available", available)

	return s, nil
}

// Invoke runs the named operation with loosely typed arguments, as received
// from a transport. Unknown operations and undecodable arguments yield a
// user-facing message. The error is non-nil only when ctx ends first.
func (s *Service) Invoke(ctx context.Context, operation string, args map[string]any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	kind, ok := domain.OperationKind(operation)
	if !ok {
		s.logger.Debug("Unknown operation", "operation", operation)
		return domain.MsgUnknownTool + operation, nil
	}
	req, err := DecodeRequest(kind, args)
	if err != nil {
		return domain.MsgInvalidArguments + operation + ": " + err.Error(), nil
	}
	return s.Format(ctx, req)
}

// Format resolves a typed request. KindRaw requests are classified first.
func (s *Service) Format(ctx context.Context, req domain.Request) (string, error) {
	switch req.Kind {
	case domain.KindRaw:
		return s.formatRaw(ctx, req.Text)
	case domain.KindPlain:
		return req.Text, ctx.Err()
	}
	return s.engine.Resolve(ctx, req)
}

func (s *Service) formatRaw(ctx context.Context, text string) (string, error) {
	kind := s.Detect(ctx, text)
	s.logger.Debug("Content detected", "kind", kind)
	if kind == domain.KindPlain {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return text, nil
	}
	return s.engine.Resolve(ctx, domain.NewRequest(kind, text))
}

// Detect classifies text into JSON, YAML, Markdown or Plain.
func (s *Service) Detect(ctx context.Context, text string) domain.Kind {
	return s.engine.Detect(ctx, text)
}

// Capabilities returns a copy of the renderer map resolved at construction.
func (s *Service) Capabilities() domain.Capabilities {
	out := make(domain.Capabilities, len(s.caps))
	for name, d := range s.caps {
		out[name] = d
	}
	return out
}

// Operations returns the operation catalog.
func (s *Service) Operations() []domain.Operation {
	return domain.Operations()
}

// Chain returns the names of the steps tried for kind, in order, ending with
// domain.SourceBuiltin.
func (s *Service) Chain(kind domain.Kind) []string {
	var names []string
	for _, step := range s.engine.Chain(kind) {
		names = append(names, step.Name)
	}
	return append(names, domain.SourceBuiltin)
}

// DecodeRequest builds a request for kind from transport arguments.
// Missing arguments take their documented defaults; values are weakly typed,
// so "80" and 80.0 both decode to the integer 80.
func DecodeRequest(kind domain.Kind, args map[string]any) (domain.Request, error) {
	in := struct {
		Text           string `mapstructure:"text"`
		Data           string `mapstructure:"data"`
		domain.Options `mapstructure:",squash"`
	}{
		Data:    domain.DefaultTableData,
		Options: domain.DefaultOptions(kind),
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &in,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return domain.Request{}, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := dec.Decode(args); err != nil {
		return domain.Request{}, err
	}

	text := in.Text
	if kind == domain.KindTable {
		text = in.Data
	}
	return domain.Request{Kind: kind, Text: text, Options: in.Options}, nil
}
