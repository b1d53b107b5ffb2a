package toolkit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/harun/paypal-agent-toolkit/internal/logger"
	"github.com/harun/paypal-agent-toolkit/internal/metrics"
	"github.com/harun/paypal-agent-toolkit/internal/tracing"
	"github.com/harun/paypal-agent-toolkit/pkg/catalog"
	"github.com/harun/paypal-agent-toolkit/pkg/paypal"
	"github.com/harun/paypal-agent-toolkit/pkg/permission"
	"github.com/harun/paypal-agent-toolkit/pkg/schema"
)

// DefaultMaxErrorLength caps error messages returned to callers.
const DefaultMaxErrorLength = 200

// unknownTool labels metrics for names outside the tool set.
const unknownTool = "unknown"

// Config is what a framework adapter supplies once per agent session.
type Config struct {
	Actions permission.Actions      `json:"actions"`
	Context paypal.ExecutionContext `json:"context"`

	// MaxErrorLength caps caller-visible error messages. 0 means the default.
	MaxErrorLength int `json:"max_error_length,omitempty"`
}

// Tool is the framework-neutral description of one enabled operation.
type Tool struct {
	Name        string                 `json:"name"`
	HumanName   string                 `json:"humanName"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

// Option configures a Toolkit.
type Option func(*Toolkit)

// WithLogger sets the diagnostic logger. The global zerolog logger is used
// otherwise.
func WithLogger(l zerolog.Logger) Option {
	return func(t *Toolkit) {
		t.log = l
	}
}

// WithMetrics registers dispatch counts and durations on reg. Toolkits that
// share a registry share the collectors.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(t *Toolkit) {
		t.registerer = reg
	}
}

// Redactor scrubs secrets from a message.
type Redactor interface {
	Redact(s string) string
}

// WithRedactor replaces the redactor applied to caller-visible messages.
func WithRedactor(r Redactor) Option {
	return func(t *Toolkit) {
		t.redactor = r
	}
}

// WithTracerProvider sets where dispatch spans go. The global OpenTelemetry
// provider is used otherwise.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(t *Toolkit) {
		t.tracer = tp
	}
}

// Toolkit dispatches tool calls for one execution context and permission set.
// It is safe for concurrent use.
type Toolkit struct {
	tools   []*catalog.Operation
	enabled map[string]*catalog.Operation
	client  *paypal.Client

	log            zerolog.Logger
	registerer     prometheus.Registerer
	metrics        *metrics.Metrics
	tracer         trace.TracerProvider
	redactor       Redactor
	maxErrorLength int
}

// New builds the catalog for cfg.Context and filters it by cfg.Actions.
func New(cfg Config, transport paypal.Transport, opts ...Option) (*Toolkit, error) {
	cat, err := catalog.New(cfg.Context)
	if err != nil {
		return nil, err
	}

	t := &Toolkit{
		log:            log.Logger,
		redactor:       logger.NewRedactor(),
		maxErrorLength: cfg.MaxErrorLength,
	}
	if t.maxErrorLength <= 0 {
		t.maxErrorLength = DefaultMaxErrorLength
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.registerer != nil {
		if t.metrics, err = metrics.New(t.registerer); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}
	t.client = paypal.NewClient(transport, cfg.Context, paypal.WithLogger(t.log))

	t.tools = cat.Allowed(cfg.Actions)
	t.enabled = make(map[string]*catalog.Operation, len(t.tools))
	for _, op := range t.tools {
		t.enabled[op.Name] = op
	}

	if len(t.tools) == 0 {
		t.log.Warn().Msg("No PayPal tools enabled; check the actions configuration")
	}
	if t.metrics != nil {
		t.metrics.ToolsEnabled.Set(float64(len(t.tools)))
	}

	t.log.Debug().
		Int("tools", len(t.tools)).
		Str("environment", cfg.Context.Environment()).
		Str("source", cfg.Context.Source).
		Msg("PayPal toolkit initialized")

	return t, nil
}

// Tools returns the enabled operations in declaration order.
func (t *Toolkit) Tools() []*catalog.Operation {
	out := make([]*catalog.Operation, len(t.tools))
	copy(out, t.tools)
	return out
}

// ListTools describes the enabled operations with their JSON-Schemas.
func (t *Toolkit) ListTools() []Tool {
	out := make([]Tool, 0, len(t.tools))
	for _, op := range t.tools {
		out = append(out, Tool{
			Name:        op.Name,
			HumanName:   op.HumanName,
			Description: op.Description,
			Parameters:  op.JSONSchema(),
		})
	}
	return out
}

// Tool looks up an enabled operation.
func (t *Toolkit) Tool(name string) (*catalog.Operation, bool) {
	op, ok := t.enabled[name]
	return op, ok
}

// Validate checks args for the named tool without calling the API and
// returns the normalized argument document.
func (t *Toolkit) Validate(name string, args json.RawMessage) (json.RawMessage, error) {
	op, ok := t.enabled[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMethodNotFound, name)
	}
	res := op.Validate(args)
	if err := res.Err(); err != nil {
		return nil, err
	}
	return res.Value(), nil
}

// Execute runs one tool call and always returns an envelope.
func (t *Toolkit) Execute(ctx context.Context, name string, args json.RawMessage) (env Envelope) {
	start := time.Now()
	label := unknownTool
	if _, ok := t.enabled[name]; ok {
		label = name
	}

	ctx, span := tracing.StartSpan(ctx, t.tracer, "paypal_toolkit.execute", attribute.String("tool", name))
	l := tracing.LoggerFromContext(ctx, t.log)

	defer func() {
		if r := recover(); r != nil {
			l.Error().
				Str("tool", name).
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("Tool handler panicked")
			env = t.toolError(CategoryInternal, CodeInternal, fmt.Sprintf("internal error: %v", r), 0)
		}

		span.SetAttributes(attribute.String("envelope.kind", string(env.Kind)))
		if env.Error != nil {
			span.SetStatus(codes.Error, env.Error.Message)
		}
		span.End()

		if t.metrics != nil {
			t.metrics.RecordDispatch(label, string(env.Kind), time.Since(start))
		}
	}()

	op, ok := t.enabled[name]
	if !ok {
		return t.fail(l, name, fmt.Errorf("%w: %s", ErrMethodNotFound, name))
	}

	res := op.Validate(args)
	if !res.Valid() {
		return t.invalid(l, op, res)
	}

	out, err := op.Invoke(ctx, t.client, res.Value())
	if err != nil {
		return t.fail(l, name, err)
	}

	l.Debug().Str("tool", name).Dur("duration", time.Since(start)).Msg("Tool dispatch succeeded")
	return success(out)
}

// Dispatch runs one tool call and returns the JSON-encoded envelope.
func (t *Toolkit) Dispatch(ctx context.Context, name string, args json.RawMessage) string {
	env := t.Execute(ctx, name, args)

	b, err := json.Marshal(env)
	if err != nil {
		t.log.Error().Err(err).Str("tool", name).Msg("Failed to encode tool result")
		b, _ = json.Marshal(t.toolError(CategoryInternal, CodeSerialization, "failed to encode result: "+err.Error(), 0))
	}
	return string(b)
}

func (t *Toolkit) invalid(l zerolog.Logger, op *catalog.Operation, res schema.Result) Envelope {
	err := res.Err()
	l.Warn().
		Str("tool", op.Name).
		Interface("errors", res.Errors()).
		Msg("Tool arguments rejected")

	if op.InvalidMessage != "" {
		return t.toolError(CategoryValidation, CodeValidation, op.InvalidMessage, http.StatusBadRequest)
	}
	return t.classify(err)
}

func (t *Toolkit) fail(l zerolog.Logger, name string, err error) Envelope {
	env := t.classify(err)
	l.Error().
		Err(err).
		Str("tool", name).
		Str("kind", string(env.Kind)).
		Msg("Tool dispatch failed")
	return env
}

// WithToolCallID tags ctx with the framework's tool call ID. It is added to
// every log line of the dispatch.
func WithToolCallID(ctx context.Context, id string) context.Context {
	return tracing.WithToolCallID(ctx, id)
}

// WithSessionKey tags ctx with the agent session a dispatch belongs to.
func WithSessionKey(ctx context.Context, key string) context.Context {
	return tracing.WithSessionKey(ctx, key)
}
