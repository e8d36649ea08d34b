// (c) Copyright Tracewire Labs 2026

package jaegerprop

import (
	"context"

	"github.com/tracewire/jaegerprop/jaegerfmt"
)

// Propagator binds the in-process trace context and baggage to their Jaeger
// header representation. It holds no mutable state: a single instance may be
// shared between goroutines.
type Propagator struct {
	traceContextHeader string
	logger             LeveledLogger
}

// Option configures a Propagator
type Option func(*Propagator)

// WithTraceContextHeader overrides the name of the header carrying the trace
// context. The default is jaegerfmt.TraceContextHeader. The baggage header
// prefix is fixed and not configurable.
func WithTraceContextHeader(name string) Option {
	return func(p *Propagator) {
		p.traceContextHeader = name
	}
}

// WithLogger sets the logger used by this propagator instead of the
// package-wide one configured with SetLogger
func WithLogger(l LeveledLogger) Option {
	return func(p *Propagator) {
		p.logger = l
	}
}

// New initializes a new Propagator
func New(opts ...Option) *Propagator {
	p := &Propagator{
		traceContextHeader: jaegerfmt.TraceContextHeader,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Inject writes the span context and baggage found in ctx to the carrier.
// The trace context header is only written when a span context with both IDs
// is present and the context has not been marked with
// ContextWithSuppressedTracing. Baggage headers are written for every entry
// present, independent of either condition.
func (p *Propagator) Inject(ctx context.Context, carrier Setter) {
	if sc, ok := SpanContextFromContext(ctx); ok && sc.TraceID != "" && sc.SpanID != "" && !tracingSuppressed(ctx) {
		carrier.Set(p.traceContextHeader, jaegerfmt.TraceContext{
			TraceID: sc.TraceID,
			SpanID:  sc.SpanID,
			Flags:   sc.Flags,
		}.String())
	}

	if baggage, ok := BaggageFromContext(ctx); ok {
		baggage.ForEach(func(key string, entry BaggageEntry) bool {
			carrier.Set(jaegerfmt.BaggageHeader(key), jaegerfmt.EncodeBaggageValue(entry.Value))
			return true
		})
	}
}

// Extract returns a copy of ctx with the span context and baggage found in
// the carrier attached. A span context is only attached when the trace
// context header parses; baggage headers are merged into any baggage already
// present in ctx, later carrier entries overwriting earlier ones with the
// same key. If the carrier holds neither a parseable trace context nor
// baggage, the original ctx is returned unchanged.
func (p *Propagator) Extract(ctx context.Context, carrier Getter) context.Context {
	if header := carrier.Get(p.traceContextHeader); header != "" {
		tc, err := jaegerfmt.Parse(header)
		if err != nil {
			p.log().Debug("discarding malformed ", p.traceContextHeader, " header: ", header)
		} else {
			ctx = ContextWithSpanContext(ctx, SpanContext{
				TraceID: tc.TraceID,
				SpanID:  tc.SpanID,
				Flags:   tc.Flags,
				Remote:  true,
			})
		}
	}

	if baggage, ok := p.extractBaggage(ctx, carrier); ok {
		ctx = ContextWithBaggage(ctx, baggage)
	}

	return ctx
}

// Fields returns the header names known to this propagator ahead of time.
// Only the trace context header is statically known: baggage headers derive
// their names from baggage keys, so callers using Fields() to allow-list
// carrier fields will not see them.
func (p *Propagator) Fields() []string {
	return []string{p.traceContextHeader}
}

func (p *Propagator) extractBaggage(ctx context.Context, carrier Getter) (Baggage, bool) {
	baggage, _ := BaggageFromContext(ctx)
	found := false

	for _, name := range carrier.Keys() {
		key, ok := jaegerfmt.ParseBaggageHeader(name)
		if !ok {
			continue
		}

		value := carrier.Get(name)
		if value == "" {
			continue
		}

		baggage = baggage.With(key, jaegerfmt.DecodeBaggageValue(value))
		found = true
	}

	return baggage, found
}

func (p *Propagator) log() LeveledLogger {
	if p.logger != nil {
		return p.logger
	}

	return defaultLogger
}
