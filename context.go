// (c) Copyright Tracewire Labs 2026

package jaegerprop

import "context"

type contextKey int8

const (
	spanContextKey contextKey = iota
	baggageKey
	suppressedKey
)

// ContextWithSpanContext returns a new context.Context holding the given span context
func ContextWithSpanContext(ctx context.Context, sc SpanContext) context.Context {
	return context.WithValue(ctx, spanContextKey, sc)
}

// SpanContextFromContext retrieves a previously stored span context. If there
// is none, this method returns false.
func SpanContextFromContext(ctx context.Context) (SpanContext, bool) {
	sc, ok := ctx.Value(spanContextKey).(SpanContext)
	return sc, ok
}

// ContextWithBaggage returns a new context.Context holding the given baggage
func ContextWithBaggage(ctx context.Context, b Baggage) context.Context {
	return context.WithValue(ctx, baggageKey, b)
}

// BaggageFromContext retrieves previously stored baggage. If there is none,
// this method returns false.
func BaggageFromContext(ctx context.Context) (Baggage, bool) {
	b, ok := ctx.Value(baggageKey).(Baggage)
	return b, ok
}

// ContextWithSuppressedTracing marks the context as one whose trace must not
// leave the process. Inject consults this flag before writing the trace
// context header; baggage headers are written regardless.
func ContextWithSuppressedTracing(ctx context.Context, suppressed bool) context.Context {
	return context.WithValue(ctx, suppressedKey, suppressed)
}

func tracingSuppressed(ctx context.Context) bool {
	suppressed, _ := ctx.Value(suppressedKey).(bool)
	return suppressed
}
