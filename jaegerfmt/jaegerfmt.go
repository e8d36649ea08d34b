// (c) Copyright Tracewire Labs 2026

// Package jaegerfmt implements the Jaeger native propagation format, i.e.
// the value codec for the `uber-trace-id` trace context header and the
// naming and escaping rules for `uberctx-` baggage headers.
package jaegerfmt

import "errors"

const (
	// TraceContextHeader is the default name of the header carrying the trace context
	TraceContextHeader = "uber-trace-id"
	// BaggageHeaderPrefix is the name prefix of headers carrying baggage items
	BaggageHeaderPrefix = "uberctx-"
)

// ErrContextCorrupted is an error returned by jaegerfmt.Parse() if the header value
// does not have the expected {trace-id}:{span-id}:{parent-span-id}:{flags} shape
var ErrContextCorrupted = errors.New("corrupted trace context")
