// (c) Copyright Tracewire Labs 2026

// Package jaegerprop propagates distributed tracing context between
// processes using the Jaeger native header format:
//
//	uber-trace-id: {trace-id}:{span-id}:0:{flags}
//	uberctx-{key}: {percent-encoded value}
//
// A Propagator reads the current SpanContext and Baggage from a
// context.Context and writes them to a header carrier on the way out, and
// reconstructs them from a carrier on the way in. The propagator performs no
// I/O and keeps no state between calls: concurrent use with different
// context/carrier pairs is safe.
//
// The wire codec itself lives in the jaegerprop/jaegerfmt package.
package jaegerprop

// Version is the version of the jaegerprop module
const Version = "1.2.0"
