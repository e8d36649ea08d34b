// (c) Copyright Tracewire Labs 2026

package jaegerprop

import "github.com/tracewire/jaegerprop/jaegerfmt"

// FlagSampled marks a trace that is being recorded
const FlagSampled = jaegerfmt.FlagSampled

// SpanContext identifies a unit of work as it crosses process boundaries.
type SpanContext struct {
	// A probabilistically unique identifier for a [multi-span] trace. In
	// contexts extracted from a carrier this is the left-padded 32-character
	// textual form, regardless of whether the peer sent a 64-bit or a
	// 128-bit ID.
	TraceID string
	// A probabilistically unique identifier for a span
	SpanID string
	// The trace flags bitmap. Locally created contexts may carry arbitrary
	// bits and they are forwarded as is, but extracted contexts only ever
	// hold the sampled bit.
	Flags uint8
	// Whether the context was extracted from a carrier rather than created
	// in-process
	Remote bool
}

// Sampled returns whether the sampled flag bit is set
func (sc SpanContext) Sampled() bool {
	return sc.Flags&FlagSampled != 0
}

// IsZero returns whether the context carries no identifiers
func (sc SpanContext) IsZero() bool {
	return sc.TraceID == "" && sc.SpanID == ""
}
