// (c) Copyright Tracewire Labs 2026

package jaegerprop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tracewire/jaegerprop"
)

func TestSpanContext_Sampled(t *testing.T) {
	assert.False(t, jaegerprop.SpanContext{}.Sampled())
	assert.True(t, jaegerprop.SpanContext{Flags: jaegerprop.FlagSampled}.Sampled())
	// other bits do not imply sampling
	assert.False(t, jaegerprop.SpanContext{Flags: 0x02}.Sampled())
}

func TestSpanContext_IsZero(t *testing.T) {
	assert.True(t, jaegerprop.SpanContext{}.IsZero())
	assert.False(t, jaegerprop.SpanContext{TraceID: exampleTraceID}.IsZero())
	assert.False(t, jaegerprop.SpanContext{SpanID: exampleSpanID}.IsZero())
}
