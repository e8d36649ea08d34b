// (c) Copyright Tracewire Labs 2026

package jaegerprop

import (
	"strings"

	ot "github.com/opentracing/opentracing-go"
)

// OpenTracingCarrier adapts the OpenTracing TextMap carrier pair to this
// package's Carrier interface, so that carriers already implemented against
// github.com/opentracing/opentracing-go, such as ot.TextMapCarrier and
// ot.HTTPHeadersCarrier, can feed Inject and Extract directly.
//
// Reader may be left nil for inject-only use and Writer for extract-only
// use. Lookups are case-insensitive; repeated keys yield the value seen
// first during iteration.
type OpenTracingCarrier struct {
	Reader ot.TextMapReader
	Writer ot.TextMapWriter
}

// Get returns the first value stored under the given key, ignoring the key case
func (c OpenTracingCarrier) Get(key string) string {
	if c.Reader == nil {
		return ""
	}

	var value string
	found := false

	_ = c.Reader.ForeachKey(func(k, v string) error {
		if !found && strings.EqualFold(k, key) {
			value, found = v, true
		}

		return nil
	})

	return value
}

// Keys lists the keys present in the carrier
func (c OpenTracingCarrier) Keys() []string {
	if c.Reader == nil {
		return nil
	}

	var keys []string
	_ = c.Reader.ForeachKey(func(k, v string) error {
		keys = append(keys, k)
		return nil
	})

	return keys
}

// Set stores the value under the given key
func (c OpenTracingCarrier) Set(key, value string) {
	if c.Writer == nil {
		return
	}

	c.Writer.Set(key, value)
}
