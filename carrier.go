// (c) Copyright Tracewire Labs 2026

package jaegerprop

import "net/http"

// Getter reads string headers from a carrier during extraction
type Getter interface {
	// Get returns the value stored under the given key, or an empty string
	// if there is none. Transports that allow repeated keys return the
	// first value.
	Get(key string) string
	// Keys lists all keys present in the carrier
	Keys() []string
}

// Setter writes string headers to a carrier during injection
type Setter interface {
	// Set stores the value under the given key, replacing any previous value
	Set(key, value string)
}

// Carrier is a transport-level container of string headers that can be both
// read and written
type Carrier interface {
	Getter
	Setter
}

// HeaderCarrier adapts http.Header to the Carrier interface. Lookups are
// case-insensitive and repeated headers yield their first value.
//
// http.Header stores names in canonical MIME case, so baggage keys extracted
// through this carrier arrive canonicalized, e.g. uberctx-key yields the
// baggage key "Key". Transports that keep header names verbatim should use
// MapCarrier or their own Carrier implementation instead.
type HeaderCarrier http.Header

// Get returns the first value associated with the given header name
func (hc HeaderCarrier) Get(key string) string {
	return http.Header(hc).Get(key)
}

// Set replaces any existing values associated with the given header name
func (hc HeaderCarrier) Set(key, value string) {
	http.Header(hc).Set(key, value)
}

// Keys lists the header names present in the carrier
func (hc HeaderCarrier) Keys() []string {
	keys := make([]string, 0, len(hc))
	for k := range hc {
		keys = append(keys, k)
	}

	return keys
}

// MapCarrier adapts a plain string map to the Carrier interface. Lookups are
// exact, matching transports whose header names are not case-normalized.
type MapCarrier map[string]string

// Get returns the value stored under the given key
func (mc MapCarrier) Get(key string) string {
	return mc[key]
}

// Set stores the value under the given key
func (mc MapCarrier) Set(key, value string) {
	mc[key] = value
}

// Keys lists the keys present in the carrier
func (mc MapCarrier) Keys() []string {
	keys := make([]string, 0, len(mc))
	for k := range mc {
		keys = append(keys, k)
	}

	return keys
}
