// (c) Copyright Tracewire Labs 2026

package jaegerfmt

import (
	"net/url"
	"strings"
)

const upperhex = "0123456789ABCDEF"

// BaggageHeader returns the name of the header carrying the given baggage
// key. The key is inserted verbatim, so it is up to the caller to avoid keys
// containing characters that are not valid in header names.
func BaggageHeader(key string) string {
	return BaggageHeaderPrefix + key
}

// ParseBaggageHeader extracts the baggage key from a header name. The prefix
// is matched case-insensitively and only the first dash terminating it is a
// delimiter, so keys may themselves contain dashes. It returns false if the
// name is not a baggage header.
func ParseBaggageHeader(name string) (string, bool) {
	if len(name) <= len(BaggageHeaderPrefix) {
		return "", false
	}

	if !strings.EqualFold(name[:len(BaggageHeaderPrefix)], BaggageHeaderPrefix) {
		return "", false
	}

	return name[len(BaggageHeaderPrefix):], true
}

// EncodeBaggageValue percent-encodes a baggage value for transport. Bytes
// outside the RFC 3986 unreserved set plus !~*'() are emitted as uppercase
// %XX escapes. This is the exact alphabet peers in other runtimes produce,
// which neither url.QueryEscape nor url.PathEscape reproduces.
func EncodeBaggageValue(value string) string {
	var b strings.Builder

	for i := 0; i < len(value); i++ {
		c := value[i]
		if escapeNeeded(c) {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0x0f])
		} else {
			b.WriteByte(c)
		}
	}

	return b.String()
}

// DecodeBaggageValue reverses EncodeBaggageValue. A malformed escape
// sequence leaves the value as is rather than discarding the entry.
func DecodeBaggageValue(value string) string {
	decoded, err := url.PathUnescape(value)
	if err != nil {
		return value
	}

	return decoded
}

func escapeNeeded(c byte) bool {
	if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
		return false
	}

	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return false
	}

	return true
}
