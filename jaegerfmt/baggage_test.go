// (c) Copyright Tracewire Labs 2026

package jaegerfmt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tracewire/jaegerprop/jaegerfmt"
)

func TestBaggageHeader(t *testing.T) {
	assert.Equal(t, "uberctx-key1", jaegerfmt.BaggageHeader("key1"))
	assert.Equal(t, "uberctx-key-with-dashes", jaegerfmt.BaggageHeader("key-with-dashes"))
}

func TestParseBaggageHeader(t *testing.T) {
	examples := map[string]struct {
		Header string
		Key    string
		OK     bool
	}{
		"lower case":       {"uberctx-key1", "key1", true},
		"canonical case":   {"Uberctx-Key1", "Key1", true},
		"upper case":       {"UBERCTX-KEY1", "KEY1", true},
		"key with dashes":  {"uberctx-key-with-dashes", "key-with-dashes", true},
		"empty key":        {"uberctx-", "", false},
		"prefix only":      {"uberctx", "", false},
		"unrelated header": {"content-type", "", false},
		"prefix not first": {"x-uberctx-key1", "", false},
	}

	for name, example := range examples {
		t.Run(name, func(t *testing.T) {
			key, ok := jaegerfmt.ParseBaggageHeader(example.Header)
			assert.Equal(t, example.OK, ok)
			assert.Equal(t, example.Key, key)
		})
	}
}

func TestEncodeBaggageValue(t *testing.T) {
	examples := map[string]struct {
		Value    string
		Expected string
	}{
		"plain":               {"value1", "value1"},
		"space and reserved":  {"value 2/$", "value%202%2F%24"},
		"unreserved alphabet": {"AZaz09-_.!~*'()", "AZaz09-_.!~*'()"},
		"multibyte":           {"käse", "k%C3%A4se"},
		"equals and comma":    {"a=b,c", "a%3Db%2Cc"},
	}

	for name, example := range examples {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, example.Expected, jaegerfmt.EncodeBaggageValue(example.Value))
		})
	}
}

func TestDecodeBaggageValue(t *testing.T) {
	examples := map[string]struct {
		Value    string
		Expected string
	}{
		"plain":             {"value1", "value1"},
		"escaped":           {"value%202%2F%24", "value 2/$"},
		"plus is preserved": {"a+b", "a+b"},
		"multibyte":         {"k%C3%A4se", "käse"},
		"malformed escape":  {"50%off", "50%off"},
	}

	for name, example := range examples {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, example.Expected, jaegerfmt.DecodeBaggageValue(example.Value))
		})
	}
}

func TestBaggageValue_RoundTrip(t *testing.T) {
	values := []string{"", "value1", "value 2/$", "käse", "100%"}

	for _, value := range values {
		assert.Equal(t, value, jaegerfmt.DecodeBaggageValue(jaegerfmt.EncodeBaggageValue(value)))
	}
}
