// (c) Copyright Tracewire Labs 2026

package jaegerprop

// BaggageEntry is a single baggage value. Metadata is carried along for
// entries created with it, but is never produced by extraction and is not
// transmitted.
type BaggageEntry struct {
	Value    string
	Metadata string
}

// Baggage is an ordered set of key/value pairs propagated alongside the
// trace context. The zero value is an empty baggage ready for use.
//
// Baggage values are immutable: mutators return an updated copy and leave
// the receiver unchanged. Iteration follows insertion order, and
// overwriting a key keeps its original position, so encoding the same
// baggage always yields headers in the same order.
type Baggage struct {
	keys    []string
	entries map[string]BaggageEntry
}

// With returns a copy of the baggage with the given key set
func (b Baggage) With(key, value string) Baggage {
	return b.WithEntry(key, BaggageEntry{Value: value})
}

// WithEntry returns a copy of the baggage with the given entry set
func (b Baggage) WithEntry(key string, entry BaggageEntry) Baggage {
	res := b.clone()

	if _, ok := res.entries[key]; !ok {
		res.keys = append(res.keys, key)
	}
	res.entries[key] = entry

	return res
}

// Get returns the entry stored under the given key. If there is none, it
// returns false.
func (b Baggage) Get(key string) (BaggageEntry, bool) {
	entry, ok := b.entries[key]
	return entry, ok
}

// Len returns the number of entries
func (b Baggage) Len() int {
	return len(b.keys)
}

// ForEach calls handler for each entry in insertion order until it returns false
func (b Baggage) ForEach(handler func(key string, entry BaggageEntry) bool) {
	for _, k := range b.keys {
		if !handler(k, b.entries[k]) {
			break
		}
	}
}

func (b Baggage) clone() Baggage {
	res := Baggage{
		keys:    make([]string, len(b.keys), len(b.keys)+1),
		entries: make(map[string]BaggageEntry, len(b.entries)+1),
	}

	copy(res.keys, b.keys)
	for k, v := range b.entries {
		res.entries[k] = v
	}

	return res
}
