package gantry

import "sort"

// Headers is an ordered multimap of header names to values, as attached to
// an outgoing call. Keys keep first-seen order and a key's values keep
// append order. Names are stored case-sensitively; callers conventionally
// normalize case before adding.
//
// A Headers value is immutable: Add and MergeHeaders return new instances
// and never alter their inputs, so a Headers may be shared freely.
type Headers struct {
	keys   []string
	values map[string][]string
}

// NewHeaders returns an empty Headers.
func NewHeaders() *Headers {
	return &Headers{values: make(map[string][]string)}
}

// HeadersFromMap builds Headers from a plain map. Map iteration order is not
// deterministic, so keys are inserted in sorted order.
func HeadersFromMap(m map[string][]string) *Headers {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	h := NewHeaders()
	for _, k := range keys {
		h = h.Add(k, m[k]...)
	}
	return h
}

// Add returns a new Headers with values appended to key. A key seen for the
// first time is ordered after all existing keys.
func (h *Headers) Add(key string, values ...string) *Headers {
	out := h.clone()
	if _, ok := out.values[key]; !ok {
		out.keys = append(out.keys, key)
	}
	out.values[key] = append(out.values[key], values...)
	return out
}

// Get returns a copy of the values for key, in append order, or nil if the
// key is absent.
func (h *Headers) Get(key string) []string {
	values, ok := h.values[key]
	if !ok {
		return nil
	}
	return append([]string(nil), values...)
}

// Keys returns a copy of the header names in first-seen order.
func (h *Headers) Keys() []string {
	return append([]string(nil), h.keys...)
}

// Len reports the number of distinct header names.
func (h *Headers) Len() int {
	return len(h.keys)
}

// Map returns the headers as a plain map, for interop with transport header
// types. The returned map is a copy.
func (h *Headers) Map() map[string][]string {
	out := make(map[string][]string, len(h.values))
	for k, v := range h.values {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// MergeHeaders returns the union of a and b. Keys keep first-seen order
// across a then b; for a key present in both, a's values come before b's.
// Merging never drops a value. A nil input counts as empty.
func MergeHeaders(a, b *Headers) *Headers {
	if a == nil {
		a = NewHeaders()
	}
	out := a.clone()
	if b == nil {
		return out
	}
	for _, k := range b.keys {
		if _, ok := out.values[k]; !ok {
			out.keys = append(out.keys, k)
		}
		out.values[k] = append(out.values[k], b.values[k]...)
	}
	return out
}

func (h *Headers) clone() *Headers {
	out := &Headers{
		keys:   append([]string(nil), h.keys...),
		values: make(map[string][]string, len(h.values)),
	}
	for k, v := range h.values {
		out.values[k] = append([]string(nil), v...)
	}
	return out
}
