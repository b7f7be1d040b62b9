package gantry

import (
	"reflect"
	"testing"
)

func TestNewHeaders(t *testing.T) {
	h := NewHeaders()
	if h.Len() != 0 {
		t.Errorf("expected empty headers, got %d keys", h.Len())
	}
	if got := h.Get("missing"); got != nil {
		t.Errorf("expected nil for missing key, got %v", got)
	}
}

func TestHeadersAdd(t *testing.T) {
	t.Run("appends values in order", func(t *testing.T) {
		h := NewHeaders().Add("a", "1").Add("a", "2", "3")
		if got := h.Get("a"); !reflect.DeepEqual(got, []string{"1", "2", "3"}) {
			t.Errorf(`header "a" = %v, want ["1" "2" "3"]`, got)
		}
	})

	t.Run("keeps first-seen key order", func(t *testing.T) {
		h := NewHeaders().Add("b", "1").Add("a", "2").Add("b", "3")
		if got := h.Keys(); !reflect.DeepEqual(got, []string{"b", "a"}) {
			t.Errorf("keys = %v, want [b a]", got)
		}
	})

	t.Run("does not mutate the original", func(t *testing.T) {
		base := NewHeaders().Add("a", "1")
		base.Add("a", "2")
		if got := base.Get("a"); !reflect.DeepEqual(got, []string{"1"}) {
			t.Errorf(`original header "a" = %v, want ["1"]`, got)
		}
	})

	t.Run("is case-sensitive", func(t *testing.T) {
		h := NewHeaders().Add("X-Token", "1").Add("x-token", "2")
		if h.Len() != 2 {
			t.Errorf("expected 2 distinct keys, got %d", h.Len())
		}
	})
}

func TestHeadersFromMap(t *testing.T) {
	h := HeadersFromMap(map[string][]string{
		"b": {"2"},
		"a": {"1"},
		"c": {"3"},
	})
	if got := h.Keys(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("keys = %v, want sorted [a b c]", got)
	}
	if got := h.Get("b"); !reflect.DeepEqual(got, []string{"2"}) {
		t.Errorf(`header "b" = %v, want ["2"]`, got)
	}
}

func TestHeadersGetCopies(t *testing.T) {
	h := NewHeaders().Add("a", "1")
	got := h.Get("a")
	got[0] = "mutated"
	if h.Get("a")[0] != "1" {
		t.Error("Get exposed internal state")
	}
}

func TestHeadersMap(t *testing.T) {
	h := NewHeaders().Add("a", "1").Add("b", "2")
	m := h.Map()
	if !reflect.DeepEqual(m, map[string][]string{"a": {"1"}, "b": {"2"}}) {
		t.Errorf("map = %v", m)
	}
	m["a"][0] = "mutated"
	if h.Get("a")[0] != "1" {
		t.Error("Map exposed internal state")
	}
}

func TestMergeHeaders(t *testing.T) {
	t.Run("union with per-key value concatenation", func(t *testing.T) {
		a := NewHeaders().Add("a", "1").Add("shared", "x")
		b := NewHeaders().Add("shared", "y").Add("b", "2")

		merged := MergeHeaders(a, b)

		if got := merged.Keys(); !reflect.DeepEqual(got, []string{"a", "shared", "b"}) {
			t.Errorf("keys = %v, want [a shared b]", got)
		}
		if got := merged.Get("shared"); !reflect.DeepEqual(got, []string{"x", "y"}) {
			t.Errorf(`header "shared" = %v, want ["x" "y"]`, got)
		}
	})

	t.Run("does not mutate inputs", func(t *testing.T) {
		a := NewHeaders().Add("a", "1")
		b := NewHeaders().Add("a", "2")
		MergeHeaders(a, b)

		if got := a.Get("a"); !reflect.DeepEqual(got, []string{"1"}) {
			t.Errorf("a mutated: %v", got)
		}
		if got := b.Get("a"); !reflect.DeepEqual(got, []string{"2"}) {
			t.Errorf("b mutated: %v", got)
		}
	})

	t.Run("nil inputs count as empty", func(t *testing.T) {
		b := NewHeaders().Add("a", "1")
		if got := MergeHeaders(nil, b).Get("a"); !reflect.DeepEqual(got, []string{"1"}) {
			t.Errorf("merge(nil, b) = %v", got)
		}
		if got := MergeHeaders(b, nil).Get("a"); !reflect.DeepEqual(got, []string{"1"}) {
			t.Errorf("merge(b, nil) = %v", got)
		}
		if got := MergeHeaders(nil, nil); got.Len() != 0 {
			t.Errorf("merge(nil, nil) has %d keys", got.Len())
		}
	})
}
