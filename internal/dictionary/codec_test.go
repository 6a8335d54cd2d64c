package dictionary

import (
	"errors"
	"sort"
	"testing"
)

func TestParseSource(t *testing.T) {
	words, err := ParseSource([]byte(`{"cat": 1, "act": 42, "a": 0}`))
	if err != nil {
		t.Fatalf("ParseSource() failed: %v", err)
	}

	sort.Strings(words)
	expected := []string{"a", "act", "cat"}
	if len(words) != len(expected) {
		t.Fatalf("ParseSource() = %v, expected %v", words, expected)
	}
	for i := range expected {
		if words[i] != expected[i] {
			t.Errorf("words[%d] = %q, expected %q", i, words[i], expected[i])
		}
	}
}

func TestParseSourceRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `cat, act`},
		{"array instead of object", `["cat", "act"]`},
		{"truncated", `{"cat": 1,`},
		{"empty input", ``},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseSource([]byte(tc.data))
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("ParseSource(%q) error = %v, want ErrMalformed", tc.data, err)
			}
		})
	}
}

func TestParseCache(t *testing.T) {
	words, err := ParseCache([]byte(`["act","cat"]`))
	if err != nil {
		t.Fatalf("ParseCache() failed: %v", err)
	}
	if len(words) != 2 || words[0] != "act" || words[1] != "cat" {
		t.Errorf("ParseCache() = %v", words)
	}

	empty, err := ParseCache([]byte(`[]`))
	if err != nil {
		t.Fatalf("ParseCache([]) failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("ParseCache([]) = %v, expected empty", empty)
	}
}

func TestParseCacheRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"object", `{"cat": 1}`},
		{"mixed types", `["cat", 7]`},
		{"garbage", `not json`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseCache([]byte(tc.data)); !errors.Is(err, ErrMalformed) {
				t.Errorf("ParseCache(%q) error = %v, want ErrMalformed", tc.data, err)
			}
		})
	}
}

func TestEncodeCacheRoundTrip(t *testing.T) {
	data, err := EncodeCache([]string{"act", "cat"})
	if err != nil {
		t.Fatalf("EncodeCache() failed: %v", err)
	}
	if string(data) != `["act","cat"]` {
		t.Errorf("EncodeCache() = %s", data)
	}

	empty, err := EncodeCache(nil)
	if err != nil {
		t.Fatalf("EncodeCache(nil) failed: %v", err)
	}
	if string(empty) != `[]` {
		t.Errorf("EncodeCache(nil) = %s, expected []", empty)
	}
}
