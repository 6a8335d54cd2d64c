// Package dictionary holds the set of playable words and the
// compute-once, cache-to-disk protocol that produces it.
package dictionary

import (
	"sort"
	"strings"
)

// Dictionary is an immutable set of lowercase words.
type Dictionary struct {
	words map[string]struct{}
}

// New builds a dictionary from words. Entries are trimmed and lowercased;
// blanks are dropped and duplicates collapse.
func New(words []string) *Dictionary {
	d := &Dictionary{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = normalize(w)
		if w == "" {
			continue
		}
		d.words[w] = struct{}{}
	}
	return d
}

// Contains reports whether word is in the dictionary. Matching is exact
// after lowercasing; surrounding whitespace is not ignored.
func (d *Dictionary) Contains(word string) bool {
	if d == nil {
		return false
	}
	_, ok := d.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.words)
}

// Words returns all words in ascending order.
func (d *Dictionary) Words() []string {
	if d == nil {
		return nil
	}
	out := make([]string, 0, d.Len())
	for w := range d.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

func normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
