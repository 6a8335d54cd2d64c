package dictionary

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"
)

// ErrMalformed is wrapped when a source or cache artifact cannot be parsed.
var ErrMalformed = errors.New("dictionary: malformed artifact")

// ParseSource extracts the word set from a raw source artifact: a JSON object
// mapping each word to a frequency. Frequencies are ignored.
func ParseSource(data []byte) ([]string, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: source is not valid JSON", ErrMalformed)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: source must be a JSON object of word frequencies", ErrMalformed)
	}

	var words []string
	doc.ForEach(func(key, _ gjson.Result) bool {
		words = append(words, key.String())
		return true
	})
	return lo.Uniq(words), nil
}

// ParseCache reads a cache artifact: a JSON array of strings.
func ParseCache(data []byte) ([]string, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: cache is not valid JSON", ErrMalformed)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, fmt.Errorf("%w: cache must be a JSON array", ErrMalformed)
	}

	entries := doc.Array()
	words := make([]string, 0, len(entries))
	for i, v := range entries {
		if v.Type != gjson.String {
			return nil, fmt.Errorf("%w: cache entry %d is not a string", ErrMalformed, i)
		}
		words = append(words, v.Str)
	}
	return words, nil
}

// EncodeCache serializes a word set as a cache artifact.
func EncodeCache(words []string) ([]byte, error) {
	if words == nil {
		words = []string{}
	}
	data, err := json.Marshal(words)
	if err != nil {
		return nil, fmt.Errorf("dictionary: cannot encode cache: %w", err)
	}
	return data, nil
}
