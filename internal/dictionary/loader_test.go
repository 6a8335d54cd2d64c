package dictionary

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordquest/internal/storage"
)

// failingCache never holds words and refuses writes.
type failingCache struct {
	saves int
}

func (c *failingCache) LoadWords() ([]string, error) {
	return nil, os.ErrNotExist
}

func (c *failingCache) SaveWords([]string) error {
	c.saves++
	return errors.New("read-only filesystem")
}

func writeSource(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "words_dictionary.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoaderRebuildsAndWritesCache(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, `{"cat": 1, "act": 2}`)
	cachePath := filepath.Join(dir, "cache", "words_cache.json")

	loader := NewLoader(NewFileCache(cachePath), source, nil)
	dict, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !dict.Contains("cat") || !dict.Contains("act") {
		t.Error("dictionary should contain the source keys")
	}

	data, err := os.ReadFile(cachePath)
	if err != nil {
		t.Fatalf("cache file was not written: %v", err)
	}
	if string(data) != `["act","cat"]` {
		t.Errorf("cache content = %s", data)
	}
}

func TestLoaderPrefersCache(t *testing.T) {
	dir := t.TempDir()
	cachePath := filepath.Join(dir, "words_cache.json")
	if err := os.WriteFile(cachePath, []byte(`["quest"]`), 0o600); err != nil {
		t.Fatal(err)
	}

	// Source does not exist: a cache hit must not need it
	loader := NewLoader(NewFileCache(cachePath), filepath.Join(dir, "missing.json"), nil)
	dict, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !dict.Contains("quest") || dict.Len() != 1 {
		t.Errorf("expected dictionary from cache, got %v", dict.Words())
	}
}

func TestLoaderCorruptCacheRebuilds(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, `{"word": 3}`)
	cachePath := filepath.Join(dir, "words_cache.json")
	if err := os.WriteFile(cachePath, []byte(`{broken`), 0o600); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	loader := NewLoader(NewFileCache(cachePath), source, log.New(&buf))
	dict, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !dict.Contains("word") {
		t.Error("dictionary should be rebuilt from source")
	}
	if !strings.Contains(buf.String(), "dictionary cache unreadable") {
		t.Errorf("expected a warning about the corrupt cache, log = %q", buf.String())
	}

	words, err := NewFileCache(cachePath).LoadWords()
	if err != nil || len(words) != 1 {
		t.Errorf("corrupt cache should be replaced, got %v, %v", words, err)
	}
}

func TestLoaderEmptyCacheRebuilds(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, `{"word": 3}`)
	cachePath := filepath.Join(dir, "words_cache.json")
	if err := os.WriteFile(cachePath, []byte(`[]`), 0o600); err != nil {
		t.Fatal(err)
	}

	dict, err := NewLoader(NewFileCache(cachePath), source, nil).Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !dict.Contains("word") {
		t.Error("empty cache should be treated as a miss")
	}
}

func TestLoaderCacheWriteFailureIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, `{"cat": 1}`)

	var buf bytes.Buffer
	cache := &failingCache{}
	dict, err := NewLoader(cache, source, log.New(&buf)).Load()
	if err != nil {
		t.Fatalf("Load() should succeed despite cache failure: %v", err)
	}
	if !dict.Contains("cat") {
		t.Error("in-memory dictionary should still be usable")
	}
	if cache.saves != 1 {
		t.Errorf("expected one save attempt, got %d", cache.saves)
	}
	if !strings.Contains(buf.String(), "could not write dictionary cache") {
		t.Errorf("expected a warning about the cache write, log = %q", buf.String())
	}
}

func TestLoaderUnavailable(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name   string
		source string
	}{
		{"missing source", ""},
		{"malformed source", `["cat"]`},
		{"empty source", `{}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sub := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_"))
			if err := os.MkdirAll(sub, 0o755); err != nil {
				t.Fatal(err)
			}
			source := filepath.Join(sub, "words_dictionary.json")
			if tc.source != "" {
				source = writeSource(t, sub, tc.source)
			}

			cache := NewFileCache(filepath.Join(sub, "words_cache.json"))
			_, err := NewLoader(cache, source, nil).Load()
			if !errors.Is(err, ErrUnavailable) {
				t.Errorf("Load() error = %v, want ErrUnavailable", err)
			}
		})
	}
}

func TestLoaderDictionaryIsMemoized(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, `{"cat": 1}`)
	cachePath := filepath.Join(dir, "words_cache.json")

	loader := NewLoader(NewFileCache(cachePath), source, nil)
	first, err := loader.Dictionary()
	if err != nil {
		t.Fatalf("Dictionary() failed: %v", err)
	}

	// Remove every artifact: the second call must not reload
	os.Remove(source)
	os.Remove(cachePath)

	second, err := loader.Dictionary()
	if err != nil {
		t.Fatalf("second Dictionary() failed: %v", err)
	}
	if first != second {
		t.Error("Dictionary() should return the same instance")
	}
}

func TestLoaderRebuildIgnoresCache(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, `{"fresh": 1}`)
	cachePath := filepath.Join(dir, "words_cache.json")
	if err := os.WriteFile(cachePath, []byte(`["stale"]`), 0o600); err != nil {
		t.Fatal(err)
	}

	dict, err := NewLoader(NewFileCache(cachePath), source, nil).Rebuild()
	if err != nil {
		t.Fatalf("Rebuild() failed: %v", err)
	}
	if dict.Contains("stale") || !dict.Contains("fresh") {
		t.Errorf("Rebuild() should use the source, got %v", dict.Words())
	}

	words, _ := NewFileCache(cachePath).LoadWords()
	if len(words) != 1 || words[0] != "fresh" {
		t.Errorf("Rebuild() should rewrite the cache, got %v", words)
	}
}

func TestLoaderSQLiteCache(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, `{"cat": 1, "act": 1}`)

	store, err := storage.Open(filepath.Join(dir, "dictionary.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := NewLoader(store, source, nil).Load(); err != nil {
		t.Fatalf("first Load() failed: %v", err)
	}

	// Second load must come from SQLite alone
	os.Remove(source)
	dict, err := NewLoader(store, source, nil).Load()
	if err != nil {
		t.Fatalf("cached Load() failed: %v", err)
	}
	if dict.Len() != 2 || !dict.Contains("act") {
		t.Errorf("expected cached words, got %v", dict.Words())
	}
}
