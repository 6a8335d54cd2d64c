package dictionary

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Cache persists the derived word set between runs.
// LoadWords returns fs.ErrNotExist (possibly wrapped) or an empty slice when
// nothing has been cached yet.
type Cache interface {
	LoadWords() ([]string, error)
	SaveWords(words []string) error
}

// FileCache stores the word set as a JSON array on disk.
type FileCache struct {
	Path string
}

// NewFileCache returns a cache backed by the file at path.
func NewFileCache(path string) *FileCache {
	return &FileCache{Path: path}
}

// LoadWords reads and parses the cache file.
func (c *FileCache) LoadWords() ([]string, error) {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: cannot read cache %s: %w", c.Path, err)
	}
	words, err := ParseCache(data)
	if err != nil {
		return nil, fmt.Errorf("dictionary: cache %s: %w", c.Path, err)
	}
	return words, nil
}

// SaveWords writes the cache file, replacing it atomically.
func (c *FileCache) SaveWords(words []string) error {
	data, err := EncodeCache(words)
	if err != nil {
		return err
	}

	dir := filepath.Dir(c.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("dictionary: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".words_cache-*")
	if err != nil {
		return fmt.Errorf("dictionary: cannot create cache file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("dictionary: cannot write cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("dictionary: cannot write cache file: %w", err)
	}
	if err := os.Rename(tmpName, c.Path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("dictionary: cannot replace cache file: %w", err)
	}
	return nil
}

// isMissing reports whether err means "no cache yet" rather than corruption.
func isMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
