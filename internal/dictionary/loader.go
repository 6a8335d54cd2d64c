package dictionary

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

// ErrUnavailable is wrapped when neither the cache nor the raw source yields
// a word set. The game cannot run without one.
var ErrUnavailable = errors.New("dictionary: no usable word list")

// Loader produces the dictionary: it prefers the cache and falls back to
// rebuilding from the raw source, writing the cache for next time.
type Loader struct {
	Cache      Cache
	SourcePath string
	Logger     *log.Logger

	once sync.Once
	dict *Dictionary
	err  error
}

// NewLoader creates a loader. A nil logger discards output.
func NewLoader(cache Cache, sourcePath string, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{
		Cache:      cache,
		SourcePath: sourcePath,
		Logger:     logger,
	}
}

// Dictionary returns the dictionary, loading it on first use.
// Later calls return the same result without touching disk.
func (l *Loader) Dictionary() (*Dictionary, error) {
	l.once.Do(func() {
		l.dict, l.err = l.Load()
	})
	return l.dict, l.err
}

// Load reads the cache if it holds a word set, otherwise rebuilds from the
// raw source.
func (l *Loader) Load() (*Dictionary, error) {
	words, err := l.fromCache()
	if err == nil {
		l.logger().Debug("dictionary loaded from cache", "words", len(words))
		return New(words), nil
	}
	l.logger().Debug("dictionary cache unusable", "error", err)
	return l.Rebuild()
}

// Rebuild ignores the cache, parses the raw source and rewrites the cache.
// A failed cache write is logged and does not fail the rebuild.
func (l *Loader) Rebuild() (*Dictionary, error) {
	data, err := os.ReadFile(l.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	words, err := ParseSource(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnavailable, l.SourcePath, err)
	}

	dict := New(words)
	if dict.Len() == 0 {
		return nil, fmt.Errorf("%w: %s contains no words", ErrUnavailable, l.SourcePath)
	}
	l.logger().Info("dictionary built from source", "path", l.SourcePath, "words", dict.Len())

	if l.Cache == nil {
		return dict, nil
	}
	if err := l.Cache.SaveWords(dict.Words()); err != nil {
		l.logger().Warn("could not write dictionary cache, next startup will rebuild", "error", err)
	}
	return dict, nil
}

func (l *Loader) fromCache() ([]string, error) {
	if l.Cache == nil {
		return nil, errors.New("no cache configured")
	}

	words, err := l.Cache.LoadWords()
	if err != nil {
		if !isMissing(err) {
			l.logger().Warn("dictionary cache unreadable, rebuilding", "error", err)
		}
		return nil, err
	}
	if len(words) == 0 {
		return nil, errors.New("cache is empty")
	}
	return words, nil
}

func (l *Loader) logger() *log.Logger {
	if l.Logger == nil {
		l.Logger = log.New(io.Discard)
	}
	return l.Logger
}
