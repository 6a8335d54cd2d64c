package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/wordquest/internal/config"
	"github.com/vovakirdan/wordquest/internal/core"
	"github.com/vovakirdan/wordquest/internal/dictionary"
	"github.com/vovakirdan/wordquest/internal/registry"
	"github.com/vovakirdan/wordquest/internal/storage"
)

// newLogger creates the process logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "wordquest",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openSessionLog returns a logger for use while the TUI owns the terminal.
// Output goes to ~/.wordquest/wordquest.log; the returned closer must be called.
func openSessionLog() (*log.Logger, func()) {
	path, err := config.ExpandHome("~/.wordquest/wordquest.log")
	if err == nil {
		err = os.MkdirAll(filepath.Dir(path), 0o755)
	}
	var f *os.File
	if err == nil {
		f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	}
	if err != nil {
		return newLogger(io.Discard), func() {}
	}
	return newLogger(f), func() { f.Close() }
}

// loadConfig reads the config file and applies the difficulty preset and
// path flags.
func loadConfig() (config.WordQuestConfig, error) {
	cfg, err := config.LoadWordQuest(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return cfg, fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", config.ErrInvalid, flagDifficulty)
	}
	config.ApplyPreset(&cfg, preset)

	if flagDict != "" {
		cfg.Dictionary.Source = flagDict
	}
	if flagCache != "" {
		cfg.Dictionary.Cache = flagCache
	}
	return cfg, cfg.Validate()
}

// openLoader builds a dictionary loader for the configured cache backend.
// The returned closer releases the backend.
func openLoader(cfg config.DictionaryConfig, logger *log.Logger) (*dictionary.Loader, func(), error) {
	source, err := config.ExpandHome(cfg.Source)
	if err != nil {
		return nil, nil, err
	}
	cachePath, err := config.ExpandHome(cfg.Cache)
	if err != nil {
		return nil, nil, err
	}

	if cfg.CacheBackend == config.CacheBackendSQLite {
		store, err := storage.Open(cachePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open dictionary cache: %w", err)
		}
		closer := func() {
			if err := store.Close(); err != nil {
				logger.Warn("could not close dictionary cache", "error", err)
			}
		}
		return dictionary.NewLoader(store, source, logger), closer, nil
	}

	if err := os.MkdirAll(filepath.Dir(cachePath), 0o755); err != nil {
		logger.Warn("could not create cache directory", "path", filepath.Dir(cachePath), "error", err)
	}
	return dictionary.NewLoader(dictionary.NewFileCache(cachePath), source, logger), func() {}, nil
}

// mustDeps loads config and dictionary or exits. A missing dictionary is
// fatal: the game cannot validate words without one.
func mustDeps() registry.Deps {
	logger := newLogger(os.Stderr)

	cfg, err := loadConfig()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	loader, closer, err := openLoader(cfg.Dictionary, logger)
	if err != nil {
		logger.Error("cannot open dictionary cache", "error", err)
		os.Exit(1)
	}
	defer closer()

	dict, err := loader.Dictionary()
	if err != nil {
		logger.Error("cannot load dictionary", "error", err)
		fmt.Fprintln(os.Stderr, "Download a word list (word -> frequency JSON) and pass it with --dict.")
		os.Exit(1)
	}
	logger.Debug("dictionary ready", "words", dict.Len())

	return registry.Deps{Lexicon: dict, Config: cfg}
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}
