package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordquest/internal/config"
	"github.com/vovakirdan/wordquest/internal/dictionary"
	"github.com/vovakirdan/wordquest/internal/storage"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or rebuild the dictionary cache",
	Long: `The dictionary is read from the cache when present. The cache is built
from the raw source (a JSON object of word frequencies) the first time the
game runs, or on demand with 'cache rebuild'.

Examples:
  wordquest cache info
  wordquest cache rebuild --dict ./words_dictionary.json`,
}

var cacheInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the cache location and size",
	Args:  cobra.NoArgs,
	Run:   runCacheInfo,
}

var cacheRebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the cache from the raw source",
	Args:  cobra.NoArgs,
	Run:   runCacheRebuild,
}

func init() {
	cacheCmd.AddCommand(cacheInfoCmd)
	cacheCmd.AddCommand(cacheRebuildCmd)
}

func runCacheInfo(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	path, err := config.ExpandHome(cfg.Dictionary.Cache)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Backend: %s\n", cfg.Dictionary.CacheBackend)
	fmt.Printf("Path:    %s\n", path)

	if cfg.Dictionary.CacheBackend == config.CacheBackendSQLite {
		store, err := storage.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening cache: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		info, err := store.Info()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading cache: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Words:   %d\n", info.Words)
		if !info.BuiltAt.IsZero() {
			fmt.Printf("Built:   %s\n", info.BuiltAt.Format("2006-01-02 15:04"))
		}
		return
	}

	words, err := dictionary.NewFileCache(path).LoadWords()
	if err != nil {
		fmt.Printf("Words:   none (%v)\n", err)
		return
	}
	fmt.Printf("Words:   %d\n", len(words))
	if st, err := os.Stat(path); err == nil {
		fmt.Printf("Built:   %s\n", st.ModTime().Format("2006-01-02 15:04"))
	}
}

func runCacheRebuild(_ *cobra.Command, _ []string) {
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

	dict, err := loader.Rebuild()
	if err != nil {
		logger.Error("rebuild failed", "error", err)
		closer()
		os.Exit(1)
	}
	fmt.Printf("Cached %d words.\n", dict.Len())
}
