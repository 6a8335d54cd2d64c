// Package config provides YAML-based game configuration loading and
// difficulty presets for Word Quest.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by Validate failures.
var ErrInvalid = errors.New("config: invalid configuration")

// Scaling policy names accepted by RulesConfig.Scaling.
const (
	ScalingFlat   = "flat"   // target += target_step
	ScalingDouble = "double" // target *= 2
	ScalingFixed  = "fixed"  // target never changes
)

// Cache backend names accepted by DictionaryConfig.CacheBackend.
const (
	CacheBackendJSON   = "json"
	CacheBackendSQLite = "sqlite"
)

// WordQuestConfig contains all configuration for the game.
type WordQuestConfig struct {
	Rules      RulesConfig      `yaml:"rules"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
}

// RulesConfig defines round targets and per-round resources.
type RulesConfig struct {
	InitialTarget    int    `yaml:"initial_target"`
	TargetStep       int    `yaml:"target_step"`
	Scaling          string `yaml:"scaling"`
	Rounds           int    `yaml:"rounds"`
	WordsPerRound    int    `yaml:"words_per_round"`
	DiscardsPerRound int    `yaml:"discards_per_round"`
	TileRows         int    `yaml:"tile_rows"`
	TileCols         int    `yaml:"tile_cols"`
}

// TileCount returns the number of tiles drawn per round.
func (r RulesConfig) TileCount() int {
	return r.TileRows * r.TileCols
}

// DictionaryConfig locates the word source and its derived cache.
type DictionaryConfig struct {
	Source       string `yaml:"source"`
	Cache        string `yaml:"cache"`
	CacheBackend string `yaml:"cache_backend"`
}

// alphabetSize bounds the tile grid: tiles are distinct letters.
const alphabetSize = 26

// Validate reports the first inconsistency in the configuration.
func (c WordQuestConfig) Validate() error {
	r := c.Rules
	switch {
	case r.InitialTarget <= 0:
		return fmt.Errorf("%w: initial_target must be positive, got %d", ErrInvalid, r.InitialTarget)
	case r.Rounds <= 0:
		return fmt.Errorf("%w: rounds must be positive, got %d", ErrInvalid, r.Rounds)
	case r.WordsPerRound <= 0:
		return fmt.Errorf("%w: words_per_round must be positive, got %d", ErrInvalid, r.WordsPerRound)
	case r.DiscardsPerRound < 0:
		return fmt.Errorf("%w: discards_per_round must not be negative, got %d", ErrInvalid, r.DiscardsPerRound)
	case r.TileRows <= 0 || r.TileCols <= 0:
		return fmt.Errorf("%w: tile grid must be at least 1x1, got %dx%d", ErrInvalid, r.TileRows, r.TileCols)
	case r.TileCount() > alphabetSize:
		return fmt.Errorf("%w: %d tiles exceed the %d-letter alphabet", ErrInvalid, r.TileCount(), alphabetSize)
	}

	switch r.Scaling {
	case ScalingFlat:
		if r.TargetStep < 0 {
			return fmt.Errorf("%w: target_step must not be negative, got %d", ErrInvalid, r.TargetStep)
		}
	case ScalingDouble, ScalingFixed:
	default:
		return fmt.Errorf("%w: unknown scaling %q", ErrInvalid, r.Scaling)
	}

	switch c.Dictionary.CacheBackend {
	case CacheBackendJSON, CacheBackendSQLite:
	default:
		return fmt.Errorf("%w: unknown cache_backend %q", ErrInvalid, c.Dictionary.CacheBackend)
	}
	return nil
}
