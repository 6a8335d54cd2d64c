package config

import (
	_ "embed"
)

//go:embed defaults/wordquest.yaml
var defaultWordQuestYAML []byte

// DefaultWordQuestConfig returns the built-in configuration.
func DefaultWordQuestConfig() WordQuestConfig {
	return WordQuestConfig{
		Rules: RulesConfig{
			InitialTarget:    750,
			TargetStep:       100,
			Scaling:          ScalingFlat,
			Rounds:           5,
			WordsPerRound:    4,
			DiscardsPerRound: 3,
			TileRows:         3,
			TileCols:         4,
		},
		Dictionary: DictionaryConfig{
			Source:       "~/.wordquest/words_dictionary.json",
			Cache:        "~/.wordquest/words_cache.json",
			CacheBackend: CacheBackendJSON,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultWordQuestYAML
}
