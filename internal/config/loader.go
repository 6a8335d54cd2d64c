package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadWordQuest loads the game configuration.
// Search order: customPath -> ~/.wordquest/configs/wordquest.yaml -> ./configs/wordquest.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it sets.
func LoadWordQuest(customPath string) (WordQuestConfig, error) {
	cfg := DefaultWordQuestConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("wordquest.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := DefaultWordQuestConfig()
			if err := yaml.Unmarshal(data, &candidate); err == nil {
				return candidate, candidate.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "wordquest.yaml")); err == nil {
		candidate := DefaultWordQuestConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, candidate.Validate()
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		return DefaultWordQuestConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wordquest", "configs", filename)
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], string(filepath.Separator))), nil
}
