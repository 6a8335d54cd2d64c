package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg WordQuestConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if cfg != DefaultWordQuestConfig() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, DefaultWordQuestConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded defaults should validate: %v", err)
	}
}

func TestDefaultRulesMatchGameDesign(t *testing.T) {
	r := DefaultWordQuestConfig().Rules

	if r.InitialTarget != 750 {
		t.Errorf("InitialTarget = %d, want 750", r.InitialTarget)
	}
	if r.WordsPerRound != 4 || r.DiscardsPerRound != 3 {
		t.Errorf("resources = %d words / %d discards, want 4 / 3", r.WordsPerRound, r.DiscardsPerRound)
	}
	if r.Rounds != 5 {
		t.Errorf("Rounds = %d, want 5", r.Rounds)
	}
	if r.TileCount() != 12 {
		t.Errorf("TileCount() = %d, want 12", r.TileCount())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "rules:\n  scaling: double\n  words_per_round: 6\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWordQuest(path)
	if err != nil {
		t.Fatalf("LoadWordQuest() failed: %v", err)
	}

	if cfg.Rules.Scaling != ScalingDouble {
		t.Errorf("Scaling = %q, want %q", cfg.Rules.Scaling, ScalingDouble)
	}
	if cfg.Rules.WordsPerRound != 6 {
		t.Errorf("WordsPerRound = %d, want 6", cfg.Rules.WordsPerRound)
	}
	// Untouched keys keep their defaults
	if cfg.Rules.InitialTarget != 750 {
		t.Errorf("InitialTarget = %d, want default 750", cfg.Rules.InitialTarget)
	}
	if cfg.Dictionary.CacheBackend != CacheBackendJSON {
		t.Errorf("CacheBackend = %q, want default %q", cfg.Dictionary.CacheBackend, CacheBackendJSON)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadWordQuest(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("rules: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadWordQuest(bad); err == nil {
		t.Error("malformed custom config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("rules:\n  scaling: triple\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadWordQuest(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("unknown scaling should wrap ErrInvalid, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*WordQuestConfig)
		ok     bool
	}{
		{"defaults", func(*WordQuestConfig) {}, true},
		{"zero target", func(c *WordQuestConfig) { c.Rules.InitialTarget = 0 }, false},
		{"zero rounds", func(c *WordQuestConfig) { c.Rules.Rounds = 0 }, false},
		{"zero words", func(c *WordQuestConfig) { c.Rules.WordsPerRound = 0 }, false},
		{"no discards allowed", func(c *WordQuestConfig) { c.Rules.DiscardsPerRound = 0 }, true},
		{"negative discards", func(c *WordQuestConfig) { c.Rules.DiscardsPerRound = -1 }, false},
		{"too many tiles", func(c *WordQuestConfig) { c.Rules.TileRows = 6; c.Rules.TileCols = 5 }, false},
		{"full alphabet", func(c *WordQuestConfig) { c.Rules.TileRows = 2; c.Rules.TileCols = 13 }, true},
		{"empty grid", func(c *WordQuestConfig) { c.Rules.TileRows = 0 }, false},
		{"negative step", func(c *WordQuestConfig) { c.Rules.TargetStep = -5 }, false},
		{"double ignores step", func(c *WordQuestConfig) { c.Rules.Scaling = ScalingDouble; c.Rules.TargetStep = -5 }, true},
		{"unknown scaling", func(c *WordQuestConfig) { c.Rules.Scaling = "exp" }, false},
		{"sqlite backend", func(c *WordQuestConfig) { c.Dictionary.CacheBackend = CacheBackendSQLite }, true},
		{"unknown backend", func(c *WordQuestConfig) { c.Dictionary.CacheBackend = "redis" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultWordQuestConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		words    int
		discards int
		scaling  string
	}{
		{DifficultyEasy, 5, 4, ScalingFlat},
		{DifficultyNormal, 4, 3, ScalingFlat},
		{DifficultyHard, 3, 2, ScalingFlat},
		{DifficultyFixed, 4, 3, ScalingFixed},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultWordQuestConfig()
			ApplyPreset(&cfg, tc.preset)

			if cfg.Rules.WordsPerRound != tc.words {
				t.Errorf("WordsPerRound = %d, want %d", cfg.Rules.WordsPerRound, tc.words)
			}
			if cfg.Rules.DiscardsPerRound != tc.discards {
				t.Errorf("DiscardsPerRound = %d, want %d", cfg.Rules.DiscardsPerRound, tc.discards)
			}
			if cfg.Rules.Scaling != tc.scaling {
				t.Errorf("Scaling = %q, want %q", cfg.Rules.Scaling, tc.scaling)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %s produced invalid config: %v", tc.preset, err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v; want normal", p, ok)
	}
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/.wordquest/words_cache.json")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if !strings.HasPrefix(got, home) || !strings.HasSuffix(got, filepath.Join(".wordquest", "words_cache.json")) {
		t.Errorf("ExpandHome() = %q", got)
	}

	if got, _ := ExpandHome("./local.json"); got != "./local.json" {
		t.Errorf("relative paths should pass through, got %q", got)
	}
}
