package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}

// ApplyPreset modifies the rules based on a difficulty preset.
// Normal leaves the loaded rules untouched.
func ApplyPreset(cfg *WordQuestConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.WordsPerRound = 5
		cfg.Rules.DiscardsPerRound = 4
		cfg.Rules.InitialTarget = 600
	case DifficultyHard:
		cfg.Rules.WordsPerRound = 3
		cfg.Rules.DiscardsPerRound = 2
		cfg.Rules.TargetStep = 150
	case DifficultyFixed:
		cfg.Rules.Scaling = ScalingFixed
	}
}
