// Package wordquest implements Word Quest: build words from twelve drawn
// letter tiles to reach each round's score target before running out of
// word submissions.
package wordquest

import (
	"fmt"

	"github.com/vovakirdan/wordquest/internal/config"
)

// ScalingPolicy computes the next round's target after a round is cleared.
type ScalingPolicy interface {
	NextTarget(current int) int
}

// FlatScaling adds a fixed step to the target.
type FlatScaling struct {
	Step int
}

// NextTarget implements ScalingPolicy.
func (f FlatScaling) NextTarget(current int) int {
	return current + f.Step
}

// DoubleScaling doubles the target.
type DoubleScaling struct{}

// NextTarget implements ScalingPolicy.
func (DoubleScaling) NextTarget(current int) int {
	return current * 2
}

// FixedScaling keeps the target unchanged.
type FixedScaling struct{}

// NextTarget implements ScalingPolicy.
func (FixedScaling) NextTarget(current int) int {
	return current
}

// Rules holds the per-game constants.
type Rules struct {
	InitialTarget    int
	Rounds           int // clearing this round wins the game
	WordsPerRound    int
	DiscardsPerRound int
	TileRows         int
	TileCols         int
	Scaling          ScalingPolicy
}

// TileCount returns the number of tiles drawn per round.
func (r Rules) TileCount() int {
	return r.TileRows * r.TileCols
}

// DefaultRules returns the classic rules: 5 rounds starting at 750 points,
// +100 per cleared round, 4 words and 3 discards per round, 3x4 tiles.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultWordQuestConfig().Rules)
}

// RulesFromConfig converts validated configuration into rules.
func RulesFromConfig(c config.RulesConfig) Rules {
	var scaling ScalingPolicy
	switch c.Scaling {
	case config.ScalingDouble:
		scaling = DoubleScaling{}
	case config.ScalingFixed:
		scaling = FixedScaling{}
	default:
		scaling = FlatScaling{Step: c.TargetStep}
	}

	return Rules{
		InitialTarget:    c.InitialTarget,
		Rounds:           c.Rounds,
		WordsPerRound:    c.WordsPerRound,
		DiscardsPerRound: c.DiscardsPerRound,
		TileRows:         c.TileRows,
		TileCols:         c.TileCols,
		Scaling:          scaling,
	}
}

// Summary describes the rules in a few player-facing sentences.
func (r Rules) Summary() []string {
	next := "stays the same"
	switch s := r.Scaling.(type) {
	case FlatScaling:
		next = fmt.Sprintf("grows by %d", s.Step)
	case DoubleScaling:
		next = "doubles"
	}

	return []string{
		fmt.Sprintf("Make words from the %d letter tiles. Every letter may be reused.", r.TileCount()),
		"A word scores the sum of its letter values times its length.",
		fmt.Sprintf("Each round you have %d words and %d discards.", r.WordsPerRound, r.DiscardsPerRound),
		"Every word you play costs one, even if it is rejected.",
		"Words must be in the dictionary, new this round, and use two or more letters.",
		fmt.Sprintf("Reach %d points to clear round 1; the target then %s.", r.InitialTarget, next),
		fmt.Sprintf("Clear all %d rounds to win. Running out of words starts over.", r.Rounds),
	}
}
