package wordquest

import (
	"math/rand"
	"unicode"

	"github.com/vovakirdan/wordquest/internal/core"
)

// Outcome describes the most recent word submission.
type Outcome struct {
	Word    string
	Score   int
	Verdict Verdict
}

// Engine owns a running game: the round state, the tile pool and the word
// being composed. It is driven one frame at a time and is not safe for
// concurrent use.
type Engine struct {
	rules Rules
	ctrl  Controller
	lex   Lexicon
	rng   *rand.Rand

	state  RoundState
	pool   *TilePool
	word   WordBuffer
	status Status
	frame  uint64

	last       *Outcome
	finalScore int // game score of the run that just ended
}

// NewEngine starts a game at round one with a fresh draw.
func NewEngine(rules Rules, lex Lexicon, rng *rand.Rand) *Engine {
	e := &Engine{
		rules: rules,
		ctrl:  Controller{Rules: rules},
		lex:   lex,
		rng:   rng,
		state: NewRoundState(rules),
		pool:  NewTilePool(rules.TileRows, rules.TileCols),
	}
	e.ensureTiles()
	return e
}

// ensureTiles draws a new set of tiles if a draw is pending.
func (e *Engine) ensureTiles() {
	if e.pool.Empty() {
		e.pool.Draw(e.rng, Alphabet())
	}
}

// Status returns the state machine position.
func (e *Engine) Status() Status {
	return e.status
}

// Tile returns the tile in a grid slot.
func (e *Engine) Tile(row, col int) (Tile, bool) {
	return e.pool.At(row, col)
}

// AppendLetter adds a letter to the composed word. Letters that are not on
// the current tiles are ignored.
func (e *Engine) AppendLetter(r rune) bool {
	if e.status != StatusPlaying {
		return false
	}
	r = unicode.ToLower(r)
	if !e.pool.Has(r) {
		return false
	}
	e.word.Append(r)
	return true
}

// ClearWord empties the composed word.
func (e *Engine) ClearWord() {
	e.word.Clear()
}

// SubmitWord plays the composed word. Any non-empty submission costs one
// word, scored or not. The composed word is cleared afterwards.
func (e *Engine) SubmitWord() (int, Verdict) {
	if e.status != StatusPlaying || e.word.Len() == 0 {
		return 0, VerdictEmpty
	}
	if e.state.WordsRemaining <= 0 {
		return 0, VerdictNoWordsLeft
	}

	word := e.word.String()
	score, verdict := ScoreWord(word, e.lex, e.state.Guessed)
	e.state.WordsRemaining--
	e.state.Total += score
	e.state.GameScore += score
	e.word.Clear()

	e.last = &Outcome{Word: word, Score: score, Verdict: verdict}
	return score, verdict
}

// Discard trades the tiles for a fresh draw and clears the composed word.
// It does nothing when no discards remain.
func (e *Engine) Discard() bool {
	if e.status != StatusPlaying || e.state.DiscardsRemaining <= 0 {
		return false
	}
	e.state.DiscardsRemaining--
	e.pool.Discard()
	e.word.Clear()
	return true
}

// Shuffle rearranges the tiles.
func (e *Engine) Shuffle() {
	if e.status != StatusPlaying {
		return
	}
	e.pool.Shuffle(e.rng)
}

// Continue dismisses an interstitial. After a won game it starts a new one.
// It reports whether anything changed.
func (e *Engine) Continue() bool {
	switch e.status {
	case StatusRoundWon, StatusRoundLost:
		e.status = StatusPlaying
	case StatusGameWon:
		e.ctrl.Restart(&e.state, e.pool)
		e.status = StatusPlaying
	default:
		return false
	}
	e.last = nil
	e.word.Clear()
	e.ensureTiles()
	return true
}

// AdvanceFrame applies one frame of input: typed letters, then submit,
// clear, shuffle and discard, followed by the end-of-round check.
// While an interstitial is showing, only Confirm or Submit has an effect.
func (e *Engine) AdvanceFrame(in core.InputFrame) Status {
	e.frame++

	if e.status != StatusPlaying {
		if in.Has(core.ActionConfirm) || in.Has(core.ActionSubmit) {
			e.Continue()
		}
		return e.status
	}

	e.ensureTiles()

	for _, r := range in.Letters {
		e.AppendLetter(r)
	}
	if in.Has(core.ActionSubmit) {
		e.SubmitWord()
	}
	if in.Has(core.ActionClear) {
		e.ClearWord()
	}
	if in.Has(core.ActionShuffle) {
		e.Shuffle()
	}
	if in.Has(core.ActionDiscard) {
		e.Discard()
	}

	score := e.state.GameScore
	e.status = e.ctrl.Evaluate(&e.state, e.pool)
	if e.status == StatusRoundLost || e.status == StatusGameWon {
		e.finalScore = score
	}

	e.ensureTiles()
	return e.status
}
