package wordquest

import (
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/vovakirdan/wordquest/internal/registry"
)

// Lexicon answers dictionary membership queries for lowercase words.
type Lexicon = registry.Lexicon

// Verdict is the outcome of a word submission.
type Verdict int

const (
	VerdictScored Verdict = iota
	VerdictEmpty
	VerdictNotAWord
	VerdictAlreadyPlayed
	VerdictSingleLetter
	VerdictNoWordsLeft
)

// String returns the message shown to the player.
func (v Verdict) String() string {
	switch v {
	case VerdictScored:
		return "scored"
	case VerdictEmpty:
		return "nothing to play"
	case VerdictNotAWord:
		return "not in the dictionary"
	case VerdictAlreadyPlayed:
		return "already played this round"
	case VerdictSingleLetter:
		return "needs more than one distinct letter"
	case VerdictNoWordsLeft:
		return "no words left"
	default:
		return "unknown"
	}
}

// WordValue returns the raw score of a word: the sum of its letter values
// multiplied by its length. It performs no validity checks.
func WordValue(word string) int {
	sum := 0
	for _, r := range word {
		sum += ScoreOf(r)
	}
	return sum * utf8.RuneCountInString(word)
}

// ScoreWord validates word and, when it is acceptable, returns its score and
// records it in guessed. Checks run in order: letters a-z only, dictionary
// membership, not already played, more than one distinct letter. A rejected word scores 0
// and leaves guessed untouched.
func ScoreWord(word string, lex Lexicon, guessed GuessedWords) (int, Verdict) {
	w := strings.ToLower(word)
	if w == "" {
		return 0, VerdictEmpty
	}
	if !lo.EveryBy([]rune(w), isTileLetter) || lex == nil || !lex.Contains(w) {
		return 0, VerdictNotAWord
	}
	if guessed.Has(w) {
		return 0, VerdictAlreadyPlayed
	}
	if len(lo.Uniq([]rune(w))) < 2 {
		return 0, VerdictSingleLetter
	}

	guessed.Add(w)
	return WordValue(w), VerdictScored
}

func isTileLetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}
