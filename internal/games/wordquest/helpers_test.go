package wordquest

import (
	"math/rand"
	"testing"
)

// wordSet is an in-memory Lexicon.
type wordSet map[string]bool

func (w wordSet) Contains(word string) bool {
	return w[word]
}

func newTestEngine(t *testing.T, lex Lexicon, seed int64) *Engine {
	t.Helper()
	return NewEngine(DefaultRules(), lex, rand.New(rand.NewSource(seed)))
}

// compose sets the word buffer directly, bypassing the tile check.
func compose(e *Engine, word string) {
	e.word.letters = []rune(word)
}
