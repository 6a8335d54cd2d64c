package wordquest

import "sort"

// GuessedWords is the set of words already scored this round.
type GuessedWords map[string]struct{}

// Has reports whether word was scored this round.
func (g GuessedWords) Has(word string) bool {
	_, ok := g[word]
	return ok
}

// Add records a scored word.
func (g GuessedWords) Add(word string) {
	g[word] = struct{}{}
}

// Sorted returns the words in ascending order.
func (g GuessedWords) Sorted() []string {
	out := make([]string, 0, len(g))
	for w := range g {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// WordBuffer is the word being composed.
type WordBuffer struct {
	letters []rune
}

// Append adds a letter to the end of the word.
func (b *WordBuffer) Append(r rune) {
	b.letters = append(b.letters, r)
}

// Clear empties the buffer.
func (b *WordBuffer) Clear() {
	b.letters = b.letters[:0]
}

// Len returns the number of letters.
func (b *WordBuffer) Len() int {
	return len(b.letters)
}

// String returns the composed word.
func (b *WordBuffer) String() string {
	return string(b.letters)
}

// RoundState is the mutable data of a game in progress.
type RoundState struct {
	Round             int // 1-based
	Target            int // score needed to clear the round
	Total             int // score accumulated this round
	WordsRemaining    int
	DiscardsRemaining int
	GameScore         int // score accumulated since the game started
	Guessed           GuessedWords
}

// NewRoundState returns the state at the start of a game.
func NewRoundState(r Rules) RoundState {
	return RoundState{
		Round:             1,
		Target:            r.InitialTarget,
		WordsRemaining:    r.WordsPerRound,
		DiscardsRemaining: r.DiscardsPerRound,
		Guessed:           make(GuessedWords),
	}
}

// refill restores per-round resources and forgets the round's words.
func (s *RoundState) refill(r Rules) {
	s.Total = 0
	s.WordsRemaining = r.WordsPerRound
	s.DiscardsRemaining = r.DiscardsPerRound
	s.Guessed = make(GuessedWords)
}
