package wordquest

// Snapshot captures the complete engine state for tests and rendering.
type Snapshot struct {
	Frame             uint64
	Status            Status
	Round             int
	Rounds            int
	Target            int
	Total             int
	GameScore         int
	FinalScore        int
	WordsRemaining    int
	DiscardsRemaining int
	Word              string
	Tiles             []Tile
	Guessed           []string
	Last              *Outcome
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	var last *Outcome
	if e.last != nil {
		o := *e.last
		last = &o
	}

	return Snapshot{
		Frame:             e.frame,
		Status:            e.status,
		Round:             e.state.Round,
		Rounds:            e.rules.Rounds,
		Target:            e.state.Target,
		Total:             e.state.Total,
		GameScore:         e.state.GameScore,
		FinalScore:        e.finalScore,
		WordsRemaining:    e.state.WordsRemaining,
		DiscardsRemaining: e.state.DiscardsRemaining,
		Word:              e.word.String(),
		Tiles:             e.pool.Tiles(),
		Guessed:           e.state.Guessed.Sorted(),
		Last:              last,
	}
}

// Letters returns the tile letters in grid order.
func (s Snapshot) Letters() string {
	out := make([]rune, len(s.Tiles))
	for i, t := range s.Tiles {
		out[i] = t.Letter
	}
	return string(out)
}
