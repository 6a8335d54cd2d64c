package wordquest

// Status is the position of the session state machine.
type Status int

const (
	StatusPlaying Status = iota
	StatusRoundWon
	StatusRoundLost
	StatusGameWon
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusRoundWon:
		return "round_won"
	case StatusRoundLost:
		return "round_lost"
	case StatusGameWon:
		return "game_won"
	default:
		return "unknown"
	}
}

// Controller applies the end-of-round rules to a RoundState.
type Controller struct {
	Rules Rules
}

// Evaluate checks the round after the frame's actions have been applied.
//
// Reaching the target wins the round even if the last word used up the
// round's attempts. A cleared round scales the target, refills words and
// discards, forgets the round's words and discards the tiles. Clearing the
// final round wins the game; the round counter then stays on the final round.
// Running out of words before reaching the target restarts the game from
// round one.
func (c Controller) Evaluate(s *RoundState, pool *TilePool) Status {
	if s.Total >= s.Target {
		s.Target = c.Rules.Scaling.NextTarget(s.Target)
		s.refill(c.Rules)
		pool.Discard()
		if s.Round >= c.Rules.Rounds {
			return StatusGameWon
		}
		s.Round++
		return StatusRoundWon
	}

	if s.WordsRemaining <= 0 {
		c.Restart(s, pool)
		return StatusRoundLost
	}

	return StatusPlaying
}

// Restart returns the state to the start of a game.
func (c Controller) Restart(s *RoundState, pool *TilePool) {
	*s = NewRoundState(c.Rules)
	pool.Discard()
}
