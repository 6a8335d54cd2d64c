package wordquest

import (
	"math/rand"

	"github.com/vovakirdan/wordquest/internal/config"
	"github.com/vovakirdan/wordquest/internal/core"
	"github.com/vovakirdan/wordquest/internal/registry"
)

const (
	idClassic = "wordquest"
	idDouble  = "wordquest_double"
)

// Game adapts an Engine to the registry.Game interface: it owns the screen
// layout and turns clicks into letters and actions.
type Game struct {
	id    string
	title string
	rules Rules
	lex   Lexicon

	engine *Engine
	layout Layout

	screenW  int
	screenH  int
	tooSmall bool
}

func init() {
	registry.Register(idClassic, func(d registry.Deps) registry.Game {
		return New(d)
	})
	registry.Register(idDouble, func(d registry.Deps) registry.Game {
		return NewDouble(d)
	})
}

// New creates the classic game using the configured rules.
func New(deps registry.Deps) *Game {
	return &Game{
		id:    idClassic,
		title: "Word Quest",
		rules: rulesFor(deps),
		lex:   deps.Lexicon,
	}
}

// NewDouble creates a variant whose target doubles after every round.
func NewDouble(deps registry.Deps) *Game {
	rules := rulesFor(deps)
	rules.Scaling = DoubleScaling{}
	return &Game{
		id:    idDouble,
		title: "Word Quest (Double Stakes)",
		rules: rules,
		lex:   deps.Lexicon,
	}
}

// rulesFor falls back to the built-in rules when no valid config was injected.
func rulesFor(deps registry.Deps) Rules {
	if err := deps.Config.Validate(); err != nil {
		return RulesFromConfig(config.DefaultWordQuestConfig().Rules)
	}
	return RulesFromConfig(deps.Config.Rules)
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset starts a new game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.engine = NewEngine(g.rules, g.lex, rand.New(rand.NewSource(cfg.Seed)))
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize recomputes the layout for new screen dimensions.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout = NewLayout(w, h, g.rules.TileRows, g.rules.TileCols)
	g.tooSmall = !g.layout.Fits(w, h)
}

// Step translates clicks and advances the engine by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		g.Reset(core.DefaultConfig())
	}
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.engine.AdvanceFrame(g.translate(in))
	return core.StepResult{State: g.State()}
}

// translate resolves clicks against the layout. Clicked tiles become typed
// letters after any keyboard letters of the same frame; clicked buttons
// become actions. Any click dismisses an interstitial.
func (g *Game) translate(in core.InputFrame) core.InputFrame {
	if len(in.Clicks) == 0 {
		return in
	}

	out := in.Clone()
	out.Clicks = nil
	waiting := g.engine.Status() != StatusPlaying
	for _, p := range in.Clicks {
		if waiting {
			out.Set(core.ActionConfirm)
			continue
		}
		hit := g.layout.HitTest(p)
		switch hit.Kind {
		case HitTile:
			if t, ok := g.engine.Tile(hit.Row, hit.Col); ok {
				out.Type(t.Letter)
			}
		case HitButton:
			out.Set(hit.Action)
		}
	}
	return out
}

// State returns the platform-level view of the game.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	s := g.engine.Snapshot()
	state := core.GameState{
		Score:   s.GameScore,
		Round:   s.Round,
		Waiting: s.Status != StatusPlaying,
	}
	switch s.Status {
	case StatusRoundLost:
		state.Score = s.FinalScore
		state.GameOver = true
	case StatusGameWon:
		state.Score = s.FinalScore
		state.GameOver = true
		state.Won = true
	}
	return state
}

// Snapshot returns the engine snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.engine == nil {
		return Snapshot{}
	}
	return g.engine.Snapshot()
}
