package wordquest

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/vovakirdan/wordquest/internal/core"
)

// tierColors colors a tile by its point value.
var tierColors = map[int]core.Color{
	10: core.ColorWhite,
	15: core.ColorCyan,
	20: core.ColorGreen,
	25: core.ColorYellow,
	30: core.ColorOrange,
	35: core.ColorMagenta,
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.engine == nil {
		return
	}

	s := g.engine.Snapshot()
	g.renderHUD(dst, s)
	g.renderTiles(dst, s)
	g.renderWord(dst, s)
	g.renderButtons(dst, s)
	g.renderMessage(dst, s)
	g.renderOverlay(dst, s)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorYellow)
	need := fmt.Sprintf("Need %dx%d, have %dx%d", g.layout.Width, g.layout.Height, g.screenW, g.screenH)
	dst.DrawTextCentered(y+1, need, core.ColorGray)
}

// renderHUD draws the title and the round counters.
func (g *Game) renderHUD(dst *core.Screen, s Snapshot) {
	l := g.layout
	x, y := l.Origin.X, l.Origin.Y

	title := "W O R D   Q U E S T"
	dst.DrawTextColor(x+(l.Width-len(title))/2, y, title, core.ColorBrightYellow)

	drawColumns(dst, x, y+2, l.Width,
		fmt.Sprintf("Round %d/%d", s.Round, s.Rounds),
		fmt.Sprintf("Target %d", s.Target),
		fmt.Sprintf("Score %d", s.GameScore),
	)
	drawColumns(dst, x, y+3, l.Width,
		fmt.Sprintf("Words %d", s.WordsRemaining),
		fmt.Sprintf("Discards %d", s.DiscardsRemaining),
		fmt.Sprintf("Total %d", s.Total),
	)
}

// drawColumns places left, middle and right aligned strings on one row.
func drawColumns(dst *core.Screen, x, y, width int, left, mid, right string) {
	dst.DrawText(x, y, left)
	dst.DrawText(x+(width-len(mid))/2, y, mid)
	dst.DrawText(x+width-len(right), y, right)
}

// renderTiles draws each tile as a small box with its letter and value.
func (g *Game) renderTiles(dst *core.Screen, s Snapshot) {
	for _, t := range s.Tiles {
		if t.Row >= len(g.layout.Tiles) || t.Col >= len(g.layout.Tiles[t.Row]) {
			continue
		}
		r := g.layout.Tiles[t.Row][t.Col]
		points := ScoreOf(t.Letter)
		color := tierColors[points]

		dst.DrawBox(r, color)
		dst.SetColor(r.X+1, r.Y+1, unicode.ToUpper(t.Letter), core.ColorBrightYellow)
		val := strconv.Itoa(points)
		dst.DrawTextColor(r.Right()-1-len(val), r.Y+1, val, color)
	}
}

// renderWord draws the composed word. Long words show their tail.
func (g *Game) renderWord(dst *core.Screen, s Snapshot) {
	box := g.layout.WordBox
	dst.DrawBox(box, core.ColorBlue)

	word := strings.ToUpper(s.Word)
	inner := box.W - 4
	if runes := []rune(word); len(runes) > inner {
		word = "…" + string(runes[len(runes)-inner+1:])
	}
	if word == "" {
		dst.DrawTextColor(box.X+2, box.Y+1, "type or click letters", core.ColorGray)
		return
	}

	value := strconv.Itoa(WordValue(s.Word))
	dst.DrawTextColor(box.X+2, box.Y+1, word, core.ColorBrightCyan)
	if len([]rune(word))+len(value)+1 <= inner {
		dst.DrawTextColor(box.Right()-2-len(value), box.Y+1, value, core.ColorGray)
	}
}

// renderButtons draws the control row.
func (g *Game) renderButtons(dst *core.Screen, s Snapshot) {
	for _, b := range g.layout.Buttons {
		color := core.ColorWhite
		switch b.Action {
		case core.ActionSubmit:
			color = core.ColorBrightGreen
		case core.ActionClear:
			color = core.ColorRed
		case core.ActionShuffle:
			color = core.ColorYellow
		case core.ActionDiscard:
			color = core.ColorBrightRed
			if s.DiscardsRemaining == 0 {
				color = core.ColorGray
			}
		}
		dst.DrawTextColor(b.Rect.X, b.Rect.Y, b.Label, color)
	}
}

// renderMessage reports the last submission.
func (g *Game) renderMessage(dst *core.Screen, s Snapshot) {
	if s.Last == nil || s.Status != StatusPlaying {
		return
	}

	word := strings.ToUpper(s.Last.Word)
	msg := fmt.Sprintf("%s: %s", word, s.Last.Verdict)
	color := core.ColorRed
	if s.Last.Verdict == VerdictScored {
		msg = fmt.Sprintf("%s +%d", word, s.Last.Score)
		color = core.ColorBrightGreen
	}
	l := g.layout
	if len([]rune(msg)) > l.Width {
		msg = string([]rune(msg)[:l.Width])
	}
	dst.DrawTextColor(l.Origin.X+(l.Width-len([]rune(msg)))/2, l.MsgY, msg, color)
}

// renderOverlay draws the interstitial for a finished round or game.
func (g *Game) renderOverlay(dst *core.Screen, s Snapshot) {
	switch s.Status {
	case StatusRoundWon:
		g.drawOverlay(dst, core.ColorBrightGreen,
			"ROUND CLEARED",
			fmt.Sprintf("Next: round %d/%d", s.Round, s.Rounds),
			fmt.Sprintf("New target %d", s.Target),
			"Enter to continue")
	case StatusRoundLost:
		g.drawOverlay(dst, core.ColorBrightRed,
			"OUT OF WORDS",
			fmt.Sprintf("Final score %d", s.FinalScore),
			"Back to round 1",
			"Enter to try again")
	case StatusGameWon:
		g.drawOverlay(dst, core.ColorBrightYellow,
			"YOU WIN!",
			fmt.Sprintf("All %d rounds cleared", s.Rounds),
			fmt.Sprintf("Final score %d", s.FinalScore),
			"Enter to play again")
	}
}

// drawOverlay draws a centered box over the tile grid.
func (g *Game) drawOverlay(dst *core.Screen, color core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	grid := g.layout.Grid
	centerX, centerY := grid.Center()
	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, color)

	for i, line := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = color
		}
		dst.DrawTextColor(centerX-len(line)/2, box.Y+1+i, line, c)
	}
}
