package wordquest

import "github.com/vovakirdan/wordquest/internal/core"

const (
	tileWidth  = 6 // including borders
	tileHeight = 3
	tileGap    = 1

	hudHeight    = 5 // title, blank, two stat lines, blank
	wordBoxH     = 3
	contentWidth = 43
)

// Button is a clickable on-screen control.
type Button struct {
	Label  string
	Action core.Action
	Rect   core.Rect
}

var buttonSpecs = []struct {
	label  string
	action core.Action
}{
	{"[ Play Word ]", core.ActionSubmit},
	{"[ X ]", core.ActionClear},
	{"[ Shuffle ]", core.ActionShuffle},
	{"[ Discard ]", core.ActionDiscard},
}

// Layout positions every element of the game screen.
type Layout struct {
	Origin  core.Point // top-left of the content area
	Width   int
	Height  int
	Grid    core.Rect
	Tiles   [][]core.Rect // [row][col]
	WordBox core.Rect
	Buttons []Button
	MsgY    int

	rows, cols int
}

// NewLayout centers the content area on a screenW x screenH screen.
func NewLayout(screenW, screenH, rows, cols int) Layout {
	gridW := cols*tileWidth + (cols-1)*tileGap
	gridH := rows * tileHeight

	l := Layout{
		Width: core.Max(contentWidth, gridW),
		rows:  rows,
		cols:  cols,
	}
	// grid, blank, word box, buttons, blank, message
	l.Height = hudHeight + gridH + 1 + wordBoxH + 1 + 1 + 1
	l.Origin = core.Point{
		X: core.Max(0, (screenW-l.Width)/2),
		Y: core.Max(0, (screenH-l.Height)/2),
	}

	gridX := l.Origin.X + (l.Width-gridW)/2
	gridY := l.Origin.Y + hudHeight
	l.Grid = core.NewRect(gridX, gridY, gridW, gridH)

	l.Tiles = make([][]core.Rect, rows)
	for r := range rows {
		l.Tiles[r] = make([]core.Rect, cols)
		for c := range cols {
			l.Tiles[r][c] = core.NewRect(gridX+c*(tileWidth+tileGap), gridY+r*tileHeight, tileWidth, tileHeight)
		}
	}

	l.WordBox = core.NewRect(l.Origin.X, l.Grid.Bottom()+1, l.Width, wordBoxH)

	buttonsW := -1
	for _, b := range buttonSpecs {
		buttonsW += len(b.label) + 1
	}
	x := l.Origin.X + (l.Width-buttonsW)/2
	y := l.WordBox.Bottom()
	for _, b := range buttonSpecs {
		w := len(b.label)
		l.Buttons = append(l.Buttons, Button{
			Label:  b.label,
			Action: b.action,
			Rect:   core.NewRect(x, y, w, 1),
		})
		x += w + 1
	}

	l.MsgY = y + 2
	return l
}

// Fits reports whether the content area fits on a screenW x screenH screen.
func (l Layout) Fits(screenW, screenH int) bool {
	return screenW >= l.Width && screenH >= l.Height
}

// HitKind identifies what a click landed on.
type HitKind int

const (
	HitNone HitKind = iota
	HitTile
	HitButton
)

// Hit is the result of a hit test.
type Hit struct {
	Kind   HitKind
	Row    int
	Col    int
	Action core.Action
}

// HitTest maps a screen coordinate to a tile slot or a button.
func (l Layout) HitTest(p core.Point) Hit {
	if l.Grid.ContainsPoint(p) {
		for r := range l.rows {
			for c := range l.cols {
				if l.Tiles[r][c].ContainsPoint(p) {
					return Hit{Kind: HitTile, Row: r, Col: c}
				}
			}
		}
	}
	for _, b := range l.Buttons {
		if b.Rect.ContainsPoint(p) {
			return Hit{Kind: HitButton, Action: b.Action}
		}
	}
	return Hit{}
}
