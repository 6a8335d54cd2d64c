package wordquest

import (
	"math/rand"
	"strings"
)

// Tile is a drawn letter and its slot in the grid.
type Tile struct {
	Letter rune
	Row    int
	Col    int
}

// TilePool holds the current round's tiles in row-major order.
// It is either empty (waiting for a draw) or full.
type TilePool struct {
	rows  int
	cols  int
	tiles []Tile
}

// NewTilePool creates an empty pool for a rows x cols grid.
func NewTilePool(rows, cols int) *TilePool {
	return &TilePool{
		rows:  rows,
		cols:  cols,
		tiles: make([]Tile, 0, rows*cols),
	}
}

// Draw replaces the tiles with rows*cols letters at distinct, uniformly
// chosen positions of alphabet.
func (p *TilePool) Draw(rng *rand.Rand, alphabet []rune) {
	n := p.rows * p.cols
	if n > len(alphabet) {
		n = len(alphabet)
	}

	p.tiles = p.tiles[:0]
	for _, idx := range rng.Perm(len(alphabet))[:n] {
		p.tiles = append(p.tiles, Tile{Letter: alphabet[idx]})
	}
	p.relayout()
}

// Shuffle swaps every position with a uniformly random position.
// This is the simple swap-with-any variant; its slight bias toward some
// permutations is accepted.
func (p *TilePool) Shuffle(rng *rand.Rand) {
	n := len(p.tiles)
	for i := 0; i < n; i++ {
		j := rng.Intn(n)
		p.tiles[i], p.tiles[j] = p.tiles[j], p.tiles[i]
	}
	p.relayout()
}

// Discard empties the pool so the next frame draws fresh tiles.
func (p *TilePool) Discard() {
	p.tiles = p.tiles[:0]
}

// relayout assigns grid slots from the current order.
func (p *TilePool) relayout() {
	for i := range p.tiles {
		p.tiles[i].Row = i / p.cols
		p.tiles[i].Col = i % p.cols
	}
}

// Empty reports whether a draw is pending.
func (p *TilePool) Empty() bool {
	return len(p.tiles) == 0
}

// Len returns the number of tiles.
func (p *TilePool) Len() int {
	return len(p.tiles)
}

// Tiles returns a copy of the tiles in grid order.
func (p *TilePool) Tiles() []Tile {
	out := make([]Tile, len(p.tiles))
	copy(out, p.tiles)
	return out
}

// Letters returns the tile letters in grid order.
func (p *TilePool) Letters() string {
	var sb strings.Builder
	for _, t := range p.tiles {
		sb.WriteRune(t.Letter)
	}
	return sb.String()
}

// Has reports whether a tile shows letter.
func (p *TilePool) Has(letter rune) bool {
	for _, t := range p.tiles {
		if t.Letter == letter {
			return true
		}
	}
	return false
}

// At returns the tile in the given slot.
func (p *TilePool) At(row, col int) (Tile, bool) {
	if row < 0 || row >= p.rows || col < 0 || col >= p.cols {
		return Tile{}, false
	}
	i := row*p.cols + col
	if i >= len(p.tiles) {
		return Tile{}, false
	}
	return p.tiles[i], true
}
