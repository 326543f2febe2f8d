// Package board holds the game board: a grid of premium squares onto
// which tiles are only ever added.
package board

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/lexiplay/scrabble/tilemapping"
)

type Direction uint8

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	if d == Horizontal {
		return "(horizontal)"
	} else if d == Vertical {
		return "(vertical)"
	}
	return "none"
}

// Delta is the row/col step of one square along the direction.
func (d Direction) Delta() (int, int) {
	if d == Vertical {
		return 1, 0
	}
	return 0, 1
}

func (d Direction) Perpendicular() Direction {
	if d == Vertical {
		return Horizontal
	}
	return Vertical
}

// Position is a row/column pair on the board.
type Position struct {
	Row int
	Col int
}

// Step moves n squares along the direction (negative n goes backwards).
func (p Position) Step(d Direction, n int) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr*n, Col: p.Col + dc*n}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// A Word is a contiguous run of tiles on the board.
type Word struct {
	Start     Position
	Direction Direction
	Tiles     []tilemapping.Tile
}

func (w Word) Len() int {
	return len(w.Tiles)
}

// String returns the letters of the run, uppercase.
func (w Word) String() string {
	return tilemapping.Word(w.Tiles)
}

// Positions lists the squares the run covers.
func (w Word) Positions() []Position {
	ps := make([]Position, len(w.Tiles))
	for i := range w.Tiles {
		ps[i] = w.Start.Step(w.Direction, i)
	}
	return ps
}

// A GameBoard is the main board structure. It contains all of the Squares,
// with bonuses or filled letters.
type GameBoard struct {
	squares     [][]*Square
	tilesPlayed int
}

// MakeBoard creates a board from a description string.
func MakeBoard(desc []string) *GameBoard {
	// Turns an array of strings into the GameBoard structure type.
	rows := make([][]*Square, 0, len(desc))
	for r, s := range desc {
		row := []*Square{}
		for c, ch := range []rune(s) {
			row = append(row, &Square{row: r, col: c, bonus: BonusSquare(ch)})
		}
		rows = append(rows, row)
	}
	return &GameBoard{squares: rows}
}

// NewCrosswordGameBoard returns an empty standard 15x15 board.
func NewCrosswordGameBoard() *GameBoard {
	return MakeBoard(CrosswordGameBoard)
}

// Dim is the dimension of the board. It assumes the board is square.
func (g *GameBoard) Dim() int {
	return len(g.squares)
}

// Center is the start square.
func (g *GameBoard) Center() Position {
	rc := g.Dim() / 2
	return Position{Row: rc, Col: rc}
}

func (g *GameBoard) PosExists(row int, col int) bool {
	d := g.Dim()
	return row >= 0 && row < d && col >= 0 && col < d
}

func (g *GameBoard) GetSquare(row int, col int) *Square {
	return g.squares[row][col]
}

func (g *GameBoard) GetBonus(row int, col int) BonusSquare {
	return g.squares[row][col].bonus
}

// HasTile returns false for empty squares and for positions off the board.
func (g *GameBoard) HasTile(row int, col int) bool {
	return g.PosExists(row, col) && !g.squares[row][col].IsEmpty()
}

// TileAt returns the tile at the position, if there is one.
func (g *GameBoard) TileAt(row int, col int) (tilemapping.Tile, bool) {
	if !g.PosExists(row, col) {
		return tilemapping.Tile{}, false
	}
	return g.squares[row][col].Tile()
}

// PlaceTile writes a tile to a square. It does not check legality; that is
// the validator's job.
func (g *GameBoard) PlaceTile(row int, col int, t tilemapping.Tile) {
	sq := g.squares[row][col]
	if sq.IsEmpty() {
		g.tilesPlayed++
	} else {
		log.Warn().Int("row", row).Int("col", col).Msg("overwriting-occupied-square")
	}
	sq.setTile(t)
}

// UseBonus permanently spends the premium at the position.
func (g *GameBoard) UseBonus(row int, col int) {
	g.squares[row][col].UseBonus()
}

// IsEmpty returns if the board is empty.
func (g *GameBoard) IsEmpty() bool {
	return g.tilesPlayed == 0
}

// TilesPlayed is the number of tiles on the board.
func (g *GameBoard) TilesPlayed() int {
	return g.tilesPlayed
}

// WordAt returns the maximal run of occupied squares through (row, col)
// along the direction. It is empty if the square itself is empty.
func (g *GameBoard) WordAt(row int, col int, dir Direction) Word {
	return RunAt(g.TileAt, Position{Row: row, Col: col}, dir)
}

// HorizontalWord returns the horizontal run through (row, col).
func (g *GameBoard) HorizontalWord(row int, col int) Word {
	return g.WordAt(row, col, Horizontal)
}

// VerticalWord returns the vertical run through (row, col).
func (g *GameBoard) VerticalWord(row int, col int) Word {
	return g.WordAt(row, col, Vertical)
}

// TileLookup reports the tile at a position, if any. It lets callers
// layer pending tiles on top of a board without copying it.
type TileLookup func(row, col int) (tilemapping.Tile, bool)

// RunAt finds the maximal contiguous run through pos using the lookup.
func RunAt(lookup TileLookup, pos Position, dir Direction) Word {
	if _, ok := lookup(pos.Row, pos.Col); !ok {
		return Word{Start: pos, Direction: dir}
	}
	start := pos
	for {
		prev := start.Step(dir, -1)
		if _, ok := lookup(prev.Row, prev.Col); !ok {
			break
		}
		start = prev
	}
	w := Word{Start: start, Direction: dir}
	for p := start; ; p = p.Step(dir, 1) {
		t, ok := lookup(p.Row, p.Col)
		if !ok {
			break
		}
		w.Tiles = append(w.Tiles, t)
	}
	return w
}

// Copy returns a deep copy of the board.
func (g *GameBoard) Copy() *GameBoard {
	n := g.Dim()
	squares := make([][]*Square, n)
	for i := 0; i < n; i++ {
		squares[i] = make([]*Square, len(g.squares[i]))
		for j := range g.squares[i] {
			squares[i][j] = &Square{}
			squares[i][j].copyFrom(g.squares[i][j])
		}
	}
	return &GameBoard{squares: squares, tilesPlayed: g.tilesPlayed}
}
