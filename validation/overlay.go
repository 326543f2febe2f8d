package validation

import (
	"fmt"

	"github.com/lexiplay/scrabble/board"
	"github.com/lexiplay/scrabble/tilemapping"
)

// overlay layers a move's pending tiles over the committed board so words
// can be read off without copying the board.
type overlay struct {
	b       *board.GameBoard
	pending map[board.Position]tilemapping.Tile
	squares []board.Position
}

// layDown walks from start along dir, putting each tile on the next empty
// square.
func layDown(b *board.GameBoard, start board.Position, dir board.Direction,
	tiles []tilemapping.Tile) (*overlay, error) {

	ov := &overlay{
		b:       b,
		pending: make(map[board.Position]tilemapping.Tile, len(tiles)),
		squares: make([]board.Position, 0, len(tiles)),
	}
	pos := start
	for _, t := range tiles {
		for b.HasTile(pos.Row, pos.Col) {
			pos = pos.Step(dir, 1)
		}
		if !b.PosExists(pos.Row, pos.Col) {
			return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, pos)
		}
		ov.pending[pos] = t
		ov.squares = append(ov.squares, pos)
		pos = pos.Step(dir, 1)
	}
	return ov, nil
}

func (ov *overlay) tileAt(row, col int) (tilemapping.Tile, bool) {
	if t, ok := ov.pending[board.Position{Row: row, Col: col}]; ok {
		return t, true
	}
	return ov.b.TileAt(row, col)
}

func (ov *overlay) isNew(p board.Position) bool {
	_, ok := ov.pending[p]
	return ok
}

func (ov *overlay) covers(p board.Position) bool {
	return ov.isNew(p)
}

// touchesBoard reports whether any new tile is orthogonally next to a
// committed one.
func (ov *overlay) touchesBoard() bool {
	for _, sq := range ov.squares {
		for _, d := range []board.Direction{board.Horizontal, board.Vertical} {
			prev, next := sq.Step(d, -1), sq.Step(d, 1)
			if ov.b.HasTile(prev.Row, prev.Col) || ov.b.HasTile(next.Row, next.Col) {
				return true
			}
		}
	}
	return false
}
