package movegen

import (
	"github.com/lexiplay/scrabble/board"
)

// Anchors are the empty squares next to at least one tile. Every play
// after the first covers at least one of them. They come back in row-major
// order; an empty board has none.
func Anchors(b *board.GameBoard) []board.Position {
	anchors := []board.Position{}
	dim := b.Dim()
	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			if b.HasTile(row, col) {
				continue
			}
			if b.HasTile(row-1, col) || b.HasTile(row+1, col) ||
				b.HasTile(row, col-1) || b.HasTile(row, col+1) {
				anchors = append(anchors, board.Position{Row: row, Col: col})
			}
		}
	}
	return anchors
}
