package validation

import (
	"github.com/lexiplay/scrabble/board"
)

// BingoBonus is added when a play uses all seven rack tiles.
const BingoBonus = 50

// scoreWord scores a single formed word. Only newly placed tiles on squares
// whose premium is still live get letter and word multipliers. Blanks are
// worth nothing wherever they land.
func scoreWord(b *board.GameBoard, ov *overlay, w board.Word) int {
	sum := 0
	wordMult := 1
	for i, p := range w.Positions() {
		t := w.Tiles[i]
		value := t.Value
		if t.Blank {
			value = 0
		}
		if ov.isNew(p) {
			sq := b.GetSquare(p.Row, p.Col)
			value *= sq.LetterMultiplier()
			wordMult *= sq.WordMultiplier()
		}
		sum += value
	}
	return sum * wordMult
}
