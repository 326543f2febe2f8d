package board

import (
	"fmt"
	"strings"

	"github.com/lexiplay/scrabble/tilemapping"
)

// ToDisplayText renders the board for a terminal, with column letters along
// the top and 1-based row numbers down the side.
func (g *GameBoard) ToDisplayText() string {
	var str strings.Builder
	n := g.Dim()
	str.WriteString("   ")
	for i := 0; i < n; i++ {
		str.WriteString(fmt.Sprintf("%c ", 'A'+i))
	}
	str.WriteString("\n")
	str.WriteString("   " + strings.Repeat("-", n*2) + "\n")
	for i := 0; i < n; i++ {
		str.WriteString(fmt.Sprintf("%2d|", i+1))
		for j := 0; j < n; j++ {
			str.WriteString(g.squares[i][j].DisplayString() + " ")
		}
		str.WriteString("|\n")
	}
	str.WriteString("   " + strings.Repeat("-", n*2) + "\n")
	return "\n" + str.String()
}

// SetRow fills a row from a string of letters, for setting up test
// positions. Spaces leave squares alone; lowercase letters are blanks.
// Premiums under placed tiles are spent. It returns the tiles placed.
func (g *GameBoard) SetRow(rowNum int, letters string, ld *tilemapping.LetterDistribution) []tilemapping.Tile {
	return g.setLine(Position{Row: rowNum}, Horizontal, letters, ld)
}

// SetCol is SetRow for a column.
func (g *GameBoard) SetCol(colNum int, letters string, ld *tilemapping.LetterDistribution) []tilemapping.Tile {
	return g.setLine(Position{Col: colNum}, Vertical, letters, ld)
}

func (g *GameBoard) setLine(start Position, dir Direction, letters string,
	ld *tilemapping.LetterDistribution) []tilemapping.Tile {

	placed := []tilemapping.Tile{}
	for idx, r := range []rune(letters) {
		if r == ' ' {
			continue
		}
		tiles, err := tilemapping.ToTiles(string(r), ld)
		if err != nil {
			panic(err)
		}
		p := start.Step(dir, idx)
		g.PlaceTile(p.Row, p.Col, tiles[0])
		g.UseBonus(p.Row, p.Col)
		placed = append(placed, tiles[0])
	}
	return placed
}
