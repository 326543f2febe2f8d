package game

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/lexiplay/scrabble/tilemapping"
)

func splitSubN(s string, n int) []string {
	sub := ""
	subs := []string{}

	runes := bytes.Runes([]byte(s))
	l := len(runes)
	for i, r := range runes {
		sub = sub + string(r)
		if (i+1)%n == 0 {
			subs = append(subs, sub)
			sub = ""
		} else if (i + 1) == l {
			subs = append(subs, sub)
		}
	}

	return subs
}

func addText(lines []string, row int, hpad int, text string) {
	maxTextSize := 42
	sp := splitSubN(text, maxTextSize)

	for _, chunk := range sp {
		if row >= len(lines) {
			return
		}
		lines[row] = lines[row] + strings.Repeat(" ", hpad) + chunk
		row++
	}
}

// Unseen returns the tiles the player on turn cannot see: the bag plus
// every other rack.
func (g *Game) Unseen() tilemapping.LetterCounts {
	tiles := g.bag.Peek()
	for i, p := range g.players {
		if i != g.onturn {
			tiles = append(tiles, p.Rack.Tiles()...)
		}
	}
	return tilemapping.CountsFromTiles(tiles)
}

// ToDisplayText turns the current state of the game into a displayable
// string: the board with the scores, the unseen tiles and the last move
// alongside it.
func (g *Game) ToDisplayText() string {
	bt := g.board.ToDisplayText()
	bts := strings.Split(bt, "\n")
	hpadding := 3
	vpadding := 1
	bagColCount := 20

	for pi, p := range g.players {
		addText(bts, vpadding+pi, hpadding, p.stateString(g.playing == InProgress && g.onturn == pi))
	}
	vpadding += len(g.players) + 1

	unseen := g.Unseen()
	addText(bts, vpadding, hpadding, fmt.Sprintf("Bag + unseen: (%d)", unseen.Total()))
	vpadding += 2

	letters := []rune(unseen.String())
	for start := 0; start < len(letters); start += bagColCount {
		end := min(start+bagColCount, len(letters))
		row := []string{}
		for _, r := range letters[start:end] {
			row = append(row, string(r))
		}
		addText(bts, vpadding, hpadding, strings.Join(row, " "))
		vpadding++
	}
	vpadding++

	addText(bts, vpadding, hpadding, fmt.Sprintf("Turn %d:", g.turnnum))
	vpadding++
	if len(g.history) > 0 {
		last := g.history[len(g.history)-1]
		addText(bts, vpadding, hpadding,
			fmt.Sprintf("%s played %s for %d pts", last.PlayerName, last.Description, last.Score))
	}
	vpadding += 2

	if g.playing == GameOver {
		addText(bts, vpadding, hpadding, "Game is over.")
	}
	return strings.Join(bts, "\n")
}
