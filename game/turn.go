package game

import (
	"fmt"

	"github.com/lexiplay/scrabble/move"
)

// A Turn is one entry in the game history. Only successful moves are
// recorded.
type Turn struct {
	Number     int        `yaml:"number"`
	Player     int        `yaml:"player"`
	PlayerName string     `yaml:"name"`
	Move       *move.Move `yaml:"-"`
	// Rack is the player's rack before the move.
	Rack string `yaml:"rack"`
	// Score is what the move scored; Cumulative is the player's total after it.
	Score      int `yaml:"score"`
	Cumulative int `yaml:"cumulative"`
	// Description is the move in board game notation.
	Description string `yaml:"move"`
}

func (t Turn) String() string {
	return fmt.Sprintf("%3d. %-12s %-8s %-24s %+4d %5d",
		t.Number+1, t.PlayerName, t.Rack, t.Description, t.Score, t.Cumulative)
}

// A RackAdjustment is an end-of-game change to a player's score for the
// tiles left on racks.
type RackAdjustment struct {
	Player int    `yaml:"player"`
	Rack   string `yaml:"rack"`
	Points int    `yaml:"points"`
}

func (g *Game) newTurn(m *move.Move, rackBefore string, score int) Turn {
	p := g.players[m.Player()]
	return Turn{
		Number:      g.turnnum,
		Player:      m.Player(),
		PlayerName:  p.Name,
		Move:        m,
		Rack:        rackBefore,
		Score:       score,
		Cumulative:  p.Score,
		Description: m.ShortDescription(),
	}
}
