package game

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/lexiplay/scrabble/tilemapping"
)

// A Player is a seat in the game.
type Player struct {
	Name       string
	Rack       *tilemapping.Rack
	Score      int
	IsComputer bool

	bingos int
	turns  int
}

func NewPlayer(name string, isComputer bool) *Player {
	return &Player{Name: name, Rack: tilemapping.NewRack(), IsComputer: isComputer}
}

func (p *Player) Bingos() int {
	return p.bingos
}

// Turns is the number of moves this player has made.
func (p *Player) Turns() int {
	return p.turns
}

func (p *Player) reset() {
	p.Score = 0
	p.bingos = 0
	p.turns = 0
	if p.Rack == nil {
		p.Rack = tilemapping.NewRack()
	}
	p.Rack.Clear()
}

// fillRack draws from the bag until the rack is full or the bag is empty.
func (p *Player) fillRack(bag *tilemapping.Bag) {
	need := tilemapping.RackTileLimit - p.Rack.NumTiles()
	if need <= 0 {
		return
	}
	drawn := bag.Draw(need)
	if err := p.Rack.Add(drawn...); err != nil {
		// Cannot happen: we never draw more than the rack has room for.
		panic(err)
	}
	log.Debug().Str("player", p.Name).Str("rack", p.Rack.String()).Msg("filled-rack")
}

func (p *Player) stateString(myturn bool) string {
	onturn := ""
	if myturn {
		onturn = "-> "
	}
	kind := ""
	if p.IsComputer {
		kind = "(cpu)"
	}
	return fmt.Sprintf("%4v%16v%6v%9v %4v", onturn, p.Name, kind, p.Rack.String(), p.Score)
}
