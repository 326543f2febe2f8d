// Package bot is the computer opponent. It asks the move generator for
// every legal play and picks one at random from a window at the top of the
// list; the window shrinks as the difficulty goes up.
package bot

import (
	"context"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/lexiplay/scrabble/game"
	"github.com/lexiplay/scrabble/move"
	"github.com/lexiplay/scrabble/movegen"
	"github.com/lexiplay/scrabble/tilemapping"
)

const (
	// Easiest picks uniformly among all plays.
	Easiest = 1
	// Medium picks among the top half.
	Medium = 2
	// Hardest picks among the top three.
	Hardest = 3

	hardestWindow = 3
)

type Player struct {
	difficulty int
	gen        *movegen.Generator
	rng        *frand.RNG
}

// NewPlayer creates a bot. Difficulties outside [Easiest, Hardest] are
// clamped; a nil rng gets a fresh one.
func NewPlayer(gen *movegen.Generator, difficulty int, rng *frand.RNG) *Player {
	if difficulty < Easiest {
		difficulty = Easiest
	}
	if difficulty > Hardest {
		difficulty = Hardest
	}
	if rng == nil {
		rng = frand.New()
	}
	return &Player{difficulty: difficulty, gen: gen, rng: rng}
}

// NewPlayerForRules creates a bot that plays with the rules' dictionary.
func NewPlayerForRules(rules *game.Rules, difficulty int, rng *frand.RNG) *Player {
	return NewPlayer(movegen.NewGenerator(rules.Dictionary(), rules.LetterDistribution()),
		difficulty, rng)
}

func (p *Player) Difficulty() int {
	return p.difficulty
}

// window is how many of the best plays are eligible.
func (p *Player) window(n int) int {
	switch p.difficulty {
	case Easiest:
		return n
	case Medium:
		return (n + 1) / 2
	}
	if n < hardestWindow {
		return n
	}
	return hardestWindow
}

// Choose picks from plays, which must be sorted best first. It returns
// nil if there are none.
func (p *Player) Choose(plays []*move.Move) *move.Move {
	if len(plays) == 0 {
		return nil
	}
	return plays[p.rng.Intn(p.window(len(plays)))]
}

// GenerateMove returns a move for the player on turn. The game is not
// modified; the caller plays the move.
func (p *Player) GenerateMove(g *game.Game) *move.Move {
	onturn := g.PlayerOnTurn()
	rack := g.RackFor(onturn)
	plays := p.gen.GenerateAll(g.Board(), rack, onturn)
	return p.decide(onturn, rack, plays, g.Bag().TilesRemaining())
}

func (p *Player) decide(onturn int, rack *tilemapping.Rack, plays []*move.Move, inBag int) *move.Move {
	if m := p.Choose(plays); m != nil {
		log.Debug().Int("player", onturn).Int("candidates", len(plays)).
			Str("play", m.ShortDescription()).Int("score", m.Score()).Msg("bot-chose-play")
		return m
	}
	exch := WeakestTiles(rack.Tiles())
	if len(exch) > 0 && inBag >= len(exch) {
		log.Debug().Int("player", onturn).Str("tiles", tilemapping.TilesString(exch)).Msg("bot-exchanging")
		return move.NewExchangeMove(onturn, exch)
	}
	log.Debug().Int("player", onturn).Msg("bot-passing")
	return move.NewPassMove(onturn)
}

type generated struct {
	plays []*move.Move
}

// GenerateMoveWithDeadline is GenerateMove with a time limit. The search
// runs on copies of the board and rack in another goroutine; if ctx is done
// first, whatever it finds later is discarded and the bot passes.
func (p *Player) GenerateMoveWithDeadline(ctx context.Context, g *game.Game) *move.Move {
	onturn := g.PlayerOnTurn()
	if ctx.Err() != nil {
		return move.NewPassMove(onturn)
	}
	rack := g.RackFor(onturn).Copy()
	bd := g.Board().Copy()
	inBag := g.Bag().TilesRemaining()

	ch := make(chan generated, 1)
	go func() {
		ch <- generated{plays: p.gen.GenerateAll(bd, rack, onturn)}
	}()
	select {
	case res := <-ch:
		return p.decide(onturn, rack, res.plays, inBag)
	case <-ctx.Done():
		log.Warn().Int("player", onturn).Err(ctx.Err()).Msg("bot-deadline-exceeded")
		return move.NewPassMove(onturn)
	}
}
