// Package automatic plays computer-vs-computer games, for testing the
// engine and comparing bot settings.
package automatic

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lexiplay/scrabble/ai/bot"
	"github.com/lexiplay/scrabble/game"
	"github.com/lexiplay/scrabble/move"
	"github.com/lexiplay/scrabble/movegen"
	"github.com/lexiplay/scrabble/tilemapping"
)

// After this many turns everybody just passes, so a game of endless
// exchanges still finishes.
const maxTurns = 200

// TurnLogHeader names the columns of the turn log.
var TurnLogHeader = []string{"playerID", "gameID", "turn", "rack", "play", "score",
	"totalscore", "tilesplayed", "leave", "tilesremaining", "oppscore"}

// GameResult is the outcome of one autoplayed game.
type GameResult struct {
	GameID      string   `yaml:"id"`
	Names       []string `yaml:"names"`
	Scores      []int    `yaml:"scores"`
	FirstPlayer int      `yaml:"first"`
	Turns       int      `yaml:"turns"`
	// Winner is -1 for a tie.
	Winner int `yaml:"winner"`
}

// Mixed into a game's seed to seed its bots, so the bots don't draw the
// same numbers as the bag.
const botSeedMix = 0x9e3779b97f4a7c15

// GameRunner plays games between two bots. It is not safe for concurrent
// use; each worker gets its own.
type GameRunner struct {
	rules        *game.Rules
	gen          *movegen.Generator
	difficulties [2]int
	names        [2]string
	bots         [2]*bot.Player
	turnTimeout  time.Duration
	logchan      chan<- []string
}

// NewGameRunner creates a runner. Turns are sent to logchan, if it isn't
// nil, as rows matching TurnLogHeader. A turnTimeout of zero means no
// limit.
func NewGameRunner(rules *game.Rules, difficulties [2]int, turnTimeout time.Duration,
	logchan chan<- []string) *GameRunner {

	r := &GameRunner{
		rules:        rules,
		gen:          movegen.NewGenerator(rules.Dictionary(), rules.LetterDistribution()),
		difficulties: difficulties,
		turnTimeout:  turnTimeout,
		logchan:      logchan,
	}
	for i := range difficulties {
		d := bot.NewPlayer(r.gen, difficulties[i], nil).Difficulty()
		r.names[i] = fmt.Sprintf("bot%d-level%d", i+1, d)
	}
	return r
}

func (r *GameRunner) nextMove(ctx context.Context, g *game.Game) *move.Move {
	if g.Turn() >= maxTurns {
		return move.NewPassMove(g.PlayerOnTurn())
	}
	if r.turnTimeout <= 0 {
		return r.bots[g.PlayerOnTurn()].GenerateMove(g)
	}
	tctx, cancel := context.WithTimeout(ctx, r.turnTimeout)
	defer cancel()
	return r.bots[g.PlayerOnTurn()].GenerateMoveWithDeadline(tctx, g)
}

// PlayGame plays one full game. The same seed deals the same game and, as
// long as no turn hits the timeout, the bots make the same choices. It
// stops early, with an error, if ctx is cancelled.
func (r *GameRunner) PlayGame(ctx context.Context, seed uint64) (*GameResult, error) {
	botRNG := tilemapping.NewSeededRNG(seed ^ botSeedMix)
	for i, d := range r.difficulties {
		r.bots[i] = bot.NewPlayer(r.gen, d, botRNG)
	}
	g := game.NewGame(r.rules, tilemapping.NewSeededRNG(seed))
	g.Start([]*game.Player{
		game.NewPlayer(r.names[0], true),
		game.NewPlayer(r.names[1], true),
	})
	for !g.IsGameOver() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r.playTurn(ctx, g)
	}
	res := &GameResult{
		GameID:      g.Uid(),
		Names:       append([]string(nil), r.names[:]...),
		Scores:      []int{g.PointsFor(0), g.PointsFor(1)},
		FirstPlayer: g.FirstPlayer(),
		Turns:       g.Turn(),
		Winner:      g.Winner(),
	}
	log.Debug().Str("game", res.GameID).Ints("scores", res.Scores).Int("turns", res.Turns).Msg("autoplay-game-over")
	return res, nil
}

func (r *GameRunner) playTurn(ctx context.Context, g *game.Game) {
	onturn := g.PlayerOnTurn()
	rackLetters := g.RackFor(onturn).String()
	tilesRemaining := g.Bag().TilesRemaining()
	turn := g.Turn()

	m := r.nextMove(ctx, g)
	if !g.ExecuteMove(m) {
		log.Error().Str("move", m.ShortDescription()).Msg("autoplay-move-rejected")
		m = move.NewPassMove(onturn)
		g.ExecuteMove(m)
	}
	if r.logchan == nil {
		return
	}
	r.logchan <- []string{
		r.names[onturn],
		g.Uid(),
		fmt.Sprint(turn),
		rackLetters,
		m.ShortDescription(),
		fmt.Sprint(m.Score()),
		fmt.Sprint(g.PointsFor(onturn)),
		fmt.Sprint(m.TilesPlayed()),
		tilemapping.TilesString(m.Leave()),
		fmt.Sprint(tilesRemaining),
		fmt.Sprint(g.PointsFor(1 - onturn)),
	}
}
