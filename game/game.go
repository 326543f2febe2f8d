// Package game encapsulates the main mechanics for a Crossword Game: the
// bag, the racks, whose turn it is and what happens when a move is made.
// A Game doesn't care how it is played. AI players, human players, etc
// will play a game outside of the scope of this module.
package game

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/lexiplay/scrabble/board"
	"github.com/lexiplay/scrabble/gaddag"
	"github.com/lexiplay/scrabble/move"
	"github.com/lexiplay/scrabble/tilemapping"
	"github.com/lexiplay/scrabble/validation"
)

// PlayState is the lifecycle state of a game.
type PlayState uint8

const (
	NotStarted PlayState = iota
	InProgress
	GameOver
)

func (s PlayState) String() string {
	switch s {
	case NotStarted:
		return "NOT_STARTED"
	case InProgress:
		return "IN_PROGRESS"
	case GameOver:
		return "GAME_OVER"
	}
	return "UNKNOWN"
}

var (
	ErrNotStarted        = errors.New("game has not started")
	ErrGameOver          = errors.New("cannot play a move on a game that is over")
	ErrOutOfTurn         = errors.New("it is not this player's turn")
	ErrInsufficientTiles = errors.New("not enough tiles in the bag to exchange")
	ErrNothingToExchange = errors.New("exchange names no tiles")
	ErrTilesNotInRack    = errors.New("move uses tiles not on the rack")
	ErrUnknownMoveType   = errors.New("unknown move type")
)

// Game is the actual internal game structure that controls the entire
// business logic of the game; drawing, making moves, etc.
type Game struct {
	rules     *Rules
	validator *validation.Validator
	// board and bag will contain the latest (current) versions of these.
	board *board.GameBoard
	bag   *tilemapping.Bag
	rng   *frand.RNG

	players []*Player
	playing PlayState
	uid     string

	wentfirst         int
	onturn            int
	turnnum           int
	consecutivePasses int

	history     []Turn
	adjustments []RackAdjustment
}

// NewGame creates a game that has not started yet. A nil rng uses a fresh
// cryptographically seeded one.
func NewGame(rules *Rules, rng *frand.RNG) *Game {
	if rng == nil {
		rng = frand.New()
	}
	return &Game{
		rules:     rules,
		validator: rules.Validator(),
		board:     rules.NewBoard(),
		bag:       tilemapping.NewBag(rules.LetterDistribution(), rng),
		rng:       rng,
		playing:   NotStarted,
	}
}

// Start deals a new game to the given players: a fresh board and shuffled
// bag, full racks for everybody and a random starting player. Starting a
// game with no players is a programming error and panics.
func (g *Game) Start(players []*Player) {
	if len(players) == 0 {
		panic("game: cannot start a game with no players")
	}
	g.board = g.rules.NewBoard()
	g.bag = tilemapping.NewBag(g.rules.LetterDistribution(), g.rng)
	g.bag.Shuffle()
	g.players = players
	for _, p := range g.players {
		p.reset()
		p.fillRack(g.bag)
	}
	g.onturn = g.rng.Intn(len(players))
	g.wentfirst = g.onturn
	g.turnnum = 0
	g.consecutivePasses = 0
	g.history = nil
	g.adjustments = nil
	g.uid = uuid.NewString()
	g.playing = InProgress
	log.Info().Str("uid", g.uid).Int("players", len(players)).
		Str("board", g.rules.BoardName()).
		Str("first", g.players[g.onturn].Name).Msg("game-started")
}

// ExecuteMove plays the move and reports whether it was accepted. An
// illegal move changes nothing; the caller should retry or pass.
func (g *Game) ExecuteMove(m *move.Move) bool {
	if err := g.PlayMove(m); err != nil {
		log.Debug().Err(err).Str("move", m.ShortDescription()).Msg("move-rejected")
		return false
	}
	return true
}

// PlayMove plays the move for the player on turn, or returns why it can't.
// On error the board, racks, bag and turn are untouched.
func (g *Game) PlayMove(m *move.Move) error {
	switch g.playing {
	case NotStarted:
		return ErrNotStarted
	case GameOver:
		return ErrGameOver
	}
	if m.Player() != g.onturn {
		return fmt.Errorf("%w: player %d moved, player %d is on turn", ErrOutOfTurn, m.Player(), g.onturn)
	}
	p := g.players[g.onturn]
	rackBefore := p.Rack.String()
	score := 0

	switch m.Action() {
	case move.MoveTypePlay:
		if !p.Rack.Has(m.Tiles()...) {
			return fmt.Errorf("%w: %s not in %s", ErrTilesNotInRack, m.TilesString(), rackBefore)
		}
		res := g.validator.Validate(g.board, m)
		if res.Err != nil {
			return res.Err
		}
		m.SetValidation(res.Words, res.Score, res.Bingo)
		g.commitTiles(m.Tiles(), res.Squares)
		if err := p.Rack.Remove(m.Tiles()...); err != nil {
			// Has() said yes a moment ago.
			panic(err)
		}
		score = res.Score
		p.Score += score
		if res.Bingo {
			p.bingos++
		}
		p.fillRack(g.bag)
		g.consecutivePasses = 0

	case move.MoveTypeExchange:
		tiles := m.Tiles()
		if len(tiles) == 0 {
			return ErrNothingToExchange
		}
		if g.bag.TilesRemaining() < len(tiles) {
			return fmt.Errorf("%w: %d in bag, %d to exchange", ErrInsufficientTiles,
				g.bag.TilesRemaining(), len(tiles))
		}
		if !p.Rack.Has(tiles...) {
			return fmt.Errorf("%w: %s not in %s", ErrTilesNotInRack, m.TilesString(), rackBefore)
		}
		if err := p.Rack.Remove(tiles...); err != nil {
			panic(err)
		}
		drawn := g.bag.Draw(len(tiles))
		if err := p.Rack.Add(drawn...); err != nil {
			panic(err)
		}
		g.bag.Return(tiles)
		log.Debug().Str("newrack", p.Rack.String()).Msg("new-rack")
		g.consecutivePasses = 0

	case move.MoveTypePass:
		g.consecutivePasses++

	default:
		return ErrUnknownMoveType
	}

	p.turns++
	g.history = append(g.history, g.newTurn(m, rackBefore, score))
	g.turnnum++

	if g.checkEndOfGame() {
		return nil
	}
	g.onturn = (g.onturn + 1) % len(g.players)
	return nil
}

func (g *Game) commitTiles(tiles []tilemapping.Tile, squares []board.Position) {
	for i, sq := range squares {
		g.board.PlaceTile(sq.Row, sq.Col, tiles[i])
		g.board.UseBonus(sq.Row, sq.Col)
	}
}

// checkEndOfGame ends the game if somebody went out with the bag empty or
// if everybody has passed twice in a row.
func (g *Game) checkEndOfGame() bool {
	if g.bag.TilesRemaining() == 0 {
		for i := range g.players {
			idx := (g.onturn + i) % len(g.players)
			if g.players[idx].Rack.Empty() {
				g.endWithPlayerOut(idx)
				return true
			}
		}
	}
	if g.consecutivePasses >= 2*len(g.players) {
		g.endScoreless()
		return true
	}
	return false
}

func (g *Game) endWithPlayerOut(out int) {
	bonus := 0
	for i, p := range g.players {
		if i == out {
			continue
		}
		pts := p.Rack.ScoreOn()
		p.Score -= pts
		bonus += pts
		g.adjustments = append(g.adjustments, RackAdjustment{Player: i, Rack: p.Rack.String(), Points: -pts})
	}
	g.players[out].Score += bonus
	g.adjustments = append(g.adjustments, RackAdjustment{Player: out, Points: bonus})
	g.playing = GameOver
	log.Info().Str("uid", g.uid).Str("out", g.players[out].Name).Int("bonus", bonus).
		Msg("game-over")
}

func (g *Game) endScoreless() {
	for i, p := range g.players {
		pts := p.Rack.ScoreOn()
		p.Score -= pts
		g.adjustments = append(g.adjustments, RackAdjustment{Player: i, Rack: p.Rack.String(), Points: -pts})
	}
	g.playing = GameOver
	log.Info().Str("uid", g.uid).Int("passes", g.consecutivePasses).Msg("game-over-scoreless")
}

// SetRackFor sets the player's rack. The player's current tiles go back in
// the bag and the new ones come out of it; if the bag can't supply them
// nothing changes.
func (g *Game) SetRackFor(playerIdx int, rack *tilemapping.Rack) error {
	p := g.players[playerIdx]
	old := p.Rack.Tiles()
	g.bag.Return(old)
	if err := g.bag.RemoveTiles(rack.Tiles()); err != nil {
		if err2 := g.bag.RemoveTiles(old); err2 != nil {
			panic(err2)
		}
		log.Error().Err(err).Str("rack", rack.String()).Msg("unable-to-set-rack")
		return err
	}
	p.Rack = rack.Copy()
	log.Debug().Str("rack", rack.String()).Int("player", playerIdx).Msg("set rack")
	return nil
}

// SetPlayerOnTurn is for tests and hosts that decide who goes first.
func (g *Game) SetPlayerOnTurn(idx int) {
	g.onturn = idx
}

func (g *Game) Board() *board.GameBoard {
	return g.board
}

func (g *Game) Bag() *tilemapping.Bag {
	return g.bag
}

func (g *Game) Rules() *Rules {
	return g.rules
}

func (g *Game) Dictionary() *gaddag.Dictionary {
	return g.rules.Dictionary()
}

func (g *Game) Validator() *validation.Validator {
	return g.validator
}

func (g *Game) LetterDistribution() *tilemapping.LetterDistribution {
	return g.rules.LetterDistribution()
}

func (g *Game) Uid() string {
	return g.uid
}

func (g *Game) Playing() PlayState {
	return g.playing
}

func (g *Game) IsGameOver() bool {
	return g.playing == GameOver
}

func (g *Game) PlayerOnTurn() int {
	return g.onturn
}

// CurrentPlayer is the player on turn.
func (g *Game) CurrentPlayer() *Player {
	if len(g.players) == 0 {
		return nil
	}
	return g.players[g.onturn]
}

func (g *Game) Players() []*Player {
	return g.players
}

func (g *Game) NumPlayers() int {
	return len(g.players)
}

func (g *Game) FirstPlayer() int {
	return g.wentfirst
}

// Turn is the number of moves made so far.
func (g *Game) Turn() int {
	return g.turnnum
}

func (g *Game) ConsecutivePasses() int {
	return g.consecutivePasses
}

// RackFor returns the rack for the player with the passed-in index
func (g *Game) RackFor(playerIdx int) *tilemapping.Rack {
	return g.players[playerIdx].Rack
}

// PointsFor returns the number of points for the given player
func (g *Game) PointsFor(playerIdx int) int {
	return g.players[playerIdx].Score
}

// History returns a copy of the moves made so far.
func (g *Game) History() []Turn {
	return append([]Turn(nil), g.history...)
}

// EndAdjustments are the end-of-game rack adjustments, once the game is
// over.
func (g *Game) EndAdjustments() []RackAdjustment {
	return append([]RackAdjustment(nil), g.adjustments...)
}

// Winner returns the index of the player with the most points, or -1 if
// the top score is shared.
func (g *Game) Winner() int {
	best, winner, tied := math.MinInt, -1, false
	for i, p := range g.players {
		if p.Score > best {
			best, winner, tied = p.Score, i, false
		} else if p.Score == best {
			tied = true
		}
	}
	if tied {
		return -1
	}
	return winner
}
