// Package validation decides whether a play is legal, discovers the words
// it forms and scores it. Both committed plays and generated candidates go
// through the same Validator.
package validation

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/lexiplay/scrabble/board"
	"github.com/lexiplay/scrabble/move"
	"github.com/lexiplay/scrabble/tilemapping"
)

var (
	ErrNotAPlay        = errors.New("move is not a play")
	ErrNoTiles         = errors.New("no tiles to place")
	ErrTooManyTiles    = errors.New("more tiles than fit on a rack")
	ErrUnassignedBlank = errors.New("blank has no letter")
	ErrOutOfBounds     = errors.New("placement runs off the board")
	ErrOverlap         = errors.New("square is already occupied")
	ErrMissesCenter    = errors.New("first play must cover the center square")
	ErrNotConnected    = errors.New("play does not touch any tile on the board")
	ErrWordTooShort    = errors.New("word must be at least two letters long")
	ErrInvalidWord     = errors.New("word is not in the dictionary")
)

// Lexicon is the word list a validator checks against.
type Lexicon interface {
	IsValidWord(word string) bool
}

// Result is the outcome of validating a play. On failure only Err is set.
type Result struct {
	Valid bool
	Err   error
	// Words holds the main word first, then cross words in tile order.
	Words []move.FormedWord
	Score int
	Bingo bool
	// Squares are the positions of the move's tiles, in tile order.
	Squares []board.Position
}

func failure(err error) Result {
	return Result{Err: err}
}

// Validator checks plays against a board and a lexicon. It never modifies
// the board.
type Validator struct {
	lexicon Lexicon
}

func NewValidator(lexicon Lexicon) *Validator {
	return &Validator{lexicon: lexicon}
}

func (v *Validator) Lexicon() Lexicon {
	return v.lexicon
}

// Validate checks a play. On success the result carries the formed words
// and the score; the move itself is not modified.
func (v *Validator) Validate(b *board.GameBoard, m *move.Move) Result {
	res := v.validate(b, m)
	if res.Err != nil {
		log.Debug().Err(res.Err).Str("move", m.ShortDescription()).Msg("play-rejected")
	} else {
		log.Debug().Str("move", m.ShortDescription()).Int("score", res.Score).Msg("play-validated")
	}
	return res
}

// ValidateMove validates a play and, if it is legal, attaches the result
// to the move.
func (v *Validator) ValidateMove(b *board.GameBoard, m *move.Move) error {
	res := v.Validate(b, m)
	if res.Err != nil {
		m.ClearValidation()
		return res.Err
	}
	m.SetValidation(res.Words, res.Score, res.Bingo)
	return nil
}

func (v *Validator) validate(b *board.GameBoard, m *move.Move) Result {
	if m.Action() != move.MoveTypePlay {
		return failure(ErrNotAPlay)
	}
	tiles := m.Tiles()
	if len(tiles) == 0 {
		return failure(ErrNoTiles)
	}
	if len(tiles) > tilemapping.RackTileLimit {
		return failure(fmt.Errorf("%w: %d", ErrTooManyTiles, len(tiles)))
	}
	for _, t := range tiles {
		if !t.IsAssigned() {
			return failure(ErrUnassignedBlank)
		}
	}
	start := m.Position()
	if !b.PosExists(start.Row, start.Col) {
		return failure(fmt.Errorf("%w: start %v", ErrOutOfBounds, start))
	}
	if b.HasTile(start.Row, start.Col) {
		return failure(fmt.Errorf("%w: %v", ErrOverlap, start))
	}

	ov, err := layDown(b, start, m.Direction(), tiles)
	if err != nil {
		return failure(err)
	}

	if b.IsEmpty() {
		if !ov.covers(b.Center()) {
			return failure(ErrMissesCenter)
		}
	} else if !ov.touchesBoard() {
		return failure(ErrNotConnected)
	}

	dir := m.Direction()
	if len(tiles) == 1 {
		dir = v.singleTileDirection(ov, start, dir)
	}

	main := board.RunAt(ov.tileAt, start, dir)
	if main.Len() < 2 {
		return failure(fmt.Errorf("%w: %q", ErrWordTooShort, main.String()))
	}
	if !v.lexicon.IsValidWord(main.String()) {
		return failure(fmt.Errorf("%w: %s", ErrInvalidWord, main.String()))
	}

	words := []board.Word{main}
	for _, sq := range ov.squares {
		cross := board.RunAt(ov.tileAt, sq, dir.Perpendicular())
		if cross.Len() < 2 {
			continue
		}
		if !v.lexicon.IsValidWord(cross.String()) {
			return failure(fmt.Errorf("%w: %s", ErrInvalidWord, cross.String()))
		}
		words = append(words, cross)
	}

	res := Result{Valid: true, Squares: ov.squares}
	for _, w := range words {
		s := scoreWord(b, ov, w)
		res.Words = append(res.Words, move.FormedWord{
			Word:      w.String(),
			Row:       w.Start.Row,
			Col:       w.Start.Col,
			Direction: w.Direction,
			Score:     s,
		})
		res.Score += s
	}
	if len(tiles) == tilemapping.RackTileLimit {
		res.Bingo = true
		res.Score += BingoBonus
	}
	return res
}

// singleTileDirection picks the orientation for a lone tile: the longer
// run, and on a tie the one that makes a word. Otherwise the move's own
// direction stands.
func (v *Validator) singleTileDirection(ov *overlay, pos board.Position, dir board.Direction) board.Direction {
	h := board.RunAt(ov.tileAt, pos, board.Horizontal)
	vert := board.RunAt(ov.tileAt, pos, board.Vertical)
	switch {
	case h.Len() > vert.Len():
		return board.Horizontal
	case vert.Len() > h.Len():
		return board.Vertical
	}
	hValid := v.lexicon.IsValidWord(h.String())
	vValid := v.lexicon.IsValidWord(vert.String())
	if hValid && !vValid {
		return board.Horizontal
	}
	if vValid && !hValid {
		return board.Vertical
	}
	return dir
}
