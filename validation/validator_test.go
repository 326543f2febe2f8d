package validation

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/lexiplay/scrabble/board"
	"github.com/lexiplay/scrabble/gaddag"
	"github.com/lexiplay/scrabble/move"
	"github.com/lexiplay/scrabble/testhelpers"
	"github.com/lexiplay/scrabble/tilemapping"
)

var ld = tilemapping.EnglishLetterDistribution()

func place(t *testing.T, coords, word string) *move.Move {
	m, err := move.NewPlaceMoveFromString(0, coords, word, ld)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func commit(b *board.GameBoard, m *move.Move, res Result) {
	tiles := m.Tiles()
	for i, sq := range res.Squares {
		b.PlaceTile(sq.Row, sq.Col, tiles[i])
		b.UseBonus(sq.Row, sq.Col)
	}
}

func wordsOf(res Result) []string {
	ws := []string{}
	for _, w := range res.Words {
		ws = append(ws, w.Word)
	}
	return ws
}

func TestFirstPlayThroughCenter(t *testing.T) {
	is := is.New(t)
	v := NewValidator(testhelpers.TinyDictionary())
	b := board.NewCrosswordGameBoard()

	res := v.Validate(b, place(t, "8H", "CAT"))
	is.NoErr(res.Err)
	is.True(res.Valid)
	is.Equal(wordsOf(res), []string{"CAT"})
	is.Equal(res.Score, 10)
	is.True(!res.Bingo)
	is.Equal(res.Squares, []board.Position{{Row: 7, Col: 7}, {Row: 7, Col: 8}, {Row: 7, Col: 9}})

	res = v.Validate(b, place(t, "8F", "CAT"))
	is.NoErr(res.Err)
	is.Equal(res.Score, 10)

	// The board is never touched by validation.
	is.True(b.IsEmpty())
}

func TestFirstPlayMustCoverCenter(t *testing.T) {
	is := is.New(t)
	v := NewValidator(testhelpers.TinyDictionary())
	b := board.NewCrosswordGameBoard()

	res := v.Validate(b, place(t, "8A", "CAT"))
	is.True(errors.Is(res.Err, ErrMissesCenter))
	is.True(!res.Valid)
	is.Equal(len(res.Words), 0)

	res = v.Validate(b, place(t, "4D", "A"))
	is.True(errors.Is(res.Err, ErrMissesCenter))

	res = v.Validate(b, place(t, "8H", "A"))
	is.True(errors.Is(res.Err, ErrWordTooShort))
}

func TestExtendWithHook(t *testing.T) {
	is := is.New(t)
	b := board.NewCrosswordGameBoard()
	b.SetRow(7, "       CAT", ld)

	v := NewValidator(testhelpers.TinyDictionary())
	// Played vertically, but the longer run is across.
	m := place(t, "K8", "S")
	res := v.Validate(b, m)
	is.NoErr(res.Err)
	is.Equal(wordsOf(res), []string{"CATS"})
	is.Equal(res.Words[0].Direction, board.Horizontal)
	is.Equal(res.Words[0].Col, 7)
	is.Equal(res.Score, 6)

	noCats := NewValidator(gaddag.NewDictionary("nocats", []string{"CAT", "AT"}))
	res = noCats.Validate(b, m)
	is.True(errors.Is(res.Err, ErrInvalidWord))
	is.Equal(len(res.Words), 0)
}

func TestBingo(t *testing.T) {
	is := is.New(t)
	v := NewValidator(testhelpers.TinyDictionary())
	b := board.NewCrosswordGameBoard()

	res := v.Validate(b, place(t, "8H", "RETAINS"))
	is.NoErr(res.Err)
	is.True(res.Bingo)
	// R on the center and I on a double letter.
	is.Equal(res.Score, 66)

	res = v.Validate(b, place(t, "8G", "RETaINS"))
	is.NoErr(res.Err)
	// E lands on the center, N on the double letter and the blank is
	// worth nothing.
	is.Equal(res.Score, (1+1+1+0+1+2+1)*2+50)
}

func TestPremiumAppliesOnlyOnce(t *testing.T) {
	is := is.New(t)
	v := NewValidator(testhelpers.TinyDictionary())
	b := board.NewCrosswordGameBoard()

	m := place(t, "8G", "CAT")
	res := v.Validate(b, m)
	is.NoErr(res.Err)
	is.Equal(res.Score, 10)
	commit(b, m, res)

	// CATS runs through the spent center square.
	res = v.Validate(b, place(t, "8J", "S"))
	is.NoErr(res.Err)
	is.Equal(wordsOf(res), []string{"CATS"})
	is.Equal(res.Score, 6)
}

func TestCrossWordsScoreIndependently(t *testing.T) {
	is := is.New(t)
	v := NewValidator(testhelpers.TinyDictionary())
	b := board.NewCrosswordGameBoard()
	b.SetRow(7, "       CAT", ld)

	res := v.Validate(b, place(t, "7I", "HA"))
	is.NoErr(res.Err)
	is.Equal(wordsOf(res), []string{"HA", "HA", "AT"})
	// H sits on a double letter that counts in both words it makes.
	assert.Equal(t, []int{9, 9, 2}, []int{res.Words[0].Score, res.Words[1].Score, res.Words[2].Score})
	is.Equal(res.Score, 20)
}

func TestInvalidCrossWordRejectsWholeMove(t *testing.T) {
	is := is.New(t)
	v := NewValidator(testhelpers.TinyDictionary())
	b := board.NewCrosswordGameBoard()
	b.SetRow(7, "       CAT", ld)

	res := v.Validate(b, place(t, "9G", "ZA"))
	is.True(errors.Is(res.Err, ErrInvalidWord))
	is.Equal(res.Score, 0)
	is.Equal(len(res.Squares), 0)
}

func TestTilesFillGaps(t *testing.T) {
	is := is.New(t)
	v := NewValidator(testhelpers.TinyDictionary())
	b := board.NewCrosswordGameBoard()
	b.SetRow(7, "       A", ld)

	res := v.Validate(b, place(t, "8G", "C.T"))
	is.NoErr(res.Err)
	is.Equal(wordsOf(res), []string{"CAT"})
	is.Equal(res.Squares, []board.Position{{Row: 7, Col: 6}, {Row: 7, Col: 8}})
	is.Equal(res.Score, 5)
}

func TestPlacementErrors(t *testing.T) {
	v := NewValidator(testhelpers.TinyDictionary())
	b := board.NewCrosswordGameBoard()
	b.SetRow(7, "       CAT", ld)

	type errtest struct {
		name string
		m    *move.Move
		err  error
	}
	tests := []errtest{
		{"runs off the right edge", place(t, "12L", "RETAINS"), ErrOutOfBounds},
		{"runs off the bottom", place(t, "K12", "STAIN"), ErrOutOfBounds},
		{"starts off the board", move.NewPlaceMove(0, 15, 0, board.Horizontal, testhelpers.Tiles("AT")), ErrOutOfBounds},
		{"starts on a tile", place(t, "8H", "S"), ErrOverlap},
		{"not connected", place(t, "1A", "DOG"), ErrNotConnected},
		{"no tiles", move.NewPlaceMove(0, 0, 0, board.Horizontal, nil), ErrNoTiles},
		{"too many tiles", place(t, "1A", "RETAINSS"), ErrTooManyTiles},
		{"unassigned blank", move.NewPlaceMove(0, 7, 10, board.Horizontal, []tilemapping.Tile{tilemapping.NewBlank()}), ErrUnassignedBlank},
		{"not a play", move.NewPassMove(0), ErrNotAPlay},
		{"phony", place(t, "8K", "X"), ErrInvalidWord},
	}
	for _, tc := range tests {
		res := v.Validate(b, tc.m)
		if !errors.Is(res.Err, tc.err) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.err, res.Err)
		}
	}
}

func TestSingleTileTieBreak(t *testing.T) {
	is := is.New(t)
	v := NewValidator(testhelpers.TinyDictionary())
	b := board.NewCrosswordGameBoard()
	b.SetRow(7, "       A", ld)
	b.SetRow(8, "        T", ld)

	// AI across and IT down are both words; the move's direction decides.
	res := v.Validate(b, place(t, "I8", "I"))
	is.NoErr(res.Err)
	is.Equal(wordsOf(res), []string{"IT", "AI"})

	res = v.Validate(b, place(t, "8I", "I"))
	is.NoErr(res.Err)
	is.Equal(wordsOf(res), []string{"AI", "IT"})

	// TT is no word, so the whole move fails.
	res = v.Validate(b, place(t, "8I", "T"))
	is.True(errors.Is(res.Err, ErrInvalidWord))
}

func TestValidateMoveAttachesResult(t *testing.T) {
	is := is.New(t)
	v := NewValidator(testhelpers.TinyDictionary())
	b := board.NewCrosswordGameBoard()

	m := place(t, "8H", "CAT")
	is.NoErr(v.ValidateMove(b, m))
	is.True(m.Validated())
	is.Equal(m.Score(), 10)
	is.Equal(m.MainWord(), "CAT")

	bad := place(t, "8H", "CTA")
	is.True(errors.Is(v.ValidateMove(b, bad), ErrInvalidWord))
	is.True(!bad.Validated())
}
