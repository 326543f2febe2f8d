package move

import (
	"testing"

	"github.com/matryer/is"

	"github.com/lexiplay/scrabble/board"
	"github.com/lexiplay/scrabble/tilemapping"
)

type coordTestStruct struct {
	row      int
	col      int
	vertical bool
	output   string
}

var coordTests = []coordTestStruct{
	{0, 0, false, "1A"},
	{0, 0, true, "A1"},
	{14, 14, false, "15O"},
	{14, 14, true, "O15"},
	{9, 8, false, "10I"},
	{9, 8, true, "I10"},
	{1, 7, false, "2H"},
	{1, 7, true, "H2"},
}

func TestToBoardGameCoords(t *testing.T) {
	for _, tc := range coordTests {
		calc := ToBoardGameCoords(tc.row, tc.col, tc.vertical)
		if calc != tc.output {
			t.Errorf("For row=%v col=%v vertical=%v got %v, expected %v",
				tc.row, tc.col, tc.vertical, calc, tc.output)
		}
	}
}

func TestFromBoardGameCoords(t *testing.T) {
	for _, tc := range coordTests {
		row, col, vertical := FromBoardGameCoords(tc.output)
		if row != tc.row || col != tc.col || vertical != tc.vertical {
			t.Errorf("For coord %v expected (%v, %v, %v) got (%v, %v, %v)",
				tc.output, tc.row, tc.col, tc.vertical, row, col, vertical)
		}
	}
}

func TestParseBadCoords(t *testing.T) {
	is := is.New(t)
	_, _, _, err := ParseBoardGameCoords("H")
	is.True(err != nil)
	_, _, _, err = ParseBoardGameCoords("8H8")
	is.True(err != nil)
	row, col, vertical, err := ParseBoardGameCoords("8h")
	is.NoErr(err)
	is.Equal(row, 7)
	is.Equal(col, 7)
	is.True(!vertical)
}

func TestPlaceMoveFromString(t *testing.T) {
	is := is.New(t)
	ld := tilemapping.EnglishLetterDistribution()

	m, err := NewPlaceMoveFromString(1, "H8", "..Ts", ld)
	is.NoErr(err)
	is.Equal(m.Action(), MoveTypePlay)
	is.Equal(m.Player(), 1)
	is.Equal(m.Position(), board.Position{Row: 9, Col: 7})
	is.Equal(m.Direction(), board.Vertical)
	is.Equal(m.TilesString(), "Ts")
	is.Equal(m.TilesPlayed(), 2)
	is.True(m.Tiles()[1].Blank)
	is.Equal(m.Tiles()[1].Value, 0)
	is.True(!m.Validated())
	row, col, vertical := m.CoordsAndVertical()
	is.Equal([]int{row, col}, []int{9, 7})
	is.True(vertical)

	m, err = NewPlaceMoveFromString(0, "8D", "C.T", ld)
	is.NoErr(err)
	is.Equal(m.Position(), board.Position{Row: 7, Col: 3})
	is.Equal(m.TilesString(), "CT")
	is.Equal(m.BoardCoords(), "8D")

	_, err = NewPlaceMoveFromString(0, "8D", "C?T", ld)
	is.True(err != nil)
	_, err = NewPlaceMoveFromString(0, "8D", "C4T", ld)
	is.True(err != nil)
}

func TestValidationOutputs(t *testing.T) {
	is := is.New(t)
	ld := tilemapping.EnglishLetterDistribution()
	m, err := NewPlaceMoveFromString(0, "8G", "CAT", ld)
	is.NoErr(err)
	is.Equal(m.ShortDescription(), "8G CAT")

	m.SetValidation([]FormedWord{{Word: "CAT", Row: 7, Col: 6, Score: 10}}, 10, false)
	is.True(m.Validated())
	is.Equal(m.Score(), 10)
	is.Equal(m.MainWord(), "CAT")
	is.Equal(m.ShortDescription(), "8G CAT (CAT)")

	m.ClearValidation()
	is.Equal(m.Score(), 0)
	is.Equal(len(m.FormedWords()), 0)
}

func TestNonPlayDescriptions(t *testing.T) {
	is := is.New(t)
	ld := tilemapping.EnglishLetterDistribution()
	tiles, err := tilemapping.ToTiles("QV?", ld)
	is.NoErr(err)
	exch := NewExchangeMove(0, tiles)
	is.Equal(exch.ShortDescription(), "(exch QV?)")
	is.Equal(exch.TilesPlayed(), 3)
	is.Equal(NewPassMove(1).ShortDescription(), "(Pass)")
	is.Equal(NewPassMove(1).WithPlayer(0).Player(), 0)
}
