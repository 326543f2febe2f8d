package gaddag

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/lexiplay/scrabble/board"
	"github.com/lexiplay/scrabble/tilemapping"
)

var littleLexicon = []string{
	"AT", "TA", "CAT", "CATS", "SCAT", "ACT", "ACTS", "TACO", "COAT",
	"COATS", "COT", "COTS", "OAT", "OATS", "STOA", "TOSS", "ZA", "QI",
	"CARE", "CARET", "RACE", "CRATE", "TRACE", "REACT",
}

func littleGaddag() *Gaddag {
	g := NewGaddag()
	for _, w := range littleLexicon {
		g.Insert(w)
	}
	return g
}

type testpair struct {
	word  string
	found bool
}

var containsTests = []testpair{
	{"CAT", true},
	{"CATS", true},
	{"CA", false},
	{"ATS", false},
	{"SCAT", true},
	{"TRACE", true},
	{"TRACES", false},
	{"QI", true},
	{"Q", false},
	{"", false},
	{"cat", false},
	{"ZAS", false},
}

func TestContains(t *testing.T) {
	g := littleGaddag()
	for _, pair := range containsTests {
		if g.Contains(pair.word) != pair.found {
			t.Errorf("For %v expected %v, got %v", pair.word, pair.found, !pair.found)
		}
	}
}

func TestInsertSkipsShortAndForeignWords(t *testing.T) {
	is := is.New(t)
	g := NewGaddag()
	g.Insert("A")
	g.Insert("CAFÉ")
	g.Insert("NO-GO")
	is.Equal(g.NumWords(), 0)
	is.Equal(g.NumNodes(), 1)
	g.Insert("OX")
	g.Insert("OX")
	is.Equal(g.NumWords(), 1)
	is.True(g.Contains("OX"))
}

func TestEveryRotationIsIndexed(t *testing.T) {
	g := littleGaddag()
	for _, w := range littleLexicon {
		for i := 0; i <= len(w); i++ {
			rack := tilemapping.CountsFromString(w[i:])
			words := g.WordsFromPartial(w[:i], rack, true)
			assert.Contains(t, words, w, "prefix %q of %q", w[:i], w)

			words = g.WordsFromPartial(w[i:], tilemapping.CountsFromString(w[:i]), false)
			assert.Contains(t, words, w, "suffix %q of %q", w[i:], w)
		}
	}
}

func TestHasInfix(t *testing.T) {
	is := is.New(t)
	g := littleGaddag()
	is.True(g.HasInfix("AT"))
	is.True(g.HasInfix("RAC"))
	is.True(g.HasInfix("Z"))
	is.True(!g.HasInfix("ZZ"))
	is.True(!g.HasInfix("TAR"))
}

func TestWordsFrom(t *testing.T) {
	g := littleGaddag()
	rack := tilemapping.CountsFromString("CTS")

	assert.Equal(t, []string{"ACT", "ACTS", "AT", "CAT", "CATS", "SCAT", "TA"},
		g.WordsFrom(rack, 'A', true, true))
	// Only words starting with the anchor.
	assert.Equal(t, []string{"ACT", "ACTS", "AT"}, g.WordsFrom(rack, 'A', false, true))
	// Only words ending with the anchor.
	assert.Equal(t, []string{"TA"}, g.WordsFrom(rack, 'A', true, false))
	assert.Empty(t, g.WordsFrom(rack, 'A', false, false))
	// The rack is untouched.
	assert.Equal(t, tilemapping.CountsFromString("CTS"), rack)
}

func TestWordsFromWithBlank(t *testing.T) {
	is := is.New(t)
	g := littleGaddag()
	words := g.WordsFrom(tilemapping.CountsFromString("?"), 'Q', false, true)
	is.Equal(words, []string{"QI"})
	words = g.WordsFrom(tilemapping.CountsFromString("T?"), 'O', true, true)
	is.Equal(words, []string{"COT", "OAT"})
}

func TestWordsFromPartial(t *testing.T) {
	g := littleGaddag()
	assert.Equal(t, []string{"COAT", "COATS", "COT", "COTS"},
		g.WordsFromPartial("CO", tilemapping.CountsFromString("ATSS"), true))
	assert.Equal(t, []string{"AT", "CAT", "COAT", "OAT"},
		g.WordsFromPartial("AT", tilemapping.CountsFromString("CO"), false))
	assert.Nil(t, g.WordsFromPartial("XY", tilemapping.CountsFromString("AEIOU"), true))
}

func TestFindValidWordsAt(t *testing.T) {
	is := is.New(t)
	g := littleGaddag()
	ld := tilemapping.EnglishLetterDistribution()
	b := board.NewCrosswordGameBoard()
	b.SetRow(7, "       CAT", ld)

	ps := g.FindValidWordsAt(b, 7, 10, tilemapping.CountsFromString("SE"), board.Horizontal)
	is.Equal(len(ps), 1)
	is.Equal(ps[0].Word, "CATS")
	is.Equal(ps[0].Start, board.Position{Row: 7, Col: 7})
	is.Equal(ps[0].Square, board.Position{Row: 7, Col: 10})

	ps = g.FindValidWordsAt(b, 7, 6, tilemapping.CountsFromString("S"), board.Horizontal)
	is.Equal(len(ps), 1)
	is.Equal(ps[0].Word, "SCAT")
	is.Equal(ps[0].Start, board.Position{Row: 7, Col: 6})

	// Occupied squares offer nothing.
	is.Equal(len(g.FindValidWordsAt(b, 7, 8, tilemapping.CountsFromString("?"), board.Horizontal)), 0)
}
