package tilemapping

import (
	"testing"

	"github.com/matryer/is"
)

func TestBag(t *testing.T) {
	is := is.New(t)

	ld := EnglishLetterDistribution()
	bag := ld.MakeBag(NewSeededRNG(1))
	is.Equal(bag.TilesRemaining(), 100)

	tileMap := make(map[rune]int)
	for bag.TilesRemaining() > 0 {
		drawn := bag.Draw(1)
		is.Equal(len(drawn), 1)
		tileMap[drawn[0].Letter]++
	}
	for idx := 0; idx < MaxAlphabetSize; idx++ {
		letter := IndexLetter(idx)
		if tileMap[letter] != ld.Count(letter) {
			t.Errorf("For %c, expected %v tiles, got %v", letter, ld.Count(letter), tileMap[letter])
		}
	}
	is.Equal(len(bag.Draw(1)), 0)
}

func TestDraw(t *testing.T) {
	is := is.New(t)

	bag := EnglishLetterDistribution().MakeBag(NewSeededRNG(2))
	drawn := bag.Draw(7)
	is.Equal(len(drawn), 7)
	is.Equal(bag.TilesRemaining(), 93)
}

func TestDrawAtMost(t *testing.T) {
	is := is.New(t)

	bag := EnglishLetterDistribution().MakeBag(NewSeededRNG(3))
	for i := 0; i < 14; i++ {
		is.Equal(len(bag.Draw(7)), 7)
	}
	is.Equal(bag.TilesRemaining(), 2)
	is.Equal(len(bag.Draw(7)), 2)
	is.Equal(bag.TilesRemaining(), 0)
	is.Equal(len(bag.Draw(7)), 0)
}

func TestDrawThenReturnRestoresCount(t *testing.T) {
	is := is.New(t)

	bag := EnglishLetterDistribution().MakeBag(NewSeededRNG(4))
	bag.Draw(10)
	before := bag.TilesRemaining()
	for _, n := range []int{0, 1, 5, 7, 200} {
		drawn := bag.Draw(n)
		bag.Return(drawn)
		is.Equal(bag.TilesRemaining(), before)
	}
}

func TestReturnUnassignsBlanks(t *testing.T) {
	is := is.New(t)

	ld := EnglishLetterDistribution()
	bag := NewBag(ld, NewSeededRNG(5))
	is.NoErr(bag.RemoveTiles([]Tile{NewBlank(), NewBlank()}))
	is.Equal(bag.TilesRemaining(), 98)

	bag.Return([]Tile{NewBlank().AssignBlank('e')})
	blanks := 0
	for _, tile := range bag.Peek() {
		if tile.Blank {
			is.Equal(tile.Letter, BlankToken)
			blanks++
		}
	}
	is.Equal(blanks, 1)
}

func TestRemoveTiles(t *testing.T) {
	is := is.New(t)

	ld := EnglishLetterDistribution()
	bag := NewBag(ld, NewSeededRNG(6))
	tiles, err := ToTiles("QZJXKQ", ld)
	is.NoErr(err)
	// only one Q in the bag.
	is.True(bag.RemoveTiles(tiles) != nil)
	is.Equal(bag.TilesRemaining(), 100)

	is.NoErr(bag.RemoveTiles(tiles[:5]))
	is.Equal(bag.TilesRemaining(), 95)
}

func TestSeededBagsAreReproducible(t *testing.T) {
	is := is.New(t)

	ld := EnglishLetterDistribution()
	b1 := ld.MakeBag(NewSeededRNG(42))
	b2 := ld.MakeBag(NewSeededRNG(42))
	is.Equal(TilesString(b1.Draw(20)), TilesString(b2.Draw(20)))
}
