package board

import (
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/lexiplay/scrabble/tilemapping"
)

func TestStandardLayout(t *testing.T) {
	is := is.New(t)
	b := NewCrosswordGameBoard()
	is.Equal(b.Dim(), 15)
	is.Equal(b.Center(), Position{Row: 7, Col: 7})
	is.Equal(b.GetBonus(7, 7), BonusCenter)
	is.Equal(b.GetBonus(0, 0), Bonus3WS)
	is.Equal(b.GetBonus(1, 1), Bonus2WS)
	is.Equal(b.GetBonus(1, 5), Bonus3LS)
	is.Equal(b.GetBonus(0, 3), Bonus2LS)
	is.Equal(b.GetBonus(0, 1), NoBonus)
	is.True(b.IsEmpty())

	counts := map[BonusSquare]int{}
	for r := 0; r < 15; r++ {
		for c := 0; c < 15; c++ {
			counts[b.GetBonus(r, c)]++
		}
	}
	is.Equal(counts[Bonus3WS], 8)
	is.Equal(counts[Bonus2WS], 16)
	is.Equal(counts[Bonus3LS], 12)
	is.Equal(counts[Bonus2LS], 24)
	is.Equal(counts[BonusCenter], 1)
}

func TestPremiumIsSpentOnce(t *testing.T) {
	is := is.New(t)
	b := NewCrosswordGameBoard()
	sq := b.GetSquare(0, 0)
	is.Equal(sq.WordMultiplier(), 3)
	is.Equal(sq.LetterMultiplier(), 1)
	b.UseBonus(0, 0)
	is.Equal(sq.WordMultiplier(), 1)
	b.UseBonus(0, 0)
	is.Equal(sq.WordMultiplier(), 1)
	is.Equal(sq.Bonus(), Bonus3WS)

	cp := b.Copy()
	is.True(!cp.GetSquare(0, 0).PremiumActive())
	is.True(cp.GetSquare(14, 14).PremiumActive())
}

func TestWordRuns(t *testing.T) {
	is := is.New(t)
	ld := tilemapping.EnglishLetterDistribution()
	b := NewCrosswordGameBoard()
	b.SetRow(7, "       HOUSE", ld)
	b.SetCol(9, "      p N", ld)

	is.Equal(b.TilesPlayed(), 7)
	h := b.HorizontalWord(7, 10)
	is.Equal(h.String(), "HOUSE")
	is.Equal(h.Start, Position{Row: 7, Col: 7})

	v := b.VerticalWord(7, 9)
	is.Equal(v.String(), "PUN")
	is.Equal(v.Start, Position{Row: 6, Col: 9})
	is.Equal(v.Len(), 3)
	is.True(v.Tiles[0].Blank)
	is.Equal(v.Positions()[2], Position{Row: 8, Col: 9})

	empty := b.HorizontalWord(0, 0)
	is.Equal(empty.Len(), 0)
}

func TestCopyIsIndependent(t *testing.T) {
	is := is.New(t)
	ld := tilemapping.EnglishLetterDistribution()
	b := NewCrosswordGameBoard()
	cp := b.Copy()
	cp.PlaceTile(7, 7, ld.TileFor('A'))
	is.True(b.IsEmpty())
	is.True(!cp.IsEmpty())
	is.True(!b.HasTile(7, 7))
	is.True(!b.HasTile(-1, 3))
	is.True(!b.HasTile(15, 3))
}

func TestDisplayText(t *testing.T) {
	is := is.New(t)
	ColorSupport = false
	defer func() { ColorSupport = true }()
	ld := tilemapping.EnglishLetterDistribution()
	b := NewCrosswordGameBoard()
	b.SetRow(7, "       Hi", ld)
	txt := b.ToDisplayText()
	is.True(strings.Contains(txt, "A B C D"))
	is.True(strings.Contains(txt, " 8|"))
	is.True(strings.Contains(txt, "H i"))
}
