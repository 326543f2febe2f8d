package bot

import (
	"sort"

	"github.com/samber/lo"

	"github.com/lexiplay/scrabble/tilemapping"
)

// Rough worth of keeping a tile, tuned by hand. Positive keeps it,
// negative throws it back.
const (
	blankKeep     = 25.0
	sKeep         = 8.0
	duplicateCost = 4.0
	valueCost     = 1.5
	vowelGlut     = 3.0
	consonantGlut = 2.0
	// Letters worth this much or more are hard to place without the right
	// board.
	rareValue = 8
	rareCost  = 4.0
	qCost     = 6.0
)

func isVowel(r rune) bool {
	switch r {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

// KeepValue scores how much a tile helps the rest of the rack.
func KeepValue(t tilemapping.Tile, rack []tilemapping.Tile) float64 {
	if t.Blank {
		return blankKeep
	}
	v := 1.0
	if t.Letter == 'S' {
		v += sKeep
	}
	v -= valueCost * float64(t.Value-1)
	if t.Value >= rareValue {
		v -= rareCost
	}
	if t.Letter == 'Q' && !lo.ContainsBy(rack, func(o tilemapping.Tile) bool { return o.Letter == 'U' }) {
		v -= qCost
	}
	same := lo.CountBy(rack, func(o tilemapping.Tile) bool { return !o.Blank && o.Letter == t.Letter })
	if same > 1 {
		v -= duplicateCost * float64(same-1)
	}
	vowels := lo.CountBy(rack, func(o tilemapping.Tile) bool { return !o.Blank && isVowel(o.Letter) })
	consonants := lo.CountBy(rack, func(o tilemapping.Tile) bool { return !o.Blank && !isVowel(o.Letter) })
	if isVowel(t.Letter) && vowels > consonants+1 {
		v -= vowelGlut
	}
	if !isVowel(t.Letter) && consonants > vowels+2 {
		v -= consonantGlut
	}
	return v
}

// WeakestTiles picks the tiles to throw back: every tile with a negative
// keep value, or failing that the single worst one. Blanks are never
// thrown back. The result is in rack order.
func WeakestTiles(rack []tilemapping.Tile) []tilemapping.Tile {
	type scored struct {
		idx int
		v   float64
	}
	ss := lo.FilterMap(rack, func(t tilemapping.Tile, i int) (scored, bool) {
		return scored{i, KeepValue(t, rack)}, !t.Blank
	})
	if len(ss) == 0 {
		return nil
	}
	weak := lo.Filter(ss, func(s scored, _ int) bool { return s.v < 0 })
	if len(weak) == 0 {
		sort.SliceStable(ss, func(i, j int) bool { return ss[i].v < ss[j].v })
		weak = ss[:1]
	}
	sort.Slice(weak, func(i, j int) bool { return weak[i].idx < weak[j].idx })
	return lo.Map(weak, func(s scored, _ int) tilemapping.Tile { return rack[s.idx] })
}
