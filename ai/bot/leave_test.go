package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lexiplay/scrabble/testhelpers"
	"github.com/lexiplay/scrabble/tilemapping"
)

func tiles(s string) []tilemapping.Tile {
	return testhelpers.Tiles(s)
}

func TestWeakestTiles(t *testing.T) {
	for _, tc := range []struct {
		rack, want string
	}{
		{"AEIOUUQ", "AEIOUUQ"},
		{"AERSTQ?", "Q"},
		// Nothing is bad, so the single worst tile goes.
		{"AEIRST?", "A"},
		{"VVWWKKQ", "VVWWKKQ"},
	} {
		got := tilemapping.TilesString(WeakestTiles(tiles(tc.rack)))
		assert.Equal(t, tc.want, got, tc.rack)
	}
	assert.Empty(t, WeakestTiles(tiles("??")))
}

func TestKeepValue(t *testing.T) {
	rack := tiles("SQZAE?T")
	s, q, blank := rack[0], rack[1], rack[5]
	assert.Greater(t, KeepValue(blank, rack), KeepValue(s, rack))
	assert.Greater(t, KeepValue(s, rack), KeepValue(q, rack))
	assert.Less(t, KeepValue(q, rack), 0.0)
}
