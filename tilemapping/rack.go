package tilemapping

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// RackTileLimit is the capacity of a rack.
const RackTileLimit = 7

var (
	ErrRackFull      = errors.New("rack is full")
	ErrTileNotInRack = errors.New("tile not in rack")
)

// Rack is a player's hand. It keeps tiles in the order they were added.
type Rack struct {
	tiles []Tile
}

// NewRack creates a brand new, empty rack.
func NewRack() *Rack {
	return &Rack{tiles: make([]Tile, 0, RackTileLimit)}
}

// RackFromString creates a Rack from a string; '?' is a blank.
func RackFromString(rack string, ld *LetterDistribution) (*Rack, error) {
	tiles, err := ToTiles(rack, ld)
	if err != nil {
		return nil, err
	}
	r := NewRack()
	if err := r.Add(lo.Map(tiles, func(t Tile, _ int) Tile { return t.Unassigned() })...); err != nil {
		return nil, err
	}
	return r, nil
}

// String returns a user-visible version of this rack.
func (r *Rack) String() string {
	return TilesString(r.tiles)
}

// Copy returns a deep copy of this rack
func (r *Rack) Copy() *Rack {
	n := &Rack{tiles: make([]Tile, len(r.tiles), RackTileLimit)}
	copy(n.tiles, r.tiles)
	return n
}

// Add puts tiles on the rack. Nothing is added if the rack would overflow.
func (r *Rack) Add(tiles ...Tile) error {
	if len(r.tiles)+len(tiles) > RackTileLimit {
		return fmt.Errorf("%w: have %d, adding %d", ErrRackFull, len(r.tiles), len(tiles))
	}
	for _, t := range tiles {
		r.tiles = append(r.tiles, t.Unassigned())
	}
	return nil
}

// Remove takes the given tiles off the rack. Blanks match any blank, no
// matter what letter they were designated as. If any tile can't be
// matched the rack is left untouched.
func (r *Rack) Remove(tiles ...Tile) error {
	remaining := make([]Tile, len(r.tiles))
	copy(remaining, r.tiles)
	for _, t := range tiles {
		idx := indexOfMatch(remaining, t)
		if idx < 0 {
			return fmt.Errorf("%w: %v", ErrTileNotInRack, t)
		}
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	r.tiles = remaining
	return nil
}

func indexOfMatch(tiles []Tile, t Tile) int {
	for i, o := range tiles {
		if o.Matches(t) {
			return i
		}
	}
	return -1
}

// Has returns whether all the given tiles are on the rack.
func (r *Rack) Has(tiles ...Tile) bool {
	have := r.Counts()
	for _, t := range tiles {
		idx := t.Index()
		if idx < 0 || !have.Has(idx) {
			return false
		}
		have.Take(idx)
	}
	return true
}

// Set replaces the rack's contents.
func (r *Rack) Set(tiles []Tile) error {
	r.Clear()
	return r.Add(tiles...)
}

// Clear empties the rack.
func (r *Rack) Clear() {
	r.tiles = r.tiles[:0]
}

// Tiles returns a copy of the tiles on the rack, in order.
func (r *Rack) Tiles() []Tile {
	ret := make([]Tile, len(r.tiles))
	copy(ret, r.tiles)
	return ret
}

// NumTiles returns the current number of tiles on this rack.
func (r *Rack) NumTiles() int {
	return len(r.tiles)
}

func (r *Rack) Empty() bool {
	return len(r.tiles) == 0
}

// ScoreOn returns the total score of the tiles on this rack.
func (r *Rack) ScoreOn() int {
	return lo.SumBy(r.tiles, func(t Tile) int {
		if t.Blank {
			return 0
		}
		return t.Value
	})
}

// Counts returns the per-letter tile counts.
func (r *Rack) Counts() LetterCounts {
	return CountsFromTiles(r.tiles)
}
