package tilemapping

import (
	"encoding/binary"
	"fmt"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

// A Bag is the bag o'tiles!
type Bag struct {
	tiles              []Tile
	initialTiles       []Tile
	letterDistribution *LetterDistribution
	rng                *frand.RNG
}

// NewSeededRNG returns a deterministic generator, for tests and for
// reproducible computer-vs-computer runs.
func NewSeededRNG(seed uint64) *frand.RNG {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return frand.NewCustom(key[:], 1024, 12)
}

// NewBag creates a full, unshuffled bag for the distribution.
func NewBag(ld *LetterDistribution, rng *frand.RNG) *Bag {
	if rng == nil {
		rng = frand.New()
	}
	tiles := make([]Tile, 0, ld.NumTotalTiles())
	for idx := 0; idx < MaxAlphabetSize; idx++ {
		letter := IndexLetter(idx)
		for j := 0; j < ld.Count(letter); j++ {
			tiles = append(tiles, ld.TileFor(letter))
		}
	}
	initial := make([]Tile, len(tiles))
	copy(initial, tiles)
	return &Bag{
		tiles:              tiles,
		initialTiles:       initial,
		letterDistribution: ld,
		rng:                rng,
	}
}

// Shuffle puts the tiles in a uniformly random order.
func (b *Bag) Shuffle() {
	b.rng.Shuffle(len(b.tiles), func(i, j int) {
		b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
	})
}

// Draw draws at most n tiles from the bag. It can draw fewer if there
// are fewer tiles than n, and even draw no tiles at all :o
func (b *Bag) Draw(n int) []Tile {
	if n > len(b.tiles) {
		n = len(b.tiles)
	}
	if n <= 0 {
		return []Tile{}
	}
	start := len(b.tiles) - n
	drawn := make([]Tile, n)
	copy(drawn, b.tiles[start:])
	b.tiles = b.tiles[:start]
	log.Debug().Int("n", n).Int("remaining", len(b.tiles)).Msg("drew-tiles")
	return drawn
}

// Return puts tiles back in the bag and reshuffles it. Designated blanks
// go back as plain blanks.
func (b *Bag) Return(tiles []Tile) {
	if len(tiles) == 0 {
		return
	}
	for _, t := range tiles {
		b.tiles = append(b.tiles, t.Unassigned())
	}
	b.Shuffle()
}

// TilesRemaining returns the number of tiles still in the bag.
func (b *Bag) TilesRemaining() int {
	return len(b.tiles)
}

// Peek returns a copy of the bag's contents, in draw order reversed.
func (b *Bag) Peek() []Tile {
	ret := make([]Tile, len(b.tiles))
	copy(ret, b.tiles)
	return ret
}

// Refill refills the bag and shuffles it.
func (b *Bag) Refill() {
	b.tiles = make([]Tile, len(b.initialTiles))
	copy(b.tiles, b.initialTiles)
	b.Shuffle()
}

// RemoveTiles removes the given tiles from the bag, and returns an error
// if it can't. Nothing is removed on error.
func (b *Bag) RemoveTiles(tiles []Tile) error {
	want := CountsFromTiles(tiles)
	have := CountsFromTiles(b.tiles)
	for idx := range want {
		if want[idx] > have[idx] {
			return fmt.Errorf("cannot remove the tiles %v from the bag, as they are not in the bag",
				TilesString(tiles))
		}
	}
	remaining := b.tiles[:0]
	for _, t := range b.tiles {
		if want[t.Index()] > 0 {
			want[t.Index()]--
			continue
		}
		remaining = append(remaining, t)
	}
	b.tiles = remaining
	return nil
}

// LetterDistribution returns the distribution the bag was built from.
func (b *Bag) LetterDistribution() *LetterDistribution {
	return b.letterDistribution
}

// Copy copies to a new bag and returns it. The copy shares the random
// source.
func (b *Bag) Copy() *Bag {
	tiles := make([]Tile, len(b.tiles))
	copy(tiles, b.tiles)
	return &Bag{
		tiles:              tiles,
		initialTiles:       b.initialTiles,
		letterDistribution: b.letterDistribution,
		rng:                b.rng,
	}
}
