// Package tilemapping holds the tile-level data model: tiles, the letter
// distribution, racks and the bag.
package tilemapping

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	// BlankToken is the user-friendly representation of an unassigned blank.
	BlankToken = '?'
	// NumLetters is the size of the A-Z alphabet.
	NumLetters = 26
	// BlankIdx is the index of the blank in a LetterCounts array.
	BlankIdx = NumLetters
	// MaxAlphabetSize is the number of distinct tile kinds: A-Z plus the blank.
	MaxAlphabetSize = NumLetters + 1
)

// A Tile is a single game tile. A blank that has been played carries the
// letter it was designated as, but it is still worth zero points.
type Tile struct {
	Letter rune
	Value  int
	Blank  bool
}

// NewTile creates a regular lettered tile.
func NewTile(letter rune, value int) Tile {
	return Tile{Letter: letter, Value: value}
}

// NewBlank creates an unassigned blank tile.
func NewBlank() Tile {
	return Tile{Letter: BlankToken, Blank: true}
}

// AssignBlank returns a copy of the blank designated as the given letter.
// It has no effect on a non-blank tile.
func (t Tile) AssignBlank(letter rune) Tile {
	if !t.Blank {
		return t
	}
	return Tile{Letter: unicode.ToUpper(letter), Blank: true}
}

// Unassigned returns the blank back in its pristine, undesignated state.
func (t Tile) Unassigned() Tile {
	if !t.Blank {
		return t
	}
	return NewBlank()
}

// IsAssigned is true for regular tiles and for blanks that have a letter.
func (t Tile) IsAssigned() bool {
	return IsLetter(t.Letter)
}

// Matches returns true if the two tiles are interchangeable on a rack: two
// blanks always match, regardless of their designation.
func (t Tile) Matches(o Tile) bool {
	if t.Blank || o.Blank {
		return t.Blank && o.Blank
	}
	return t.Letter == o.Letter
}

// Index is the tile's slot in a LetterCounts array.
func (t Tile) Index() int {
	if t.Blank {
		return BlankIdx
	}
	return LetterIndex(t.Letter)
}

// String shows designated blanks in lowercase.
func (t Tile) String() string {
	if t.Blank && t.IsAssigned() {
		return string(unicode.ToLower(t.Letter))
	}
	return string(t.Letter)
}

// IsLetter returns true for the uppercase letters A-Z.
func IsLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// LetterIndex maps A-Z to 0-25 and the blank token to BlankIdx. Anything
// else returns -1.
func LetterIndex(r rune) int {
	switch {
	case IsLetter(r):
		return int(r - 'A')
	case r == BlankToken:
		return BlankIdx
	}
	return -1
}

// IndexLetter is the inverse of LetterIndex.
func IndexLetter(idx int) rune {
	if idx == BlankIdx {
		return BlankToken
	}
	return rune('A' + idx)
}

// TilesString renders a list of tiles, designated blanks in lowercase.
func TilesString(tiles []Tile) string {
	var sb strings.Builder
	for _, t := range tiles {
		sb.WriteString(t.String())
	}
	return sb.String()
}

// Word returns the letters the tiles spell, uppercase.
func Word(tiles []Tile) string {
	rs := make([]rune, len(tiles))
	for i, t := range tiles {
		rs[i] = t.Letter
	}
	return string(rs)
}

// ToTiles converts a user string into tiles. Uppercase letters are regular
// tiles, lowercase letters are designated blanks and '?' is an unassigned
// blank.
func ToTiles(word string, ld *LetterDistribution) ([]Tile, error) {
	tiles := make([]Tile, 0, len(word))
	for _, r := range word {
		switch {
		case IsLetter(r):
			tiles = append(tiles, ld.TileFor(r))
		case r == BlankToken:
			tiles = append(tiles, NewBlank())
		case r >= 'a' && r <= 'z':
			tiles = append(tiles, NewBlank().AssignBlank(r))
		default:
			return nil, fmt.Errorf("cannot convert %q to a tile", r)
		}
	}
	return tiles, nil
}
