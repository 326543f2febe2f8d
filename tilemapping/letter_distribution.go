package tilemapping

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"lukechampine.com/frand"
)

// englishDistribution is the standard 100-tile English set.
// letter,quantity,value,vowel
const englishDistribution = `A,9,1,1
B,2,3,0
C,2,3,0
D,4,2,0
E,12,1,1
F,2,4,0
G,3,2,0
H,2,4,0
I,9,1,1
J,1,8,0
K,1,5,0
L,4,1,0
M,2,3,0
N,6,1,0
O,8,1,1
P,2,3,0
Q,1,10,0
R,6,1,0
S,4,1,0
T,6,1,0
U,4,1,1
V,2,4,0
W,2,4,0
X,1,8,0
Y,2,4,0
Z,1,10,0
?,2,0,0
`

// LetterDistribution encodes the tile distribution for the relevant game.
type LetterDistribution struct {
	Name         string
	Vowels       []rune
	distribution [MaxAlphabetSize]uint8
	scores       [MaxAlphabetSize]int
	numLetters   int
}

// ScanLetterDistribution reads a distribution in CSV form, one
// letter,quantity,value,vowel record per line.
func ScanLetterDistribution(name string, data io.Reader) (*LetterDistribution, error) {
	r := csv.NewReader(data)
	ld := &LetterDistribution{Name: name}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) != 4 {
			return nil, fmt.Errorf("bad distribution record: %v", record)
		}
		letter := []rune(strings.TrimSpace(record[0]))
		if len(letter) != 1 || LetterIndex(letter[0]) < 0 {
			return nil, fmt.Errorf("unsupported letter in distribution: %q", record[0])
		}
		idx := LetterIndex(letter[0])
		n, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, err
		}
		s, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, err
		}
		if letter[0] == BlankToken {
			s = 0
		}
		ld.distribution[idx] = uint8(n)
		ld.scores[idx] = s
		ld.numLetters += n
		if record[3] == "1" {
			ld.Vowels = append(ld.Vowels, letter[0])
		}
	}
	return ld, nil
}

// EnglishLetterDistribution returns the standard English distribution.
func EnglishLetterDistribution() *LetterDistribution {
	ld, err := ScanLetterDistribution("english", strings.NewReader(englishDistribution))
	if err != nil {
		panic(err)
	}
	return ld
}

// Score returns the point value of a letter. The blank is always 0.
func (ld *LetterDistribution) Score(letter rune) int {
	idx := LetterIndex(letter)
	if idx < 0 {
		return 0
	}
	return ld.scores[idx]
}

// Count returns how many of the given letter the full set contains.
func (ld *LetterDistribution) Count(letter rune) int {
	idx := LetterIndex(letter)
	if idx < 0 {
		return 0
	}
	return int(ld.distribution[idx])
}

// TileFor makes a regular tile for a letter, or an unassigned blank for
// the blank token.
func (ld *LetterDistribution) TileFor(letter rune) Tile {
	if letter == BlankToken {
		return NewBlank()
	}
	return NewTile(letter, ld.Score(letter))
}

// IsVowel returns whether the letter is a vowel in this distribution.
func (ld *LetterDistribution) IsVowel(letter rune) bool {
	for _, v := range ld.Vowels {
		if v == letter {
			return true
		}
	}
	return false
}

// NumTotalTiles is the size of a full bag.
func (ld *LetterDistribution) NumTotalTiles() int {
	return ld.numLetters
}

// WordScore sums the face value of the tiles.
func (ld *LetterDistribution) WordScore(tiles []Tile) int {
	s := 0
	for _, t := range tiles {
		if !t.Blank {
			s += ld.Score(t.Letter)
		}
	}
	return s
}

// MakeBag returns a full, shuffled bag. A nil rng uses a fresh
// cryptographically-seeded generator.
func (ld *LetterDistribution) MakeBag(rng *frand.RNG) *Bag {
	b := NewBag(ld, rng)
	b.Shuffle()
	return b
}
