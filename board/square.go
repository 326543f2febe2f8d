package board

import (
	"fmt"
	"os"

	"github.com/lexiplay/scrabble/tilemapping"
)

var (
	ColorSupport = os.Getenv("SCRABBLE_DISABLE_COLOR") != "on"
)

// A BonusSquare is a bonus square (duh)
type BonusSquare rune

const (
	NoBonus BonusSquare = ' '
	// Bonus3WS is a triple word score
	Bonus3WS BonusSquare = '='
	// Bonus3LS is a triple letter score
	Bonus3LS BonusSquare = '"'
	// Bonus2LS is a double letter score
	Bonus2LS BonusSquare = '\''
	// Bonus2WS is a double word score
	Bonus2WS BonusSquare = '-'
	// BonusCenter is the start square. It doubles the word.
	BonusCenter BonusSquare = '*'
)

func (b BonusSquare) String() string {
	switch b {
	case Bonus3WS:
		return "TRIPLE_WORD"
	case Bonus3LS:
		return "TRIPLE_LETTER"
	case Bonus2LS:
		return "DOUBLE_LETTER"
	case Bonus2WS:
		return "DOUBLE_WORD"
	case BonusCenter:
		return "CENTER"
	}
	return "NONE"
}

func (b BonusSquare) letterMultiplier() int {
	switch b {
	case Bonus2LS:
		return 2
	case Bonus3LS:
		return 3
	}
	return 1
}

func (b BonusSquare) wordMultiplier() int {
	switch b {
	case Bonus2WS, BonusCenter:
		return 2
	case Bonus3WS:
		return 3
	}
	return 1
}

func (b BonusSquare) displayString() string {
	if !ColorSupport {
		return string(b)
	}
	switch b {
	case Bonus3WS:
		return fmt.Sprintf("\033[31m%s\033[0m", string(b))
	case Bonus2WS, BonusCenter:
		return fmt.Sprintf("\033[35m%s\033[0m", string(b))
	case Bonus3LS:
		return fmt.Sprintf("\033[34m%s\033[0m", string(b))
	case Bonus2LS:
		return fmt.Sprintf("\033[36m%s\033[0m", string(b))
	default:
		return " "
	}
}

// PremiumState tracks whether a square's bonus is still live. A bonus is
// spent by the first tile ever placed on the square and never comes back.
type PremiumState uint8

const (
	PremiumActive PremiumState = iota
	PremiumSpent
)

// A Square is a single square in a game board. It contains the bonus
// marking, the tile on it if any, and whether its bonus is spent.
type Square struct {
	row     int
	col     int
	bonus   BonusSquare
	premium PremiumState
	tile    *tilemapping.Tile
}

func (s Square) String() string {
	if s.tile == nil {
		return fmt.Sprintf("<(%d,%d) (%v)>", s.row, s.col, s.bonus)
	}
	return fmt.Sprintf("<(%d,%d) %v (%v)>", s.row, s.col, s.tile, s.bonus)
}

func (s *Square) Row() int { return s.row }
func (s *Square) Col() int { return s.col }

// Bonus returns the printed premium of the square, spent or not.
func (s *Square) Bonus() BonusSquare {
	return s.bonus
}

// PremiumActive is true until the first tile lands on a premium square.
func (s *Square) PremiumActive() bool {
	return s.bonus != NoBonus && s.premium == PremiumActive
}

// UseBonus spends the square's premium. Calling it again is a no-op.
func (s *Square) UseBonus() {
	s.premium = PremiumSpent
}

// LetterMultiplier is the letter multiplier a newly placed tile would get.
func (s *Square) LetterMultiplier() int {
	if !s.PremiumActive() {
		return 1
	}
	return s.bonus.letterMultiplier()
}

// WordMultiplier is the word multiplier a newly placed tile would get.
func (s *Square) WordMultiplier() int {
	if !s.PremiumActive() {
		return 1
	}
	return s.bonus.wordMultiplier()
}

// Tile returns the tile on the square, if any.
func (s *Square) Tile() (tilemapping.Tile, bool) {
	if s.tile == nil {
		return tilemapping.Tile{}, false
	}
	return *s.tile, true
}

func (s *Square) IsEmpty() bool {
	return s.tile == nil
}

func (s *Square) setTile(t tilemapping.Tile) {
	tc := t
	s.tile = &tc
}

func (s *Square) copyFrom(s2 *Square) {
	s.row = s2.row
	s.col = s2.col
	s.bonus = s2.bonus
	s.premium = s2.premium
	if s2.tile != nil {
		s.setTile(*s2.tile)
	} else {
		s.tile = nil
	}
}

// DisplayString shows the tile, or the bonus marking if the square is empty.
func (s Square) DisplayString() string {
	if s.tile != nil {
		return s.tile.String()
	}
	if s.bonus != NoBonus && s.premium == PremiumActive {
		return s.bonus.displayString()
	}
	return " "
}
