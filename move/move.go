package move

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lexiplay/scrabble/board"
	"github.com/lexiplay/scrabble/tilemapping"
)

// MoveType is a type of move; a play, an exchange or a pass.
type MoveType uint8

const (
	MoveTypePlay MoveType = iota
	MoveTypeExchange
	MoveTypePass
)

func (t MoveType) String() string {
	switch t {
	case MoveTypePlay:
		return "Play"
	case MoveTypeExchange:
		return "Exchange"
	case MoveTypePass:
		return "Pass"
	}
	return "UNHANDLED"
}

// PlayThroughMarker stands for a tile already on the board when a play is
// written out by hand, as in "8H C.T".
const PlayThroughMarker = '.'

// A FormedWord is one word created by a play, with its own score.
type FormedWord struct {
	Word      string
	Row       int
	Col       int
	Direction board.Direction
	Score     int
}

func (fw FormedWord) String() string {
	return fmt.Sprintf("%s (%d)", fw.Word, fw.Score)
}

// Move is a move. Only plays carry a position; the formed words, the score
// and the bingo flag are filled in by validation, never by the caller.
type Move struct {
	action MoveType
	player int
	row    int
	col    int
	dir    board.Direction
	tiles  []tilemapping.Tile
	leave  []tilemapping.Tile

	formedWords []FormedWord
	score       int
	bingo       bool
	validated   bool
}

var reVertical, reHorizontal *regexp.Regexp

func init() {
	reVertical = regexp.MustCompile(`^(?P<col>[A-Z])(?P<row>[0-9]+)$`)
	reHorizontal = regexp.MustCompile(`^(?P<row>[0-9]+)(?P<col>[A-Z])$`)
}

// NewPlaceMove creates an unvalidated play. The tiles are the new tiles
// only, in order along the line; squares that are already occupied are
// skipped over when they are laid down. A blank must already be assigned
// the letter it represents.
func NewPlaceMove(player int, row int, col int, dir board.Direction, tiles []tilemapping.Tile) *Move {
	return &Move{
		action: MoveTypePlay,
		player: player,
		row:    row,
		col:    col,
		dir:    dir,
		tiles:  append([]tilemapping.Tile(nil), tiles...),
	}
}

// NewPlaceMoveFromString creates a play from board game coordinates
// (8H is horizontal from row 8, column H; H8 is vertical) and a word.
// Lowercase letters are blanks and PlayThroughMarker skips a square that
// already holds a tile.
func NewPlaceMoveFromString(player int, coords string, word string,
	ld *tilemapping.LetterDistribution) (*Move, error) {

	row, col, vertical, err := ParseBoardGameCoords(coords)
	if err != nil {
		return nil, err
	}
	dir := board.Horizontal
	if vertical {
		dir = board.Vertical
	}
	pos := board.Position{Row: row, Col: col}
	skipped := 0
	for _, r := range word {
		if r != PlayThroughMarker {
			break
		}
		skipped++
	}
	pos = pos.Step(dir, skipped)
	tiles, err := tilemapping.ToTiles(strings.ReplaceAll(word, string(PlayThroughMarker), ""), ld)
	if err != nil {
		return nil, err
	}
	for _, t := range tiles {
		if !t.IsAssigned() {
			return nil, fmt.Errorf("blank in %q must be played as a lowercase letter", word)
		}
	}
	return NewPlaceMove(player, pos.Row, pos.Col, dir, tiles), nil
}

// NewExchangeMove creates an exchange of the given rack tiles.
func NewExchangeMove(player int, tiles []tilemapping.Tile) *Move {
	return &Move{
		action: MoveTypeExchange,
		player: player,
		tiles:  append([]tilemapping.Tile(nil), tiles...),
	}
}

// NewPassMove creates a pass.
func NewPassMove(player int) *Move {
	return &Move{
		action: MoveTypePass,
		player: player,
	}
}

// SetValidation attaches the outputs of a successful validation.
func (m *Move) SetValidation(words []FormedWord, score int, bingo bool) {
	m.formedWords = append([]FormedWord(nil), words...)
	m.score = score
	m.bingo = bingo
	m.validated = true
}

// ClearValidation drops any previously attached validation outputs.
func (m *Move) ClearValidation() {
	m.formedWords = nil
	m.score = 0
	m.bingo = false
	m.validated = false
}

// SetLeave records the tiles that stay on the rack after this move.
func (m *Move) SetLeave(leave []tilemapping.Tile) {
	m.leave = append([]tilemapping.Tile(nil), leave...)
}

// WithPlayer returns a copy of the move attributed to another player.
func (m *Move) WithPlayer(player int) *Move {
	cp := *m
	cp.player = player
	return &cp
}

func (m *Move) Action() MoveType { return m.action }
func (m *Move) Player() int      { return m.player }
func (m *Move) Score() int       { return m.score }
func (m *Move) Bingo() bool      { return m.bingo }
func (m *Move) Validated() bool  { return m.validated }

func (m *Move) Tiles() []tilemapping.Tile {
	return append([]tilemapping.Tile(nil), m.tiles...)
}

func (m *Move) Leave() []tilemapping.Tile {
	return append([]tilemapping.Tile(nil), m.leave...)
}

func (m *Move) FormedWords() []FormedWord {
	return append([]FormedWord(nil), m.formedWords...)
}

// TilesPlayed returns the number of tiles played or exchanged by this move.
func (m *Move) TilesPlayed() int {
	return len(m.tiles)
}

func (m *Move) Position() board.Position {
	return board.Position{Row: m.row, Col: m.col}
}

func (m *Move) Direction() board.Direction {
	return m.dir
}

func (m *Move) CoordsAndVertical() (int, int, bool) {
	return m.row, m.col, m.dir == board.Vertical
}

// BoardCoords is the position of the first new tile in board game notation.
func (m *Move) BoardCoords() string {
	return ToBoardGameCoords(m.row, m.col, m.dir == board.Vertical)
}

func (m *Move) TilesString() string {
	return tilemapping.TilesString(m.tiles)
}

// MainWord is the first formed word, if the move has been validated.
func (m *Move) MainWord() string {
	if len(m.formedWords) == 0 {
		return ""
	}
	return m.formedWords[0].Word
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (m *Move) ShortDescription() string {
	switch m.action {
	case MoveTypePlay:
		if w := m.MainWord(); w != "" {
			return fmt.Sprintf("%v %v (%v)", m.BoardCoords(), m.TilesString(), w)
		}
		return fmt.Sprintf("%v %v", m.BoardCoords(), m.TilesString())
	case MoveTypePass:
		return "(Pass)"
	case MoveTypeExchange:
		return fmt.Sprintf("(exch %v)", m.TilesString())
	}
	return "UNHANDLED"
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	switch m.action {
	case MoveTypePlay:
		return fmt.Sprintf("<action: play player: %d word: %v %v score: %v tp: %v words: %v>",
			m.player, m.BoardCoords(), m.TilesString(), m.score, len(m.tiles), m.formedWords)
	case MoveTypePass:
		return fmt.Sprintf("<action: pass player: %d>", m.player)
	case MoveTypeExchange:
		return fmt.Sprintf("<action: exchange player: %d tiles: %v>", m.player, m.TilesString())
	}
	return "<Unhandled move>"
}

// ToBoardGameCoords converts the row, col, and orientation of the play to
// a coordinate like 5F or G4.
func ToBoardGameCoords(row int, col int, vertical bool) string {
	colCoords := string(rune('A' + col))
	rowCoords := strconv.Itoa(row + 1)
	if vertical {
		return colCoords + rowCoords
	}
	return rowCoords + colCoords
}

// FromBoardGameCoords does the inverse operation of ToBoardGameCoords above.
// Unparseable coordinates come back as (0, 0, false).
func FromBoardGameCoords(c string) (int, int, bool) {
	row, col, vertical, err := ParseBoardGameCoords(c)
	if err != nil {
		return 0, 0, false
	}
	return row, col, vertical
}

// ParseBoardGameCoords is FromBoardGameCoords with an error for bad input.
func ParseBoardGameCoords(c string) (int, int, bool, error) {
	c = strings.ToUpper(strings.TrimSpace(c))
	if vMatches := reVertical.FindStringSubmatch(c); len(vMatches) == 3 {
		row, _ := strconv.Atoi(vMatches[2])
		return row - 1, int(vMatches[1][0] - 'A'), true, nil
	}
	if hMatches := reHorizontal.FindStringSubmatch(c); len(hMatches) == 3 {
		row, _ := strconv.Atoi(hMatches[1])
		return row - 1, int(hMatches[2][0] - 'A'), false, nil
	}
	return 0, 0, false, fmt.Errorf("cannot parse coordinates %q", c)
}
