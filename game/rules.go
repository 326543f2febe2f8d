package game

import (
	"fmt"

	"github.com/lexiplay/scrabble/board"
	"github.com/lexiplay/scrabble/gaddag"
	"github.com/lexiplay/scrabble/tilemapping"
	"github.com/lexiplay/scrabble/validation"
)

// Rules is a simple struct that encapsulates the instantiated objects
// needed to actually play a game. A Rules value is read-only and can be
// shared by any number of games.
type Rules struct {
	dictionary *gaddag.Dictionary
	dist       *tilemapping.LetterDistribution
	layout     []string
	boardName  string
	validator  *validation.Validator
}

// NewRules builds rules from a dictionary, a letter distribution and a
// board layout name. A nil distribution means the English one.
func NewRules(dict *gaddag.Dictionary, dist *tilemapping.LetterDistribution,
	boardLayoutName string) (*Rules, error) {

	if dict == nil {
		return nil, fmt.Errorf("a dictionary is required")
	}
	if dist == nil {
		dist = tilemapping.EnglishLetterDistribution()
	}
	layout, ok := board.LayoutByName(boardLayoutName)
	if !ok {
		return nil, fmt.Errorf("unsupported board layout %q", boardLayoutName)
	}
	if boardLayoutName == "" {
		boardLayoutName = board.CrosswordGameLayout
	}
	return &Rules{
		dictionary: dict,
		dist:       dist,
		layout:     layout,
		boardName:  boardLayoutName,
		validator:  validation.NewValidator(dict),
	}, nil
}

// NewDefaultRules is the standard board and English tiles with the given
// dictionary.
func NewDefaultRules(dict *gaddag.Dictionary) (*Rules, error) {
	return NewRules(dict, nil, board.CrosswordGameLayout)
}

func (r *Rules) Dictionary() *gaddag.Dictionary {
	return r.dictionary
}

func (r *Rules) LetterDistribution() *tilemapping.LetterDistribution {
	return r.dist
}

func (r *Rules) BoardName() string {
	return r.boardName
}

func (r *Rules) Validator() *validation.Validator {
	return r.validator
}

// NewBoard returns a fresh, empty board in this ruleset's layout.
func (r *Rules) NewBoard() *board.GameBoard {
	return board.MakeBoard(r.layout)
}
