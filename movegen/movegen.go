// Package movegen enumerates the legal plays for a rack on a board.
//
// Candidates are found with the GADDAG and then passed through the same
// validator the game uses to commit plays, so everything the generator
// returns can be played as-is and carries its real score.
package movegen

import (
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/lexiplay/scrabble/board"
	"github.com/lexiplay/scrabble/gaddag"
	"github.com/lexiplay/scrabble/move"
	"github.com/lexiplay/scrabble/tilemapping"
	"github.com/lexiplay/scrabble/validation"
)

// Generator is stateless between calls and safe for concurrent use.
type Generator struct {
	dict      *gaddag.Dictionary
	validator *validation.Validator
	ld        *tilemapping.LetterDistribution
}

func NewGenerator(dict *gaddag.Dictionary, ld *tilemapping.LetterDistribution) *Generator {
	return &Generator{
		dict:      dict,
		validator: validation.NewValidator(dict),
		ld:        ld,
	}
}

// GenerateAll returns every distinct legal play for the rack, best score
// first. Each play is validated, scored and has its leave set. The board
// and the rack are not modified. An empty result means the rack has no
// play; passing or exchanging is up to the caller.
func (gen *Generator) GenerateAll(b *board.GameBoard, rack *tilemapping.Rack, player int) []*move.Move {
	rec := newPlayRecorder()
	if rack.Empty() {
		return nil
	}
	if b.IsEmpty() {
		gen.genOpening(b, rack, player, rec)
	} else {
		gen.genSingles(b, rack, player, rec)
		gen.genLines(b, rack, player, rec)
	}
	plays := rec.sorted()
	log.Debug().Str("rack", rack.String()).Int("plays", len(plays)).Msg("generated-plays")
	return plays
}

// tryPlay validates a candidate and records it if it is legal. squares
// must be in order along dir.
func (gen *Generator) tryPlay(b *board.GameBoard, rack *tilemapping.Rack, player int,
	dir board.Direction, squares []board.Position, tiles []tilemapping.Tile, rec *playRecorder) {

	key := placementKey(squares, tiles)
	if rec.seen(key) {
		return
	}
	m := move.NewPlaceMove(player, squares[0].Row, squares[0].Col, dir, tiles)
	res := gen.validator.Validate(b, m)
	if !res.Valid {
		return
	}
	m.SetValidation(res.Words, res.Score, res.Bingo)
	leave := rack.Copy()
	if err := leave.Remove(tiles...); err != nil {
		// Can't happen unless the search used tiles the rack doesn't have.
		log.Error().Err(err).Str("play", m.ShortDescription()).Msg("leave-mismatch")
		return
	}
	m.SetLeave(leave.Tiles())
	rec.record(key, m)
}

// genOpening finds every word the rack can make through the center square.
func (gen *Generator) genOpening(b *board.GameBoard, rack *tilemapping.Rack, player int, rec *playRecorder) {
	counts := rack.Counts()
	words := map[string]struct{}{}
	for idx := 0; idx < tilemapping.NumLetters; idx++ {
		if !counts.Has(idx) && !counts.Has(tilemapping.BlankIdx) {
			continue
		}
		letter := tilemapping.IndexLetter(idx)
		rest := counts
		rest.TakeLetter(letter)
		for _, w := range gen.dict.Gaddag().WordsFrom(rest, letter, true, true) {
			words[w] = struct{}{}
		}
	}
	sorted := make([]string, 0, len(words))
	for w := range words {
		sorted = append(sorted, w)
	}
	sort.Strings(sorted)

	center := b.Center()
	for _, w := range sorted {
		for _, dir := range []board.Direction{board.Horizontal, board.Vertical} {
			for i := 0; i < len(w); i++ {
				start := center.Step(dir, -i)
				end := start.Step(dir, len(w)-1)
				if !b.PosExists(start.Row, start.Col) || !b.PosExists(end.Row, end.Col) {
					continue
				}
				squares := make([]board.Position, len(w))
				for j := range squares {
					squares[j] = start.Step(dir, j)
				}
				for _, tiles := range gen.tileChoices(w, counts) {
					gen.tryPlay(b, rack, player, dir, squares, tiles, rec)
				}
			}
		}
	}
}

// tileChoices lists the ways the rack can spell word, trading real tiles
// for blanks where both are available.
func (gen *Generator) tileChoices(word string, counts tilemapping.LetterCounts) [][]tilemapping.Tile {
	choices := [][]tilemapping.Tile{}
	letters := []rune(word)
	cur := make([]tilemapping.Tile, 0, len(letters))
	var rec func(i int)
	rec = func(i int) {
		if i == len(letters) {
			choices = append(choices, append([]tilemapping.Tile(nil), cur...))
			return
		}
		letter := letters[i]
		idx := tilemapping.LetterIndex(letter)
		if counts.Has(idx) {
			counts.Take(idx)
			cur = append(cur, gen.ld.TileFor(letter))
			rec(i + 1)
			cur = cur[:len(cur)-1]
			counts.Put(idx)
		}
		if counts.Has(tilemapping.BlankIdx) {
			counts.Take(tilemapping.BlankIdx)
			cur = append(cur, tilemapping.NewBlank().AssignBlank(letter))
			rec(i + 1)
			cur = cur[:len(cur)-1]
			counts.Put(tilemapping.BlankIdx)
		}
	}
	rec(0)
	return choices
}

// genSingles finds the plays that add one tile next to the existing tiles.
func (gen *Generator) genSingles(b *board.GameBoard, rack *tilemapping.Rack, player int, rec *playRecorder) {
	counts := rack.Counts()
	g := gen.dict.Gaddag()
	for _, anchor := range Anchors(b) {
		for _, dir := range []board.Direction{board.Horizontal, board.Vertical} {
			for _, p := range g.FindValidWordsAt(b, anchor.Row, anchor.Col, counts, dir) {
				var tiles [][]tilemapping.Tile
				if idx := tilemapping.LetterIndex(p.Letter); counts.Has(idx) {
					tiles = append(tiles, []tilemapping.Tile{gen.ld.TileFor(p.Letter)})
				}
				if counts.Has(tilemapping.BlankIdx) {
					tiles = append(tiles, []tilemapping.Tile{tilemapping.NewBlank().AssignBlank(p.Letter)})
				}
				for _, t := range tiles {
					gen.tryPlay(b, rack, player, dir, []board.Position{p.Square}, t, rec)
				}
			}
		}
	}
}
