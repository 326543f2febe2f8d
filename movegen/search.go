package movegen

import (
	"sort"
	"strings"

	"github.com/lexiplay/scrabble/board"
	"github.com/lexiplay/scrabble/move"
	"github.com/lexiplay/scrabble/tilemapping"
)

// lineSearch grows plays of two or more tiles outward from an anchor along
// one line. Each step fills the empty square just before or just after the
// current run. A step survives only if the run is still part of some word
// and any cross word it makes is a word.
type lineSearch struct {
	gen     *Generator
	b       *board.GameBoard
	rack    *tilemapping.Rack
	player  int
	dir     board.Direction
	counts  tilemapping.LetterCounts
	pending map[board.Position]tilemapping.Tile
	visited map[string]bool
	rec     *playRecorder
}

func (s *lineSearch) tileAt(row, col int) (tilemapping.Tile, bool) {
	if t, ok := s.pending[board.Position{Row: row, Col: col}]; ok {
		return t, true
	}
	return s.b.TileAt(row, col)
}

func (s *lineSearch) squares() []board.Position {
	ps := make([]board.Position, 0, len(s.pending))
	for p := range s.pending {
		ps = append(ps, p)
	}
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Row != ps[j].Row {
			return ps[i].Row < ps[j].Row
		}
		return ps[i].Col < ps[j].Col
	})
	return ps
}

func (s *lineSearch) stateKey() string {
	var sb strings.Builder
	for _, p := range s.squares() {
		sb.WriteString(p.String())
		sb.WriteString(s.pending[p].String())
	}
	return sb.String()
}

// crossOK checks the perpendicular word through a pending square.
func (s *lineSearch) crossOK(p board.Position) bool {
	cross := board.RunAt(s.tileAt, p, s.dir.Perpendicular())
	return cross.Len() < 2 || s.gen.dict.IsValidWord(cross.String())
}

// place tries every letter the rack can put on p, recursing on the ones
// that keep the line alive.
func (s *lineSearch) place(p board.Position, anchor board.Position) {
	if len(s.pending) >= tilemapping.RackTileLimit {
		return
	}
	g := s.gen.dict.Gaddag()
	for idx := 0; idx < tilemapping.NumLetters; idx++ {
		letter := tilemapping.IndexLetter(idx)
		for _, useIdx := range []int{idx, tilemapping.BlankIdx} {
			if !s.counts.Has(useIdx) {
				continue
			}
			t := s.gen.ld.TileFor(letter)
			if useIdx == tilemapping.BlankIdx {
				t = tilemapping.NewBlank().AssignBlank(letter)
			}
			s.counts.Take(useIdx)
			s.pending[p] = t
			run := board.RunAt(s.tileAt, anchor, s.dir)
			if g.HasInfix(run.String()) && s.crossOK(p) {
				s.visit(run, anchor)
			}
			delete(s.pending, p)
			s.counts.Put(useIdx)
		}
	}
}

func (s *lineSearch) visit(run board.Word, anchor board.Position) {
	key := s.stateKey()
	if s.visited[key] {
		return
	}
	s.visited[key] = true

	if len(s.pending) >= 2 && s.gen.dict.IsValidWord(run.String()) {
		squares := s.squares()
		tiles := make([]tilemapping.Tile, len(squares))
		for i, sq := range squares {
			tiles[i] = s.pending[sq]
		}
		s.gen.tryPlay(s.b, s.rack, s.player, s.dir, squares, tiles, s.rec)
	}

	before := run.Start.Step(s.dir, -1)
	after := run.Start.Step(s.dir, run.Len())
	for _, next := range []board.Position{before, after} {
		if s.b.PosExists(next.Row, next.Col) {
			s.place(next, anchor)
		}
	}
}

// genLines runs a line search from every anchor in both directions.
func (gen *Generator) genLines(b *board.GameBoard, rack *tilemapping.Rack, player int, rec *playRecorder) {
	for _, dir := range []board.Direction{board.Horizontal, board.Vertical} {
		s := &lineSearch{
			gen:     gen,
			b:       b,
			rack:    rack,
			player:  player,
			dir:     dir,
			counts:  rack.Counts(),
			pending: map[board.Position]tilemapping.Tile{},
			visited: map[string]bool{},
			rec:     rec,
		}
		for _, anchor := range Anchors(b) {
			s.place(anchor, anchor)
		}
	}
}

// BestPlay returns the highest-scoring play, or nil if there is none.
func (gen *Generator) BestPlay(b *board.GameBoard, rack *tilemapping.Rack, player int) *move.Move {
	plays := gen.GenerateAll(b, rack, player)
	if len(plays) == 0 {
		return nil
	}
	return plays[0]
}
