package movegen

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/lexiplay/scrabble/board"
	"github.com/lexiplay/scrabble/move"
	"github.com/lexiplay/scrabble/tilemapping"
)

// playRecorder collects validated plays, keeping one per placement: the
// same tiles on the same squares count once, however they were found.
type playRecorder struct {
	plays map[string]*move.Move
}

func newPlayRecorder() *playRecorder {
	return &playRecorder{plays: make(map[string]*move.Move)}
}

func placementKey(squares []board.Position, tiles []tilemapping.Tile) string {
	var sb strings.Builder
	for i, sq := range squares {
		sb.WriteString(sq.String())
		sb.WriteString(tiles[i].String())
	}
	return sb.String()
}

func (r *playRecorder) seen(key string) bool {
	_, ok := r.plays[key]
	return ok
}

func (r *playRecorder) record(key string, m *move.Move) {
	r.plays[key] = m
}

// sorted returns the plays, best score first. Ties are broken on the
// description so the order is stable.
func (r *playRecorder) sorted() []*move.Move {
	plays := lo.Values(r.plays)
	sort.Slice(plays, func(i, j int) bool {
		if plays[i].Score() != plays[j].Score() {
			return plays[i].Score() > plays[j].Score()
		}
		return plays[i].ShortDescription() < plays[j].ShortDescription()
	})
	return plays
}
