package automatic

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/matryer/is"

	"github.com/lexiplay/scrabble/game"
	"github.com/lexiplay/scrabble/testhelpers"
)

func testRules(t *testing.T) *game.Rules {
	rules, err := game.NewDefaultRules(testhelpers.TinyDictionary())
	if err != nil {
		t.Fatal(err)
	}
	return rules
}

func TestPlayGameFinishes(t *testing.T) {
	is := is.New(t)
	r := NewGameRunner(testRules(t), [2]int{3, 1}, 0, nil)
	res, err := r.PlayGame(context.Background(), 1234)
	is.NoErr(err)
	is.Equal(res.Names, []string{"bot1-level3", "bot2-level1"})
	is.Equal(len(res.Scores), 2)
	is.True(res.Turns > 0)
	is.True(res.Turns <= maxTurns+4)
	is.True(res.Winner >= -1 && res.Winner <= 1)
}

func TestPlayGameIsReproducible(t *testing.T) {
	is := is.New(t)
	r := NewGameRunner(testRules(t), [2]int{2, 2}, 0, nil)
	a, err := r.PlayGame(context.Background(), 99)
	is.NoErr(err)
	b, err := r.PlayGame(context.Background(), 99)
	is.NoErr(err)
	is.Equal(a.Scores, b.Scores)
	is.Equal(a.Turns, b.Turns)
	is.Equal(a.FirstPlayer, b.FirstPlayer)
	is.True(a.GameID != b.GameID)
}

func TestPlayGameCancelled(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewGameRunner(testRules(t), [2]int{3, 3}, 0, nil)
	_, err := r.PlayGame(ctx, 1)
	is.Equal(err, context.Canceled)
}

func TestCompVComp(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	results, err := StartCompVComp(context.Background(), testRules(t),
		Options{NumGames: 3, Threads: 2, Difficulties: [2]int{3, 3}, Seed: 42}, &buf)
	is.NoErr(err)
	is.Equal(len(results), 3)
	turns := 0
	for _, r := range results {
		is.True(r != nil)
		turns += r.Turns
	}
	is.Equal(CVCCounter.Value(), int64(3))
	is.Equal(IsPlaying.Value(), int64(0))

	rows, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	is.NoErr(err)
	is.Equal(rows[0], TurnLogHeader)
	is.Equal(len(rows)-1, turns)

	report, err := AnalyzeTurnLog(bytes.NewReader(buf.Bytes()))
	is.NoErr(err)
	is.True(bytes.HasPrefix([]byte(report), []byte("Games played: 3\n")))

	// The same seed replays the same games.
	again, err := StartCompVComp(context.Background(), testRules(t),
		Options{NumGames: 3, Threads: 1, Difficulties: [2]int{3, 3}, Seed: 42}, nil)
	is.NoErr(err)
	for i := range results {
		is.Equal(again[i].Scores, results[i].Scores)
	}
}
