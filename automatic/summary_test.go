package automatic

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/lexiplay/scrabble/stats"
)

func TestSummarize(t *testing.T) {
	is := is.New(t)
	names := []string{"a", "b"}
	results := []*GameResult{
		{Names: names, Scores: []int{300, 200}, FirstPlayer: 0, Turns: 20, Winner: 0},
		{Names: names, Scores: []int{250, 350}, FirstPlayer: 1, Turns: 22, Winner: 1},
		nil,
		{Names: names, Scores: []int{300, 300}, FirstPlayer: 0, Turns: 24, Winner: -1},
	}
	s := Summarize(results)
	is.Equal(s.Games, 3)
	is.Equal(len(s.Players), 2)
	is.Equal(s.Players[0].Wins, 1.5)
	is.Equal(s.Players[1].Wins, 1.5)
	is.Equal(s.Players[0].WentFirst, 2)
	is.Equal(s.Players[1].HighScore, 350)
	is.Equal(s.FirstPlayerWins, 2.5)
	is.True(stats.FuzzyEqual(s.MeanTurns, 22))
	is.True(stats.FuzzyEqual(s.Players[0].MeanScore, 850.0/3))
	is.True(stats.FuzzyEqual(s.Players[0].StdDev, 28.867513459481))
	is.True(s.Players[0].WinRateLow < 0.5 && s.Players[0].WinRateHigh > 0.5)
	is.True(s.WinningScores != "")

	var buf bytes.Buffer
	is.NoErr(s.WriteYAML(&buf))
	out := buf.String()
	is.True(strings.Contains(out, "games: 3\n"))
	is.True(strings.Contains(out, "- name: a\n"))
	is.True(strings.Contains(out, "# winning scores:\n"))
}

func TestSummarizeEmpty(t *testing.T) {
	is := is.New(t)
	s := Summarize(nil)
	is.Equal(s.Games, 0)
	is.Equal(s.WinningScores, "")
	var buf bytes.Buffer
	is.NoErr(s.WriteYAML(&buf))
	is.True(!strings.Contains(buf.String(), "#"))
}
