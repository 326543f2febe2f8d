package automatic

import (
	"bytes"
	"fmt"
	"io"

	"github.com/aybabtme/uniplot/histogram"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"

	"github.com/lexiplay/scrabble/stats"
)

const (
	histogramBins  = 12
	histogramWidth = 50
	confidence     = 95
)

type PlayerSummary struct {
	Name      string  `yaml:"name"`
	Wins      float64 `yaml:"wins"`
	WentFirst int     `yaml:"went_first"`
	MeanScore float64 `yaml:"mean_score"`
	StdDev    float64 `yaml:"stddev"`
	HighScore int     `yaml:"high_score"`
	// WinRateLow and WinRateHigh bound the win rate at 95% confidence.
	WinRateLow  float64 `yaml:"win_rate_low"`
	WinRateHigh float64 `yaml:"win_rate_high"`
}

// Summary aggregates a batch of autoplayed games.
type Summary struct {
	Games           int             `yaml:"games"`
	Players         []PlayerSummary `yaml:"players"`
	FirstPlayerWins float64         `yaml:"first_player_wins"`
	MeanTurns       float64         `yaml:"mean_turns"`
	// WinningScores is a text histogram of the winners' scores.
	WinningScores string `yaml:"-"`
}

func meanStdDev(xs []float64) (float64, float64) {
	switch len(xs) {
	case 0:
		return 0, 0
	case 1:
		return xs[0], 0
	}
	return stat.MeanStdDev(xs, nil)
}

// Summarize computes per-player statistics. Ties count as half a win for
// each side. Nil results, from games that never ran, are skipped.
func Summarize(results []*GameResult) *Summary {
	s := &Summary{}
	scores := [][]float64{}
	turns := []float64{}
	winning := []float64{}
	for _, r := range results {
		if r == nil {
			continue
		}
		if s.Games == 0 {
			for _, name := range r.Names {
				s.Players = append(s.Players, PlayerSummary{Name: name})
				scores = append(scores, nil)
			}
		}
		s.Games++
		turns = append(turns, float64(r.Turns))
		s.Players[r.FirstPlayer].WentFirst++
		for i, sc := range r.Scores {
			scores[i] = append(scores[i], float64(sc))
			if sc > s.Players[i].HighScore {
				s.Players[i].HighScore = sc
			}
		}
		if r.Winner < 0 {
			for i := range s.Players {
				s.Players[i].Wins += 0.5
			}
			s.FirstPlayerWins += 0.5
			continue
		}
		s.Players[r.Winner].Wins++
		winning = append(winning, float64(r.Scores[r.Winner]))
		if r.Winner == r.FirstPlayer {
			s.FirstPlayerWins++
		}
	}
	for i := range s.Players {
		p := &s.Players[i]
		p.MeanScore, p.StdDev = meanStdDev(scores[i])
		p.WinRateLow, p.WinRateHigh = stats.WinInterval(p.Wins, s.Games, confidence)
	}
	s.MeanTurns, _ = meanStdDev(turns)
	s.WinningScores = scoreHistogram(winning)
	return s
}

func scoreHistogram(scores []float64) string {
	if len(scores) == 0 {
		return ""
	}
	var buf bytes.Buffer
	h := histogram.Hist(histogramBins, scores)
	if err := histogram.Fprint(&buf, h, histogram.Linear(histogramWidth)); err != nil {
		return ""
	}
	return buf.String()
}

// WriteYAML writes the summary, followed by the histogram of winning
// scores as a comment block.
func (s *Summary) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	if s.WinningScores == "" {
		return nil
	}
	if _, err := fmt.Fprintln(w, "# winning scores:"); err != nil {
		return err
	}
	for _, line := range bytes.Split([]byte(s.WinningScores), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "# %s\n", line); err != nil {
			return err
		}
	}
	return nil
}
