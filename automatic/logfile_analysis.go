package automatic

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/lexiplay/scrabble/stats"
	"github.com/lexiplay/scrabble/tilemapping"
)

// AnalyzeLogFile reads a turn log written by StartCompVComp and reports
// per-player turn statistics.
func AnalyzeLogFile(filepath string) (string, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return "", err
	}
	defer file.Close()
	return AnalyzeTurnLog(file)
}

func AnalyzeTurnLog(r io.Reader) (string, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return "", err
	}
	if strings.Join(header, ",") != strings.Join(TurnLogHeader, ",") {
		return "", errors.New("not a turn log: unexpected header")
	}

	type playerStats struct {
		score  stats.Statistic
		bingos int
		exchs  int
		passes int
	}
	players := map[string]*playerStats{}
	games := map[string]bool{}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		score, err := strconv.Atoi(record[5])
		if err != nil {
			return "", err
		}
		tp, err := strconv.Atoi(record[7])
		if err != nil {
			return "", err
		}
		ps, ok := players[record[0]]
		if !ok {
			ps = &playerStats{}
			players[record[0]] = ps
		}
		games[record[1]] = true
		play := record[4]
		switch {
		case play == "(Pass)":
			ps.passes++
			continue
		case strings.HasPrefix(play, "(exch"):
			ps.exchs++
			continue
		}
		ps.score.Push(float64(score))
		if tp == tilemapping.RackTileLimit {
			ps.bingos++
		}
	}

	names := make([]string, 0, len(players))
	for name := range players {
		names = append(names, name)
	}
	sort.Strings(names)

	out := fmt.Sprintf("Games played: %d\n", len(games))
	for _, name := range names {
		ps := players[name]
		out += fmt.Sprintf("%v plays: %d  Mean: %.3f  Stdev: %.3f  Best: %.0f  Bingos: %d  Exchanges: %d  Passes: %d\n",
			name, ps.score.Count(), ps.score.Mean(), ps.score.Stdev(), ps.score.Max(),
			ps.bingos, ps.exchs, ps.passes)
	}
	return out, nil
}
