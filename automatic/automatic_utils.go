package automatic

// Data collection for automatic games: run many computer vs computer
// games at once and log every turn.

import (
	"context"
	"encoding/csv"
	"errors"
	"expvar"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/lexiplay/scrabble/game"
)

var (
	CVCCounter *expvar.Int
	IsPlaying  *expvar.Int
)

func init() {
	CVCCounter = expvar.NewInt("cvcCounter")
	IsPlaying = expvar.NewInt("isPlaying")
}

var ErrAlreadyPlaying = errors.New("games are already being played, please wait till complete")

// Options describe an autoplay run.
type Options struct {
	NumGames     int
	Threads      int
	Difficulties [2]int
	TurnTimeout  time.Duration
	// Seed for the run; game i is dealt from Seed+i. Zero picks a random
	// seed.
	Seed uint64
}

// StartCompVComp plays opts.NumGames games on opts.Threads workers, each
// with its own runner. Every turn is written as CSV to turnLog, if it's not
// nil. It returns the results in game order once all games are done, or
// the first error.
func StartCompVComp(ctx context.Context, rules *game.Rules, opts Options, turnLog io.Writer) ([]*GameResult, error) {
	if IsPlaying.Value() > 0 {
		return nil, ErrAlreadyPlaying
	}
	if opts.Threads < 1 {
		opts.Threads = 1
	}
	if opts.Seed == 0 {
		opts.Seed = frand.Uint64n(1<<63) + 1
	}
	log.Info().Int("games", opts.NumGames).Int("threads", opts.Threads).
		Uint64("seed", opts.Seed).Msg("starting-autoplay")

	CVCCounter.Set(0)
	IsPlaying.Add(1)
	defer IsPlaying.Add(-1)

	var logChan chan []string
	var logWG sync.WaitGroup
	var logErr error
	if turnLog != nil {
		logChan = make(chan []string, 100)
		logWG.Add(1)
		go func() {
			defer logWG.Done()
			logErr = writeTurnLog(turnLog, logChan)
		}()
	}

	results := make([]*GameResult, opts.NumGames)
	jobs := make(chan int, 100)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < opts.NumGames; i++ {
			select {
			case jobs <- i:
			case <-gctx.Done():
				log.Info().Msg("Got stop signal, exiting soon...")
				return gctx.Err()
			}
		}
		return nil
	})

	for t := 0; t < opts.Threads; t++ {
		r := NewGameRunner(rules, opts.Difficulties, opts.TurnTimeout, logChan)
		g.Go(func() error {
			for i := range jobs {
				res, err := r.PlayGame(gctx, opts.Seed+uint64(i))
				if err != nil {
					return err
				}
				results[i] = res
				CVCCounter.Add(1)
				if n := CVCCounter.Value(); n%100 == 0 {
					log.Info().Int64("games", n).Msg("autoplay-progress")
				}
			}
			return nil
		})
	}

	err := g.Wait()
	if logChan != nil {
		close(logChan)
		logWG.Wait()
	}
	if err != nil {
		return nil, err
	}
	if logErr != nil {
		return nil, logErr
	}
	log.Info().Int("games", len(results)).Msg("autoplay-finished")
	return results, nil
}

func writeTurnLog(w io.Writer, rows <-chan []string) error {
	cw := csv.NewWriter(w)
	var err error
	if err = cw.Write(TurnLogHeader); err != nil {
		log.Error().Err(err).Msg("turn-log-write-failed")
	}
	for row := range rows {
		// Keep draining so the players never block.
		if err != nil {
			continue
		}
		if err = cw.Write(row); err != nil {
			log.Error().Err(err).Msg("turn-log-write-failed")
		}
	}
	cw.Flush()
	if err != nil {
		return err
	}
	return cw.Error()
}

// PlayToFile runs StartCompVComp, logging turns to the named file.
func PlayToFile(ctx context.Context, rules *game.Rules, opts Options, path string) ([]*GameResult, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return StartCompVComp(ctx, rules, opts, f)
}
