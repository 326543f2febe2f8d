package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lexiplay/scrabble/automatic"
	"github.com/lexiplay/scrabble/config"
	"github.com/lexiplay/scrabble/gaddag"
	"github.com/lexiplay/scrabble/game"
)

func setupLogging(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func main() {
	cfg := config.DefaultConfig()
	if _, err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(cfg.Debug())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dict, err := gaddag.GetDictionary(cfg.DictionaryPath())
	if err != nil {
		log.Fatal().Err(err).Msg("could-not-load-dictionary")
	}
	rules, err := game.NewDefaultRules(dict)
	if err != nil {
		log.Fatal().Err(err).Msg("could-not-create-rules")
	}

	opts := automatic.Options{
		NumGames:     cfg.GetInt(config.ConfigAutoplayGames),
		Threads:      cfg.GetInt(config.ConfigAutoplayThreads),
		Difficulties: [2]int{cfg.BotDifficulty(), cfg.BotDifficulty()},
		TurnTimeout:  cfg.BotTimeout(),
		Seed:         cfg.GetUint64(config.ConfigAutoplaySeed),
	}
	output := cfg.GetString(config.ConfigAutoplayOutput)
	start := time.Now()
	results, err := automatic.PlayToFile(ctx, rules, opts, output)
	if err != nil {
		log.Fatal().Err(err).Msg("autoplay-failed")
	}
	log.Info().Str("output", output).Dur("elapsed", time.Since(start)).Msg("autoplay-done")

	if err := automatic.Summarize(results).WriteYAML(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("could-not-write-summary")
	}
	report, err := automatic.AnalyzeLogFile(output)
	if err != nil {
		log.Fatal().Err(err).Msg("could-not-analyze-log")
	}
	fmt.Print(report)
}
