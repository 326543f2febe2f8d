package config

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	is.Equal(c.BotDifficulty(), 3)
	is.Equal(c.BotTimeout(), 5*time.Second)
	is.Equal(c.GetInt(ConfigAutoplayThreads), 4)
	is.True(!c.Debug())
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	rest, err := c.Load([]string{"--bot-difficulty=1", "--debug", "--bot-timeout", "250ms", "extra"})
	is.NoErr(err)
	is.Equal(rest, []string{"extra"})
	is.Equal(c.BotDifficulty(), 1)
	is.True(c.Debug())
	is.Equal(c.BotTimeout(), 250*time.Millisecond)
	is.Equal(c.GetInt(ConfigAutoplayGames), 100)
}

func TestEnvironment(t *testing.T) {
	is := is.New(t)
	t.Setenv("SCRABBLE_DICTIONARY_PATH", "/tmp/words.txt")
	t.Setenv("SCRABBLE_AUTOPLAY_GAMES", "7")
	c := DefaultConfig()
	_, err := c.Load(nil)
	is.NoErr(err)
	is.Equal(c.DictionaryPath(), "/tmp/words.txt")
	is.Equal(c.GetInt(ConfigAutoplayGames), 7)

	_, err = c.Load([]string{"--dictionary-path=/other.txt"})
	is.NoErr(err)
	is.Equal(c.DictionaryPath(), "/other.txt")
}

func TestBadFlag(t *testing.T) {
	is := is.New(t)
	_, err := DefaultConfig().Load([]string{"--no-such-flag"})
	is.True(err != nil)
}
