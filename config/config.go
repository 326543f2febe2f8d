package config

import (
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDictionaryPath  = "dictionary-path"
	ConfigDebug           = "debug"
	ConfigBotDifficulty   = "bot-difficulty"
	ConfigBotTimeout      = "bot-timeout"
	ConfigAutoplayGames   = "autoplay-games"
	ConfigAutoplayThreads = "autoplay-threads"
	ConfigAutoplayOutput  = "autoplay-output"
	ConfigAutoplaySeed    = "autoplay-seed"
)

// Config is read from, in increasing order of precedence, the defaults,
// SCRABBLE_-prefixed environment variables and command-line flags.
type Config struct {
	*viper.Viper
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("scrabble")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(ConfigDictionaryPath, "./data/lexica/TWL06.txt")
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigBotDifficulty, 3)
	v.SetDefault(ConfigBotTimeout, 5*time.Second)
	v.SetDefault(ConfigAutoplayGames, 100)
	v.SetDefault(ConfigAutoplayThreads, 4)
	v.SetDefault(ConfigAutoplayOutput, "/tmp/autoplay.txt")
	v.SetDefault(ConfigAutoplaySeed, 0)
	return v
}

// DefaultConfig returns a config with only defaults and the environment.
func DefaultConfig() *Config {
	return &Config{Viper: newViper()}
}

// Load parses command-line arguments on top of the defaults and the
// environment. Arguments that are not flags are left in Args.
func (c *Config) Load(args []string) ([]string, error) {
	c.Viper = newViper()
	fs := pflag.NewFlagSet("scrabble", pflag.ContinueOnError)
	fs.String(ConfigDictionaryPath, c.GetString(ConfigDictionaryPath), "word list file, one uppercase word per line")
	fs.Bool(ConfigDebug, c.GetBool(ConfigDebug), "debug logging on")
	fs.Int(ConfigBotDifficulty, c.GetInt(ConfigBotDifficulty), "computer player difficulty, 1 (easiest) to 3")
	fs.Duration(ConfigBotTimeout, c.GetDuration(ConfigBotTimeout), "time the computer player gets to find a move")
	fs.Int(ConfigAutoplayGames, c.GetInt(ConfigAutoplayGames), "number of games to autoplay")
	fs.Int(ConfigAutoplayThreads, c.GetInt(ConfigAutoplayThreads), "number of games played at once")
	fs.String(ConfigAutoplayOutput, c.GetString(ConfigAutoplayOutput), "file to log autoplayed turns to")
	fs.Uint64(ConfigAutoplaySeed, c.GetUint64(ConfigAutoplaySeed), "random seed for autoplay; 0 for a random one")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := c.BindPFlags(fs); err != nil {
		return nil, err
	}
	return fs.Args(), nil
}

func (c *Config) DictionaryPath() string {
	return c.GetString(ConfigDictionaryPath)
}

func (c *Config) Debug() bool {
	return c.GetBool(ConfigDebug)
}

func (c *Config) BotDifficulty() int {
	return c.GetInt(ConfigBotDifficulty)
}

func (c *Config) BotTimeout() time.Duration {
	return c.GetDuration(ConfigBotTimeout)
}
