package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDataPath           = "data-path"
	ConfigLexiconPath        = "lexicon-path"
	ConfigLexicon            = "lexicon"
	ConfigLetterDistribution = "letter-distribution"
	ConfigBoardLayout        = "board-layout"
	ConfigThreads            = "threads"
	ConfigNumPlays           = "num-plays"
	ConfigMinScore           = "min-score"
	ConfigCrossSetCacheSize  = "cross-set-cache-size"
	ConfigBingoBonus         = "bingo-bonus"
	ConfigBingoTiles         = "bingo-tiles"
	ConfigDebug              = "debug"
)

type Config struct {
	viper.Viper
	args []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ConfigDataPath, "./data")
	v.SetDefault(ConfigLexiconPath, "./data/wordlists")
	v.SetDefault(ConfigLexicon, "english")
	v.SetDefault(ConfigLetterDistribution, "english")
	v.SetDefault(ConfigBoardLayout, "wordfeud")
	v.SetDefault(ConfigThreads, 0)
	v.SetDefault(ConfigNumPlays, 10)
	v.SetDefault(ConfigMinScore, 0)
	v.SetDefault(ConfigCrossSetCacheSize, 4096)
	v.SetDefault(ConfigBingoBonus, 40)
	v.SetDefault(ConfigBingoTiles, 7)
	v.SetDefault(ConfigDebug, false)
}

// DefaultConfig returns a config with every default set. It does not look
// at the environment or the command line.
func DefaultConfig() *Config {
	c := &Config{Viper: *viper.New()}
	setDefaults(&c.Viper)
	return c
}

// Load loads the config from the environment and the given command-line
// arguments. Environment variables are prefixed with FEUDSOLVER_, e.g.
// FEUDSOLVER_LEXICON_PATH.
func (c *Config) Load(args []string) error {
	c.Viper = *viper.New()
	setDefaults(&c.Viper)
	c.SetEnvPrefix("FEUDSOLVER")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	fs := pflag.NewFlagSet("feudsolver", pflag.ContinueOnError)
	fs.String(ConfigDataPath, c.GetString(ConfigDataPath), "directory holding board and distribution files")
	fs.String(ConfigLexiconPath, c.GetString(ConfigLexiconPath), "directory holding word lists")
	fs.String(ConfigLexicon, c.GetString(ConfigLexicon), "word list name, without the .txt")
	fs.String(ConfigLetterDistribution, c.GetString(ConfigLetterDistribution), "letter distribution: english, dutch or swedish")
	fs.String(ConfigBoardLayout, c.GetString(ConfigBoardLayout), "board layout: wordfeud, crosswordgame or a layout file")
	fs.Int(ConfigThreads, c.GetInt(ConfigThreads), "number of worker goroutines; 0 uses all CPUs")
	fs.Int(ConfigNumPlays, c.GetInt(ConfigNumPlays), "number of best plays to return")
	fs.Int(ConfigMinScore, c.GetInt(ConfigMinScore), "discard plays scoring below this")
	fs.Int(ConfigCrossSetCacheSize, c.GetInt(ConfigCrossSetCacheSize), "cross-set cache entries; 0 disables the cache")
	fs.Int(ConfigBingoBonus, c.GetInt(ConfigBingoBonus), "bonus for playing a full rack")
	fs.Int(ConfigBingoTiles, c.GetInt(ConfigBingoTiles), "tiles a play needs to earn the bingo bonus")
	fs.Bool(ConfigDebug, c.GetBool(ConfigDebug), "debug logging on")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()
	return c.BindPFlags(fs)
}

// Args returns the command-line arguments left over after the flags.
func (c *Config) Args() []string {
	return c.args
}

// AdjustRelativePaths resolves relative data paths against the directory of
// the executable, so the binary can be run from anywhere.
func (c *Config) AdjustRelativePaths(basepath string) {
	for _, key := range []string{ConfigDataPath, ConfigLexiconPath} {
		p := c.GetString(key)
		if filepath.IsAbs(p) {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			continue
		}
		adjusted := filepath.Join(basepath, p)
		log.Debug().Str("key", key).Str("path", adjusted).Msg("adjusted-relative-path")
		c.Set(key, adjusted)
	}
}
