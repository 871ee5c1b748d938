package config

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"verso":     "session.verso",
	"random":    "session.random",
	"all-cases": "session.all_cases",
	"try":       "session.tries",
	"pass":      "session.cycles",
	"default":   "session.default_profile",
	"seed":      "session.seed",
	"sheet":     "sheet",
	"log-level": "log.level",
}

// flagAliases lists accepted alternative flag names.
var flagAliases = map[string]string{
	"ac": "all-cases",
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("pixo", pflag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		if alias, ok := flagAliases[name]; ok {
			name = alias
		}
		return pflag.NormalizedName(name)
	})
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pixo [flags] <card file or directory>\n\nPixo is a CLI flashcard app.\n\n")
		fs.PrintDefaults()
	}

	fs.BoolP("verso", "v", false, "ask the verso instead of the recto of each card")
	fs.BoolP("random", "r", false, "flip the recto and verso of a random quarter of the cards")
	fs.Bool("all-cases", false, "flip the whole deck at every pass, requires --random (alias --ac)")
	fs.Int("try", 2, "number of tries for each question")
	fs.IntP("pass", "p", 1, "number of times the deck is used")
	fs.BoolP("default", "d", false, "use the default profile: random, all cases, 2 passes (explicit flags win)")
	fs.Int64("seed", 0, "random seed, 0 picks one from the clock")
	fs.String("sheet", "", "spreadsheet sheet to read, first one by default")
	fs.Bool("no-color", false, "disable styled output")
	fs.String("log-level", "warn", "log level (debug, info, warn, error)")
	fs.String("config", "", "config file, defaults to ./config/config.yaml")

	return fs
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}
	return nil
}
