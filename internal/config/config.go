package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/aliskhannn/pixo/internal/domain/entities"
)

var (
	ErrMissingCardPath       = errors.New("missing card file or directory")
	ErrTooManyArguments      = errors.New("expected a single card file or directory")
	ErrInvalidTries          = errors.New("try must be at least 1")
	ErrInvalidCycles         = errors.New("pass must be at least 1")
	ErrConflictingFlip       = errors.New("verso cannot be combined with random")
	ErrAllCasesWithoutRandom = errors.New("all_cases requires random")
)

// ErrHelp is returned by Load when -h or --help was requested.
var ErrHelp = pflag.ErrHelp

// Config holds application configuration loaded from flags, environment variables and files.
type Config struct {
	Env      string  `mapstructure:"env"`     // current application environment (local, production)
	CardPath string  `mapstructure:"cards"`   // card file or directory
	Sheet    string  `mapstructure:"sheet"`   // spreadsheet sheet to read, first one when empty
	Color    bool    `mapstructure:"color"`   // style console output
	Session  Session `mapstructure:"session"` // quiz session section
	Log      Log     `mapstructure:"log"`     // logging section
}

// Session contains the parameters handed to the asker.
type Session struct {
	Verso          bool  `mapstructure:"verso"`           // ask the verso of every card
	Random         bool  `mapstructure:"random"`          // flip a random quarter of the cards
	AllCases       bool  `mapstructure:"all_cases"`       // flip the whole deck at every cycle
	Tries          int   `mapstructure:"tries"`           // attempts per question before the answer is revealed
	Cycles         int   `mapstructure:"cycles"`          // number of passes over the deck
	DefaultProfile bool  `mapstructure:"default_profile"` // random, all cases and 2 passes unless overridden
	Seed           int64 `mapstructure:"seed"`            // random seed, 0 picks one from the clock
}

// Log contains logger parameters.
type Log struct {
	Level string `mapstructure:"level"` // zap level name
}

// FlipMode returns the initial card orientation selected by the flags.
func (s Session) FlipMode() entities.FlipMode {
	switch {
	case s.Verso:
		return entities.FlipVerso()
	case s.Random:
		return entities.FlipRandom(s.AllCases)
	default:
		return entities.FlipRecto()
	}
}

// Load reads configuration from command-line arguments, environment variables and config files.
// args excludes the program name.
func Load(args []string) (*Config, error) {
	// Environment from a local .env file, if present, never overriding the real environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.config/pixo")
	if file, _ := fs.GetString("config"); file != "" {
		v.SetConfigFile(file)
	}

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("cards", "")
	v.SetDefault("sheet", "")
	v.SetDefault("color", true)
	v.SetDefault("log.level", "warn")
	v.SetDefault("session.verso", false)
	v.SetDefault("session.random", false)
	v.SetDefault("session.all_cases", false)
	v.SetDefault("session.tries", 2)
	v.SetDefault("session.cycles", 1)
	v.SetDefault("session.default_profile", false)
	v.SetDefault("session.seed", 0)

	// Configure environment variable handling and key mapping.
	v.SetEnvPrefix("pixo")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // session.tries -> PIXO_SESSION_TRIES
	v.AutomaticEnv()
	_ = v.BindEnv("env", "APP_ENV")

	if err := bindFlags(v, fs); err != nil {
		return nil, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		v.Set("cards", fs.Arg(0))
	default:
		return nil, ErrTooManyArguments
	}
	if fs.Changed("no-color") {
		noColor, _ := fs.GetBool("no-color")
		v.Set("color", !noColor)
	}

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	if v.GetBool("session.default_profile") {
		applyDefaultProfile(v)
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects configurations the asker cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.CardPath == "":
		return ErrMissingCardPath
	case c.Session.Tries < 1:
		return ErrInvalidTries
	case c.Session.Cycles < 1:
		return ErrInvalidCycles
	case c.Session.Verso && c.Session.Random:
		return ErrConflictingFlip
	case c.Session.AllCases && !c.Session.Random:
		return ErrAllCasesWithoutRandom
	}
	return nil
}

// applyDefaultProfile lowers the profile values to defaults, so explicit flags,
// environment variables and config entries still win.
func applyDefaultProfile(v *viper.Viper) {
	if !v.GetBool("session.verso") {
		v.SetDefault("session.random", true)
		v.SetDefault("session.all_cases", true)
	}
	v.SetDefault("session.cycles", 2)
}
