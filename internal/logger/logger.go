package logger

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/pixo/internal/config"
)

// New builds the application logger. Logs go to stderr so they never mix with the quiz on stdout.
func New(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if cfg.Env == "production" {
		zcfg = zap.NewProductionConfig()
	}

	if cfg.Log.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
		}
		zcfg.Level = level
	}
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	return zcfg.Build()
}
