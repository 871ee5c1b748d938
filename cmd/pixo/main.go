package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/pixo/internal/config"
	"github.com/aliskhannn/pixo/internal/delivery/console"
	"github.com/aliskhannn/pixo/internal/logger"
	"github.com/aliskhannn/pixo/internal/repository"
	"github.com/aliskhannn/pixo/internal/service"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

// run executes one quiz session and returns the process exit code.
func run(args []string, in io.Reader, out io.Writer) int {
	cfg, err := config.Load(args)
	if err != nil {
		if errors.Is(err, config.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "pixo: %v\n", err)
		return 2
	}

	log, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pixo: %v\n", err)
		return 2
	}
	defer func() { _ = log.Sync() }()

	// Initialize the card repository.
	var opts []repository.Option
	if cfg.Sheet != "" {
		opts = append(opts, repository.WithSheet(cfg.Sheet))
	}
	cards, err := repository.NewCardRepository(cfg.CardPath, opts...)
	if err != nil {
		log.Error("failed to load cards", zap.String("path", cfg.CardPath), zap.Error(err))
		return 1
	}

	seed := cfg.Session.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debug("cards loaded",
		zap.String("path", cfg.CardPath),
		zap.Int("cards", cards.Len()),
		zap.Int64("seed", seed),
	)

	theme := console.PlainTheme()
	if cfg.Color {
		theme = console.DefaultTheme()
	}
	term := console.New(in, out, theme)

	asker, err := service.NewAskerBuilder(cards.Deck(), rand.New(rand.NewSource(seed))).
		MaxCycles(cfg.Session.Cycles).
		Tries(cfg.Session.Tries).
		FlipMode(cfg.Session.FlipMode()).
		Logger(log).
		Build(term)
	if err != nil {
		log.Error("failed to build session", zap.Error(err))
		return 1
	}

	session, err := asker.Run()
	if err != nil {
		log.Error("session aborted", zap.Stringer("session_id", session.ID), zap.Error(err))
		return 1
	}

	if err := term.Summary(session); err != nil {
		log.Error("failed to print summary", zap.Error(err))
		return 1
	}

	return 0
}
