package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/pixo/internal/domain/entities"
)

// ErrNoCurrentCard is returned when the active source has no card to ask.
// Builders reject empty decks, so this only happens if the asker's invariants are broken.
var ErrNoCurrentCard = errors.New("no current card")

// Asker runs a quiz session: it walks the deck, then replays failed cards through
// the retry queue, until maxCycles passes over the deck are complete.
type Asker struct {
	deck      *entities.Deck
	retry     RetryQueue
	mode      Mode
	cycles    int
	maxCycles int
	maxTries  int
	allCases  bool
	rng       entities.Rand
	console   Console
	logger    *zap.Logger
	session   *entities.Session
}

// Run asks questions until every cycle is done and returns the session statistics.
// Any console error aborts the run.
func (a *Asker) Run() (*entities.Session, error) {
	a.logger.Info("session started",
		zap.Stringer("session_id", a.session.ID),
		zap.Int("cards", a.deck.Len()),
		zap.Int("max_cycles", a.maxCycles),
		zap.Int("max_tries", a.maxTries),
	)

	for a.cycles < a.maxCycles {
		if err := a.ask(); err != nil {
			return a.session, err
		}
		a.advance()
	}

	a.session.Finish()
	a.logger.Info("session finished",
		zap.Stringer("session_id", a.session.ID),
		zap.Int("questions", a.session.Questions),
		zap.Int("correct", a.session.Correct),
		zap.Int("revealed", a.session.Revealed),
		zap.Duration("duration", a.session.Duration()),
	)

	return a.session, nil
}

// Current returns the card to ask next together with its deck index.
func (a *Asker) Current() (*entities.Card, int, error) {
	if a.mode == ModeNew {
		card, index := a.deck.Card()
		return card, index, nil
	}

	index, ok := a.retry.Get()
	if !ok {
		return nil, 0, fmt.Errorf("retry pass: %w", ErrNoCurrentCard)
	}
	card, ok := a.deck.CardAt(index)
	if !ok {
		return nil, 0, fmt.Errorf("deck index %d: %w", index, ErrNoCurrentCard)
	}
	return card, index, nil
}

func (a *Asker) Mode() Mode {
	return a.mode
}

// Cycles returns the number of completed passes over the deck.
func (a *Asker) Cycles() int {
	return a.cycles
}

// Pending returns the number of cards waiting in the retry queue.
func (a *Asker) Pending() int {
	return a.retry.Len()
}

func (a *Asker) ask() error {
	card, index, err := a.Current()
	if err != nil {
		return err
	}

	if err := a.console.Prompt(card.Front()); err != nil {
		return fmt.Errorf("prompt: %w", err)
	}

	for tries := 1; ; tries++ {
		answer, err := a.console.ReadAnswer()
		if err != nil {
			return fmt.Errorf("read answer: %w", err)
		}

		switch {
		case card.Test(answer):
			a.retry.RemoveValue(index)
			a.session.RecordAnswer(true, tries)
			return a.console.Accept()

		case tries >= a.maxTries:
			a.retry.Push(index)
			a.session.RecordAnswer(false, tries)
			a.logger.Debug("answer revealed",
				zap.Stringer("session_id", a.session.ID),
				zap.Int("index", index),
				zap.Stringer("mode", a.mode),
			)
			return a.console.Reveal(card.FormattedVerso())

		default:
			if err := a.console.Tip(card.Tip().String()); err != nil {
				return fmt.Errorf("tip: %w", err)
			}
		}
	}
}

func (a *Asker) advance() {
	next, step := Transition(a.mode, a.deck.AtLast(), a.retry.IsEmpty())
	if next != a.mode {
		a.logger.Debug("mode changed",
			zap.Stringer("session_id", a.session.ID),
			zap.Stringer("from", a.mode),
			zap.Stringer("to", next),
			zap.Int("pending", a.retry.Len()),
		)
	}
	a.mode = next

	switch step {
	case StepNextCard:
		a.deck.Advance()
	case StepWrapCycle:
		a.cycles++
		a.session.Cycles = a.cycles
		a.deck.Shuffle(a.rng)
		if a.allCases {
			a.deck.FlipAll()
		}
		a.deck.Advance()
		a.logger.Debug("cycle completed",
			zap.Stringer("session_id", a.session.ID),
			zap.Int("cycle", a.cycles),
		)
	case StepOpenRetryPass, StepNextRetry:
		a.retry.Advance(a.rng)
	}
}
