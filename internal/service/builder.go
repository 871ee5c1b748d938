package service

import (
	"errors"

	"go.uber.org/zap"

	"github.com/aliskhannn/pixo/internal/domain/entities"
)

var (
	ErrEmptyDeck        = errors.New("deck has no cards")
	ErrInvalidMaxCycles = errors.New("max cycles must be at least 1")
	ErrInvalidTries     = errors.New("tries must be at least 1")
)

// AskerBuilder configures an Asker. The deck orientation and order are applied by Build.
type AskerBuilder struct {
	deck      *entities.Deck
	maxCycles int
	tries     int
	flipMode  entities.FlipMode
	rng       entities.Rand
	logger    *zap.Logger
}

// NewAskerBuilder creates a builder asking every card once, recto side, with a single try.
func NewAskerBuilder(deck *entities.Deck, rng entities.Rand) *AskerBuilder {
	return &AskerBuilder{
		deck:      deck,
		maxCycles: 1,
		tries:     1,
		flipMode:  entities.FlipRecto(),
		rng:       rng,
		logger:    zap.NewNop(),
	}
}

func (b *AskerBuilder) MaxCycles(n int) *AskerBuilder {
	b.maxCycles = n
	return b
}

func (b *AskerBuilder) Tries(n int) *AskerBuilder {
	b.tries = n
	return b
}

func (b *AskerBuilder) FlipMode(mode entities.FlipMode) *AskerBuilder {
	b.flipMode = mode
	return b
}

func (b *AskerBuilder) Logger(logger *zap.Logger) *AskerBuilder {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// Build orients and shuffles the deck and returns an asker reading from console.
func (b *AskerBuilder) Build(console Console) (*Asker, error) {
	if b.deck == nil || b.deck.Len() == 0 {
		return nil, ErrEmptyDeck
	}
	if b.maxCycles < 1 {
		return nil, ErrInvalidMaxCycles
	}
	if b.tries < 1 {
		return nil, ErrInvalidTries
	}

	switch b.flipMode.Side {
	case entities.SideVerso:
		b.deck.FlipAll()
	case entities.SideRandom:
		b.deck.FlipRandom(b.rng)
	}
	b.deck.Shuffle(b.rng)

	b.logger.Debug("deck prepared",
		zap.Int("cards", b.deck.Len()),
		zap.Stringer("flip_mode", b.flipMode),
	)

	return &Asker{
		deck:      b.deck,
		retry:     NewRetryQueue(),
		mode:      ModeNew,
		maxCycles: b.maxCycles,
		maxTries:  b.tries,
		allCases:  b.flipMode.AllCases(),
		rng:       b.rng,
		console:   console,
		logger:    b.logger,
		session:   entities.NewSession(),
	}, nil
}
