package entities

import (
	"errors"
	"strings"
)

// ErrEmptySide is returned when a card is built without a prompt or without an answer.
var ErrEmptySide = errors.New("card recto and verso must not be empty")

// Card is a single flashcard.
// The recto holds the prompt variants (only the first is shown), the verso holds every accepted answer.
type Card struct {
	recto     []string // prompt variants, first one is rendered
	verso     []string // accepted answers
	tip       Tip      // hint shown after a wrong attempt
	onlyRecto bool     // when set, the card is never flipped
}

// NewCard creates a card. Both sides must contain at least one entry.
func NewCard(recto, verso []string, tip Tip, onlyRecto bool) (*Card, error) {
	if len(recto) == 0 || len(verso) == 0 {
		return nil, ErrEmptySide
	}

	return &Card{
		recto:     append([]string(nil), recto...),
		verso:     append([]string(nil), verso...),
		tip:       tip,
		onlyRecto: onlyRecto,
	}, nil
}

// Front returns the text presented to the user.
func (c *Card) Front() string {
	return c.recto[0]
}

// Recto returns a copy of the prompt variants.
func (c *Card) Recto() []string {
	return append([]string(nil), c.recto...)
}

// Verso returns a copy of the accepted answers.
func (c *Card) Verso() []string {
	return append([]string(nil), c.verso...)
}

func (c *Card) Tip() Tip {
	return c.tip
}

func (c *Card) OnlyRecto() bool {
	return c.onlyRecto
}

// Test reports whether answer matches one of the accepted answers.
// Surrounding whitespace is ignored on both sides, the comparison is case-sensitive.
func (c *Card) Test(answer string) bool {
	answer = strings.TrimSpace(answer)
	for _, v := range c.verso {
		if strings.TrimSpace(v) == answer {
			return true
		}
	}
	return false
}

// Flip swaps the recto and the verso, together with an orientation-aware tip.
// Cards created with onlyRecto are left untouched.
func (c *Card) Flip() {
	if c.onlyRecto {
		return
	}

	c.recto, c.verso = c.verso, c.recto
	c.tip.flip()
}

// FormattedVerso joins the accepted answers for display.
func (c *Card) FormattedVerso() string {
	return strings.Join(c.verso, " OR ")
}
