package entities

// Rand is the subset of *rand.Rand the deck and the retry queue need.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Deck is an ordered collection of cards with a traversal cursor.
type Deck struct {
	cards  []*Card
	cursor int
}

// NewDeck creates a deck over cards, starting at the first one.
func NewDeck(cards []*Card) *Deck {
	return &Deck{cards: cards}
}

func (d *Deck) Len() int {
	return len(d.cards)
}

// Push appends a card. Used while loading, never during a session.
func (d *Deck) Push(card *Card) {
	d.cards = append(d.cards, card)
}

// Shuffle applies a uniform random permutation to the cards.
func (d *Deck) Shuffle(rng Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

func (d *Deck) FlipAll() {
	for _, c := range d.cards {
		c.Flip()
	}
}

// FlipNth flips the card at position i. It returns false if i is out of range.
func (d *Deck) FlipNth(i int) bool {
	c, ok := d.CardAt(i)
	if !ok {
		return false
	}
	c.Flip()
	return true
}

// FlipRandom flips exactly len/4 distinct cards chosen uniformly at random.
// It returns the flipped positions.
func (d *Deck) FlipRandom(rng Rand) []int {
	n := len(d.cards)
	k := n / 4

	// Partial Fisher-Yates: the first k slots end up holding a uniform sample without replacement.
	positions := make([]int, n)
	for i := range positions {
		positions[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		positions[i], positions[j] = positions[j], positions[i]
	}

	picked := positions[:k]
	for _, p := range picked {
		d.cards[p].Flip()
	}
	return picked
}

// Advance moves the cursor to the next card, wrapping around at the end.
// The deck must not be empty.
func (d *Deck) Advance() {
	d.cursor = (d.cursor + 1) % len(d.cards)
}

// Card returns the card under the cursor together with its position.
func (d *Deck) Card() (*Card, int) {
	return d.cards[d.cursor], d.cursor
}

// CardAt returns the card at position i, or false if there is none.
func (d *Deck) CardAt(i int) (*Card, bool) {
	if i < 0 || i >= len(d.cards) {
		return nil, false
	}
	return d.cards[i], true
}

func (d *Deck) QuestionIndex() int {
	return d.cursor
}

// AtLast reports whether the cursor is on the last card.
func (d *Deck) AtLast() bool {
	return d.cursor+1 == len(d.cards)
}
