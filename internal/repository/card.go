package repository

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aliskhannn/pixo/internal/domain/entities"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported card file format")
	ErrNoCardFiles       = errors.New("no card files found")
	ErrInvalidCard       = errors.New("invalid card")
)

// TagOnlyRecto marks a card that must never be flipped.
const TagOnlyRecto = "only_recto"

// Entry is a loaded card together with the metadata the deck does not need.
type Entry struct {
	Card   *entities.Card
	Tags   []string // every tag from the document, known or not
	Source string   // file the card was read from
}

// CardRepository provides the cards of one card file or of a directory of card files.
type CardRepository struct {
	entries []Entry
}

type options struct {
	sheet string
}

// Option customizes how card files are read.
type Option func(*options)

// WithSheet selects the spreadsheet sheet to read. The first sheet is used by default.
func WithSheet(name string) Option {
	return func(o *options) {
		o.sheet = name
	}
}

// NewCardRepository loads cards from path.
// path is either a .json/.xlsx file or a directory; every card file of a directory
// is read in lexical order.
func NewCardRepository(path string, opts ...Option) (*CardRepository, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("open card path: %w", err)
	}

	files := []string{path}
	if info.IsDir() {
		files, err = cardFiles(path)
		if err != nil {
			return nil, err
		}
	}

	r := &CardRepository{}
	for _, file := range files {
		entries, err := loadFile(file, o)
		if err != nil {
			return nil, err
		}
		r.entries = append(r.entries, entries...)
	}

	return r, nil
}

// GetAll returns every loaded card in file order.
func (r *CardRepository) GetAll() []*entities.Card {
	cards := make([]*entities.Card, 0, len(r.entries))
	for _, e := range r.entries {
		cards = append(cards, e.Card)
	}
	return cards
}

func (r *CardRepository) Entries() []Entry {
	return r.entries
}

func (r *CardRepository) Len() int {
	return len(r.entries)
}

// Deck returns a new deck holding every loaded card.
func (r *CardRepository) Deck() *entities.Deck {
	deck := entities.NewDeck(nil)
	for _, e := range r.entries {
		deck.Push(e.Card)
	}
	return deck
}

func loadFile(path string, o options) ([]Entry, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return loadJSON(path)
	case ".xlsx":
		return loadXLSX(path, o.sheet)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

func cardFiles(dir string) ([]string, error) {
	items, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read card directory: %w", err)
	}

	var files []string
	for _, item := range items {
		if item.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(item.Name())) {
		case ".json", ".xlsx":
			files = append(files, filepath.Join(dir, item.Name()))
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoCardFiles)
	}

	sort.Strings(files)
	return files, nil
}

// newEntry validates the raw fields of one question and builds its card.
func newEntry(source string, position int, recto, verso, tips, tags []string) (Entry, error) {
	onlyRecto := false
	for _, tag := range tags {
		if tag == TagOnlyRecto {
			onlyRecto = true
			break
		}
	}

	card, err := entities.NewCard(recto, verso, tipFromList(tips), onlyRecto)
	if err != nil {
		return Entry{}, fmt.Errorf("%s: question %d: %w: %w", source, position, ErrInvalidCard, err)
	}

	return Entry{Card: card, Tags: tags, Source: source}, nil
}

// tipFromList maps zero, one or several hint texts to a tip.
// With several texts the last two are the recto and verso hints.
func tipFromList(tips []string) entities.Tip {
	switch n := len(tips); n {
	case 0:
		return entities.NoTip()
	case 1:
		return entities.SingleTip(tips[0])
	default:
		return entities.RectoVersoTip(tips[n-2], tips[n-1])
	}
}
