package service

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/aliskhannn/pixo/internal/domain/entities"
)

// scriptedConsole answers prompts through a callback and records everything shown.
type scriptedConsole struct {
	answer func(prompt string, attempt int) (string, bool)

	asker    *Asker
	prompts  []string
	cycles   []int
	pending  []int
	tips     []string
	reveals  []string
	accepted int

	current string
	attempt int
}

func (c *scriptedConsole) Prompt(text string) error {
	c.prompts = append(c.prompts, text)
	if c.asker != nil {
		c.cycles = append(c.cycles, c.asker.Cycles())
		c.pending = append(c.pending, c.asker.Pending())
	}
	c.current = text
	c.attempt = 0
	return nil
}

func (c *scriptedConsole) ReadAnswer() (string, error) {
	c.attempt++
	ans, ok := c.answer(c.current, c.attempt)
	if !ok {
		return "", io.EOF
	}
	return ans, nil
}

func (c *scriptedConsole) Tip(text string) error {
	c.tips = append(c.tips, text)
	return nil
}

func (c *scriptedConsole) Reveal(answer string) error {
	c.reveals = append(c.reveals, answer)
	return nil
}

func (c *scriptedConsole) Accept() error {
	c.accepted++
	return nil
}

func quizDeck(t *testing.T, n int) *entities.Deck {
	t.Helper()
	cards := make([]*entities.Card, 0, n)
	for i := 0; i < n; i++ {
		c, err := entities.NewCard([]string{fmt.Sprintf("q%d", i)}, []string{fmt.Sprintf("a%d", i)}, entities.SingleTip("hint"), false)
		if err != nil {
			t.Fatal(err)
		}
		cards = append(cards, c)
	}
	return entities.NewDeck(cards)
}

// answerFor returns the other side of a quizDeck card.
func answerFor(prompt string) string {
	var i int
	if _, err := fmt.Sscanf(prompt, "q%d", &i); err == nil {
		return fmt.Sprintf("a%d", i)
	}
	if _, err := fmt.Sscanf(prompt, "a%d", &i); err == nil {
		return fmt.Sprintf("q%d", i)
	}
	return ""
}

func buildAsker(t *testing.T, b *AskerBuilder, console *scriptedConsole) *Asker {
	t.Helper()
	a, err := b.Logger(zaptest.NewLogger(t)).Build(console)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	console.asker = a
	return a
}

func distinct(items []string) int {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		seen[it] = struct{}{}
	}
	return len(seen)
}

func TestAskerBuilderErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tests := []struct {
		name    string
		builder *AskerBuilder
		want    error
	}{
		{"empty deck", NewAskerBuilder(entities.NewDeck(nil), rng), ErrEmptyDeck},
		{"nil deck", NewAskerBuilder(nil, rng), ErrEmptyDeck},
		{"zero cycles", NewAskerBuilder(quizDeck(t, 2), rng).MaxCycles(0), ErrInvalidMaxCycles},
		{"zero tries", NewAskerBuilder(quizDeck(t, 2), rng).Tries(0), ErrInvalidTries},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build(&scriptedConsole{})
			if !errors.Is(err, tt.want) {
				t.Errorf("Build() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAskerBuildVerso(t *testing.T) {
	console := &scriptedConsole{answer: func(p string, _ int) (string, bool) { return answerFor(p), true }}
	a := buildAsker(t, NewAskerBuilder(quizDeck(t, 4), rand.New(rand.NewSource(1))).FlipMode(entities.FlipVerso()), console)

	if _, err := a.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for _, p := range console.prompts {
		if p[0] != 'a' {
			t.Errorf("prompt %q, want every card asked on its verso", p)
		}
	}
}

// Scenario A: every first answer is wrong, every retry is right.
func TestAskerAllWrongThenRetried(t *testing.T) {
	console := &scriptedConsole{}
	console.answer = func(p string, _ int) (string, bool) {
		if len(console.prompts) <= 3 {
			return "wrong", true
		}
		return answerFor(p), true
	}
	a := buildAsker(t, NewAskerBuilder(quizDeck(t, 3), rand.New(rand.NewSource(9))).Tries(1).MaxCycles(1), console)

	session, err := a.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(console.prompts) != 6 {
		t.Fatalf("prompts = %v, want 6", console.prompts)
	}
	if distinct(console.prompts[:3]) != 3 || distinct(console.prompts[3:]) != 3 {
		t.Errorf("prompts = %v, want every card once in the deck pass and once in the retry pass", console.prompts)
	}
	if len(console.reveals) != 3 || len(console.tips) != 0 {
		t.Errorf("reveals = %v, tips = %v, want 3 reveals and no tip with a single try", console.reveals, console.tips)
	}
	for i, c := range console.cycles {
		if c != 0 {
			t.Errorf("prompt %d asked during cycle %d, want the cycle to complete only after the retry pass", i, c)
		}
	}
	if console.pending[3] != 3 {
		t.Errorf("pending at first retry = %d, want 3", console.pending[3])
	}
	if a.Cycles() != 1 || a.Pending() != 0 {
		t.Errorf("Cycles() = %d, Pending() = %d, want 1, 0", a.Cycles(), a.Pending())
	}
	if session.Questions != 6 || session.Correct != 3 || session.Revealed != 3 || session.Cycles != 1 {
		t.Errorf("session = %+v", *session)
	}
}

// Scenario A with every answer wrong: the retry pass re-asks all three cards and
// the run only stops when the input runs out.
func TestAskerAllWrongUntilInputEnds(t *testing.T) {
	console := &scriptedConsole{}
	console.answer = func(string, int) (string, bool) {
		return "wrong", len(console.prompts) <= 6
	}
	a := buildAsker(t, NewAskerBuilder(quizDeck(t, 3), rand.New(rand.NewSource(3))).Tries(1).MaxCycles(1), console)

	_, err := a.Run()
	if !errors.Is(err, io.EOF) {
		t.Fatalf("Run() error = %v, want io.EOF", err)
	}
	if len(console.prompts) != 7 {
		t.Fatalf("prompts = %v, want 6 graded and 1 unanswered", console.prompts)
	}
	if distinct(console.prompts[:3]) != 3 || distinct(console.prompts[3:6]) != 3 {
		t.Errorf("prompts = %v, want every card in each pass", console.prompts)
	}
	if a.Cycles() != 0 {
		t.Errorf("Cycles() = %d, want 0 while retries are pending", a.Cycles())
	}
	if a.Mode() != ModeFailed {
		t.Errorf("Mode() = %v, want failed", a.Mode())
	}
}

// Scenario B: one card, two cycles, always correct.
func TestAskerSingleCardTwoCycles(t *testing.T) {
	console := &scriptedConsole{answer: func(p string, _ int) (string, bool) { return answerFor(p), true }}
	a := buildAsker(t, NewAskerBuilder(quizDeck(t, 1), rand.New(rand.NewSource(1))).MaxCycles(2), console)

	if _, err := a.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(console.prompts) != 2 {
		t.Errorf("prompts = %v, want 2", console.prompts)
	}
	if a.Cycles() != 2 {
		t.Errorf("Cycles() = %d, want 2", a.Cycles())
	}
	for i, p := range console.pending {
		if p != 0 {
			t.Errorf("prompt %d: %d retries pending, want none", i, p)
		}
	}
	if console.accepted != 2 {
		t.Errorf("accepted = %d, want 2", console.accepted)
	}
}

// Scenario C: several accepted answers and the reveal format.
func TestAskerRevealAfterTries(t *testing.T) {
	card, err := entities.NewCard([]string{"chat"}, []string{"cat", "feline"}, entities.SingleTip("meow"), false)
	if err != nil {
		t.Fatal(err)
	}

	console := &scriptedConsole{}
	console.answer = func(_ string, attempt int) (string, bool) {
		if len(console.prompts) == 1 {
			return "dog", true
		}
		return "feline", true
	}
	a := buildAsker(t, NewAskerBuilder(entities.NewDeck([]*entities.Card{card}), rand.New(rand.NewSource(1))).Tries(2), console)

	session, err := a.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(console.tips) != 1 || console.tips[0] != "Tip : meow." {
		t.Errorf("tips = %v, want one tip before the reveal", console.tips)
	}
	if len(console.reveals) != 1 || console.reveals[0] != "cat OR feline" {
		t.Errorf("reveals = %v, want [cat OR feline]", console.reveals)
	}
	if len(console.prompts) != 2 {
		t.Errorf("prompts = %v, want the card asked again in the retry pass", console.prompts)
	}
	if session.FirstTry != 1 || session.Revealed != 1 {
		t.Errorf("session = %+v, want 1 first-try answer and 1 reveal", *session)
	}
}

func TestAskerCorrectOnSecondTry(t *testing.T) {
	console := &scriptedConsole{}
	console.answer = func(p string, attempt int) (string, bool) {
		if attempt == 1 {
			return "nope", true
		}
		return answerFor(p), true
	}
	a := buildAsker(t, NewAskerBuilder(quizDeck(t, 3), rand.New(rand.NewSource(4))).Tries(3), console)

	session, err := a.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(console.prompts) != 3 || len(console.tips) != 3 || len(console.reveals) != 0 {
		t.Errorf("prompts = %d, tips = %d, reveals = %d, want 3, 3, 0",
			len(console.prompts), len(console.tips), len(console.reveals))
	}
	if session.Correct != 3 || session.FirstTry != 0 {
		t.Errorf("session = %+v", *session)
	}
}

// A failed card is re-asked in every retry pass until it is answered correctly.
func TestAskerRetriesUntilCorrect(t *testing.T) {
	seen := make(map[string]int)
	console := &scriptedConsole{}
	console.answer = func(p string, _ int) (string, bool) {
		seen[p]++
		if seen[p] < 3 {
			return "wrong", true
		}
		return answerFor(p), true
	}
	a := buildAsker(t, NewAskerBuilder(quizDeck(t, 5), rand.New(rand.NewSource(11))).Tries(1), console)

	if _, err := a.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(console.prompts) != 15 {
		t.Fatalf("prompts = %d, want 15", len(console.prompts))
	}
	for i := 0; i < 3; i++ {
		pass := console.prompts[i*5 : (i+1)*5]
		if distinct(pass) != 5 {
			t.Errorf("pass %d = %v, want every card once", i, pass)
		}
	}
	for p, n := range seen {
		if n != 3 {
			t.Errorf("%s asked %d times, want 3", p, n)
		}
	}
}

func TestAskerMixedRetries(t *testing.T) {
	// q0 is always right, q1 fails once, q2 fails twice.
	failures := map[string]int{"q1": 1, "q2": 2}
	seen := make(map[string]int)
	console := &scriptedConsole{}
	console.answer = func(p string, _ int) (string, bool) {
		seen[p]++
		if seen[p] <= failures[p] {
			return "wrong", true
		}
		return answerFor(p), true
	}
	a := buildAsker(t, NewAskerBuilder(quizDeck(t, 3), rand.New(rand.NewSource(5))).Tries(1).MaxCycles(2), console)

	if _, err := a.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Cycle 1: 3 deck questions, q1+q2 retried, q2 retried again. Cycle 2: 3 deck questions.
	if len(console.prompts) != 3+2+1+3 {
		t.Errorf("prompts = %v, want 9", console.prompts)
	}
	if seen["q0"] != 2 || seen["q1"] != 3 || seen["q2"] != 4 {
		t.Errorf("seen = %v, want q0:2 q1:3 q2:4", seen)
	}
	if a.Cycles() != 2 {
		t.Errorf("Cycles() = %d, want 2", a.Cycles())
	}
}

func TestAskerAllCasesFlipsEachCycle(t *testing.T) {
	console := &scriptedConsole{answer: func(p string, _ int) (string, bool) { return answerFor(p), true }}
	// floor(2/4) = 0, so the first cycle is asked on the recto.
	a := buildAsker(t, NewAskerBuilder(quizDeck(t, 2), rand.New(rand.NewSource(2))).
		FlipMode(entities.FlipRandom(true)).MaxCycles(3), console)

	if _, err := a.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(console.prompts) != 6 {
		t.Fatalf("prompts = %v, want 6", console.prompts)
	}

	wantPrefix := []byte{'q', 'q', 'a', 'a', 'q', 'q'}
	for i, p := range console.prompts {
		if p[0] != wantPrefix[i] {
			t.Errorf("prompt %d = %q, want side starting with %q", i, p, wantPrefix[i])
		}
	}
}

func TestAskerConsoleErrorAborts(t *testing.T) {
	boom := errors.New("broken pipe")
	a, err := NewAskerBuilder(quizDeck(t, 2), rand.New(rand.NewSource(1))).Build(failingConsole{err: boom})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := a.Run(); !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, want %v", err, boom)
	}
}

type failingConsole struct{ err error }

func (f failingConsole) Prompt(string) error         { return f.err }
func (f failingConsole) ReadAnswer() (string, error) { return "", f.err }
func (f failingConsole) Tip(string) error            { return f.err }
func (f failingConsole) Reveal(string) error         { return f.err }
func (f failingConsole) Accept() error               { return f.err }
