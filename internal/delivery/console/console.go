package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aliskhannn/pixo/internal/domain/entities"
)

// ErrInputClosed is returned when the input ends before an answer is read.
var ErrInputClosed = errors.New("input closed")

const (
	msgAnswer  = "Answer : %s"
	msgSummary = "%d questions, %d correct (%d on the first try), %d revealed, %d cycle(s) in %s"
)

// Console is the line-oriented terminal of a quiz session.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	theme Theme
}

// New creates a console reading answers from in and writing to out.
func New(in io.Reader, out io.Writer, theme Theme) *Console {
	return &Console{
		in:    bufio.NewReader(in),
		out:   out,
		theme: theme,
	}
}

// Prompt shows the question text.
func (c *Console) Prompt(text string) error {
	return c.println(c.theme.Prompt.Render(text))
}

// ReadAnswer reads one line. The trailing newline is kept, answers are trimmed when graded.
// A final line without newline is still returned; an empty read at end of input is ErrInputClosed.
func (c *Console) ReadAnswer() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return line, nil
			}
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("read line: %w", err)
	}
	return line, nil
}

// Tip shows the hint after a wrong attempt.
func (c *Console) Tip(text string) error {
	return c.println(c.theme.Tip.Render(text))
}

// Reveal shows the expected answers once every try is spent.
func (c *Console) Reveal(answer string) error {
	if err := c.println(c.theme.Reveal.Render(fmt.Sprintf(msgAnswer, answer))); err != nil {
		return err
	}
	return c.println("")
}

// Accept acknowledges a correct answer with an empty line.
func (c *Console) Accept() error {
	return c.println("")
}

// Summary prints the statistics of a finished session.
func (c *Console) Summary(s *entities.Session) error {
	text := fmt.Sprintf(msgSummary,
		s.Questions, s.Correct, s.FirstTry, s.Revealed, s.Cycles,
		s.Duration().Round(time.Second),
	)
	return c.println(c.theme.Summary.Render(text))
}

func (c *Console) println(text string) error {
	if _, err := fmt.Fprintln(c.out, strings.TrimRight(text, " ")); err != nil {
		return fmt.Errorf("write console: %w", err)
	}
	return nil
}
