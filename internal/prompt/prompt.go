package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
)

// maxAttempts bounds how often Select re-asks after an invalid answer.
const maxAttempts = 3

// ErrNoAnswer is returned when input ends or no valid answer was given.
var ErrNoAnswer = errors.New("no answer")

// Prompter asks line-based questions on a reader/writer pair.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Prompter reading answers from in and writing questions to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Interactive reports whether f is attached to a terminal.
func Interactive(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Confirm asks a yes/no question. An empty answer or end of input means no.
func (p *Prompter) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.out, "? %s [y/N]: ", question)
	answer, err := p.readLine()
	if err != nil && !errors.Is(err, ErrNoAnswer) {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Select asks the user to pick one of choices, by number or by name, and
// returns its index.
func (p *Prompter) Select(question string, choices []string) (int, error) {
	if len(choices) == 0 {
		return 0, fmt.Errorf("%w: nothing to choose from", ErrNoAnswer)
	}
	fmt.Fprintf(p.out, "? %s\n", question)
	for i, c := range choices {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, c)
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		fmt.Fprintf(p.out, "Choice [1-%d]: ", len(choices))
		answer, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if idx, ok := match(answer, choices); ok {
			return idx, nil
		}
		fmt.Fprintf(p.out, "  please enter a number between 1 and %d\n", len(choices))
	}
	return 0, fmt.Errorf("%w after %d attempts", ErrNoAnswer, maxAttempts)
}

func match(answer string, choices []string) (int, bool) {
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(choices) {
			return n - 1, true
		}
		return 0, false
	}
	for i, c := range choices {
		if strings.EqualFold(answer, c) {
			return i, true
		}
	}
	return 0, false
}

// readLine returns the next trimmed line. End of input with nothing read
// yields ErrNoAnswer.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if strings.TrimSpace(line) == "" {
				return "", ErrNoAnswer
			}
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}
