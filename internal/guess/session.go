package guess

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// Session runs rounds against a line-oriented input and output.
type Session struct {
	game *Game
	in   *bufio.Scanner
	out  io.Writer

	// lines is fed by readLines, started on the first prompt.
	readOnce sync.Once
	lines    chan inputLine

	// Difficulty preselects the level for every round; zero prompts each time.
	Difficulty Difficulty
}

// NewSession returns a session reading answers from in and writing to out.
func NewSession(game *Game, in io.Reader, out io.Writer) *Session {
	return &Session{
		game:  game,
		in:    bufio.NewScanner(in),
		out:   out,
		lines: make(chan inputLine),
	}
}

// inputLine is one line of input or the error that ended the input.
type inputLine struct {
	text string
	err  error
}

// readLines feeds s.lines until the input ends.
func (s *Session) readLines() {
	defer close(s.lines)
	for s.in.Scan() {
		s.lines <- inputLine{text: s.in.Text()}
	}
	if err := s.in.Err(); err != nil {
		s.lines <- inputLine{err: fmt.Errorf("reading input: %w", err)}
	}
}

// Run plays rounds until the player declines another one, input ends, or
// ctx is cancelled. End of input is not an error.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "\nWelcome to the Number Guessing Game!")
	fmt.Fprintf(s.out, "I'm thinking of a number between %d and %d.\n", s.game.Min, s.game.Max)

	err := s.loop(ctx)
	fmt.Fprintln(s.out, "\nThanks for playing! Goodbye.")
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *Session) loop(ctx context.Context) error {
	for {
		if _, err := s.PlayRound(ctx); err != nil {
			return err
		}
		answer, err := s.ask(ctx, "\nDo you want to play again? (y/n): ")
		if err != nil {
			return err
		}
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			return nil
		}
	}
}

// PlayRound plays a single round and returns it once it is won or lost.
func (s *Session) PlayRound(ctx context.Context) (*Round, error) {
	d := s.Difficulty
	if d == 0 {
		var err error
		if d, err = s.selectDifficulty(ctx); err != nil {
			return nil, err
		}
	}
	fmt.Fprintf(s.out, "\nGreat! You have %d chances.\n", d.MaxAttempts())

	r := s.game.NewRound(d)
	for r.AttemptsLeft() {
		input, err := s.ask(ctx, "Enter your guess: ")
		if err != nil {
			return r, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil || !s.game.InRange(n) {
			fmt.Fprintf(s.out, "Please enter a valid number between %d and %d.\n", s.game.Min, s.game.Max)
			continue
		}

		switch r.Guess(n) {
		case Correct:
			fmt.Fprintf(s.out, "Correct! You guessed the number in %d attempts.\n", r.Attempts)
			return r, nil
		case TooLow:
			fmt.Fprintf(s.out, "Incorrect! The number is greater than %d.\n\n", n)
		case TooHigh:
			fmt.Fprintf(s.out, "Incorrect! The number is less than %d.\n\n", n)
		}
	}

	fmt.Fprintf(s.out, "Out of chances! The correct number was %d.\n", r.Target)
	return r, nil
}

func (s *Session) selectDifficulty(ctx context.Context) (Difficulty, error) {
	fmt.Fprintln(s.out, "\nSelect difficulty level:")
	for i, d := range Difficulties {
		fmt.Fprintf(s.out, "%d. %s (%d chances)\n", i+1, d, d.MaxAttempts())
	}

	for {
		choice, err := s.ask(ctx, "Enter your choice (1-3): ")
		if err != nil {
			return 0, err
		}
		if d, ok := ParseChoice(choice); ok {
			fmt.Fprintf(s.out, "You selected %s.\n", d)
			return d, nil
		}
		fmt.Fprintln(s.out, "Invalid choice. Enter 1, 2, or 3.")
	}
}

// ask prints prompt and waits for one line of input or cancellation.
func (s *Session) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(s.out, prompt)
	s.readOnce.Do(func() { go s.readLines() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		return line.text, line.err
	}
}
