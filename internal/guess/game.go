// Package guess implements the number guessing game.
package guess

import (
	"math/rand/v2"
	"strings"
)

// Default guessing range.
const (
	DefaultMin = 1
	DefaultMax = 100
)

// Difficulty selects how many attempts a round allows.
type Difficulty int

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
)

// Difficulties lists the menu entries in order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// MaxAttempts returns the number of guesses allowed.
func (d Difficulty) MaxAttempts() int {
	switch d {
	case Easy:
		return 10
	case Hard:
		return 3
	default:
		return 5
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Hard:
		return "Hard"
	default:
		return "Medium"
	}
}

// ParseChoice maps a menu answer ("1", "2", "3") to a difficulty.
func ParseChoice(s string) (Difficulty, bool) {
	switch strings.TrimSpace(s) {
	case "1":
		return Easy, true
	case "2":
		return Medium, true
	case "3":
		return Hard, true
	}
	return 0, false
}

// ParseDifficulty maps a name or menu number to a difficulty. Unknown names
// fall back to Medium.
func ParseDifficulty(s string) Difficulty {
	if d, ok := ParseChoice(s); ok {
		return d
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy
	case "hard":
		return Hard
	}
	return Medium
}

// Outcome is the result of one guess.
type Outcome int

const (
	TooLow Outcome = iota
	TooHigh
	Correct
)

// Round tracks one target number and the attempts spent on it.
type Round struct {
	Target      int
	MaxAttempts int
	Attempts    int
	Won         bool
}

// Guess records an attempt and compares n to the target.
func (r *Round) Guess(n int) Outcome {
	r.Attempts++
	switch {
	case n == r.Target:
		r.Won = true
		return Correct
	case n < r.Target:
		return TooLow
	default:
		return TooHigh
	}
}

// AttemptsLeft reports whether another guess is allowed.
func (r *Round) AttemptsLeft() bool {
	return !r.Won && r.Attempts < r.MaxAttempts
}

// Game holds the range and random source shared by all rounds.
type Game struct {
	Min, Max int
	rng      *rand.Rand
}

// NewGame returns a game over [min, max] seeded with seed.
func NewGame(min, max int, seed uint64) *Game {
	return &Game{
		Min: min,
		Max: max,
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// InRange reports whether n is a legal guess.
func (g *Game) InRange(n int) bool {
	return n >= g.Min && n <= g.Max
}

// NewRound picks a fresh target.
func (g *Game) NewRound(d Difficulty) *Round {
	return &Round{
		Target:      g.Min + g.rng.IntN(g.Max-g.Min+1),
		MaxAttempts: d.MaxAttempts(),
	}
}
