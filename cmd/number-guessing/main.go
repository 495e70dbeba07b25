// Package main provides the number-guessing entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/matsen/trackers/internal/config"
	"github.com/matsen/trackers/internal/guess"
	"github.com/matsen/trackers/internal/logging"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// Exit codes
const (
	ExitSuccess     = 0
	ExitError       = 1
	ExitConfigError = 2
)

var (
	difficulty string
	seed       uint64
	verbose    bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(exitCodeFor(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "number-guessing",
	Short: "Guess the number between 1 and 100",
	Long: `number-guessing picks a secret number between 1 and 100 and tells you
whether each guess is too high or too low.

Difficulty sets the number of chances: easy 10, medium 5, hard 3. Without
--difficulty the game asks at the start of every round.

Examples:
  number-guessing
  number-guessing --difficulty hard
  number-guessing --seed 42`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	rootCmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "Play every round at easy, medium or hard")
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for the secret number (default: current time)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log game setup to stderr")
	rootCmd.Version = Version
}

// configError marks failures while reading the global config file.
type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

func exitCodeFor(err error) int {
	var cerr *configError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &cerr):
		return ExitConfigError
	default:
		return ExitError
	}
}

func runGame(cmd *cobra.Command, args []string) error {
	log := logging.New(cmd.ErrOrStderr(), verbose)

	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		return &configError{err}
	}

	level := difficulty
	if level == "" && cfg != nil {
		level = cfg.Difficulty
	}
	if !cmd.Flags().Changed("seed") {
		seed = uint64(time.Now().UnixNano())
	}
	log.WithField("seed", seed).WithField("difficulty", level).Debug("starting game")

	session := guess.NewSession(guess.NewGame(guess.DefaultMin, guess.DefaultMax, seed), cmd.InOrStdin(), cmd.OutOrStdout())
	if level != "" {
		session.Difficulty = guess.ParseDifficulty(level)
	}

	ctx := cmd.Context()
	err = session.Run(ctx)
	if ctx.Err() != nil {
		return nil
	}
	return err
}

