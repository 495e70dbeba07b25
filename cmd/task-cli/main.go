// Package main provides the task-cli entry point.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/matsen/trackers/internal/config"
	"github.com/matsen/trackers/internal/logging"
	"github.com/matsen/trackers/internal/record"
	"github.com/matsen/trackers/internal/task"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// jsonOutput switches command output to JSON
	jsonOutput bool
	// dataFile overrides the tasks.json location
	dataFile string
	noColor  bool
	verbose  bool

	log *logrus.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(exitCodeFor(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "task-cli",
	Short: "Track tasks in a local JSON file",
	Long: `task-cli keeps a to-do list in tasks.json in the current directory.

Tasks move freely between the statuses todo, in-progress and done.

Examples:
  task-cli add "Submit project report"
  task-cli mark-in-progress 1
  task-cli list in-progress
  task-cli update 1 "Submit final project report"
  task-cli delete 1`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of text")
	rootCmd.PersistentFlags().StringVar(&dataFile, "file", "", "Path to the tasks file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored status labels")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log store activity to stderr")
	rootCmd.Version = Version
}

// setup loads .env from the working directory and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	if cwd, err := os.Getwd(); err == nil {
		if err := config.LoadEnv(cwd); err != nil {
			return &configError{err}
		}
	}
	log = logging.New(os.Stderr, verbose)
	return nil
}

// openTracker resolves the tasks file and loads it.
func openTracker() (*task.Tracker, error) {
	path, err := config.ResolveDataPath(dataFile, config.EnvTasksFile, config.TasksFile)
	if err != nil {
		return nil, &configError{err}
	}
	store := record.Open[task.Task](path, task.Kind, log)
	log.WithField("file", store.Path()).Debug("using data file")
	return task.NewTracker(store), nil
}

// parseID validates a task ID argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, record.Invalid("id", "%q must be a valid task ID (a number)", arg)
	}
	return id, nil
}

// useColor decides whether status labels get ANSI colors.
func useColor() bool {
	if noColor {
		return false
	}
	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		cfg = nil
	}
	return cfg.ColorEnabled(tty)
}
