// Package main provides the expense-tracker CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/matsen/trackers/internal/config"
	"github.com/matsen/trackers/internal/expense"
	"github.com/matsen/trackers/internal/logging"
	"github.com/matsen/trackers/internal/record"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// jsonOutput switches command output to JSON
	jsonOutput bool
	// dataFile overrides the expenses.json location
	dataFile string
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
	Use:   "expense-tracker",
	Short: "Track personal expenses in a local JSON file",
	Long: `expense-tracker records expenses in expenses.json in the current
directory and reports totals, overall or per month.

The file location can be changed with --file, the EXPENSE_TRACKER_FILE
environment variable (also read from .env), or data_dir in
~/.config/trackers/config.yml.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of text")
	rootCmd.PersistentFlags().StringVar(&dataFile, "file", "", "Path to the expenses file")
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

// openTracker resolves the expenses file and loads it.
func openTracker() (*expense.Tracker, error) {
	path, err := config.ResolveDataPath(dataFile, config.EnvExpensesFile, config.ExpensesFile)
	if err != nil {
		return nil, &configError{err}
	}
	store := record.Open[expense.Expense](path, expense.Kind, log)
	log.WithField("file", store.Path()).Debug("using data file")
	return expense.NewTracker(store), nil
}

// currency returns the configured currency symbol.
func currency() string {
	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		return config.DefaultCurrency
	}
	return cfg.CurrencySymbol()
}
