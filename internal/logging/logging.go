// Package logging builds the diagnostic logger shared by the CLIs.
package logging

import (
	"io"
	"os"

	"github.com/matsen/trackers/internal/config"
	"github.com/sirupsen/logrus"
)

// DefaultLevel keeps routine store traces quiet.
const DefaultLevel = logrus.WarnLevel

// New returns a logger writing to w. The level comes from LOG_LEVEL when it
// parses; verbose forces debug.
func New(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
	})

	log.SetLevel(DefaultLevel)
	if level := os.Getenv(config.EnvLogLevel); level != "" {
		if lvl, err := logrus.ParseLevel(level); err == nil {
			log.SetLevel(lvl)
		}
	}
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}
