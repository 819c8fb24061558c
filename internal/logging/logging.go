// Package logging builds the diagnostic logger. Status lines meant for the
// person running a hook go through ui; this logger carries error detail and
// debug traces on stderr.
package logging

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// DefaultLevel is used when no level is configured or the configured one is invalid.
const DefaultLevel = log.WarnLevel

// New returns a text logger writing to w at the named level.
func New(level string, w io.Writer) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	logger.SetLevel(DefaultLevel)

	if level == "" {
		return logger
	}
	if parsed, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(parsed)
	} else {
		logger.Warnf("invalid log level %s, defaulting to %s", level, DefaultLevel)
	}
	return logger
}
