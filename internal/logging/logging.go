// Package logging wires the engine's structured logging, replacing the
// teacher's plain log.Printf ambient logging with the logrus idiom
// used throughout the wider example pack's cobra-based CLIs.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds a logrus.Logger whose level is derived from a cobra
// verbosity count (0=errors only, 1=info, 2=debug), mirroring
// cmd/crossgen's --verbosity flag.
func New(verbosity int) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	switch {
	case verbosity >= 2:
		log.SetLevel(logrus.DebugLevel)
	case verbosity == 1:
		log.SetLevel(logrus.InfoLevel)
	default:
		log.SetLevel(logrus.ErrorLevel)
	}
	return log
}
