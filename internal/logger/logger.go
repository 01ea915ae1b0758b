// Package logger configure process-wide logrus output.
package logger

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// Setup configures the logrus standard logger. Level comes from LOG_LEVEL
// (defaults to info when unset or unparsable).
func Setup() {

	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000 -0700",
	})

	level, err := log.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
