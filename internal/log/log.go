/*
Package log holds the process-wide logger. Library code logs through the helpers
here so the CLI decides where output goes and in which format.
*/
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var log = newDefault()

// Config selects the output format and level of the process logger.
type Config struct {
	Level      logrus.Level
	Structured bool
	Output     io.Writer
}

func newDefault() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	return l
}

// Setup replaces the process logger with one built from cfg.
func Setup(cfg Config) {
	l := logrus.New()

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	l.SetOutput(output)
	l.SetLevel(cfg.Level)

	if cfg.Structured {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FullTimestamp:   true,
		})
	}

	log = l
}

// Set replaces the process logger, tests use it to capture entries.
func Set(l *logrus.Logger) {
	log = l
}

func Get() *logrus.Logger {
	return log
}

// Errorf takes a formatted template string and template arguments for the error logging level.
func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

// Warnf takes a formatted template string and template arguments for the warning logging level.
func Warnf(format string, args ...interface{}) {
	log.Warnf(format, args...)
}

// Infof takes a formatted template string and template arguments for the info logging level.
func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

// Debugf takes a formatted template string and template arguments for the debug logging level.
func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// WithFields returns an entry carrying the given fields.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return log.WithFields(fields)
}

// LevelFromVerbosity maps the count of -v flags to a level.
func LevelFromVerbosity(verbosity int) logrus.Level {
	switch {
	case verbosity <= 0:
		return logrus.WarnLevel
	case verbosity == 1:
		return logrus.InfoLevel
	case verbosity == 2:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}
