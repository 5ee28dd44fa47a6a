package logger

import (
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger defines the interface for logging messages.
type Logger interface {
	Error(msg string, err error)
	Warn(msg string)
	Info(msg string)
	Debug(msg string)
}

type logrusLogger struct {
	logger *logrus.Logger
}

var (
	loggerInstance *logrusLogger
	once           sync.Once
)

// New creates a new singleton logger backed by logrus.
// level is one of debug|info|warn|error; environment selects the formatter
// (JSON for production/staging, colored text otherwise).
func New(level, environment string) Logger {
	once.Do(func() {
		l := logrus.New()
		l.SetOutput(os.Stdout)

		parsed, err := logrus.ParseLevel(strings.ToLower(level))
		if err != nil {
			l.SetLevel(logrus.InfoLevel)
			l.Warnf("Invalid log level '%s', defaulting to 'info'", level)
		} else {
			l.SetLevel(parsed)
		}

		switch strings.ToLower(environment) {
		case "production", "staging":
			l.SetFormatter(&logrus.JSONFormatter{
				TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
			})
		default:
			l.SetFormatter(&logrus.TextFormatter{
				FullTimestamp:   true,
				TimestampFormat: "2006-01-02 15:04:05",
			})
		}

		loggerInstance = &logrusLogger{logger: l}
	})
	return loggerInstance
}

// Error logs an error message together with the causing error, if any.
func (l *logrusLogger) Error(msg string, err error) {
	if err != nil {
		l.logger.WithError(err).Error(msg)
		return
	}
	l.logger.Error(msg)
}

// Warn logs a warning message.
func (l *logrusLogger) Warn(msg string) {
	l.logger.Warn(msg)
}

// Info logs an informational message.
func (l *logrusLogger) Info(msg string) {
	l.logger.Info(msg)
}

// Debug logs a debug message.
func (l *logrusLogger) Debug(msg string) {
	l.logger.Debug(msg)
}
