package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/mixcue/mixcue/logging"
)

// logrusLogger adapts a logrus logger to the library's logging.Logger
// interface so library debug output lands on stderr alongside CLI diagnostics.
type logrusLogger struct {
	entry *logrus.Entry
}

func newLogrusLogger() *logrusLogger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	return &logrusLogger{entry: logrus.NewEntry(l)}
}

func (l *logrusLogger) Debug(msg string, fields ...logging.Fields) {
	l.with(fields).Debug(msg)
}

func (l *logrusLogger) Info(msg string, fields ...logging.Fields) {
	l.with(fields).Info(msg)
}

func (l *logrusLogger) Warn(msg string, fields ...logging.Fields) {
	l.with(fields).Warn(msg)
}

func (l *logrusLogger) Error(err error, msg string, fields ...logging.Fields) {
	l.with(fields).WithError(err).Error(msg)
}

func (l *logrusLogger) WithFields(fields logging.Fields) logging.Logger {
	return &logrusLogger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

func (l *logrusLogger) SetLevel(level logging.Level) {
	switch level {
	case logging.DebugLevel:
		l.entry.Logger.SetLevel(logrus.DebugLevel)
	case logging.InfoLevel:
		l.entry.Logger.SetLevel(logrus.InfoLevel)
	case logging.WarnLevel:
		l.entry.Logger.SetLevel(logrus.WarnLevel)
	case logging.ErrorLevel:
		l.entry.Logger.SetLevel(logrus.ErrorLevel)
	}
}

func (l *logrusLogger) with(fields []logging.Fields) *logrus.Entry {
	entry := l.entry
	for _, f := range fields {
		entry = entry.WithFields(logrus.Fields(f))
	}
	return entry
}
