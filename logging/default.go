package logging

import (
	"fmt"
	"log"
	"maps"
	"os"
	"sort"
	"strings"
)

// DefaultLogger is a plain logger built on Go's standard log package.
// Debug/Info -> stdout, Warn/Error -> stderr.
type DefaultLogger struct {
	stdoutLogger *log.Logger
	stderrLogger *log.Logger
	level        Level
	fields       Fields
}

// NewDefaultLogger creates a new default logger at info level
func NewDefaultLogger() *DefaultLogger {
	return &DefaultLogger{
		stdoutLogger: log.New(os.Stdout, "", log.LstdFlags),
		stderrLogger: log.New(os.Stderr, "", log.LstdFlags),
		level:        InfoLevel,
		fields:       make(Fields),
	}
}

// SetLevel sets the minimum log level
func (d *DefaultLogger) SetLevel(level Level) {
	d.level = level
}

// WithFields returns a logger with the given fields merged over the preset ones
func (d *DefaultLogger) WithFields(fields Fields) Logger {
	merged := make(Fields, len(d.fields)+len(fields))
	maps.Copy(merged, d.fields)
	maps.Copy(merged, fields)

	return &DefaultLogger{
		stdoutLogger: d.stdoutLogger,
		stderrLogger: d.stderrLogger,
		level:        d.level,
		fields:       merged,
	}
}

// Debug logs at debug level
func (d *DefaultLogger) Debug(msg string, fields ...Fields) {
	d.write(DebugLevel, d.stdoutLogger, msg, nil, fields...)
}

// Info logs at info level
func (d *DefaultLogger) Info(msg string, fields ...Fields) {
	d.write(InfoLevel, d.stdoutLogger, msg, nil, fields...)
}

// Warn logs at warn level
func (d *DefaultLogger) Warn(msg string, fields ...Fields) {
	d.write(WarnLevel, d.stderrLogger, msg, nil, fields...)
}

// Error logs at error level
func (d *DefaultLogger) Error(err error, msg string, fields ...Fields) {
	d.write(ErrorLevel, d.stderrLogger, msg, err, fields...)
}

func (d *DefaultLogger) write(level Level, out *log.Logger, msg string, err error, fields ...Fields) {
	if level < d.level {
		return
	}

	merged := make(Fields, len(d.fields))
	maps.Copy(merged, d.fields)
	for _, f := range fields {
		maps.Copy(merged, f)
	}
	if err != nil {
		merged["error"] = err.Error()
	}

	out.Printf("[%s] %s%s", level, msg, formatFields(merged))
}

func formatFields(fields Fields) string {
	if len(fields) == 0 {
		return ""
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%v", k, fields[k])
	}
	return sb.String()
}
