// Package log provides the prefixed, colour-coded loggers shared by every component.
package log

import (
	"errors"
	"fmt"
	"io"
	stdlog "log"

	"github.com/beka-birhanu/vinom-mazegen/config"
)

var (
	ErrEmptyPrefix = errors.New("logger prefix is empty")
	ErrNilWriter   = errors.New("logger writer is nil")
)

// Logger writes "[PREFIX] [LEVEL] message" lines.
type Logger struct {
	prefix string
	color  string
	out    *stdlog.Logger
}

// New creates a logger for one component. color is one of the config.Color*
// escape codes and is applied to the prefix.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	if w == nil {
		return nil, ErrNilWriter
	}

	return &Logger{
		prefix: prefix,
		color:  color,
		out:    stdlog.New(w, "", stdlog.LstdFlags),
	}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{
		prefix: "NOP",
		out:    stdlog.New(io.Discard, "", 0),
	}
}

// Info logs a message at INFO level.
func (l *Logger) Info(msg string) {
	l.write(config.LogInfoColor, "INFO", msg)
}

// Warning logs a message at WARNING level.
func (l *Logger) Warning(msg string) {
	l.write(config.LogWarningColor, "WARNING", msg)
}

// Error logs a message at ERROR level.
func (l *Logger) Error(msg string) {
	l.write(config.LogErrorColor, "ERROR", msg)
}

func (l *Logger) write(levelColor, level, msg string) {
	prefix := fmt.Sprintf("[%s]", l.prefix)
	if l.color != "" {
		prefix = l.color + prefix + config.ColorReset
	}
	l.out.Printf("%s %s[%s]%s %s", prefix, levelColor, level, config.LogColorReset, msg)
}
