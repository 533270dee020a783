package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Logger prints pipeline diagnostics: info to stdout, warnings and debug traces to stderr
type Logger struct {
	out   io.Writer
	err   io.Writer
	debug bool
	quiet bool
}

// NewLogger creates a Logger writing to the colour-aware standard streams
func NewLogger(debug, quiet bool) *Logger {
	return &Logger{
		out:   color.Output,
		err:   color.Error,
		debug: debug,
		quiet: quiet,
	}
}

// NewLoggerWithWriters creates a Logger with custom writers (for testing)
func NewLoggerWithWriters(out, err io.Writer, debug, quiet bool) *Logger {
	return &Logger{out: out, err: err, debug: debug, quiet: quiet}
}

// Debugf prints a trace line when debug output is enabled
func (l *Logger) Debugf(format string, args ...any) {
	if !l.debug {
		return
	}
	fmt.Fprintln(l.err, color.HiBlackString("debug: "+format, args...))
}

// Infof prints a progress message (skipped in quiet mode)
func (l *Logger) Infof(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintln(l.out, color.CyanString(format, args...))
}

// Warnf prints a warning; warnings are never suppressed
func (l *Logger) Warnf(format string, args ...any) {
	fmt.Fprintln(l.err, color.YellowString("warning: "+format, args...))
}

// Errorf prints an error line
func (l *Logger) Errorf(format string, args ...any) {
	fmt.Fprintln(l.err, color.RedString("error: "+format, args...))
}
