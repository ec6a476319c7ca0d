// Package log provides the leveled logger of the buildplus command.
package log

import (
	"log"
	"os"
	"sync"

	"github.com/fatih/color"
)

var warnPrefix = color.New(color.FgYellow).Sprint("WARNING: ")

// Logger logs messages
type Logger struct {
	debugEnabled bool

	output     Output
	outputLock sync.Mutex
}

// Output defines the output channel of a logger to that all log messages are
// written.
type Output interface {
	Printf(format string, v ...any)
	Println(v ...any)
}

// StdLogger is the logger that is used from the log functions in this package
var StdLogger = New(false)

// New returns a new Logger that logs to Stderr.
// Debug messages are only printed if debugEnabled is true
func New(debugEnabled bool) *Logger {
	return &Logger{
		debugEnabled: debugEnabled,
		output:       log.New(os.Stderr, "", 0),
	}
}

// EnableDebug enables/disables logging debug messages
func (l *Logger) EnableDebug(enabled bool) {
	l.debugEnabled = enabled
}

// DebugEnabled returns true if logging debug messages is enabled
func (l *Logger) DebugEnabled() bool {
	return l.debugEnabled
}

// Debugln logs a debug message.
// It's only shown if debugging is enabled.
func (l *Logger) Debugln(v ...any) {
	if !l.debugEnabled {
		return
	}

	l.GetOutput().Println(v...)
}

// Debugf logs a debug message.
// It's only shown if debugging is enabled.
func (l *Logger) Debugf(format string, v ...any) {
	if !l.debugEnabled {
		return
	}

	l.GetOutput().Printf(format, v...)
}

// Warnf logs a message prefixed with "WARNING: ".
func (l *Logger) Warnf(format string, v ...any) {
	l.GetOutput().Printf(warnPrefix+format, v...)
}

// GetOutput returns the output of the logger.
func (l *Logger) GetOutput() Output {
	l.outputLock.Lock()
	defer l.outputLock.Unlock()

	return l.output
}

// SetOutput changes the output of the logger
func (l *Logger) SetOutput(o Output) {
	l.outputLock.Lock()
	defer l.outputLock.Unlock()

	l.output = o
}

// Debugln logs a debug message via the StdLogger.
func Debugln(v ...any) {
	StdLogger.Debugln(v...)
}

// Debugf logs a debug message via the StdLogger.
func Debugf(format string, v ...any) {
	StdLogger.Debugf(format, v...)
}

// Warnf logs a warning via the StdLogger.
func Warnf(format string, v ...any) {
	StdLogger.Warnf(format, v...)
}
