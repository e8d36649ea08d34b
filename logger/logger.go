// (c) Copyright Tracewire Labs 2026

// Package logger provides the leveled logger used by jaegerprop. It writes
// through a minimal Printer backend, so any logging library that can print a
// line can serve as the output.
package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
)

// Valid log levels to be used with (*logger.Logger).SetLevel()
const (
	ErrorLevel Level = iota
	WarnLevel
	InfoLevel
	DebugLevel
)

// DefaultPrefix is the default log prefix used by Logger
const DefaultPrefix = "jaegerprop: "

// Level defines the minimum logging level for logger.Logger
type Level uint8

// String returns the log line label for this level
func (lvl Level) String() string {
	switch lvl {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Printer is used by a logger.Logger instance to print out a log message
type Printer interface {
	Print(a ...interface{})
}

// Logger is a configurable leveled logger. It follows the same method set as
// github.com/sirupsen/logrus.Logger and go.uber.org/zap.SugaredLogger.
type Logger struct {
	p Printer

	mu     sync.Mutex
	lvl    Level
	prefix string
}

// New initializes a new instance of Logger that uses the provided printer as
// a backend to output log messages. The stdlib log.Logger satisfies the
// logger.Printer interface:
//
//	l := logger.New(log.New(os.Stderr, "", log.LstdFlags))
//	l.SetLevel(logger.WarnLevel)
//
// When printer is nil, messages are written to os.Stderr via the stdlib log
// package. The initial level is ErrorLevel unless the JAEGERPROP_LOG_LEVEL
// env variable names another one (error, warn, info or debug).
func New(printer Printer) *Logger {
	if printer == nil {
		printer = log.New(os.Stderr, "", log.LstdFlags)
	}

	l := &Logger{
		p:      printer,
		prefix: DefaultPrefix,
	}
	l.SetLevel(levelFromEnv())

	return l
}

func levelFromEnv() Level {
	switch strings.ToLower(os.Getenv("JAEGERPROP_LOG_LEVEL")) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn":
		return WarnLevel
	default:
		return ErrorLevel
	}
}

// SetLevel changes the log level for this logger instance. In case there is
// a JAEGERPROP_DEBUG env variable set, the provided level is overridden with
// DebugLevel.
func (l *Logger) SetLevel(level Level) {
	if _, ok := os.LookupEnv("JAEGERPROP_DEBUG"); ok {
		level = DebugLevel
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.lvl = level
}

// SetPrefix sets the label used as a prefix for each log line
func (l *Logger) SetPrefix(prefix string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.prefix = prefix
}

// Debug appends a debug message to the log
func (l *Logger) Debug(v ...interface{}) {
	if l.lvl < DebugLevel {
		return
	}

	l.print(DebugLevel, v)
}

// Info appends an info message to the log
func (l *Logger) Info(v ...interface{}) {
	if l.lvl < InfoLevel {
		return
	}

	l.print(InfoLevel, v)
}

// Warn appends a warning message to the log
func (l *Logger) Warn(v ...interface{}) {
	if l.lvl < WarnLevel {
		return
	}

	l.print(WarnLevel, v)
}

// Error appends an error message to the log
func (l *Logger) Error(v ...interface{}) {
	if l.lvl < ErrorLevel {
		return
	}

	l.print(ErrorLevel, v)
}

func (l *Logger) print(lvl Level, v []interface{}) {
	l.p.Print(l.prefix, lvl.String(), ": ", fmt.Sprint(v...))
}
