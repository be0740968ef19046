// Package logger provides leveled logging for the wormlife binaries. Engine
// packages return errors instead of logging; everything a binary reports
// goes through this.
package logger

import (
	"log"
	"os"
)

// Logger writes leveled, prefixed lines to stdout/stderr.
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

// New creates a logger tagged with the binary name.
func New(tag string) *Logger {
	return &Logger{
		infoLogger:  log.New(os.Stdout, "["+tag+"] ", log.Ldate|log.Ltime),
		warnLogger:  log.New(os.Stdout, "["+tag+"] WARN ", log.Ldate|log.Ltime),
		errorLogger: log.New(os.Stderr, "["+tag+"] ERROR ", log.Ldate|log.Ltime),
	}
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...any) {
	l.infoLogger.Printf(format, args...)
}

// Warn logs a warning.
func (l *Logger) Warn(format string, args ...any) {
	l.warnLogger.Printf(format, args...)
}

// Error logs an error.
func (l *Logger) Error(format string, args ...any) {
	l.errorLogger.Printf(format, args...)
}

// Fatal logs an error and exits.
func (l *Logger) Fatal(format string, args ...any) {
	l.errorLogger.Printf(format, args...)
	os.Exit(1)
}
