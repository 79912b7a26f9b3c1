// Package logger provides leveled logging for the gateway.
//
// Separate loggers back each level so error output goes to stderr
// while informational output goes to stdout.
package logger

import (
	"io"
	"log"
	"os"
)

var (
	// InfoLogger handles informational messages.
	InfoLogger *log.Logger
	// ErrorLogger handles error messages.
	ErrorLogger *log.Logger
	// DebugLogger handles debug messages.
	DebugLogger *log.Logger
)

// Initialize sets up the level loggers. Debug output is discarded
// unless level is "debug".
func Initialize(level string, development bool) error {
	flags := log.Ldate | log.Ltime
	if development {
		flags |= log.Lshortfile
	}

	InfoLogger = log.New(os.Stdout, "INFO: ", flags)
	ErrorLogger = log.New(os.Stderr, "ERROR: ", flags)

	if level == "debug" {
		DebugLogger = log.New(os.Stdout, "DEBUG: ", flags)
	} else {
		DebugLogger = log.New(io.Discard, "", 0)
	}

	return nil
}

// Info logs informational messages.
func Info(message string, args ...interface{}) {
	if InfoLogger != nil {
		InfoLogger.Printf(message, args...)
	}
}

// Debug logs debug messages.
func Debug(message string, args ...interface{}) {
	if DebugLogger != nil {
		DebugLogger.Printf(message, args...)
	}
}

// Error logs error messages.
func Error(message string, args ...interface{}) {
	if ErrorLogger != nil {
		ErrorLogger.Printf(message, args...)
	}
}

// Fatal logs an error message and terminates the process.
func Fatal(message string, args ...interface{}) {
	if ErrorLogger != nil {
		ErrorLogger.Printf(message, args...)
	}
	os.Exit(1)
}
