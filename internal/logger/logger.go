// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package logger wraps a process-wide slog JSON logger. Records go to a file
// under the XDG state directory and optionally to stderr.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

const appDir = "label-manager"

var defaultLogger *slog.Logger

// Options controls where records go and how verbose they are.
type Options struct {
	// ToFile appends records to the application log file.
	ToFile bool
	// ToStderr mirrors records on stderr.
	ToStderr bool
	// Verbose lowers the level from Info to Debug.
	Verbose bool
}

// LogFilePath determines the path for the application log file under XDG_STATE_HOME.
func LogFilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}
	return filepath.Join(stateDir, appDir, "app.log"), nil
}

// openLogFile creates the log directory if needed and opens the log file for appending.
func openLogFile() (*os.File, error) {
	logFilePath, err := LogFilePath()
	if err != nil {
		return nil, err
	}
	// 0750: user rwx, group rx
	if err := os.MkdirAll(filepath.Dir(logFilePath), 0750); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	// 0640: user rw, group r
	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", logFilePath, err)
	}
	return file, nil
}

// New builds a logger for opts without installing it.
func New(opts Options) *slog.Logger {
	if !opts.ToFile && !opts.ToStderr {
		opts.ToStderr = true
	}

	var writers []io.Writer
	if opts.ToFile {
		// The file handle stays open for the life of the process.
		file, err := openLogFile()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v. File logging disabled.\n", err)
		} else {
			writers = append(writers, file)
		}
	}
	if opts.ToStderr {
		writers = append(writers, os.Stderr)
	}

	var w io.Writer
	switch len(writers) {
	case 0:
		w = os.Stderr
	case 1:
		w = writers[0]
	default:
		w = io.MultiWriter(writers...)
	}

	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// InitLogger installs the process logger for the given execution mode.
// Records always go to the log file. The CLI mirrors them on stderr only in
// verbose mode; the TUI owns the terminal and never does.
func InitLogger(isTUI bool, verbose bool) {
	defaultLogger = New(Options{
		ToFile:   true,
		ToStderr: !isTUI && verbose,
		Verbose:  verbose,
	})
}

// SetLogger replaces the process logger. Tests use it to capture output.
func SetLogger(l *slog.Logger) {
	defaultLogger = l
}

// Discard installs a logger that drops every record.
func Discard() {
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

// checkLogger falls back to a stderr-only logger when nothing was installed.
func checkLogger() {
	if defaultLogger == nil {
		defaultLogger = New(Options{ToStderr: true})
	}
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	checkLogger()
	defaultLogger.Info(msg, args...)
}

// Infof logs a formatted informational message.
func Infof(format string, v ...interface{}) {
	checkLogger()
	defaultLogger.Info(fmt.Sprintf(format, v...))
}

// Error logs an error message.
func Error(msg string, args ...any) {
	checkLogger()
	defaultLogger.Error(msg, args...)
}

// Errorf logs a formatted error message.
func Errorf(format string, v ...interface{}) {
	checkLogger()
	defaultLogger.Error(fmt.Sprintf(format, v...))
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	checkLogger()
	defaultLogger.Debug(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	checkLogger()
	defaultLogger.Warn(msg, args...)
}

// Warnf logs a formatted warning message.
func Warnf(format string, v ...interface{}) {
	checkLogger()
	defaultLogger.Warn(fmt.Sprintf(format, v...))
}
