// SPDX-License-Identifier: EPL-2.0

// Package logger holds the process-wide console logger used by the
// mediaconv command.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

var (
	output  io.Writer = os.Stderr
	logFile *os.File
	logger  zerolog.Logger
)

// Levels are the names accepted by SetLevel and ParseLevel.
var Levels = []string{"debug", "info", "warn", "error"}

// SetOutputFile sends log output to filename, appending to it.
func SetOutputFile(filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	CloseLogFile()
	logFile = f
	output = f

	initLogger()
	return nil
}

// SetOutput sends log output to w. Colors are disabled.
func SetOutput(w io.Writer) {
	CloseLogFile()
	output = w
	initLogger()
}

// CloseLogFile closes the log file if one is open and returns to stderr.
func CloseLogFile() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
		output = os.Stderr
		initLogger()
	}
}

func initLogger() {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        output,
		TimeFormat: "15:04:05",
		NoColor:    output != os.Stderr,
	}

	logger = zerolog.New(consoleWriter).With().Timestamp().Logger()
}

func init() {
	initLogger()
}

// ParseLevel maps a level name to its zerolog level.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info", "":
		return zerolog.InfoLevel, nil
	case "warn":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// SetLevel sets the global log level. Unknown names mean info.
func SetLevel(level string) {
	lvl, _ := ParseLevel(level)
	zerolog.SetGlobalLevel(lvl)
}

// Logger returns a child logger tagged with component, for packages
// that take a zerolog.Logger.
func Logger(component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

func Debugf(format string, v ...any) {
	logger.Debug().Msgf(format, v...)
}

func Info(msg string) {
	logger.Info().Msg(msg)
}

func Infof(format string, v ...any) {
	logger.Info().Msgf(format, v...)
}

func Warnf(format string, v ...any) {
	logger.Warn().Msgf(format, v...)
}

// Error logs msg with the error attached.
func Error(msg string, err error) {
	logger.Error().Err(err).Msg(msg)
}

// Errorf logs a formatted message with the error attached.
func Errorf(format string, err error, v ...any) {
	logger.Error().Err(err).Msgf(format, v...)
}
