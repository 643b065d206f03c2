package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const defaultLogPath = "logs/nativemenu.log"

var (
	logFile *os.File
	logPath string

	setupOnce sync.Once
	logOutput io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   = &slog.LevelVar{}

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   = &slog.LevelVar{}
)

// SetLogPath sets the full path for the log file, including filename.
// Parent directories are created on first use. Must be called before the
// first logger is requested.
func SetLogPath(path string) {
	logPath = path
}

// SetLogOutput replaces the log destination entirely (no file is opened).
// Must be called before the first logger is requested.
func SetLogOutput(w io.Writer) {
	setupOnce.Do(func() {
		logOutput = w
	})
}

func setup() {
	setupOnce.Do(func() {
		target := logPath
		if target == "" {
			target = defaultLogPath
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			logOutput = os.Stdout
			return
		}

		var err error
		logFile, err = os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			logOutput = os.Stdout
			return
		}

		logOutput = io.MultiWriter(os.Stdout, logFile)
	})
}

func newLogger(level *slog.LevelVar, component string) *slog.Logger {
	setup()

	handler := slog.NewJSONHandler(logOutput, &slog.HandlerOptions{
		Level:     level,
		AddSource: false,
	})
	return slog.New(handler).With("component", component)
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		logger = newLogger(levelVar, "app")
	})
	return logger
}

// GetInternalLogger returns the logger used by the toolkit itself.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLogger = newLogger(internalLevelVar, "nativemenu")
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	internalLevelVar.Set(level)
}

// ParseLogLevel maps "debug", "info", "warn"/"warning" and "error" to a level.
// Anything else is info.
func ParseLogLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(rawLevel string) {
	levelVar.Set(ParseLogLevel(rawLevel))
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
