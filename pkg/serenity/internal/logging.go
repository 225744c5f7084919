package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logFile *os.File
	logPath string

	setupOnce sync.Once
	logOutput io.Writer = os.Stdout

	appLogger      = newLazyLogger()
	internalLogger = newLazyLogger()
)

// lazyLogger builds its slog.Logger on first use so SetLogPath can run before it.
type lazyLogger struct {
	once   sync.Once
	level  slog.LevelVar
	logger *slog.Logger
}

func newLazyLogger() *lazyLogger {
	return &lazyLogger{}
}

func (l *lazyLogger) get() *slog.Logger {
	l.once.Do(func() {
		setup()
		l.logger = slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{
			Level: &l.level,
		}))
	})
	return l.logger
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories. Has no effect once a logger was used.
func SetLogPath(path string) {
	logPath = path
}

// SetLogOutput replaces stdout as the base writer. Intended for tests and tools.
func SetLogOutput(w io.Writer) {
	logOutput = w
}

func setup() {
	setupOnce.Do(func() {
		if logPath == "" {
			return
		}

		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return
		}

		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			// Console-only
			return
		}

		logFile = f
		logOutput = io.MultiWriter(logOutput, logFile)
	})
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	return appLogger.get()
}

// GetInternalLogger returns the logger used by the serenity packages themselves.
// It defaults to error level so library chatter stays out of application logs.
func GetInternalLogger() *slog.Logger {
	return internalLogger.get()
}

func init() {
	internalLogger.level.Set(slog.LevelError)
}

func SetLogLevel(level slog.Level) {
	appLogger.level.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	internalLogger.level.Set(level)
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" to a slog level.
// Anything else is info.
func ParseLevel(raw string) slog.Level {
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
	SetLogLevel(ParseLevel(rawLevel))
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
