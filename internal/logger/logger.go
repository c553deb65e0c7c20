package logger

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

var defaultLogger *slog.Logger

var levels = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// ParseLevel maps a config level name to a slog level. Unknown names are info.
func ParseLevel(level string) slog.Level {
	if l, ok := levels[strings.ToLower(level)]; ok {
		return l
	}
	return slog.LevelInfo
}

// Initialize sets up the global logger on stdout with the specified level and format
func Initialize(level, format string) {
	InitializeWithWriter(os.Stdout, level, format)
}

// InitializeWithWriter is Initialize with an explicit destination
func InitializeWithWriter(w io.Writer, level, format string) {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

// Get returns the default logger, creating an info/text one on first use
func Get() *slog.Logger {
	if defaultLogger == nil {
		Initialize("info", "text")
	}
	return defaultLogger
}

func Debug(msg string, args ...any) { Get().Debug(msg, args...) }
func Info(msg string, args ...any)  { Get().Info(msg, args...) }
func Warn(msg string, args ...any)  { Get().Warn(msg, args...) }
func Error(msg string, args ...any) { Get().Error(msg, args...) }

// EnterMethod logs method entry (process tracking)
func EnterMethod(methodName string, args ...any) {
	Get().Debug("→ Method entered", append([]any{"method", methodName, "event", "enter"}, args...)...)
}

// ExitMethod logs method exit (process tracking)
func ExitMethod(methodName string, args ...any) {
	Get().Debug("← Method exited", append([]any{"method", methodName, "event", "exit"}, args...)...)
}

// ExitMethodWithError logs a rejected call at warn level
func ExitMethodWithError(methodName string, err error, args ...any) {
	Get().Warn("← Method exited with error", append([]any{"method", methodName, "event", "exit", "error", err}, args...)...)
}

// DatabaseCall logs a rate table query before it runs
func DatabaseCall(operation, query string) {
	Get().Debug("→ Database call", "operation", operation, "query", query)
}

// DatabaseResult logs how many rate records a query returned
func DatabaseResult(operation string, rows int, err error) {
	if err != nil {
		Get().Error("← Database call failed", "operation", operation, "error", err)
		return
	}
	Get().Debug("← Database call succeeded", "operation", operation, "rows", rows)
}

// HTTPRequest logs a served request at a level chosen by its status
func HTTPRequest(method, path string, status int, elapsed time.Duration) {
	level := slog.LevelInfo
	switch {
	case status >= http.StatusInternalServerError:
		level = slog.LevelError
	case status >= http.StatusBadRequest:
		level = slog.LevelWarn
	}
	Get().Log(context.Background(), level, "HTTP request", "method", method, "path", path, "status", status, "duration", elapsed)
}

// JobFinished logs the outcome of a scheduled job run
func JobFinished(job string, elapsed time.Duration, err error) {
	if err != nil {
		Get().Error("Job failed", "job", job, "duration", elapsed, "error", err)
		return
	}
	Get().Info("Job completed", "job", job, "duration", elapsed)
}
