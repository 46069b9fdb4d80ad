package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// simpleHandler is a custom slog handler that writes messages without timestamps or level prefixes
type simpleHandler struct {
	writer    io.Writer
	debugMode bool
}

func (h *simpleHandler) Enabled(_ context.Context, level slog.Level) bool {
	// Debug messages only enabled in debug mode
	if level == slog.LevelDebug {
		return h.debugMode
	}
	return true
}

func (h *simpleHandler) Handle(_ context.Context, record slog.Record) error {
	_, err := fmt.Fprintln(h.writer, record.Message)
	return err
}

func (h *simpleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *simpleHandler) WithGroup(_ string) slog.Handler {
	return h
}

// multiHandler fans out log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}

// SplogOptions configures a Splog
type SplogOptions struct {
	// Writer receives console messages. Defaults to os.Stderr so that
	// command output on stdout stays machine readable.
	Writer io.Writer
	Debug  bool

	// LogFile enables a rotating file log that always records debug messages
	LogFile       string
	LogMaxSize    int // megabytes
	LogMaxBackups int
	LogMaxAge     int // days
}

// Splog provides structured logging and output
type Splog struct {
	logger    *slog.Logger
	logWriter io.WriteCloser // Lumberjack logger for file logging
}

// NewSplog creates a new splog instance with console-only logging on stderr.
// Debug messages are enabled when the DEBUG environment variable is set.
func NewSplog() *Splog {
	splog, _ := NewSplogWithOptions(SplogOptions{Debug: os.Getenv("DEBUG") != ""})
	return splog
}

// NewSplogWithOptions creates a new splog instance with optional file logging
func NewSplogWithOptions(opts SplogOptions) (*Splog, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	splog := &Splog{}
	handlers := []slog.Handler{
		&simpleHandler{writer: writer, debugMode: opts.Debug},
	}

	if opts.LogFile != "" {
		logDir := filepath.Dir(opts.LogFile)
		if err := os.MkdirAll(logDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		lumberjackLogger := &lumberjack.Logger{
			Filename:   opts.LogFile,
			MaxSize:    opts.LogMaxSize,
			MaxBackups: opts.LogMaxBackups,
			MaxAge:     opts.LogMaxAge,
			Compress:   false,
		}
		splog.logWriter = lumberjackLogger

		fileHandler := slog.NewTextHandler(lumberjackLogger, &slog.HandlerOptions{
			Level: slog.LevelDebug, // Always log everything to file
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.Attr{Key: a.Key, Value: slog.StringValue(a.Value.Time().Format("2006-01-02 15:04:05.000"))}
				}
				return a
			},
		})
		handlers = append(handlers, fileHandler)
	}

	splog.logger = slog.New(&multiHandler{handlers: handlers})
	return splog, nil
}

// logMessage is a helper to log a message using slog without format string validation
func (s *Splog) logMessage(level slog.Level, msg string) {
	s.logger.Log(context.Background(), level, msg)
}

func sprintf(prefix, format string, args []interface{}) string {
	if len(args) == 0 {
		return prefix + format
	}
	return fmt.Sprintf(prefix+format, args...)
}

// Info writes an info message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Info(format string, args ...interface{}) {
	s.logMessage(slog.LevelInfo, sprintf("", format, args))
}

// Warn writes a warning message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Warn(format string, args ...interface{}) {
	s.logMessage(slog.LevelWarn, sprintf("⚠️  ", format, args))
}

// Debug writes a debug message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Debug(format string, args ...interface{}) {
	s.logMessage(slog.LevelDebug, sprintf("", format, args))
}

// Close closes the log file if one was opened
func (s *Splog) Close() error {
	if s.logWriter != nil {
		return s.logWriter.Close()
	}
	return nil
}
