package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/TheGojiOG/genhash/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logger    *slog.Logger
	initOnce  sync.Once
	logCloser io.Closer
)

// Init configures the global logger singleton. Records go to the configured
// rotating file only; stdout and stderr are reserved for the user. Init fails
// when the log file cannot be opened for writing.
func Init(cfg config.LoggingConfig) (*slog.Logger, error) {
	var initErr error

	initOnce.Do(func() {
		l, closer, err := newLogger(cfg)
		if err != nil {
			initErr = err
			return
		}
		logger, logCloser = l, closer

		slog.SetDefault(logger)
		log.SetFlags(0)
		log.SetOutput(slogWriter{logger: logger})
	})

	if initErr != nil {
		return nil, initErr
	}
	return L(), nil
}

// L returns the configured logger, or a no-op logger if not initialized.
func L() *slog.Logger {
	if logger == nil {
		return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return logger
}

// Close flushes and closes any logger resources.
func Close() error {
	if logCloser != nil {
		return logCloser.Close()
	}
	return nil
}

func newLogger(cfg config.LoggingConfig) (*slog.Logger, io.Closer, error) {
	output, closer, err := buildOutput(cfg)
	if err != nil {
		return nil, nil, err
	}

	options := &slog.HandlerOptions{Level: parseLevel(cfg.Level), AddSource: true}
	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(output, options)
	} else {
		handler = slog.NewJSONHandler(output, options)
	}

	return slog.New(handler), closer, nil
}

type slogWriter struct {
	logger *slog.Logger
}

func (w slogWriter) Write(p []byte) (int, error) {
	msg := strings.TrimSpace(string(p))
	if msg == "" {
		return len(p), nil
	}
	w.logger.Info(msg)
	return len(p), nil
}

func buildOutput(cfg config.LoggingConfig) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(cfg.File) == "" {
		return io.Discard, nil, nil
	}

	// lumberjack opens lazily; open once here so a bad path fails at startup.
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	_ = f.Close()

	fileLogger := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   true,
	}

	return fileLogger, fileLogger, nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info", "":
		return slog.LevelInfo
	default:
		return slog.LevelInfo
	}
}
