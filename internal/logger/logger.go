package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
	"github.com/rs/zerolog/log"
)

// Logger wraps zerolog.Logger with the writers it owns
type Logger struct {
	logger   zerolog.Logger
	closers  []io.Closer
	redactor *Redactor
}

// Config holds logger configuration
type Config struct {
	Level     string // debug, info, warn, error
	File      string // log file path
	Console   bool   // enable console output (stderr)
	Pretty    bool   // pretty format for console
	Redaction bool   // enable sensitive data redaction

	// NonBlocking buffers writes in a ring buffer so a slow sink never delays
	// a dispatch. Messages are dropped, not queued, when the buffer is full.
	NonBlocking bool
	BufferSize  int

	MaxSize  int  // max size in MB before rotation; 0 disables rotation
	MaxAge   int  // max age in days
	Compress bool // compress rotated logs

	// Output replaces the console and file writers. Used by tests and embedders.
	Output io.Writer
}

// New creates a logger and installs it as the global zerolog logger
func New(cfg Config) (*Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	l := &Logger{}

	var writers []io.Writer
	if cfg.Output != nil {
		writers = append(writers, cfg.Output)
	} else {
		if cfg.Console {
			var console io.Writer = os.Stderr
			if cfg.Pretty {
				console = zerolog.ConsoleWriter{
					Out:        os.Stderr,
					TimeFormat: time.RFC3339,
				}
			}
			writers = append(writers, console)
		}

		if cfg.File != "" {
			w, err := openFile(cfg)
			if err != nil {
				return nil, err
			}
			l.closers = append(l.closers, w)
			writers = append(writers, w)
		}
	}

	var writer io.Writer
	switch len(writers) {
	case 0:
		writer = io.Discard
	case 1:
		writer = writers[0]
	default:
		writer = io.MultiWriter(writers...)
	}

	if cfg.Redaction {
		l.redactor = NewRedactor()
		writer = l.redactor.Wrap(writer)
	}

	if cfg.NonBlocking {
		size := cfg.BufferSize
		if size <= 0 {
			size = 1000
		}
		// the files are closed by Logger.Close, not by the diode
		d := diode.NewWriter(struct{ io.Writer }{writer}, size, 10*time.Millisecond, func(missed int) {
			fmt.Fprintf(os.Stderr, "logger dropped %d messages\n", missed)
		})
		// closed first so buffered lines reach the file before it closes
		l.closers = append([]io.Closer{d}, l.closers...)
		writer = d
	}

	l.logger = zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	log.Logger = l.logger

	return l, nil
}

func openFile(cfg Config) (io.WriteCloser, error) {
	if cfg.MaxSize > 0 {
		return NewRotatingWriter(cfg.File, cfg.MaxSize, cfg.MaxAge, cfg.Compress)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// Close flushes buffered output and closes any open files
func (l *Logger) Close() error {
	var first error
	for _, c := range l.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	l.closers = nil
	return first
}

// Redactor returns the redactor applied to output, or nil when redaction is off
func (l *Logger) Redactor() *Redactor {
	return l.redactor
}

// With creates a child logger with additional context
func (l *Logger) With() zerolog.Context {
	return l.logger.With()
}

// GetZerolog returns the underlying zerolog.Logger
func (l *Logger) GetZerolog() zerolog.Logger {
	return l.logger
}

// DefaultConfig returns default logger configuration
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Console:     true,
		Pretty:      false,
		Redaction:   true,
		NonBlocking: true,
		BufferSize:  1000,
		MaxSize:     0,
		MaxAge:      7,
		Compress:    true,
	}
}
