// Package logging opens the log sink shared by the use-case observer and
// the HTTP access log.
package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	// File is a rotating log file path. Empty disables file logging.
	File string
	// Stderr also copies log lines to standard error.
	Stderr bool
}

// Sink is an open log destination. Writer is nil when logging is off.
type Sink struct {
	Writer io.Writer
	file   *lumberjack.Logger
}

// Open builds the sink described by opts. The log file and its directory
// are created on first write.
func Open(opts Options) *Sink {
	var writers []io.Writer
	s := &Sink{}
	if opts.File != "" {
		s.file = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		}
		writers = append(writers, s.file)
	}
	if opts.Stderr {
		writers = append(writers, os.Stderr)
	}

	switch len(writers) {
	case 0:
	case 1:
		s.Writer = writers[0]
	default:
		s.Writer = io.MultiWriter(writers...)
	}
	return s
}

// Logger returns a text slog.Logger on the sink, or nil when logging is off.
func (s *Sink) Logger() *slog.Logger {
	if s.Writer == nil {
		return nil
	}
	return slog.New(slog.NewTextHandler(s.Writer, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func (s *Sink) Close() error {
	if s.file == nil {
		return nil
	}
	return s.file.Close()
}
