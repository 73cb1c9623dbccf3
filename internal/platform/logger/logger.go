package logger

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where and how verbosely the logger writes.
type Options struct {
	// Level should be a valid slog level string: DEBUG, INFO, WARN, ERROR.
	// Unrecognized values default to ERROR.
	Level string
	// File, when set, receives a copy of every record and is rotated by size.
	File string
	// Output defaults to os.Stdout.
	Output io.Writer
}

// New returns a structured JSON logger with source location enabled.
func New(opts Options) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(opts.Level)); err != nil {
		lvl = slog.LevelError
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.File != "" {
		out = io.MultiWriter(out, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
		AddSource: true,
		Level:     lvl,
	}))
}
