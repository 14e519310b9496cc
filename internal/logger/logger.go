// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

// Package logger builds the zerolog logger used by the exporter tools.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/PaulDoessel/usd-arnold/internal/config"
)

// Logger is a zerolog logger together with the file it writes to, if any.
type Logger struct {
	zerolog.Logger
	file *os.File
}

// New builds a logger from the log configuration.
func New(cfg config.Log) (*Logger, error) {
	var (
		out  io.Writer
		file *os.File
	)
	switch strings.ToLower(cfg.Output) {
	case "stdout":
		out = os.Stdout
	case "file":
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open %s: %w", cfg.FilePath, err)
		}
		out, file = f, f
	default:
		out = os.Stderr
	}

	zl, err := NewWithWriter(cfg, out)
	if err != nil {
		if file != nil {
			file.Close()
		}
		return nil, err
	}
	return &Logger{Logger: zl, file: file}, nil
}

// NewWithWriter builds a logger writing to w, ignoring cfg.Output.
func NewWithWriter(cfg config.Log, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("logger: invalid level %q: %w", cfg.Level, err)
	}
	if strings.ToLower(cfg.Format) == "console" {
		_, isFile := w.(*os.File)
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
			NoColor:    !isFile || strings.ToLower(cfg.Output) == "file",
		}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
