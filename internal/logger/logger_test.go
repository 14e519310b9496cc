// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PaulDoessel/usd-arnold/internal/config"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithWriter(config.Log{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)

	l.Info().Msg("hidden")
	l.Warn().Str("node", "surf").Msg("skipped")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"node":"surf"`)
	assert.Contains(t, out, `"time":`)
}

func TestNewWithWriter_Console(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithWriter(config.Log{Level: "DEBUG", Format: "console"}, &buf)
	require.NoError(t, err)

	l.Debug().Msg("exported node")
	assert.Contains(t, buf.String(), "exported node")
	assert.NotContains(t, buf.String(), "\x1b[", "colors are off for non-terminal writers")
}

func TestNewWithWriter_BadLevel(t *testing.T) {
	_, err := NewWithWriter(config.Log{Level: "loud", Format: "json"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.log")
	l, err := New(config.Log{Level: "info", Format: "json", Output: "file", FilePath: path})
	require.NoError(t, err)

	l.Info().Msg("exported material")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "exported material")
}

func TestNew_BadFile(t *testing.T) {
	_, err := New(config.Log{Level: "info", Format: "json", Output: "file", FilePath: filepath.Join(t.TempDir(), "missing", "x.log")})
	assert.Error(t, err)
}
