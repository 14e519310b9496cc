// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "usdai.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	scope, err := cfg.Export.Scope()
	require.NoError(t, err)
	assert.Equal(t, "/Looks", scope.String())
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
[export]
material_scope = "/World/Looks"
params = ["base_color", "filename"]

[log]
level = "debug"
format = "json"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/World/Looks", cfg.Export.MaterialScope)
	assert.Equal(t, []string{"base_color", "filename"}, cfg.Export.Params)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Output, "unset keys keep their defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, `
[log]
level = "debug"
`)
	t.Setenv("USDAI_LOG_LEVEL", "warn")
	t.Setenv("USDAI_EXPORT_MATERIAL_SCOPE", "/Materials")
	t.Setenv("USDAI_EXPORT_PARAMS", "a,b")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/Materials", cfg.Export.MaterialScope)
	assert.Equal(t, []string{"a", "b"}, cfg.Export.Params)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown key", "[export]\nscope = \"/Looks\"\n"},
		{"bad syntax", "[export\n"},
		{"relative scope", "[export]\nmaterial_scope = \"Looks\"\n"},
		{"property scope", "[export]\nmaterial_scope = \"/Looks.attr\"\n"},
		{"bad format", "[log]\nformat = \"xml\"\n"},
		{"bad output", "[log]\noutput = \"syslog\"\n"},
		{"file without path", "[log]\noutput = \"file\"\nfile_path = \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoad_EmptyParamsExportAll(t *testing.T) {
	cfg, err := Load(writeFile(t, "[export]\nparams = []\n"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Export.Params)

	t.Setenv("USDAI_EXPORT_PARAMS", "")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Nil(t, cfg.Export.Params)

	t.Setenv("USDAI_EXPORT_PARAMS", "a, ,b")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, cfg.Export.Params)
}
