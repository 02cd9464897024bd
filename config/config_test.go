/*
File    : lox-go/config/config_test.go
*/
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_ParsesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".loxrc.yaml")
	body := "prompt: \"lox> \"\nhistory_file: /tmp/custom_history\ndiagnostics_to_stderr: true\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "lox> ", cfg.Prompt)
	require.Equal(t, "/tmp/custom_history", cfg.HistoryFile)
	require.True(t, cfg.DiagnosticsToStderr)
}

func TestLoad_PartialFileKeepsDefaultsForOmittedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".loxrc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: \"lox$ \"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "lox$ ", cfg.Prompt)
	require.Equal(t, DefaultHistoryFile, cfg.HistoryFile)
	require.False(t, cfg.DiagnosticsToStderr)
}

func TestLoad_InvalidYAMLReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".loxrc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: [unterminated\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
