/*
File    : lox-go/config/config.go
*/

// Package config loads the REPL's optional `.loxrc.yaml` file: the prompt
// string, the history file path, and whether diagnostics are written to
// stdout or stderr. It is the ambient configuration layer the REPL driver
// reads at startup.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPrompt is the REPL's prompt when no config overrides it.
const DefaultPrompt = "> "

// DefaultHistoryFile is where REPL line history persists across restarts
// when the config file doesn't override it.
const DefaultHistoryFile = "~/.lox_history"

// Config holds the REPL's startup configuration, loaded from a YAML file.
type Config struct {
	// Prompt is printed before each REPL read.
	Prompt string `yaml:"prompt"`

	// HistoryFile is the path readline persists input history to.
	HistoryFile string `yaml:"history_file"`

	// DiagnosticsToStderr routes parse/runtime error reports to stderr
	// instead of stdout. Defaults to false: results and errors share one
	// writer unless the config opts into splitting them.
	DiagnosticsToStderr bool `yaml:"diagnostics_to_stderr"`
}

// Default returns the configuration the REPL runs with when no
// `.loxrc.yaml` file is found.
func Default() Config {
	return Config{
		Prompt:              DefaultPrompt,
		HistoryFile:         DefaultHistoryFile,
		DiagnosticsToStderr: false,
	}
}

// Load reads and parses the YAML file at path, filling in any field the
// file omits with its default value. A missing file is not an error: it
// just yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}
	if cfg.HistoryFile == "" {
		cfg.HistoryFile = DefaultHistoryFile
	}
	return cfg, nil
}
