// Package config loads the shell configuration.
//
// Configuration comes from a single YAML file named by the --config flag or
// the TASKS_CONFIG environment variable. There is no automatic discovery: when
// neither is set the defaults apply unchanged.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/jakoblorz/go-tasks/internal/filesystem"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable consulted when no --config
// flag is given.
const EnvConfigPath = "TASKS_CONFIG"

const (
	DefaultPrompt          = "> "
	DefaultQuit            = "quit"
	DefaultProjectTemplate = `{{ heading .Name }}`
	DefaultTaskTemplate    = `    [{{ ternary "x" " " .Done | mark }}] {{ .ID }}: {{ .Description }}`
)

// Config is the shell configuration.
type Config struct {
	// Prompt is written before every line is read.
	Prompt string `yaml:"prompt"`

	// Quit is the sentinel line that ends a session.
	Quit string `yaml:"quit"`

	// Color enables lipgloss styling of show output. Styling is dropped
	// automatically when the output is not a terminal.
	Color bool `yaml:"color"`

	// Format holds the text/template sources used by show.
	Format FormatConfig `yaml:"format"`
}

// FormatConfig configures the show templates.
type FormatConfig struct {
	// Project renders a project heading. Fields: .Name
	Project string `yaml:"project"`

	// Task renders one task line. Fields: .ID, .Description, .Done
	Task string `yaml:"task"`
}

// Default returns the configuration that reproduces the reference protocol.
func Default() *Config {
	return &Config{
		Prompt: DefaultPrompt,
		Quit:   DefaultQuit,
		Format: FormatConfig{
			Project: DefaultProjectTemplate,
			Task:    DefaultTaskTemplate,
		},
	}
}

// ResolvePath returns the config file path: the flag value if set, else the
// environment variable, else "".
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvConfigPath)
}

// Load reads the configuration at path. An empty path yields the defaults.
func Load(fs filesystem.FileSystem, path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

var ErrEmptyQuit = errors.New("quit must not be empty")

// Validate fills omitted templates with defaults and rejects unusable values.
func (c *Config) Validate() error {
	if c.Quit == "" {
		return ErrEmptyQuit
	}
	if c.Format.Project == "" {
		c.Format.Project = DefaultProjectTemplate
	}
	if c.Format.Task == "" {
		c.Format.Task = DefaultTaskTemplate
	}
	return nil
}
