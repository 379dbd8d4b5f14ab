package config

import (
	"io/fs"
	"testing"

	"github.com/jakoblorz/go-tasks/internal/filesystem"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load(filesystem.NewMockFileSystem(), "")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, "> ", cfg.Prompt)
	require.Equal(t, "quit", cfg.Quit)
	require.False(t, cfg.Color)
}

func TestLoad_OverridesOnlyGivenFields(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	mfs.AddFile("/etc/tasks/config.yaml", []byte(`prompt: "tasks> "
color: true
format:
  task: "{{ .ID }} {{ .Description }}"
`))

	cfg, err := Load(mfs, "/etc/tasks/config.yaml")
	require.NoError(t, err)
	require.Equal(t, "tasks> ", cfg.Prompt)
	require.Equal(t, "quit", cfg.Quit)
	require.True(t, cfg.Color)
	require.Equal(t, DefaultProjectTemplate, cfg.Format.Project)
	require.Equal(t, "{{ .ID }} {{ .Description }}", cfg.Format.Task)
}

func TestLoad_Errors(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	mfs.AddFile("/bad.yaml", []byte("prompt: [unterminated"))
	mfs.AddFile("/noquit.yaml", []byte("quit: \"\"\n"))

	_, err := Load(mfs, "/missing.yaml")
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Contains(t, err.Error(), "failed to read config file")

	_, err = Load(mfs, "/bad.yaml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse config file")

	_, err = Load(mfs, "/noquit.yaml")
	require.ErrorIs(t, err, ErrEmptyQuit)
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvConfigPath, "/from/env.yaml")

	require.Equal(t, "/from/flag.yaml", ResolvePath("/from/flag.yaml"))
	require.Equal(t, "/from/env.yaml", ResolvePath(""))

	t.Setenv(EnvConfigPath, "")
	require.Equal(t, "", ResolvePath(""))
}
