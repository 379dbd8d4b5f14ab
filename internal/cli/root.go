package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jakoblorz/go-tasks/internal/config"
	"github.com/jakoblorz/go-tasks/internal/filesystem"
	"github.com/jakoblorz/go-tasks/internal/shell"
	"github.com/jakoblorz/go-tasks/internal/tui"
	"github.com/spf13/cobra"
)

// EnvDebug enables debug logging when set to any non-empty value
const EnvDebug = "TASKS_DEBUG"

// RootCommand handles the interactive shell and holds the flags shared by
// all subcommands
type RootCommand struct {
	fs         filesystem.FileSystem
	configPath string
	color      bool
	debug      bool
}

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem) *cobra.Command {
	root := &RootCommand{fs: fs}

	rootCmd := &cobra.Command{
		Use:   "tasks",
		Short: "Track projects and tasks in an interactive shell",
		Long: `An interactive, line-oriented task list.

Type commands at the prompt; "help" lists them and "quit" ends the session.
Nothing is persisted: projects and tasks live for the duration of the session.`,
		Version:      buildVersion(),
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         root.Run,
	}

	rootCmd.PersistentFlags().StringVar(&root.configPath, "config", "",
		"Path to a YAML config file (defaults to $"+config.EnvConfigPath+")")
	rootCmd.PersistentFlags().BoolVar(&root.color, "color", false,
		"Style show output when writing to a terminal")
	rootCmd.PersistentFlags().BoolVar(&root.debug, "debug", false,
		"Log debug output to stderr (also enabled by $"+EnvDebug+")")

	// Add subcommands
	rootCmd.AddCommand(NewRunCommand(root))
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// Run starts an interactive session on the command's stdin and stdout
func (r *RootCommand) Run(cmd *cobra.Command, args []string) error {
	env, err := r.setup(cmd)
	if err != nil {
		return err
	}

	session := shell.NewSession(shell.NewInterpreter(env.interpOpts...), cmd.InOrStdin(), cmd.OutOrStdout(), env.sessionOpts...)
	if err := session.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("session failed: %w", err)
	}

	return nil
}

// environment is the configuration shared by every session a command starts
type environment struct {
	logger      *slog.Logger
	interpOpts  []shell.Option
	sessionOpts []shell.SessionOption
}

func (r *RootCommand) setup(cmd *cobra.Command) (*environment, error) {
	logger := newLogger(cmd.ErrOrStderr(), r.debug || os.Getenv(EnvDebug) != "")

	configPath := config.ResolvePath(r.configPath)
	cfg, err := config.Load(r.fs, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if configPath != "" {
		logger.Debug("loaded config", "path", configPath)
	}

	prompt := cfg.Prompt

	var styles *tui.Styles
	if r.color || cfg.Color {
		s := tui.NewStyles(cmd.OutOrStdout())
		styles = &s
		prompt = s.Subtle.Render(prompt)
	}

	formatter, err := shell.NewFormatter(cfg.Format, styles)
	if err != nil {
		return nil, fmt.Errorf("failed to build formatter: %w", err)
	}

	return &environment{
		logger:     logger,
		interpOpts: []shell.Option{shell.WithFormatter(formatter)},
		sessionOpts: []shell.SessionOption{
			shell.WithPrompt(prompt),
			shell.WithQuit(cfg.Quit),
			shell.WithLogger(logger),
		},
	}, nil
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand(filesystem.NewOSFileSystem())

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
