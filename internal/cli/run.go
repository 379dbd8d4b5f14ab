package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/jakoblorz/go-tasks/internal/script"
	"github.com/jakoblorz/go-tasks/internal/shell"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	root *RootCommand
	echo bool
}

// NewRunCommand creates a new run command
func NewRunCommand(root *RootCommand) *cobra.Command {
	cmd := &RunCommand{root: root}

	cobraCmd := &cobra.Command{
		Use:   "run FILE...",
		Short: "Replay command scripts through one session",
		Long: `Reads each script file and feeds its lines to the shell exactly as if they
were typed at the prompt. All scripts share one session, so projects and task
IDs carry over from one file to the next. A quit line ends the current script.

A script may start with a YAML frontmatter header:

  ---
  name: weekly review
  echo: true
  ---`,
		Example: `  # Replay a script
  tasks run review.tasks

  # Print each command after the prompt, like a transcript
  tasks run --echo setup.tasks review.tasks`,
		Args: cobra.MinimumNArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().BoolVar(&cmd.echo, "echo", false, "Echo each command after the prompt")

	return cobraCmd
}

// Run executes the run command
func (c *RunCommand) Run(cmd *cobra.Command, args []string) error {
	env, err := c.root.setup(cmd)
	if err != nil {
		return err
	}

	// Read every script up front so a missing file fails before any output.
	loader := script.NewLoader(c.root.fs)
	scripts := make([]*script.Script, 0, len(args))
	for _, path := range args {
		s, err := loader.Load(path)
		if err != nil {
			return err
		}
		scripts = append(scripts, s)
	}

	interp := shell.NewInterpreter(env.interpOpts...)
	for _, s := range scripts {
		env.logger.Debug("running script", "name", s.Name, "path", s.Path)

		opts := append([]shell.SessionOption{}, env.sessionOpts...)
		opts = append(opts, shell.WithEcho(c.echo || s.Echo))

		session := shell.NewSession(interp, s.Reader(), cmd.OutOrStdout(), opts...)
		if err := session.Run(cmd.Context()); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("script %s failed: %w", s.Name, err)
		}
	}

	return nil
}
