package command

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_ValidCommands(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected Command
	}{
		{"show", "show", Command{Kind: KindShow}},
		{"show ignores trailing text", "show everything", Command{Kind: KindShow}},
		{"help", "help", Command{Kind: KindHelp}},
		{"add project", "add project secrets", Command{Kind: KindAddProject, Name: "secrets"}},
		{"add project keeps spaces", "add project top secret ", Command{Kind: KindAddProject, Name: "top secret "}},
		{
			"add task",
			"add task secrets Eat more donuts.",
			Command{Kind: KindAddTask, Project: "secrets", Description: "Eat more donuts."},
		},
		{
			"add task splits on first space only",
			"add task training task qui ne marche pas",
			Command{Kind: KindAddTask, Project: "training", Description: "task qui ne marche pas"},
		},
		{"add unknown subcommand", "add milestone v1", Command{Kind: KindAddUnknown}},
		{"add without subcommand", "add", Command{Kind: KindAddUnknown}},
		{"check", "check 1", Command{Kind: KindCheck, TaskID: 1}},
		{"uncheck", "uncheck 42", Command{Kind: KindUncheck, TaskID: 42}},
		{"delete", "delete 2", Command{Kind: KindDelete, TaskID: 2}},
		{"signed id", "check +9", Command{Kind: KindCheck, TaskID: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := Parse(tt.line)
			require.NoError(t, err)
			require.Equal(t, tt.expected, cmd)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		line     string
		expected error
	}{
		{"add project", ErrMissingProjectName},
		{"add project ", ErrMissingProjectName},
		{"add task", ErrMissingProjectAndTask},
		{"add task ", ErrMissingProjectAndTask},
		{"add task projet", ErrMissingTaskName},
		{"add task projet ", ErrMissingTaskName},
		{"check", ErrMissingTaskID},
		{"uncheck ", ErrMissingTaskID},
		{"delete", ErrMissingTaskID},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := Parse(tt.line)
			require.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestParse_UnknownCommand(t *testing.T) {
	for _, line := range []string{"helpss", "", "Show", " show"} {
		_, err := Parse(line)

		var unknown *UnknownCommandError
		require.True(t, errors.As(err, &unknown), "expected UnknownCommandError for %q, got %v", line, err)
	}

	_, err := Parse("helpss now")
	var unknown *UnknownCommandError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "helpss", unknown.Word)
}

func TestParse_InvalidTaskID(t *testing.T) {
	_, err := Parse("check one")

	var invalid *InvalidTaskIDError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "one", invalid.Raw)
	require.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestKind_TakesTaskID(t *testing.T) {
	require.True(t, KindCheck.TakesTaskID())
	require.True(t, KindUncheck.TakesTaskID())
	require.True(t, KindDelete.TakesTaskID())
	require.False(t, KindShow.TakesTaskID())
	require.False(t, KindAddTask.TakesTaskID())
}
