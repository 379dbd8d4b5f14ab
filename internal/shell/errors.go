package shell

import (
	"errors"
	"fmt"

	"github.com/jakoblorz/go-tasks/internal/command"
)

// ProjectNotFoundError is returned when "add task" names no existing project.
type ProjectNotFoundError struct {
	Name string
}

func (e *ProjectNotFoundError) Error() string {
	return fmt.Sprintf("project %q not found", e.Name)
}

// TaskNotFoundError is returned when no project holds a task with the id.
type TaskNotFoundError struct {
	ID int
}

func (e *TaskNotFoundError) Error() string {
	return fmt.Sprintf("task %d not found", e.ID)
}

// Message converts an interpreter error into the single line printed to the
// user. Errors outside the protocol fall back to their Error text.
func Message(err error) string {
	var (
		unknown   *command.UnknownCommandError
		invalidID *command.InvalidTaskIDError
		noProject *ProjectNotFoundError
		noTask    *TaskNotFoundError
	)

	switch {
	case errors.Is(err, command.ErrMissingProjectName):
		return "Please enter a project name"
	case errors.Is(err, command.ErrMissingProjectAndTask):
		return "Please enter the project name and a task name"
	case errors.Is(err, command.ErrMissingTaskName):
		return "Please enter a task name"
	case errors.Is(err, command.ErrMissingTaskID):
		return "Please enter a task ID"
	case errors.As(err, &unknown):
		return fmt.Sprintf("I don't know what the command \"%s\" is.", unknown.Word)
	case errors.As(err, &invalidID):
		return fmt.Sprintf("Invalid task ID \"%s\".", invalidID.Raw)
	case errors.As(err, &noProject):
		return fmt.Sprintf("Could not find a project with the name \"%s\".", noProject.Name)
	case errors.As(err, &noTask):
		return fmt.Sprintf("Could not find a task with an ID of %d.", noTask.ID)
	default:
		return err.Error()
	}
}
