// Package shell implements the task-tracking command interpreter and the
// line-oriented session loop that drives it.
package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/jakoblorz/go-tasks/internal/command"
	"github.com/jakoblorz/go-tasks/internal/models"
)

// Interpreter owns the project list of one session and executes command lines
// against it. It is not safe for concurrent use.
type Interpreter struct {
	projects []*models.Project
	ids      models.IDSequence
	format   *Formatter
}

// Option configures an Interpreter
type Option func(*Interpreter)

// WithFormatter replaces the default plain formatter
func WithFormatter(f *Formatter) Option {
	return func(i *Interpreter) {
		i.format = f
	}
}

// NewInterpreter creates an Interpreter with no projects and a fresh task id
// sequence starting at 1.
func NewInterpreter(opts ...Option) *Interpreter {
	i := &Interpreter{}
	for _, opt := range opts {
		opt(i)
	}
	if i.format == nil {
		i.format = DefaultFormatter()
	}
	return i
}

// Projects returns the projects in creation order
func (i *Interpreter) Projects() []*models.Project {
	return i.projects
}

// Execute runs one command line and returns the response text.
func (i *Interpreter) Execute(line string) string {
	var b strings.Builder
	// strings.Builder never fails to write
	_ = i.ExecuteTo(&b, line)
	return b.String()
}

// ExecuteTo runs one command line and writes the response to w. Command
// failures are reported in the response; the returned error is only set
// when writing to w fails or a configured template cannot be rendered.
func (i *Interpreter) ExecuteTo(w io.Writer, line string) error {
	cmd, err := command.Parse(line)
	if err != nil {
		return i.format.WriteError(w, err)
	}

	if err := i.dispatch(w, cmd); err != nil {
		if isProtocolError(err) {
			return i.format.WriteError(w, err)
		}
		return err
	}
	return nil
}

func (i *Interpreter) dispatch(w io.Writer, cmd command.Command) error {
	switch cmd.Kind {
	case command.KindShow:
		return i.format.WriteProjects(w, i.projects)
	case command.KindHelp:
		return i.format.WriteHelp(w)
	case command.KindAddProject:
		i.AddProject(cmd.Name)
		return nil
	case command.KindAddTask:
		_, err := i.AddTask(cmd.Project, cmd.Description)
		return err
	case command.KindAddUnknown:
		// Unrecognized "add" subcommands are ignored without a response.
		return nil
	case command.KindCheck:
		return i.SetDone(cmd.TaskID, true)
	case command.KindUncheck:
		return i.SetDone(cmd.TaskID, false)
	case command.KindDelete:
		return i.DeleteTask(cmd.TaskID)
	default:
		panic(fmt.Sprintf("command.Parse returned unhandled kind %q", cmd.Kind))
	}
}

func isProtocolError(err error) bool {
	switch err.(type) {
	case *ProjectNotFoundError, *TaskNotFoundError, *command.UnknownCommandError:
		return true
	default:
		return false
	}
}

// AddProject appends a new project. Names are not validated or deduplicated.
func (i *Interpreter) AddProject(name string) *models.Project {
	project := models.NewProject(name)
	i.projects = append(i.projects, project)
	return project
}

// FindProject returns the first project with exactly the given name
func (i *Interpreter) FindProject(name string) (*models.Project, bool) {
	for _, project := range i.projects {
		if project.Name == name {
			return project, true
		}
	}
	return nil, false
}

// AddTask creates a task in the first project named projectName. No id is
// consumed when the project does not exist.
func (i *Interpreter) AddTask(projectName, description string) (*models.Task, error) {
	project, ok := i.FindProject(projectName)
	if !ok {
		return nil, &ProjectNotFoundError{Name: projectName}
	}

	task := models.NewTask(i.ids.Next(), description, false)
	project.AddTask(task)
	return task, nil
}

// FindTask returns the first task with the id, scanning projects in order,
// together with the project that owns it.
func (i *Interpreter) FindTask(id int) (*models.Task, *models.Project, bool) {
	for _, project := range i.projects {
		if task, ok := project.FindTaskByID(id); ok {
			return task, project, true
		}
	}
	return nil, nil, false
}

// SetDone checks or unchecks the task with the given id
func (i *Interpreter) SetDone(id int, done bool) error {
	task, _, ok := i.FindTask(id)
	if !ok {
		return &TaskNotFoundError{ID: id}
	}
	task.SetDone(done)
	return nil
}

// DeleteTask removes the task with the given id from its project. Remaining
// tasks keep their ids.
func (i *Interpreter) DeleteTask(id int) error {
	task, project, ok := i.FindTask(id)
	if !ok {
		return &TaskNotFoundError{ID: id}
	}
	project.RemoveTask(task)
	return nil
}
