// Package command turns a single line of shell input into a structured Command.
//
// The grammar is a two-level "split on the first space": the first word selects
// the command, and for "add" the rest is split again into a subcommand and its
// arguments. Segments are taken verbatim; only empty segments are rejected.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the operation a Command asks for.
type Kind string

const (
	KindShow       Kind = "show"
	KindAddProject Kind = "add project"
	KindAddTask    Kind = "add task"
	KindAddUnknown Kind = "add"
	KindCheck      Kind = "check"
	KindUncheck    Kind = "uncheck"
	KindDelete     Kind = "delete"
	KindHelp       Kind = "help"
)

// String returns the string representation of Kind
func (k Kind) String() string {
	return string(k)
}

// TakesTaskID reports whether the command addresses a task by id
func (k Kind) TakesTaskID() bool {
	switch k {
	case KindCheck, KindUncheck, KindDelete:
		return true
	default:
		return false
	}
}

var (
	ErrMissingProjectName    = errors.New("missing project name")
	ErrMissingProjectAndTask = errors.New("missing project name and task description")
	ErrMissingTaskName       = errors.New("missing task description")
	ErrMissingTaskID         = errors.New("missing task id")
)

// UnknownCommandError is returned for a command word outside the dispatch table.
type UnknownCommandError struct {
	Word string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q", e.Word)
}

// InvalidTaskIDError is returned when a task id is not a decimal integer.
type InvalidTaskIDError struct {
	Raw string
	Err error
}

func (e *InvalidTaskIDError) Error() string {
	return fmt.Sprintf("invalid task id %q: %v", e.Raw, e.Err)
}

func (e *InvalidTaskIDError) Unwrap() error {
	return e.Err
}

// Command is one parsed input line.
type Command struct {
	Kind Kind

	// Name is the project name for "add project"
	Name string

	// Project and Description are set for "add task"
	Project     string
	Description string

	// TaskID is set for check, uncheck and delete
	TaskID int
}

// Parse parses one input line into a Command.
func Parse(line string) (Command, error) {
	word, rest, hasRest := strings.Cut(line, " ")

	switch Kind(word) {
	case KindShow:
		return Command{Kind: KindShow}, nil
	case KindHelp:
		return Command{Kind: KindHelp}, nil
	case "add":
		return parseAdd(rest)
	}

	if kind := Kind(word); kind.TakesTaskID() {
		id, err := parseTaskID(rest, hasRest)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: kind, TaskID: id}, nil
	}

	return Command{}, &UnknownCommandError{Word: word}
}

func parseAdd(rest string) (Command, error) {
	sub, args, hasArgs := strings.Cut(rest, " ")

	switch sub {
	case "project":
		if !hasArgs || args == "" {
			return Command{}, ErrMissingProjectName
		}
		return Command{Kind: KindAddProject, Name: args}, nil
	case "task":
		if !hasArgs || args == "" {
			return Command{}, ErrMissingProjectAndTask
		}
		project, description, hasDescription := strings.Cut(args, " ")
		if !hasDescription || description == "" {
			return Command{}, ErrMissingTaskName
		}
		return Command{Kind: KindAddTask, Project: project, Description: description}, nil
	default:
		return Command{Kind: KindAddUnknown}, nil
	}
}

func parseTaskID(raw string, present bool) (int, error) {
	if !present || raw == "" {
		return 0, ErrMissingTaskID
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &InvalidTaskIDError{Raw: raw, Err: err}
	}

	return id, nil
}
