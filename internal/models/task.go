package models

// Task represents a single unit of work inside a project.
type Task struct {
	// ID is assigned once at creation and never reused within a session
	ID int

	// Description is the free-form task text
	Description string

	// Done reports whether the task has been checked off
	Done bool
}

// NewTask creates a new Task instance
func NewTask(id int, description string, done bool) *Task {
	return &Task{
		ID:          id,
		Description: description,
		Done:        done,
	}
}

// SetDone marks the task as done or not done
func (t *Task) SetDone(done bool) {
	t.Done = done
}

// IsDone checks if the task has been checked off
func (t *Task) IsDone() bool {
	return t.Done
}

// IDSequence hands out task ids. The zero value starts at 1.
type IDSequence struct {
	last int
}

// Next returns the next unused id
func (s *IDSequence) Next() int {
	s.last++
	return s.last
}
