package models

// Project represents a named, ordered collection of tasks.
//
// Names are not required to be unique; lookups by name resolve to the first match.
type Project struct {
	// Name is the project name as entered (may contain spaces)
	Name string

	tasks []*Task
}

// NewProject creates a new Project instance
func NewProject(name string) *Project {
	return &Project{
		Name: name,
	}
}

// Tasks returns the project's tasks in insertion order
func (p *Project) Tasks() []*Task {
	return p.tasks
}

// AddTask appends a task to the end of the project
func (p *Project) AddTask(task *Task) {
	p.tasks = append(p.tasks, task)
}

// RemoveTask removes the given task instance. Removing a task that is not
// part of the project is a no-op.
func (p *Project) RemoveTask(task *Task) {
	for i, t := range p.tasks {
		if t == task {
			p.tasks = append(p.tasks[:i], p.tasks[i+1:]...)
			return
		}
	}
}

// FindTaskByID returns the first task with the given id
func (p *Project) FindTaskByID(id int) (*Task, bool) {
	for _, t := range p.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}
