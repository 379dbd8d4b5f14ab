package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProject_AddTaskKeepsInsertionOrder(t *testing.T) {
	p := NewProject("secrets")
	p.AddTask(NewTask(2, "Destroy all humans.", false))
	p.AddTask(NewTask(1, "Eat more donuts.", false))

	tasks := p.Tasks()
	require.Len(t, tasks, 2)
	require.Equal(t, 2, tasks[0].ID)
	require.Equal(t, 1, tasks[1].ID)
}

func TestProject_RemoveTask(t *testing.T) {
	first := NewTask(1, "one", false)
	second := NewTask(2, "two", false)
	third := NewTask(3, "three", false)

	p := NewProject("training")
	p.AddTask(first)
	p.AddTask(second)
	p.AddTask(third)

	p.RemoveTask(second)
	require.Equal(t, []*Task{first, third}, p.Tasks())

	// Removing an absent task is silent.
	p.RemoveTask(second)
	p.RemoveTask(NewTask(1, "one", false))
	require.Equal(t, []*Task{first, third}, p.Tasks())
}

func TestProject_FindTaskByID(t *testing.T) {
	p := NewProject("training")
	p.AddTask(NewTask(4, "SOLID", false))
	p.AddTask(NewTask(4, "duplicate", true))

	task, ok := p.FindTaskByID(4)
	require.True(t, ok)
	require.Equal(t, "SOLID", task.Description)

	_, ok = p.FindTaskByID(9)
	require.False(t, ok)
}

func TestProject_AcceptsBlankName(t *testing.T) {
	p := NewProject("")
	require.Equal(t, "", p.Name)
	require.Empty(t, p.Tasks())
}
