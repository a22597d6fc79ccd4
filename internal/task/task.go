// Package task holds the task record and the pure operations over a task list.
package task

import "strings"

// Task represents a single to-do item.
type Task struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// Add returns a copy of tasks with a new open task appended.
// The name is trimmed; an empty or whitespace-only name leaves the list unchanged.
// newID supplies the identifier for the new task.
func Add(tasks []Task, name string, newID func() string) []Task {
	name = strings.TrimSpace(name)
	if name == "" {
		return clone(tasks)
	}

	result := make([]Task, len(tasks), len(tasks)+1)
	copy(result, tasks)
	return append(result, Task{ID: newID(), Name: name, Completed: false})
}

// ToggleCompleted returns a copy of tasks with the completed flag of the
// task matching id inverted. Unknown ids are ignored.
func ToggleCompleted(tasks []Task, id string) []Task {
	return update(tasks, id, func(t *Task) {
		t.Completed = !t.Completed
	})
}

// Edit returns a copy of tasks with the name of the task matching id replaced.
// Unknown ids are ignored.
func Edit(tasks []Task, id, newName string) []Task {
	return update(tasks, id, func(t *Task) {
		t.Name = newName
	})
}

// Remove returns a copy of tasks without the task matching id.
// Unknown ids are ignored.
func Remove(tasks []Task, id string) []Task {
	result := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			result = append(result, t)
		}
	}
	return result
}

// Find returns the task with the given id.
func Find(tasks []Task, id string) (Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// update copies tasks and applies fn to the copy of the matching task.
func update(tasks []Task, id string, fn func(*Task)) []Task {
	result := clone(tasks)
	for i := range result {
		if result[i].ID == id {
			fn(&result[i])
		}
	}
	return result
}

func clone(tasks []Task) []Task {
	result := make([]Task, len(tasks))
	copy(result, tasks)
	return result
}
