// Package testutil provides testing utilities.
package testutil

import (
	"todomatic/internal/session"
	"todomatic/internal/task"
)

// FocusRecorder collects the headings passed to a session focus handler.
type FocusRecorder struct {
	Headings []string
}

// Record implements session.FocusFunc.
func (r *FocusRecorder) Record(heading string) {
	r.Headings = append(r.Headings, heading)
}

// Count returns how many times focus moved to the heading.
func (r *FocusRecorder) Count() int {
	return len(r.Headings)
}

// NewSession creates a session seeded with tasks, generating ids "new1", "new2", ...
// and recording focus transfers in the returned recorder.
func NewSession(tasks ...task.Task) (*session.Session, *FocusRecorder) {
	rec := &FocusRecorder{}
	s := session.New(
		session.WithTasks(tasks),
		session.WithIDFunc(SequentialIDs("new")),
	)
	s.OnFocusHeading(rec.Record)
	return s, rec
}

// ScenarioTasks returns the two tasks used by the end-to-end scenarios.
func ScenarioTasks() []task.Task {
	return []task.Task{
		{ID: "t1", Name: "Buy milk", Completed: false},
		{ID: "t2", Name: "Walk dog", Completed: true},
	}
}
