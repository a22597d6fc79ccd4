// Package session owns the task list state for one interactive session.
//
// A Session holds the ordered tasks, the active filter and the task count
// observed after the previous update. Every operation replaces the task list
// with the result of a pure function from package task, then runs the
// focus-after-delete rule: when the count drops by exactly one, the focus
// handler is called with the current heading.
//
// A Session is not safe for concurrent use. Presentations feed it one user
// action at a time.
package session

import (
	"io"

	"github.com/charmbracelet/log"

	"todomatic/internal/task"
)

// FocusFunc is called when focus should move to the remaining-count heading.
type FocusFunc func(heading string)

// Option configures a Session.
type Option func(*Session)

// WithTasks sets the initial tasks. The slice is copied.
func WithTasks(tasks []task.Task) Option {
	return func(s *Session) {
		s.tasks = append([]task.Task(nil), tasks...)
	}
}

// WithFilter sets the initial filter.
func WithFilter(f task.Filter) Option {
	return func(s *Session) {
		s.filter = f
	}
}

// WithIDFunc overrides the id generator used by AddTask.
func WithIDFunc(fn func() string) Option {
	return func(s *Session) {
		s.newID = fn
	}
}

// WithLogger sets the logger used for state transitions.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// Session is the state container shared by presentations.
type Session struct {
	tasks         []task.Task
	filter        task.Filter
	previousCount int
	newID         func() string
	onFocus       FocusFunc
	logger        *log.Logger
}

// New creates a session. Without options it starts empty with the All filter.
func New(opts ...Option) *Session {
	s := &Session{
		filter: task.All,
		newID:  task.NewID,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.previousCount = len(s.tasks)
	return s
}

// OnFocusHeading registers the focus handler, replacing any previous one.
// A nil handler disables focus notifications.
func (s *Session) OnFocusHeading(fn FocusFunc) {
	s.onFocus = fn
}

// AddTask appends a new open task. Blank names are ignored.
func (s *Session) AddTask(name string) {
	s.apply("add", "", task.Add(s.tasks, name, s.newID))
}

// ToggleTaskCompleted flips the completed flag of the task with id.
func (s *Session) ToggleTaskCompleted(id string) {
	s.apply("toggle", id, task.ToggleCompleted(s.tasks, id))
}

// EditTask renames the task with id.
func (s *Session) EditTask(id, newName string) {
	s.apply("edit", id, task.Edit(s.tasks, id, newName))
}

// DeleteTask removes the task with id.
func (s *Session) DeleteTask(id string) {
	s.apply("delete", id, task.Remove(s.tasks, id))
}

// Replace swaps the whole task list, e.g. after loading a seed file.
// The focus rule still applies to the resulting count change.
func (s *Session) Replace(tasks []task.Task) {
	s.apply("replace", "", append([]task.Task(nil), tasks...))
}

// SetFilter changes the active filter. The task list is not touched.
func (s *Session) SetFilter(f task.Filter) {
	s.filter = f
	s.logger.Debug("filter changed", "filter", f)
	s.observe()
}

// Filter returns the active filter.
func (s *Session) Filter() task.Filter {
	return s.filter
}

// FilterNames returns the names of all filters for rendering controls.
func (s *Session) FilterNames() []string {
	return task.FilterNames()
}

// Tasks returns a copy of the full task list.
func (s *Session) Tasks() []task.Task {
	return append([]task.Task(nil), s.tasks...)
}

// Visible returns the tasks matching the active filter.
func (s *Session) Visible() []task.Task {
	return task.Visible(s.tasks, s.filter)
}

// Count returns the number of tasks in the session.
func (s *Session) Count() int {
	return len(s.tasks)
}

// Heading returns the remaining-count heading text.
func (s *Session) Heading() string {
	return task.Heading(len(s.tasks))
}

// Lookup returns the task with id.
func (s *Session) Lookup(id string) (task.Task, bool) {
	return task.Find(s.tasks, id)
}

func (s *Session) apply(op, id string, next []task.Task) {
	s.tasks = next
	s.logger.Debug("tasks updated", "op", op, "id", id, "count", len(next))
	s.observe()
}

// observe compares the current count with the one seen after the previous
// update and fires the focus handler on a drop of exactly one.
func (s *Session) observe() {
	count := len(s.tasks)
	previous := s.previousCount
	s.previousCount = count

	if count != previous-1 {
		return
	}
	s.logger.Debug("focus heading", "previous", previous, "count", count)
	if s.onFocus != nil {
		s.onFocus(s.Heading())
	}
}
