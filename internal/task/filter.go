package task

import (
	"errors"
	"fmt"
	"strings"
)

// Filter selects which tasks are visible.
type Filter int

const (
	// All shows every task.
	All Filter = iota
	// Active shows tasks that are not completed.
	Active
	// Completed shows completed tasks.
	Completed
)

// ErrUnknownFilter is returned by ParseFilter for names that match no filter.
var ErrUnknownFilter = errors.New("unknown filter")

// Filters lists every filter in display order.
var Filters = []Filter{All, Active, Completed}

// String returns the display name of the filter.
func (f Filter) String() string {
	switch f {
	case All:
		return "All"
	case Active:
		return "Active"
	case Completed:
		return "Completed"
	default:
		return fmt.Sprintf("Filter(%d)", int(f))
	}
}

// Match reports whether t is visible under the filter.
func (f Filter) Match(t Task) bool {
	switch f {
	case Active:
		return !t.Completed
	case Completed:
		return t.Completed
	default:
		return true
	}
}

// Next returns the filter after f in display order, wrapping around.
func (f Filter) Next() Filter {
	return Filters[(int(f)+1)%len(Filters)]
}

// ParseFilter resolves a filter name (case-insensitive, trimmed).
func ParseFilter(name string) (Filter, error) {
	for _, f := range Filters {
		if strings.EqualFold(strings.TrimSpace(name), f.String()) {
			return f, nil
		}
	}
	return All, fmt.Errorf("%w: %s", ErrUnknownFilter, name)
}

// FilterNames returns the names of all filters in display order.
func FilterNames() []string {
	names := make([]string, len(Filters))
	for i, f := range Filters {
		names[i] = f.String()
	}
	return names
}

// Visible returns the tasks matching f, preserving order.
func Visible(tasks []Task, f Filter) []Task {
	result := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			result = append(result, t)
		}
	}
	return result
}

// Heading returns the remaining-count heading for n tasks,
// e.g. "1 task remaining" or "3 tasks remaining".
func Heading(n int) string {
	noun := "tasks"
	if n == 1 {
		noun = "task"
	}
	return fmt.Sprintf("%d %s remaining", n, noun)
}
