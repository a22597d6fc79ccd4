package commands

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"todomatic/internal/session"
	"todomatic/internal/task"
)

// TaskRef represents a parsed task reference.
type TaskRef struct {
	Num int    // 1-based position in the visible list, 0 if ID is set
	ID  string // literal task id, empty if Num is set
}

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ParseTaskRef parses the task reference in args[0] and returns the remaining args.
//
// An all-digit token is a position in the visible list as printed by list.
// Any other non-empty token is taken as a task id.
func ParseTaskRef(args []string) (TaskRef, []string, error) {
	if len(args) == 0 || args[0] == "" {
		return TaskRef{}, nil, ErrTaskRefRequired
	}

	first, rest := args[0], args[1:]
	if !isAllDigits(first) {
		return TaskRef{ID: first}, rest, nil
	}

	num, err := strconv.Atoi(first)
	if err != nil || num < 1 {
		return TaskRef{}, nil, fmt.Errorf("task number out of range: %s", first)
	}
	return TaskRef{Num: num}, rest, nil
}

// String returns the reference as the user typed it.
func (r TaskRef) String() string {
	if r.ID != "" {
		return r.ID
	}
	return strconv.Itoa(r.Num)
}

// ResolveTaskRef finds the task a reference points at.
// Numbers index the tasks visible under the session's active filter.
func ResolveTaskRef(sess *session.Session, ref TaskRef) (task.Task, error) {
	if ref.ID != "" {
		t, ok := sess.Lookup(ref.ID)
		if !ok {
			return task.Task{}, fmt.Errorf("task not found: %s", ref.ID)
		}
		return t, nil
	}

	visible := sess.Visible()
	if ref.Num < 1 || ref.Num > len(visible) {
		return task.Task{}, fmt.Errorf("task number out of range: %d", ref.Num)
	}
	return visible[ref.Num-1], nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
