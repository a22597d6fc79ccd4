// Package output provides formatters for shell output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todomatic/internal/task"
)

const (
	// HeadingSeparator underlines the remaining-count heading.
	HeadingSeparator = "------------"

	// FocusMarker prefixes the heading when focus moves to it.
	FocusMarker = "»"
)

// FormatTask formats a task line.
// Format: "{N:>4}  [x] {NAME}\n" (4-wide right-aligned number, two spaces, checkbox, name)
func FormatTask(w io.Writer, num int, t task.Task) {
	box := "[ ]"
	if t.Completed {
		box = "[x]"
	}
	fmt.Fprintf(w, "%4d  %s %s\n", num, box, normalizeName(t.Name))
}

// FormatTaskVerbose is FormatTask followed by the task id.
func FormatTaskVerbose(w io.Writer, num int, t task.Task) {
	box := "[ ]"
	if t.Completed {
		box = "[x]"
	}
	fmt.Fprintf(w, "%4d  %s %s  (%s)\n", num, box, normalizeName(t.Name), t.ID)
}

// FormatFilterBar formats the filter controls, bracketing the active filter.
// Example: "Filter: [All] Active Completed"
func FormatFilterBar(w io.Writer, active task.Filter) {
	names := make([]string, 0, len(task.Filters))
	for _, f := range task.Filters {
		if f == active {
			names = append(names, "["+f.String()+"]")
			continue
		}
		names = append(names, f.String())
	}
	fmt.Fprintf(w, "Filter: %s\n", strings.Join(names, " "))
}

// FormatHeading formats the remaining-count heading with its separator.
func FormatHeading(w io.Writer, heading string) {
	fmt.Fprintln(w, heading)
	fmt.Fprintln(w, HeadingSeparator)
}

// FormatFocus formats the heading line printed when focus moves to it.
func FormatFocus(w io.Writer, heading string) {
	fmt.Fprintf(w, "%s %s\n", FocusMarker, heading)
}

// normalizeName normalizes a task name for display.
// - Empty or whitespace-only names become "(untitled)"
// - Newlines are replaced with spaces
func normalizeName(name string) string {
	name = strings.ReplaceAll(name, "\r", " ")
	name = strings.ReplaceAll(name, "\n", " ")

	if strings.TrimSpace(name) == "" {
		return "(untitled)"
	}
	return name
}
