// Package ui provides the full-screen terminal interface.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"todomatic/internal/session"
	"todomatic/internal/task"
)

// Option configures the TUI.
type Option func(*tuiConfig)

type tuiConfig struct {
	in        io.Reader
	out       io.Writer
	altScreen bool
	logger    *log.Logger
}

// WithInput sets the input stream. Defaults to stdin.
func WithInput(r io.Reader) Option {
	return func(c *tuiConfig) {
		c.in = r
	}
}

// WithOutput sets the output stream. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(c *tuiConfig) {
		c.out = w
	}
}

// WithAltScreen runs the TUI in the terminal's alternate screen.
func WithAltScreen() Option {
	return func(c *tuiConfig) {
		c.altScreen = true
	}
}

// WithLogger sets the logger for user actions.
func WithLogger(logger *log.Logger) Option {
	return func(c *tuiConfig) {
		c.logger = logger
	}
}

// Run starts the TUI on sess and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, sess *session.Session, opts ...Option) error {
	c := &tuiConfig{}
	for _, opt := range opts {
		opt(c)
	}

	var programOpts []tea.ProgramOption
	programOpts = append(programOpts, tea.WithContext(ctx))
	if c.in != nil {
		programOpts = append(programOpts, tea.WithInput(c.in))
	}
	if c.out != nil {
		programOpts = append(programOpts, tea.WithOutput(c.out))
	}
	if c.altScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	m := newModel(sess, c.logger)
	defer sess.OnFocusHeading(nil)

	_, err := tea.NewProgram(m, programOpts...).Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

type focusTarget int

const (
	focusList focusTarget = iota
	focusInput
	focusHeading
)

type inputMode int

const (
	modeNone inputMode = iota
	modeAdd
	modeEdit
)

var (
	titleStyle          = lipgloss.NewStyle().Bold(true)
	pressedStyle        = lipgloss.NewStyle().Reverse(true)
	headingStyle        = lipgloss.NewStyle().Bold(true)
	headingFocusedStyle = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("205"))
	completedStyle      = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	statusStyle         = lipgloss.NewStyle().Faint(true)
)

type model struct {
	sess   *session.Session
	logger *log.Logger
	input  textinput.Model
	cursor int
	focus  focusTarget
	mode   inputMode
	editID string
	status string
}

func newModel(sess *session.Session, logger *log.Logger) *model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ti := textinput.New()
	ti.Placeholder = "Task name"
	ti.CharLimit = 256
	ti.Width = 40

	m := &model{
		sess:   sess,
		logger: logger,
		input:  ti,
		focus:  focusList,
		status: "Press a to add, space to toggle, d to delete, tab to filter.",
	}
	sess.OnFocusHeading(func(heading string) {
		m.focus = focusHeading
		m.input.Blur()
	})
	return m
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.input.Width = max(msg.Width-10, 10)
	case tea.KeyMsg:
		if m.mode != modeNone {
			return m.updateInput(msg)
		}
		return m.updateList(msg.String())
	}
	return m, nil
}

func (m *model) updateList(key string) (tea.Model, tea.Cmd) {
	// Any key moves focus from the heading back to the list.
	if m.focus == focusHeading {
		m.focus = focusList
	}

	visible := m.sess.Visible()
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "j", "down":
		m.cursor = clampCursor(m.cursor+1, len(visible))
	case "k", "up":
		m.cursor = clampCursor(m.cursor-1, len(visible))
	case " ", "x":
		if t, ok := m.selected(visible); ok {
			m.sess.ToggleTaskCompleted(t.ID)
			m.status = fmt.Sprintf("Toggled %q", t.Name)
			m.logger.Debug("tui toggle", "id", t.ID)
		}
	case "d", "delete":
		if t, ok := m.selected(visible); ok {
			m.sess.DeleteTask(t.ID)
			m.status = fmt.Sprintf("Deleted %q", t.Name)
			m.logger.Debug("tui delete", "id", t.ID)
		}
	case "e", "enter":
		if t, ok := m.selected(visible); ok {
			m.mode = modeEdit
			m.editID = t.ID
			m.input.SetValue(t.Name)
			m.input.CursorEnd()
			m.focus = focusInput
			return m, m.input.Focus()
		}
	case "a", "n":
		m.mode = modeAdd
		m.input.SetValue("")
		m.focus = focusInput
		return m, m.input.Focus()
	case "tab":
		m.setFilter(m.sess.Filter().Next())
	case "1", "2", "3":
		m.setFilter(task.Filters[int(key[0]-'1')])
	}

	m.cursor = clampCursor(m.cursor, len(m.sess.Visible()))
	return m, nil
}

func (m *model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.closeInput()
		m.status = "Cancelled"
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			m.status = "Task name cannot be empty"
			return m, nil
		}
		if m.mode == modeAdd {
			m.sess.AddTask(name)
			m.cursor = clampCursor(len(m.sess.Visible())-1, len(m.sess.Visible()))
			m.status = fmt.Sprintf("Added %q", name)
			m.logger.Debug("tui add", "name", name)
		} else {
			m.sess.EditTask(m.editID, name)
			m.status = fmt.Sprintf("Renamed to %q", name)
			m.logger.Debug("tui edit", "id", m.editID)
		}
		m.closeInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("TodoMatic") + "\n\n")

	if m.mode != modeNone {
		label := "Add task"
		if m.mode == modeEdit {
			label = "Edit task"
		}
		b.WriteString(label + "\n")
		b.WriteString(m.input.View() + "\n\n")
	}

	writeFilters(&b, m.sess.Filter())

	heading := m.sess.Heading()
	if m.focus == focusHeading {
		b.WriteString(headingFocusedStyle.Render("» "+heading) + "\n\n")
	} else {
		b.WriteString(headingStyle.Render(heading) + "\n\n")
	}

	visible := m.sess.Visible()
	if len(visible) == 0 {
		b.WriteString("  No tasks to show.\n")
	}
	for i, t := range visible {
		b.WriteString(m.formatTask(i, t) + "\n")
	}

	b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	b.WriteString(footer(m.mode) + "\n")
	return b.String()
}

func (m *model) formatTask(i int, t task.Task) string {
	pointer := " "
	if i == m.cursor && m.focus == focusList {
		pointer = ">"
	}
	box := "[ ]"
	name := t.Name
	if t.Completed {
		box = "[x]"
		name = completedStyle.Render(name)
	}
	return fmt.Sprintf("%s %s %s", pointer, box, name)
}

func (m *model) selected(visible []task.Task) (task.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(visible) {
		return task.Task{}, false
	}
	return visible[m.cursor], true
}

func (m *model) setFilter(f task.Filter) {
	m.sess.SetFilter(f)
	m.cursor = 0
	m.status = "Showing " + f.String()
}

func (m *model) closeInput() {
	m.mode = modeNone
	m.editID = ""
	m.input.SetValue("")
	m.input.Blur()
	m.focus = focusList
}

func writeFilters(b *strings.Builder, active task.Filter) {
	buttons := make([]string, 0, len(task.Filters))
	for _, f := range task.Filters {
		label := " " + f.String() + " "
		if f == active {
			label = pressedStyle.Render(label)
		}
		buttons = append(buttons, label)
	}
	b.WriteString(strings.Join(buttons, " ") + "\n\n")
}

func footer(mode inputMode) string {
	if mode != modeNone {
		return "enter save | esc cancel"
	}
	return "a add | e edit | space toggle | d delete | tab/1-3 filter | q quit"
}

func clampCursor(cursor, length int) int {
	if length == 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	return cursor
}
