// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/benefits-portal/internal/adapters/driving/tui/styles"
)

// Input wraps a bubbles textinput with a label and an optional error line.
type Input struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
	err       string
	width     int
}

// New creates a labelled input.
func New(s *styles.Styles, label, placeholder string) *Input {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Width = 50

	return &Input{
		textinput: ti,
		styles:    s,
		label:     label,
		width:     50,
	}
}

// NewSearchInput creates the focused catalog search box.
func NewSearchInput(s *styles.Styles) *Input {
	in := New(s, "Search for services", "e.g. child, housing, disability")
	in.textinput.Focus()
	return in
}

// Init initialises the input.
func (i *Input) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (i *Input) Update(msg tea.Msg) (*Input, tea.Cmd) {
	var cmd tea.Cmd
	i.textinput, cmd = i.textinput.Update(msg)
	return i, cmd
}

// View renders the label, the input box and any error.
func (i *Input) View() string {
	box := i.styles.InputField
	if i.textinput.Focused() {
		box = i.styles.FocusedInput
	}

	lines := []string{i.styles.Subtitle.Render(i.label)}
	if i.err != "" {
		lines = append(lines, i.styles.Error.Render(i.err))
	}
	lines = append(lines, box.Render(i.textinput.View()))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Label returns the input label.
func (i *Input) Label() string {
	return i.label
}

// Value returns the current input value.
func (i *Input) Value() string {
	return i.textinput.Value()
}

// SetValue sets the input value.
func (i *Input) SetValue(value string) {
	i.textinput.SetValue(value)
}

// SetError sets the validation message shown above the input.
func (i *Input) SetError(msg string) {
	i.err = msg
}

// Error returns the validation message.
func (i *Input) Error() string {
	return i.err
}

// Focus sets focus on the input.
func (i *Input) Focus() tea.Cmd {
	return i.textinput.Focus()
}

// Blur removes focus from the input.
func (i *Input) Blur() {
	i.textinput.Blur()
}

// Focused returns whether the input is focused.
func (i *Input) Focused() bool {
	return i.textinput.Focused()
}

// SetWidth sets the width of the input.
func (i *Input) SetWidth(width int) {
	i.width = width
	// Account for border and padding
	inputWidth := width - 6
	if inputWidth < 20 {
		inputWidth = 20
	}
	i.textinput.Width = inputWidth
}

// Width returns the current width.
func (i *Input) Width() int {
	return i.width
}

// Reset clears the input and its error.
func (i *Input) Reset() {
	i.textinput.Reset()
	i.err = ""
}
