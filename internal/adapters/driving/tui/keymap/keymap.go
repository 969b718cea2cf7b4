// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Back returns to the catalog, abandoning any application in progress.
	Back key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select starts an application for the highlighted service.
	Select key.Binding

	// NextCategory cycles the category filter forwards.
	NextCategory key.Binding

	// PrevCategory cycles the category filter backwards.
	PrevCategory key.Binding

	// NextField moves focus to the next form field.
	NextField key.Binding

	// PrevField moves focus to the previous form field.
	PrevField key.Binding

	// NextStep continues to the next wizard step.
	NextStep key.Binding

	// PrevStep goes back one wizard step.
	PrevStep key.Binding

	// CycleOption changes the value of a choice field.
	CycleOption key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to services"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start application"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next category"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous category"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		NextStep: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "continue"),
		),
		PrevStep: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "previous"),
		),
		CycleOption: key.NewBinding(
			key.WithKeys("left", "right"),
			key.WithHelp("←/→", "change option"),
		),
	}
}

// CatalogHelp returns keybindings for the catalog view.
func (k *KeyMap) CatalogHelp() []key.Binding {
	return []key.Binding{k.NextCategory, k.Down, k.Select, k.Quit}
}

// WizardHelp returns keybindings for the wizard's data entry steps.
func (k *KeyMap) WizardHelp() []key.Binding {
	return []key.Binding{k.NextField, k.NextStep, k.PrevStep, k.Back}
}

// ConfirmationHelp returns keybindings for the confirmation step.
func (k *KeyMap) ConfirmationHelp() []key.Binding {
	return []key.Binding{k.Back, k.Quit}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
