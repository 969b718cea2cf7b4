// Package styles provides the GOV.UK colour palette and lipgloss styles for
// the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette holds the colours used by the TUI. The defaults follow the
// GOV.UK Design System colour scheme.
type Palette struct {
	// Link is used for headings, links and the selected row.
	Link lipgloss.Color

	// LinkHover is used for secondary headings.
	LinkHover lipgloss.Color

	Text          lipgloss.Color
	SecondaryText lipgloss.Color
	Canvas        lipgloss.Color

	// Button is the green start/continue button colour.
	Button lipgloss.Color

	// Focus is the yellow focus ring colour.
	Focus lipgloss.Color

	ErrorText   lipgloss.Color
	InputBorder lipgloss.Color
}

// GovUKPalette returns the GOV.UK palette adapted for a dark terminal.
func GovUKPalette() *Palette {
	return &Palette{
		Link:          "#1D70B8",
		LinkHover:     "#5694CA",
		Text:          "#F3F2F1",
		SecondaryText: "#B1B4B6",
		Canvas:        "#0B0C0C",
		Button:        "#00703C",
		Focus:         "#FFDD00",
		ErrorText:     "#D4351C",
		InputBorder:   "#505A5F",
	}
}

// Styles contains the styles the views render with.
type Styles struct {
	palette *Palette

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style

	// Selected highlights the catalog row under the cursor.
	Selected lipgloss.Style

	Error   lipgloss.Style
	Success lipgloss.Style

	// Badge marks popular services.
	Badge lipgloss.Style

	// Chip and ChipSelected render the category filter.
	Chip         lipgloss.Style
	ChipSelected lipgloss.Style

	InputField   lipgloss.Style
	FocusedInput lipgloss.Style
	StatusBar    lipgloss.Style
}

// NewStyles builds styles from a palette. A nil palette uses GovUKPalette.
func NewStyles(p *Palette) *Styles {
	if p == nil {
		p = GovUKPalette()
	}

	text := lipgloss.NewStyle().Foreground(p.Text)
	pill := lipgloss.NewStyle().Padding(0, 1)
	box := lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).Padding(0, 1)

	return &Styles{
		palette: p,

		Title:    lipgloss.NewStyle().Bold(true).Foreground(p.Link),
		Subtitle: lipgloss.NewStyle().Bold(true).Foreground(p.LinkHover),
		Normal:   text,
		Muted:    lipgloss.NewStyle().Foreground(p.SecondaryText),
		Selected: text.Bold(true).Background(p.Link),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(p.ErrorText),
		Success:  lipgloss.NewStyle().Foreground(p.Button),

		Badge:        pill.Bold(true).Foreground(p.Text).Background(p.Button),
		Chip:         pill.Foreground(p.Link),
		ChipSelected: pill.Bold(true).Foreground(p.Text).Background(p.Link),

		InputField:   box.BorderForeground(p.InputBorder),
		FocusedInput: box.BorderForeground(p.Focus),
		StatusBar:    pill.Foreground(p.SecondaryText).Background(p.Canvas),
	}
}

// DefaultStyles returns styles using the GOV.UK palette.
func DefaultStyles() *Styles {
	return NewStyles(GovUKPalette())
}

// Palette returns the palette the styles were built from.
func (s *Styles) Palette() *Palette {
	return s.palette
}
