package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/zeno/markdown"
)

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style
	// Marked decorates provisional input-method text.
	Marked lipgloss.Style

	Heading     lipgloss.Style
	Emphasis    lipgloss.Style
	Strong      lipgloss.Style
	Code        lipgloss.Style
	Link        lipgloss.Style
	Punctuation lipgloss.Style
	Other       lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Marked:        lipgloss.NewStyle().Underline(true),

		Heading:     lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true),
		Emphasis:    lipgloss.NewStyle().Italic(true),
		Strong:      lipgloss.NewStyle().Bold(true),
		Code:        lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
		Link:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true),
		Punctuation: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Other:       lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
	}
}

func (s Style) forKind(k markdown.Kind) lipgloss.Style {
	switch k {
	case markdown.Heading:
		return s.Heading
	case markdown.Emphasis:
		return s.Emphasis
	case markdown.Strong:
		return s.Strong
	case markdown.Code:
		return s.Code
	case markdown.Link:
		return s.Link
	case markdown.Punctuation:
		return s.Punctuation
	default:
		return s.Other
	}
}
