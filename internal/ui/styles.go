// Package ui holds terminal styling and table rendering for command output.
package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	// Accent highlights names of weddings and tags.
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA"))

	// Muted is for secondary info like indexes and counts.
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold is for headings.
	Bold = lipgloss.NewStyle().Bold(true)
)

// Theme applies styles only when output goes to a terminal.
type Theme struct {
	enabled bool
}

// NewTheme returns a theme for w. Anything that is not a terminal gets
// plain text.
func NewTheme(w io.Writer) Theme {
	f, ok := w.(*os.File)

	return Theme{enabled: ok && isatty.IsTerminal(f.Fd())}
}

// Plain returns a theme that never styles.
func Plain() Theme { return Theme{} }

// Enabled reports whether styles are applied.
func (t Theme) Enabled() bool { return t.enabled }

// Heading renders s bold.
func (t Theme) Heading(s string) string { return t.render(Bold, s) }

// Accent renders s in the accent color.
func (t Theme) Accent(s string) string { return t.render(Accent, s) }

// Muted renders s dimmed.
func (t Theme) Muted(s string) string { return t.render(Muted, s) }

func (t Theme) render(style lipgloss.Style, s string) string {
	if !t.enabled || s == "" {
		return s
	}

	return style.Render(s)
}
