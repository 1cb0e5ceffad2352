package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)

// Heading styles a section title.
func Heading(s string) string { return headingStyle.Render(s) }

// Error styles a failure message.
func Error(s string) string { return errorStyle.Render(s) }

// Muted styles secondary information.
func Muted(s string) string { return mutedStyle.Render(s) }

// Wrap breaks text into lines no wider than width display cells. A width of
// zero or less leaves text unchanged.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return strings.Split(text, "\n")
	}
	return strings.Split(runewidth.Wrap(text, width), "\n")
}
