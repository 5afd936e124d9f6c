package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/lattice/pkg/domain"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#818cf8"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
)

// Swatches renders one line per theme colour: a colour block, the token name and its value.
// active marks the selected theme in the title.
func Swatches(t domain.Theme, active bool) string {
	var sb strings.Builder
	title := t.Name
	if active {
		title += " (active)"
	}
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n")

	names := make([]string, 0, len(t.Colors))
	for name := range t.Colors {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value := t.Colors[name]
		block := lipgloss.NewStyle().Background(lipgloss.Color(value)).Render("    ")
		sb.WriteString(fmt.Sprintf("  %s %-14s %s\n", block, name, mutedStyle.Render(value)))
	}
	return sb.String()
}
