package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const pageWidth = 54

var divider = strings.Repeat("─", pageWidth)

// renderPage frames body between dividers under title, with the key help at
// the bottom. The frame never gets narrower than pageWidth.
func renderPage(title, body, help string) string {
	if strings.TrimSpace(body) == "" {
		body = "-"
	}

	width := max(pageWidth, lipgloss.Width(body))
	rule := divider
	if width > pageWidth {
		rule = strings.Repeat("─", width)
	}

	parts := []string{titleStyle.Render(title), rule, "", body, "", rule}
	if strings.TrimSpace(help) != "" {
		parts = append(parts, helpStyle.Render(help))
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// fitText truncates v to n runes, marking the cut with "...".
func fitText(v string, n int) string {
	r := []rune(v)
	if n <= 0 || len(r) <= n {
		return v
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
