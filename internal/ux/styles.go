// Package ux styles grid text for terminal output.
package ux

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	wallStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	boxStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	targetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	workerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	tabooStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// ColorizeGrid styles a rendered warehouse or taboo grid character by
// character. Unknown characters pass through unchanged.
func ColorizeGrid(grid string) string {
	var b strings.Builder
	for _, ch := range grid {
		switch ch {
		case '#':
			b.WriteString(wallStyle.Render(string(ch)))
		case '$':
			b.WriteString(boxStyle.Render(string(ch)))
		case '.':
			b.WriteString(targetStyle.Render(string(ch)))
		case '@', '!':
			b.WriteString(workerStyle.Render(string(ch)))
		case '*':
			b.WriteString(boxStyle.Render(string(ch)))
		case 'X':
			b.WriteString(tabooStyle.Render(string(ch)))
		default:
			b.WriteRune(ch)
		}
	}
	return b.String()
}
