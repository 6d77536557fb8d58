// Package ui holds the terminal screens of the application.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/activitylist/activitylist/internal/theme"
)

// Layout splits the terminal into a header, a content area and a status
// bar.
type Layout struct {
	Width  int
	Height int
}

// NewLayout creates a Layout for a terminal of the given size.
func NewLayout(width, height int) Layout {
	return Layout{Width: width, Height: height}
}

// ContentHeight returns the rows left between the header and the status bar.
func (l Layout) ContentHeight() int {
	if h := l.Height - 2; h > 0 {
		return h
	}
	return 0
}

// RenderHeader renders the title on the left and status on the right.
func (l Layout) RenderHeader(title, status string) string {
	left := theme.HeaderStyle.Render(title)
	right := theme.HeaderStyle.Render(status)
	return fill(theme.HeaderStyle, l.Width, left, right)
}

// RenderStatusBar renders the bottom bar with key hints.
func (l Layout) RenderStatusBar(hints string) string {
	return fill(theme.StatusBarStyle, l.Width, theme.StatusBarStyle.Render(hints), "")
}

// Frame stacks the header, the content and the status bar.
func (l Layout) Frame(header, content, statusBar string) string {
	content = lipgloss.NewStyle().Height(l.ContentHeight()).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func fill(style lipgloss.Style, width int, left, right string) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	filler := lipgloss.NewStyle().
		Width(gap).
		Background(style.GetBackground()).
		Render("")
	return lipgloss.JoinHorizontal(lipgloss.Top, left, filler, right)
}
