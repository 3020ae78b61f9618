package widgets

import "github.com/charmbracelet/lipgloss"

// Box draws Content inside a rounded border, with Title on the first line when set.
type Box struct {
	Title       string
	Content     string
	BorderColor lipgloss.Color
}

func (b Box) Render(width, height int) string {
	if width <= 2 || height <= 2 {
		return ""
	}
	style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(width - 2).Height(max(1, height-2))
	if b.BorderColor != "" {
		style = style.BorderForeground(b.BorderColor)
	}
	body := b.Content
	if b.Title != "" {
		body = "[" + b.Title + "]\n" + body
	}
	return style.Render(body)
}
