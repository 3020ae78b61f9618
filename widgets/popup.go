package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	popupPadX = 2
	popupPadY = 1
)

// Popup draws Content in a bordered card centred over Base. Width and Height are
// the content's own size; border and padding go around it, and the card shrinks
// to fit a small canvas.
type Popup struct {
	Base    Widget
	Content Widget
	Width   int
	Height  int
}

func (p Popup) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	var base string
	if p.Base != nil {
		base = p.Base.Render(width, height)
	}
	lines := canvas(base, width, height)
	if p.Content == nil {
		return strings.Join(lines, "\n")
	}
	innerW := min(p.Width, width-2-2*popupPadX)
	innerH := min(p.Height, height-2-2*popupPadY)
	if innerW <= 0 || innerH <= 0 {
		return strings.Join(lines, "\n")
	}
	body := strings.Join(canvas(p.Content.Render(innerW, innerH), innerW, innerH), "\n")
	card := strings.Split(lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(popupPadY, popupPadX).
		Render(body), "\n")

	cardW := innerW + 2 + 2*popupPadX
	x := (width - cardW) / 2
	y := (height - len(card)) / 2
	for i, line := range card {
		row := y + i
		if row < 0 || row >= height {
			continue
		}
		lines[row] = splice(lines[row], line, x, cardW, width)
	}
	return strings.Join(lines, "\n")
}

// canvas splits s into exactly height lines of exactly width cells.
func canvas(s string, width, height int) []string {
	lines := splitToLines(s, height)
	for i := range lines {
		lines[i] = padRight(lines[i], width)
	}
	return lines
}

// splice writes seg over columns [x, x+w) of line.
func splice(line, seg string, x, w, width int) string {
	left := ansi.Truncate(line, x, "")
	right := ansi.TruncateLeft(line, x+w, "")
	return padRight(left+padRight(seg, w)+right, width)
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}
