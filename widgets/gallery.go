package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jaskgallery/internal/gallery"
	"github.com/jask/jaskgallery/internal/settings"
)

const arrowWidth = 3

// Gallery paints one gallery frame: the image slot between two arrows. An arrow is
// hidden when the frame is at that bound or when arrows are switched off.
type Gallery struct {
	Frame    gallery.Frame
	Settings settings.Settings
	Muted    lipgloss.Color
}

func (g Gallery) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	arrowStyle := lipgloss.NewStyle().Bold(true)
	if g.Settings.Arrows.Color != "" {
		arrowStyle = arrowStyle.Foreground(lipgloss.Color(g.Settings.Arrows.Color))
	}
	left, right := Text(""), Text("")
	if g.Settings.Arrows.Show && !g.Frame.AtStart {
		left = Text(arrowStyle.Render(arrowColumn("<", height)))
	}
	if g.Settings.Arrows.Show && !g.Frame.AtEnd {
		right = Text(arrowStyle.Render(arrowColumn(">", height)))
	}
	out := HStack{
		Widgets: []Widget{left, imageSlot{frame: g.Frame, fit: g.Settings.Image.Fit, caption: g.Settings.Image.ShowCaption, muted: g.Muted}, right},
		Fixed:   []int{arrowWidth, 0, arrowWidth},
	}.Render(width, height)
	if g.Settings.Background.Color != "" {
		out = lipgloss.NewStyle().Background(lipgloss.Color(g.Settings.Background.Color)).Render(out)
	}
	return out
}

func arrowColumn(glyph string, height int) string {
	lines := make([]string, height)
	lines[height/2] = " " + glyph
	return strings.Join(lines, "\n")
}

type imageSlot struct {
	frame   gallery.Frame
	fit     settings.Fit
	caption bool
	muted   lipgloss.Color
}

func (s imageSlot) Render(width, height int) string {
	mutedStyle := lipgloss.NewStyle().Foreground(s.muted)
	if s.frame.Item == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, mutedStyle.Render("No images"))
	}
	lines := []string{}
	if s.frame.Item.URL != nil {
		lines = append(lines, *s.frame.Item.URL)
	} else {
		lines = append(lines, mutedStyle.Render("no image"))
	}
	if s.caption && s.frame.Item.Caption != nil {
		lines = append(lines, "", *s.frame.Item.Caption)
	}
	lines = append(lines, "", mutedStyle.Render(fmt.Sprintf("%d / %d", s.frame.Position, s.frame.Total)))
	content := strings.Join(lines, "\n")

	switch s.fit {
	case settings.FitFill:
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(content))
	case settings.FitCover:
		return Box{Content: centered(content, width-4, height-2)}.Render(width, height)
	default:
		// contain keeps a margin around the box
		bw, bh := max(3, width*4/5), max(3, height*4/5)
		box := Box{Content: centered(content, bw-4, bh-2)}.Render(bw, bh)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
	}
}

func centered(content string, width, height int) string {
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
