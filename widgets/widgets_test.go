package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/jask/jaskgallery/internal/gallery"
	"github.com/jask/jaskgallery/internal/settings"
)

func strp(s string) *string { return &s }

func frame(url *string, pos, total int) gallery.Frame {
	return gallery.Frame{
		Item:     &gallery.DisplayItem{URL: url, Caption: strp("Sunset")},
		AtStart:  pos == 1,
		AtEnd:    pos == total,
		Position: pos,
		Total:    total,
	}
}

func render(w Widget, width, height int) string {
	return ansi.Strip(w.Render(width, height))
}

func TestGalleryArrowsFollowBounds(t *testing.T) {
	t.Parallel()

	s := settings.Default()
	cases := []struct {
		pos, total  int
		left, right bool
	}{
		{1, 3, false, true},
		{2, 3, true, true},
		{3, 3, true, false},
		{1, 1, false, false},
	}
	for _, tc := range cases {
		out := render(Gallery{Frame: frame(strp("a.png"), tc.pos, tc.total), Settings: s}, 60, 12)
		require.Equal(t, tc.left, strings.Contains(out, "<"), "pos %d/%d", tc.pos, tc.total)
		require.Equal(t, tc.right, strings.Contains(out, ">"), "pos %d/%d", tc.pos, tc.total)
	}
}

func TestGalleryArrowsSwitchedOff(t *testing.T) {
	t.Parallel()

	s := settings.Default()
	s.Arrows.Show = false
	out := render(Gallery{Frame: frame(strp("a.png"), 2, 3), Settings: s}, 60, 12)
	require.NotContains(t, out, "<")
	require.NotContains(t, out, ">")
}

func TestGallerySlotContent(t *testing.T) {
	t.Parallel()

	for _, fit := range settings.Fits {
		s := settings.Default()
		s.Image.Fit = fit
		out := render(Gallery{Frame: frame(strp("a.png"), 2, 3), Settings: s}, 60, 12)
		require.Contains(t, out, "a.png", string(fit))
		require.Contains(t, out, "Sunset", string(fit))
		require.Contains(t, out, "2 / 3", string(fit))
	}

	s := settings.Default()
	s.Image.ShowCaption = false
	out := render(Gallery{Frame: frame(nil, 1, 1), Settings: s}, 60, 12)
	require.Contains(t, out, "no image")
	require.NotContains(t, out, "Sunset")
}

func TestGalleryEmptyFrame(t *testing.T) {
	t.Parallel()

	f := gallery.NewNavigator().Frame(gallery.Viewport{Width: 40, Height: 10})
	out := render(Gallery{Frame: f, Settings: settings.Default()}, 40, 10)
	require.Contains(t, out, "No images")
	require.NotContains(t, out, "<")
	require.NotContains(t, out, ">")
}

func TestHStackFixedWidths(t *testing.T) {
	t.Parallel()

	h := HStack{Widgets: []Widget{Text("a"), Text("b"), Text("c")}, Fixed: []int{3, 0, 3}}
	require.Equal(t, []int{3, 14, 3}, h.widths(20))

	out := h.Render(20, 1)
	require.Equal(t, 20, ansi.StringWidth(out))
}

func TestListMarksCursor(t *testing.T) {
	t.Parallel()

	out := List{Title: "Settings", Items: []string{"one", "two"}, Cursor: 1}.Render(20, 5)
	lines := strings.Split(out, "\n")
	require.Equal(t, "Settings", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "  one"))
	require.True(t, strings.HasPrefix(lines[2], "> two"))
}

func TestVStackFixedHeights(t *testing.T) {
	t.Parallel()

	v := VStack{Widgets: []Widget{Text("head"), Text("body\nmore"), Text("foot")}, Fixed: []int{1, 0, 1}}
	out := v.Render(10, 6)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6)
	require.Equal(t, "head", strings.TrimSpace(lines[0]))
	require.Equal(t, "body", strings.TrimSpace(lines[1]))
	require.Equal(t, "more", strings.TrimSpace(lines[2]))
	require.Equal(t, "", strings.TrimSpace(lines[4]))
	require.Equal(t, "foot", strings.TrimSpace(lines[5]))
}

func TestAllotSharesRatiosAfterFixed(t *testing.T) {
	t.Parallel()

	require.Equal(t, []int{2, 6, 2}, allot(10, 3, []int{2, 0, 0}, []float64{0, 3, 1}))
	require.Equal(t, []int{5, 5}, allot(10, 2, nil, nil))
}

func dots(width, height int) Text {
	return Text(strings.TrimSuffix(strings.Repeat(strings.Repeat(".", width)+"\n", height), "\n"))
}

func TestPopupCentresSizedCard(t *testing.T) {
	t.Parallel()

	out := Popup{Base: dots(30, 10), Content: Text("hi"), Width: 6, Height: 1}.Render(30, 10)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 10)
	for _, l := range lines {
		require.Equal(t, 30, ansi.StringWidth(l))
	}
	// card is 12 wide and 5 tall: border, padding, one content line
	require.Equal(t, strings.Repeat(".", 30), ansi.Strip(lines[0]))
	require.Equal(t, strings.Repeat(".", 9)+"╭"+strings.Repeat("─", 10)+"╮"+strings.Repeat(".", 9), ansi.Strip(lines[2]))
	require.Contains(t, ansi.Strip(lines[4]), "hi")
	require.True(t, strings.HasPrefix(ansi.Strip(lines[4]), "........."))
	require.Equal(t, strings.Repeat(".", 30), ansi.Strip(lines[7]))
}

func TestPopupShrinksToCanvas(t *testing.T) {
	t.Parallel()

	out := Popup{Base: dots(12, 6), Content: Text("a long settings line"), Width: 40, Height: 20}.Render(12, 6)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6)
	for _, l := range lines {
		require.Equal(t, 12, ansi.StringWidth(l))
	}
	require.Contains(t, ansi.Strip(out), "╭")
}
