package gallery

// Viewport is the paintable area in cells. The gallery passes it through untouched.
type Viewport struct {
	Width  int
	Height int
}

// Frame is everything a renderer needs to paint one view of the gallery.
type Frame struct {
	Item     *DisplayItem
	AtStart  bool
	AtEnd    bool
	Position int // 1-based, 0 when empty
	Total    int
	Viewport Viewport
}

// Frame snapshots the navigator for rendering.
func (n Navigator) Frame(vp Viewport) Frame {
	f := Frame{
		AtStart:  n.IsAtStart(),
		AtEnd:    n.IsAtEnd(),
		Total:    n.Len(),
		Viewport: vp,
	}
	if item, ok := n.Current(); ok {
		f.Item = &item
		f.Position = n.cursor + 1
	}
	return f
}
