package gallery

// NoSelection is the cursor value while the gallery is empty.
const NoSelection = -1

// Navigator is a cursor over the current State. The zero value is not ready for use;
// start from NewNavigator.
type Navigator struct {
	state  State
	cursor int
}

// NewNavigator returns a Navigator in the Empty state.
func NewNavigator() Navigator {
	return Navigator{cursor: NoSelection}
}

// Reset installs a freshly transformed State and clamps the cursor into it. A
// position that is still in range is kept; one past the end moves to the last item.
func (n Navigator) Reset(s State) Navigator {
	n.state = s
	switch {
	case s.Len() == 0:
		n.cursor = NoSelection
	case n.cursor < 0:
		n.cursor = 0
	case n.cursor > s.Len()-1:
		n.cursor = s.Len() - 1
	}
	return n
}

// StepForward moves to the next item, stopping at the last.
func (n Navigator) StepForward() Navigator {
	if n.cursor >= 0 && n.cursor < n.state.Len()-1 {
		n.cursor++
	}
	return n
}

// StepBackward moves to the previous item, stopping at the first.
func (n Navigator) StepBackward() Navigator {
	if n.cursor > 0 {
		n.cursor--
	}
	return n
}

// Cursor returns the current index, or NoSelection.
func (n Navigator) Cursor() int { return n.cursor }

// Len returns the size of the installed State.
func (n Navigator) Len() int { return n.state.Len() }

// Empty reports whether there is nothing to show.
func (n Navigator) Empty() bool { return n.state.Len() == 0 }

// State returns the installed item list.
func (n Navigator) State() State { return n.state }

// Current returns the item under the cursor.
func (n Navigator) Current() (DisplayItem, bool) {
	if n.Empty() {
		return DisplayItem{}, false
	}
	return n.state.Items[n.cursor], true
}

// IsAtStart reports whether the backward affordance should be hidden. It is true
// for an empty gallery.
func (n Navigator) IsAtStart() bool {
	return n.Empty() || n.cursor == 0
}

// IsAtEnd reports whether the forward affordance should be hidden. It is true for
// an empty gallery.
func (n Navigator) IsAtEnd() bool {
	return n.Empty() || n.cursor == n.state.Len()-1
}
