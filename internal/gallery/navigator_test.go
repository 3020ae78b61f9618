package gallery

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/jaskgallery/internal/selection"
)

func stateOf(t *testing.T, n int) State {
	t.Helper()
	cells := make([]any, n)
	for i := range cells {
		cells[i] = string(rune('a'+i)) + ".png"
	}
	s, err := Build(imageView(true, cells...), selection.NewIssuer())
	require.NoError(t, err)
	return s
}

// positioned returns a navigator over n items with the cursor at c.
func positioned(t *testing.T, n, c int) Navigator {
	t.Helper()
	nav := NewNavigator().Reset(stateOf(t, n))
	for i := 0; i < c; i++ {
		nav = nav.StepForward()
	}
	require.Equal(t, c, nav.Cursor())
	return nav
}

func TestNewNavigatorIsEmpty(t *testing.T) {
	t.Parallel()

	nav := NewNavigator()
	require.True(t, nav.Empty())
	require.Equal(t, NoSelection, nav.Cursor())
	_, ok := nav.Current()
	require.False(t, ok)
}

func TestFirstResetPositionsAtStart(t *testing.T) {
	t.Parallel()

	nav := NewNavigator().Reset(stateOf(t, 3))
	require.Equal(t, 0, nav.Cursor())
	require.True(t, nav.IsAtStart())
	require.False(t, nav.IsAtEnd())
	item, ok := nav.Current()
	require.True(t, ok)
	require.Equal(t, "a.png", *item.URL)
}

func TestResetShrinkClampsToLast(t *testing.T) {
	t.Parallel()

	nav := positioned(t, 3, 2).Reset(stateOf(t, 1))
	require.Equal(t, 0, nav.Cursor())
	require.True(t, nav.IsAtStart())
	require.True(t, nav.IsAtEnd())
}

func TestResetToEmpty(t *testing.T) {
	t.Parallel()

	nav := positioned(t, 3, 1).Reset(State{})
	require.True(t, nav.Empty())
	require.Equal(t, NoSelection, nav.Cursor())
	_, ok := nav.Current()
	require.False(t, ok)
	require.True(t, nav.IsAtStart())
	require.True(t, nav.IsAtEnd())

	// stepping in Empty is a no-op
	require.Equal(t, NoSelection, nav.StepForward().Cursor())
	require.Equal(t, NoSelection, nav.StepBackward().Cursor())
}

func TestResetClampProperty(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 6; n++ {
		for c := 0; c < n; c++ {
			for m := 0; m <= 6; m++ {
				nav := positioned(t, n, c).Reset(stateOf(t, m))
				if m == 0 {
					require.True(t, nav.Empty())
					continue
				}
				want := c
				if c > m-1 {
					want = m - 1
				}
				require.Equal(t, want, nav.Cursor(), "n=%d c=%d m=%d", n, c, m)
			}
		}
	}
}

func TestResetPreservesInRangePosition(t *testing.T) {
	t.Parallel()

	nav := positioned(t, 5, 3).Reset(stateOf(t, 8))
	require.Equal(t, 3, nav.Cursor())
}

func TestForwardSaturates(t *testing.T) {
	t.Parallel()

	nav := NewNavigator().Reset(stateOf(t, 4))
	for i := 0; i < 10; i++ {
		nav = nav.StepForward()
	}
	require.Equal(t, 3, nav.Cursor())
	require.True(t, nav.IsAtEnd())
	require.False(t, nav.IsAtStart())
}

func TestBackwardAtStartIsNoop(t *testing.T) {
	t.Parallel()

	nav := NewNavigator().Reset(stateOf(t, 4)).StepBackward()
	require.Equal(t, 0, nav.Cursor())
}

func TestStepRoundTrip(t *testing.T) {
	t.Parallel()

	for c := 1; c < 4; c++ {
		nav := positioned(t, 5, c)
		require.Equal(t, c, nav.StepForward().StepBackward().Cursor())
	}
}

func TestNavigatorIsAValue(t *testing.T) {
	t.Parallel()

	before := NewNavigator().Reset(stateOf(t, 3))
	after := before.StepForward()
	require.Equal(t, 0, before.Cursor())
	require.Equal(t, 1, after.Cursor())
}

func TestFrame(t *testing.T) {
	t.Parallel()

	vp := Viewport{Width: 80, Height: 24}
	f := positioned(t, 3, 1).Frame(vp)
	require.NotNil(t, f.Item)
	require.Equal(t, "b.png", *f.Item.URL)
	require.Equal(t, 2, f.Position)
	require.Equal(t, 3, f.Total)
	require.False(t, f.AtStart)
	require.False(t, f.AtEnd)
	require.Equal(t, vp, f.Viewport)

	empty := NewNavigator().Frame(vp)
	require.Nil(t, empty.Item)
	require.Equal(t, 0, empty.Position)
	require.True(t, empty.AtStart)
	require.True(t, empty.AtEnd)
}
