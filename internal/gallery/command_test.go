package gallery

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatchMatchesMethods(t *testing.T) {
	t.Parallel()

	s4 := stateOf(t, 4)
	s2 := stateOf(t, 2)

	cmds := []Command{
		Updated{State: s4},
		StepForward{},
		StepForward{},
		StepForward{},
		StepForward{},
		StepBackward{},
		Updated{State: s2},
		StepBackward{},
		StepBackward{},
		Updated{State: State{}},
	}
	want := []int{0, 1, 2, 3, 3, 2, 1, 0, 0, NoSelection}

	nav := NewNavigator()
	for i, cmd := range cmds {
		nav = Dispatch(nav, cmd)
		require.Equal(t, want[i], nav.Cursor(), "step %d (%T)", i, cmd)
	}
}

func TestDispatchUpdatedEqualsReset(t *testing.T) {
	t.Parallel()

	s := stateOf(t, 3)
	nav := positioned(t, 5, 4)
	require.Equal(t, nav.Reset(s), Dispatch(nav, Updated{State: s}))
}
