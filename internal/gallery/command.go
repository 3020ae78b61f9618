package gallery

// Command is a navigation input. The set is closed: StepForward, StepBackward and
// Updated.
type Command interface {
	command()
}

// StepForward advances the cursor.
type StepForward struct{}

// StepBackward moves the cursor back.
type StepBackward struct{}

// Updated carries the State built for a host update.
type Updated struct {
	State State
}

func (StepForward) command()  {}
func (StepBackward) command() {}
func (Updated) command()      {}

// Dispatch applies cmd to n and returns the next Navigator. Commands are applied
// one at a time by the caller's event loop.
func Dispatch(n Navigator, cmd Command) Navigator {
	switch c := cmd.(type) {
	case StepForward:
		return n.StepForward()
	case StepBackward:
		return n.StepBackward()
	case Updated:
		return n.Reset(c.State)
	default:
		return n
	}
}
