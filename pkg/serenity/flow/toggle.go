package flow

// Toggle is a boolean state, such as play/pause or dark mode.
type Toggle struct {
	on bool
}

// NewToggle returns a toggle in the given state.
func NewToggle(on bool) Toggle {
	return Toggle{on: on}
}

// On reports the current state.
func (t Toggle) On() bool { return t.on }

// Activate flips the state. The display always changes.
func (t Toggle) Activate() (Toggle, Effect) {
	t.on = !t.on
	return t, Redisplay()
}

// Set moves to on, with no effect if already there.
func (t Toggle) Set(on bool) (Toggle, Effect) {
	if t.on == on {
		return t, None()
	}
	return t.Activate()
}
