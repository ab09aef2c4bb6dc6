package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone Action = iota
	ActionFlap        // Space - upward impulse while playing
	ActionPlay        // P - start a run from the menu or the death screen
	ActionQuit        // Q - leave the game from the menu or the death screen
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionPlay:
		return "Play"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Context carries the per-frame input from the host loop into a game tick
// and collects the requests the game makes back to the host.
type Context struct {
	// Action is the most recent action seen since the previous tick.
	Action Action

	// ElapsedMS is the wall-clock time since the previous tick, in milliseconds.
	ElapsedMS float64

	quit bool
}

// NewContext creates a context for a single tick.
func NewContext(action Action, elapsedMS float64) *Context {
	return &Context{
		Action:    action,
		ElapsedMS: elapsedMS,
	}
}

// RequestQuit asks the host loop to exit after this tick.
func (c *Context) RequestQuit() {
	c.quit = true
}

// QuitRequested reports whether the game asked the host to exit.
func (c *Context) QuitRequested() bool {
	return c.quit
}
