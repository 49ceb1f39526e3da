package field

// State is the mode of a Field.
type State int

const (
	// Plain means the buffer shows a literal value.
	Plain State = iota
	// Editing means the field has focus and the buffer holds a formula.
	Editing
	// Reverting means the last commit held an invalid formula and the buffer
	// was restored to the committed value. The next event leaves this state.
	Reverting
)

func (s State) String() string {
	switch s {
	case Plain:
		return "plain"
	case Editing:
		return "editing"
	case Reverting:
		return "reverting"
	default:
		return "unknown"
	}
}
