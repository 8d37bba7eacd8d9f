package locomotion

// Inputs is what the state machine reads each frame.
type Inputs struct {
	Grounded    bool
	Falling     bool
	MoveX       float64
	JumpPressed bool
}

// Next returns the state after one frame. The contact phase runs first, then
// the input phase on whatever state the contact phase produced.
func Next(s State, in Inputs) State {
	return handleInput(update(s, in), in)
}

func update(s State, in Inputs) State {
	switch s {
	case Stationary, Run:
		if !in.Grounded {
			return FallDown
		}
	case JumpUp:
		if in.Falling {
			return FallDown
		}
	case FallDown:
		if in.Grounded {
			return Stationary
		}
	}
	return s
}

func handleInput(s State, in Inputs) State {
	switch s {
	case Stationary:
		if in.JumpPressed {
			return JumpUp
		}
		if in.MoveX != 0 {
			return Run
		}
	case Run:
		if in.JumpPressed {
			return JumpUp
		}
		if in.MoveX == 0 {
			return Stationary
		}
	}
	return s
}
