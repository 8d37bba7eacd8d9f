package locomotion

// Animator plays clips by label and flips the sprite.
type Animator interface {
	Play(label string)
	PlayFromCurrentFrame(label string)
	FaceLeft()
	FaceRight()
}

// Machine applies transitions to a single character. It owns the active state,
// the facing and the weapon flag, and tells the Animator what to show.
type Machine struct {
	state   State
	facing  Facing
	weapon  WeaponState
	entered bool
	label   string

	anim    Animator
	onEnter func(State)

	// Logf, when set, receives one line per state change.
	Logf func(format string, args ...any)
}

// NewMachine returns a machine in Stationary. onEnter runs on every state
// change before the animation starts; it may be nil.
func NewMachine(anim Animator, onEnter func(State)) *Machine {
	m := &Machine{anim: anim, onEnter: onEnter}
	m.EnterState(Stationary)
	return m
}

func (m *Machine) State() State {
	return m.state
}

func (m *Machine) Facing() Facing {
	return m.facing
}

func (m *Machine) Weapon() WeaponState {
	return m.weapon
}

// AnimationLabel is the clip last requested from the animator.
func (m *Machine) AnimationLabel() string {
	return m.label
}

// EnterState switches to s and plays its clip. It returns false, doing
// nothing, when s is already active.
func (m *Machine) EnterState(s State) bool {
	if m.entered && s == m.state {
		return false
	}
	prev := m.state
	m.state = s
	m.entered = true

	if m.onEnter != nil {
		m.onEnter(s)
	}
	m.label = s.AnimationLabel(m.weapon)
	if m.anim != nil && m.label != "" {
		m.anim.Play(m.label)
	}
	if m.Logf != nil {
		m.Logf("locomotion: %s -> %s", prev, s)
	}
	return true
}

// EnterFacing turns the sprite. It returns false when f is already active.
func (m *Machine) EnterFacing(f Facing) bool {
	if f == m.facing {
		return false
	}
	m.facing = f
	if m.anim == nil {
		return true
	}
	switch f {
	case FacingLeft:
		m.anim.FaceLeft()
	case FacingRight:
		m.anim.FaceRight()
	}
	return true
}

// ContinueOrEnter is a no-op when both s and f are active, otherwise it enters
// whichever of them differs.
func (m *Machine) ContinueOrEnter(s State, f Facing) bool {
	if m.entered && s == m.state && f == m.facing {
		return false
	}
	m.EnterFacing(f)
	m.EnterState(s)
	return true
}

// SetWeapon changes the weapon flag. A change re-labels the current state and
// keeps the animation on its current frame.
func (m *Machine) SetWeapon(w WeaponState) bool {
	if w == m.weapon {
		return false
	}
	m.weapon = w
	m.CorrectWeaponState()
	return true
}

// CorrectWeaponState swaps the playing clip for the variant matching the weapon flag.
func (m *Machine) CorrectWeaponState() {
	m.label = m.state.AnimationLabel(m.weapon)
	if m.anim != nil && m.label != "" {
		m.anim.PlayFromCurrentFrame(m.label)
	}
}

// Step runs one frame: the contact phase, then facing and the input phase.
func (m *Machine) Step(in Inputs) State {
	m.EnterState(update(m.state, in))

	facing := m.facing
	if m.state.CaresAboutFacing() {
		if f, ok := FacingFor(in.MoveX); ok {
			facing = f
		}
	}

	m.ContinueOrEnter(handleInput(m.state, in), facing)
	return m.state
}
