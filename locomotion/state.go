package locomotion

// State is a locomotion state of the character.
type State int

const (
	Stationary State = iota
	Run
	JumpUp
	FallDown
)

// Facing is the horizontal direction the character looks.
type Facing int

const (
	FacingNone Facing = iota
	FacingLeft
	FacingRight
	FacingCenter
)

// WeaponState is a visual flag selecting the blaster variant of each animation.
type WeaponState int

const (
	BlasterInactive WeaponState = iota
	BlasterActive
)

type stateInfo struct {
	name             string
	animation        string
	weaponAnimation  string
	caresAboutFacing bool
}

var states = [...]stateInfo{
	Stationary: {name: "stationary", animation: "Idle", weaponAnimation: "Idle_Blaster", caresAboutFacing: true},
	Run:        {name: "run", animation: "Run", weaponAnimation: "Run_Blaster", caresAboutFacing: true},
	JumpUp:     {name: "jump_up", animation: "JumpUp", weaponAnimation: "JumpUp_Blaster", caresAboutFacing: true},
	FallDown:   {name: "fall_down", animation: "FallDown", weaponAnimation: "FallDown_Blaster", caresAboutFacing: true},
}

func (s State) Valid() bool {
	return s >= 0 && int(s) < len(states)
}

func (s State) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return states[s].name
}

// AnimationLabel returns the clip played while in s.
func (s State) AnimationLabel(w WeaponState) string {
	if !s.Valid() {
		return ""
	}
	if w == BlasterActive {
		return states[s].weaponAnimation
	}
	return states[s].animation
}

func (s State) CaresAboutFacing() bool {
	return s.Valid() && states[s].caresAboutFacing
}

// AnimationLabels lists every clip a machine can ask for.
func AnimationLabels() []string {
	labels := make([]string, 0, 2*len(states))
	for _, info := range states {
		labels = append(labels, info.animation, info.weaponAnimation)
	}
	return labels
}

func (f Facing) String() string {
	switch f {
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	case FacingCenter:
		return "center"
	}
	return "none"
}

func (w WeaponState) String() string {
	if w == BlasterActive {
		return "blaster"
	}
	return "unarmed"
}

// FacingFor maps horizontal intent to a facing. Zero intent keeps the current one.
func FacingFor(moveX float64) (Facing, bool) {
	switch {
	case moveX < 0:
		return FacingLeft, true
	case moveX > 0:
		return FacingRight, true
	}
	return FacingNone, false
}
