package combat

// Input is one frame of player intent, already edge-triggered by the shell:
// the boolean fields are true only on the frame the key was pressed, while
// MoveDir and Crouch reflect held state.
type Input struct {
	MoveDir int // -1 left, 0 none, 1 right
	Crouch  bool
	Jump    bool

	LightAttack bool
	HeavyAttack bool
	Parry       bool

	CastDilation  bool
	CastLightning bool
	TapLeft       bool
	TapRight      bool
}
