package game

import (
	"mythduel/internal/combat"
	"mythduel/internal/mathutil"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Control carries shell-level intents that never reach the simulation.
type Control struct {
	Reset      bool
	TogglePerf bool
}

// InputHandler maps the keyboard to one frame of combat input. Movement,
// crouch and jump are held-state; attacks, parry, casts and shell controls
// are edge-triggered so a held key fires once.
type InputHandler struct{}

// NewInputHandler creates the input handler.
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// Poll reads the keyboard for this tick.
//
// A/D or arrows move, S/Down crouches, W/Up/Space jumps. J light attack,
// K heavy attack, L parry. Q time dilation, E lightning. Double-tap A or D
// for the dash. R resets, F3 toggles the perf overlay.
func (h *InputHandler) Poll() (combat.Input, Control) {
	var in combat.Input

	dir := 0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dir--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dir++
	}
	in.MoveDir = mathutil.IntSign(dir)

	in.Crouch = ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	// Jump is polled as held state; the grounded-only check in the player
	// debounces it, and holding the key re-jumps on landing.
	in.Jump = ebiten.IsKeyPressed(ebiten.KeyW) ||
		ebiten.IsKeyPressed(ebiten.KeyArrowUp) ||
		ebiten.IsKeyPressed(ebiten.KeySpace)

	in.LightAttack = inpututil.IsKeyJustPressed(ebiten.KeyJ)
	in.HeavyAttack = inpututil.IsKeyJustPressed(ebiten.KeyK)
	in.Parry = inpututil.IsKeyJustPressed(ebiten.KeyL)

	in.CastDilation = inpututil.IsKeyJustPressed(ebiten.KeyQ)
	in.CastLightning = inpututil.IsKeyJustPressed(ebiten.KeyE)

	in.TapLeft = inpututil.IsKeyJustPressed(ebiten.KeyA) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft)
	in.TapRight = inpututil.IsKeyJustPressed(ebiten.KeyD) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowRight)

	ctl := Control{
		Reset:      inpututil.IsKeyJustPressed(ebiten.KeyR),
		TogglePerf: inpututil.IsKeyJustPressed(ebiten.KeyF3),
	}
	return in, ctl
}
