package abilities

import (
	"mythduel/internal/config"
	"mythduel/internal/timing"
)

// TimeDilation slows the enemy's side of the simulation while active. The
// cooldown starts at activation and runs independently of the active
// duration.
type TimeDilation struct {
	cfg      config.TimeDilationConfig
	active   timing.Countdown
	cooldown timing.Countdown
}

// NewTimeDilation creates the ability in its ready state.
func NewTimeDilation(cfg config.TimeDilationConfig) *TimeDilation {
	return &TimeDilation{cfg: cfg}
}

// CanCast reports whether the ability is neither active nor cooling down.
// The myth cost is checked by the caller, spend-then-act.
func (t *TimeDilation) CanCast() bool {
	return !t.active.Active() && !t.cooldown.Active()
}

// Start activates the dilation and begins the cooldown.
func (t *TimeDilation) Start() {
	t.active.Set(t.cfg.Duration)
	t.cooldown.Set(t.cfg.Cooldown)
}

// Tick advances the ability's timers by simulation dt. Deactivation is
// automatic when the active timer drains.
func (t *TimeDilation) Tick(dt float64) {
	t.active.Tick(dt)
	t.cooldown.Tick(dt)
}

// Active reports whether the slow effect is in force.
func (t *TimeDilation) Active() bool { return t.active.Active() }

// Factor returns the multiplier for enemy-side dt: the slow factor while
// active, otherwise 1.
func (t *TimeDilation) Factor() float64 {
	if t.active.Active() {
		return t.cfg.SlowFactor
	}
	return 1
}

// MythCost returns the activation cost.
func (t *TimeDilation) MythCost() float64 { return t.cfg.MythCost }

// CooldownFraction returns the remaining cooldown share for the HUD.
func (t *TimeDilation) CooldownFraction() float64 {
	return t.cooldown.Fraction(t.cfg.Cooldown)
}
