package abilities

import (
	"mythduel/internal/config"
	"mythduel/internal/timing"
)

// farPast is the sentinel press time: far enough back that no real tap can
// ever pair with it.
const farPast = -1e9

// VoidShift is the double-tap dash. It tracks the time of the last
// directional tap per direction; a second tap inside the window consumes
// both and fires, after which the sentinel guarantees a third tap starts a
// fresh window.
type VoidShift struct {
	cfg      config.VoidShiftConfig
	cooldown timing.Countdown

	clock     float64
	lastLeft  float64
	lastRight float64
}

// NewVoidShift creates the ability with no taps recorded.
func NewVoidShift(cfg config.VoidShiftConfig) *VoidShift {
	return &VoidShift{
		cfg:       cfg,
		lastLeft:  farPast,
		lastRight: farPast,
	}
}

// Tick advances the internal clock and cooldown by simulation dt.
func (v *VoidShift) Tick(dt float64) {
	if dt > 0 {
		v.clock += dt
	}
	v.cooldown.Tick(dt)
}

// RegisterTap records a directional tap and reports whether it completed a
// double-tap. Both presses are consumed on completion, whether or not the
// dash ends up firing.
func (v *VoidShift) RegisterTap(direction int) bool {
	var last *float64
	switch {
	case direction < 0:
		last = &v.lastLeft
	case direction > 0:
		last = &v.lastRight
	default:
		return false
	}

	if v.clock-*last <= v.cfg.TapWindow {
		*last = farPast
		return true
	}
	*last = v.clock
	return false
}

// CanFire reports whether the dash cooldown allows firing. The myth cost is
// checked by the caller, spend-then-act.
func (v *VoidShift) CanFire() bool {
	return !v.cooldown.Active()
}

// StartCooldown begins the dash cooldown after a successful fire.
func (v *VoidShift) StartCooldown() {
	v.cooldown.Set(v.cfg.Cooldown)
}

// MythCost returns the dash cost.
func (v *VoidShift) MythCost() float64 { return v.cfg.MythCost }

// CooldownFraction returns the remaining cooldown share for the HUD.
func (v *VoidShift) CooldownFraction() float64 {
	return v.cooldown.Fraction(v.cfg.Cooldown)
}
