package abilities

import (
	"mythduel/internal/config"
	"mythduel/internal/timing"
)

// Strike is one pending or active delayed-area strike. Each strike gets a
// single resolution attempt when its warmup drains, and is removed when its
// lifetime drains regardless of whether it connected.
type Strike struct {
	centerX  float64
	centerY  float64
	radius   float64
	lifetime timing.Countdown
	warmup   timing.Countdown
	applied  bool
}

// CenterX returns the strike's horizontal center.
func (s *Strike) CenterX() float64 { return s.centerX }

// CenterY returns the strike's vertical center.
func (s *Strike) CenterY() float64 { return s.centerY }

// Radius returns the strike's area radius.
func (s *Strike) Radius() float64 { return s.radius }

// Warming reports whether the strike is still in its warmup delay.
func (s *Strike) Warming() bool { return s.warmup.Active() }

// Applied reports whether the strike's single resolution attempt happened.
func (s *Strike) Applied() bool { return s.applied }

// MarkApplied consumes the strike's resolution attempt. The director calls
// this whether or not the target was in range.
func (s *Strike) MarkApplied() { s.applied = true }

// Within reports whether the point lies inside the strike radius.
func (s *Strike) Within(x, y float64) bool {
	dx := x - s.centerX
	dy := y - s.centerY
	return dx*dx+dy*dy <= s.radius*s.radius
}

// LifeFraction returns the remaining lifetime share for the renderer.
func (s *Strike) LifeFraction(total float64) float64 {
	return s.lifetime.Fraction(total)
}

// Lightning manages the delayed-area strike ability: a cooldown gate plus a
// collection of independent strike instances.
type Lightning struct {
	cfg      config.LightningConfig
	strikes  []*Strike
	cooldown timing.Countdown
}

// NewLightning creates the ability with no pending strikes.
func NewLightning(cfg config.LightningConfig) *Lightning {
	return &Lightning{cfg: cfg}
}

// CanCast reports whether the cooldown allows a new strike.
func (l *Lightning) CanCast() bool {
	return !l.cooldown.Active()
}

// Cast enqueues a strike centered on the given point and starts the
// cooldown.
func (l *Lightning) Cast(centerX, centerY float64) *Strike {
	s := &Strike{
		centerX: centerX,
		centerY: centerY,
		radius:  l.cfg.Radius,
	}
	s.lifetime.Set(l.cfg.Lifetime)
	s.warmup.Set(l.cfg.Warmup)
	l.strikes = append(l.strikes, s)
	l.cooldown.Set(l.cfg.Cooldown)
	return s
}

// Tick advances the cooldown and every strike by simulation dt. It returns
// the strikes whose warmup has drained and whose resolution attempt has not
// been consumed yet; expired strikes are dropped.
func (l *Lightning) Tick(dt float64) []*Strike {
	l.cooldown.Tick(dt)

	var ready []*Strike
	alive := l.strikes[:0]
	for _, s := range l.strikes {
		s.warmup.Tick(dt)
		s.lifetime.Tick(dt)
		if !s.warmup.Active() && !s.applied {
			ready = append(ready, s)
		}
		if s.lifetime.Active() {
			alive = append(alive, s)
		}
	}
	l.strikes = alive
	return ready
}

// Strikes exposes the live strikes for the renderer.
func (l *Lightning) Strikes() []*Strike { return l.strikes }

// MythCost returns the cast cost.
func (l *Lightning) MythCost() float64 { return l.cfg.MythCost }

// Damage returns the base strike damage before combo scaling.
func (l *Lightning) Damage() float64 { return l.cfg.Damage }

// Stun returns the forced stun duration on a connecting strike.
func (l *Lightning) Stun() float64 { return l.cfg.Stun }

// Knockback returns the strike knockback magnitude.
func (l *Lightning) Knockback() float64 { return l.cfg.Knockback }

// Lifetime returns the configured strike lifetime, for renderer decay.
func (l *Lightning) Lifetime() float64 { return l.cfg.Lifetime }

// CooldownFraction returns the remaining cooldown share for the HUD.
func (l *Lightning) CooldownFraction() float64 {
	return l.cooldown.Fraction(l.cfg.Cooldown)
}
