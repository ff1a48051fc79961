package combat

import "mythduel/internal/collision"

// PlayerView is the read-only player state the presentation layer draws.
type PlayerView struct {
	Box            collision.Box
	Facing         int
	Action         string
	Crouching      bool
	Invulnerable   bool
	HealthFraction float64
	Health         float64
	MaxHealth      float64

	StaminaFraction float64
	MythFraction    float64

	ParryOpen     bool
	ParryFraction float64

	HitFlash   float64
	ParryFlash float64
	CastFlash  float64
}

// EnemyView is the read-only enemy state the presentation layer draws.
type EnemyView struct {
	Box            collision.Box
	Facing         int
	Action         string
	State          string
	HealthFraction float64
	HitFlash       float64

	AttackBox    collision.Box
	AttackActive bool
}

// StrikeView is one pending or fading delayed-area strike.
type StrikeView struct {
	CenterX float64
	CenterY float64
	Radius  float64
	Warming bool
	Life    float64
}

// TrailView is one fading attack-hitbox afterimage.
type TrailView struct {
	Box   collision.Box
	Heavy bool
	Life  float64
}

// AbilityView holds the HUD cooldown state for the three abilities.
type AbilityView struct {
	DilationActive    bool
	DilationCooldown  float64
	LightningCooldown float64
	VoidShiftCooldown float64
}

// Snapshot is the complete frame description handed to the presentation
// layer. It is a value copy; holding one across frames shows stale state,
// never corrupts the simulation.
type Snapshot struct {
	Mode    Mode
	Elapsed float64

	Player PlayerView
	Enemy  EnemyView

	Combo    int
	MaxCombo int

	FeedbackText string
	FeedbackLife float64

	ShakeMagnitude float64

	Abilities AbilityView
	Strikes   []StrikeView
	Trails    []TrailView
}

// Snapshot captures the current frame for drawing.
func (d *Director) Snapshot() Snapshot {
	p := d.player
	e := d.foe

	snap := Snapshot{
		Mode:    d.mode,
		Elapsed: d.elapsed,
		Player: PlayerView{
			Box:             p.Box(),
			Facing:          p.Facing(),
			Action:          p.Action().String(),
			Crouching:       p.Crouching(),
			Invulnerable:    p.Invulnerable(),
			HealthFraction:  safeFraction(p.Health(), p.MaxHealth()),
			Health:          p.Health(),
			MaxHealth:       p.MaxHealth(),
			StaminaFraction: p.StaminaFraction(),
			MythFraction:    p.MythFraction(),
			ParryOpen:       p.ParryOpen(),
			ParryFraction:   p.ParryWindowFraction(),
			HitFlash:        p.HitFlash(),
			ParryFlash:      p.ParryFlash(),
			CastFlash:       p.CastFlash(),
		},
		Enemy: EnemyView{
			Box:            e.Box(),
			Facing:         e.Facing(),
			Action:         e.Action(),
			State:          e.State().String(),
			HealthFraction: e.HealthFraction(),
			HitFlash:       e.HitFlash(),
		},
		Combo:    d.combo,
		MaxCombo: d.maxCombo,
		Abilities: AbilityView{
			DilationActive:    d.dilation.Active(),
			DilationCooldown:  d.dilation.CooldownFraction(),
			LightningCooldown: d.lightning.CooldownFraction(),
			VoidShiftCooldown: d.voidShift.CooldownFraction(),
		},
	}

	if box, ok := e.AttackHitbox(); ok {
		snap.Enemy.AttackBox = box
		snap.Enemy.AttackActive = true
	}

	if d.feedbackTimer.Active() {
		snap.FeedbackText = d.feedbackText
		snap.FeedbackLife = d.feedbackTimer.Fraction(d.cfg.Effects.FeedbackDuration)
	}
	if d.shakeTimer.Active() {
		snap.ShakeMagnitude = d.shakeMagnitude * d.shakeTimer.Fraction(d.cfg.Effects.ShakeDuration)
	}

	for _, s := range d.lightning.Strikes() {
		snap.Strikes = append(snap.Strikes, StrikeView{
			CenterX: s.CenterX(),
			CenterY: s.CenterY(),
			Radius:  s.Radius(),
			Warming: s.Warming(),
			Life:    s.LifeFraction(d.lightning.Lifetime()),
		})
	}
	for i := range d.trails {
		snap.Trails = append(snap.Trails, TrailView{
			Box:   d.trails[i].box,
			Heavy: d.trails[i].heavy,
			Life:  d.trails[i].life.Fraction(d.cfg.Effects.TrailLife),
		})
	}
	return snap
}

func safeFraction(current, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return current / max
}
