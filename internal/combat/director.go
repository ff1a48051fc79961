package combat

import (
	"mythduel/internal/abilities"
	"mythduel/internal/actor"
	"mythduel/internal/adaptive"
	"mythduel/internal/attack"
	"mythduel/internal/collision"
	"mythduel/internal/config"
	"mythduel/internal/enemy"
	"mythduel/internal/timing"
)

// Mode is the overall game mode. Victory and Defeat are terminal; updates
// become no-ops until Reset.
type Mode int

const (
	ModeRunning Mode = iota
	ModeVictory
	ModeDefeat
)

// String returns the string representation of a mode.
func (m Mode) String() string {
	switch m {
	case ModeRunning:
		return "running"
	case ModeVictory:
		return "victory"
	case ModeDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Trail is a fading copy of a recent attack hitbox, spawned for the
// presentation layer while a swing's hitbox is live.
type Trail struct {
	box   collision.Box
	heavy bool
	life  timing.Countdown
}

// Director owns both actors and runs the per-frame combat resolution. It is
// the single owner of all simulation state: nothing outside mutates the
// actors, and the presentation layer sees only the Snapshot.
type Director struct {
	cfg      *config.Config
	profiles attack.Table

	player *actor.Player
	foe    *enemy.Enemy
	model  *adaptive.Model

	dilation  *abilities.TimeDilation
	lightning *abilities.Lightning
	voidShift *abilities.VoidShift

	combo      int
	maxCombo   int
	comboTimer timing.Countdown

	hitStop timing.Countdown

	shakeTimer     timing.Countdown
	shakeMagnitude float64

	feedbackText  string
	feedbackTimer timing.Countdown

	trails     []Trail
	trailTimer timing.Countdown

	mode    Mode
	elapsed float64

	events []Event
}

// NewDirector builds a fresh simulation from configuration: both actors at
// full health and resources, enemy patrolling, mode Running.
func NewDirector(cfg *config.Config) *Director {
	profiles := attack.TableFromConfig(cfg)
	return &Director{
		cfg:       cfg,
		profiles:  profiles,
		player:    actor.NewPlayer(cfg, profiles),
		foe:       enemy.NewEnemy(cfg),
		model:     adaptive.NewModel(cfg.Adaptive),
		dilation:  abilities.NewTimeDilation(cfg.Abilities.TimeDilation),
		lightning: abilities.NewLightning(cfg.Abilities.Lightning),
		voidShift: abilities.NewVoidShift(cfg.Abilities.VoidShift),
	}
}

// Reset reinitializes every entity to its constructor defaults. Nothing
// carries over; the simulation is entirely in-memory and ephemeral.
func (d *Director) Reset() {
	*d = *NewDirector(d.cfg)
}

// Update advances the simulation by one frame. The order is load-bearing:
// input, hit-stop gating, actor updates (enemy dt scaled by time dilation),
// effect bookkeeping, player-to-enemy hit resolution, enemy-to-player hit
// resolution, then terminal-state evaluation.
func (d *Director) Update(dt float64, in Input) {
	if d.mode != ModeRunning || dt < 0 {
		return
	}
	d.elapsed += dt

	// 1. Apply input intent to the player.
	d.player.HandleMovement(in.MoveDir, in.Crouch, in.Jump)
	d.handleTriggers(in)

	// 2. Hit-stop freezes simulation time, not feedback time.
	simDT := dt
	if d.hitStop.Active() {
		simDT = 0
	}
	d.hitStop.Tick(dt)

	// 3. Update both actors. The enemy side additionally slows under time
	// dilation.
	enemyDT := simDT * d.dilation.Factor()
	d.player.Update(simDT)
	d.foe.SetBiases(d.model.SpeedBias(), d.model.WindupBias())
	d.foe.Update(enemyDT, d.player.Box().CenterX())

	// 4. Bookkeeping: flashes at real dt, ability/combo/model timers at
	// simulation dt, strikes resolved at warmup expiry.
	d.player.TickEffects(dt)
	d.foe.TickEffects(dt)
	d.dilation.Tick(simDT)
	d.voidShift.Tick(simDT)
	d.model.Tick(simDT)
	if d.comboTimer.Tick(simDT) {
		d.combo = 0
	}
	d.feedbackTimer.Tick(dt)
	d.shakeTimer.Tick(dt)
	d.updateTrails(dt)
	for _, s := range d.lightning.Tick(simDT) {
		d.resolveStrike(s)
	}

	// 5. Player attack vs enemy.
	d.resolvePlayerHit()

	// 6. Enemy attack vs player.
	d.resolveEnemyHit()

	if f := d.player.ConsumeFeedback(); f == actor.FeedbackParrySuccess {
		d.setFeedback("PARRY!")
	} else if f == actor.FeedbackParryMiss {
		d.setFeedback("MISS")
	}

	// 7. Terminal evaluation. Enemy death is checked first: the player's
	// hit resolves earlier in the frame, so a frame in which both actors
	// reach zero counts as a Victory.
	if d.foe.Health() <= 0 {
		d.mode = ModeVictory
		d.emit(EventVictory)
	} else if d.player.Health() <= 0 {
		d.mode = ModeDefeat
		d.emit(EventDefeat)
	}
}

func (d *Director) handleTriggers(in Input) {
	if in.LightAttack {
		d.player.TriggerAttack(attack.Light)
	}
	if in.HeavyAttack {
		d.player.TriggerAttack(attack.Heavy)
	}
	if in.Parry && d.player.TriggerParry() {
		d.model.Observe(adaptive.ActionParry)
	}

	if in.CastDilation && d.dilation.CanCast() && d.player.SpendMyth(d.dilation.MythCost()) {
		d.dilation.Start()
		d.player.StartCastFlash()
		d.emit(EventCastDilation)
	}
	if in.CastLightning && d.lightning.CanCast() && d.player.SpendMyth(d.lightning.MythCost()) {
		foeBox := d.foe.Box()
		d.lightning.Cast(foeBox.CenterX(), foeBox.CenterY())
		d.player.StartCastFlash()
		d.emit(EventCastLightning)
	}
	if in.TapLeft {
		d.fireDash(-1)
	}
	if in.TapRight {
		d.fireDash(1)
	}
}

func (d *Director) fireDash(direction int) {
	if !d.voidShift.RegisterTap(direction) {
		return
	}
	if !d.voidShift.CanFire() || !d.player.SpendMyth(d.voidShift.MythCost()) {
		return
	}
	d.voidShift.StartCooldown()
	d.player.Dash(direction)
	d.emit(EventCastVoidShift)
}

// comboMultiplier is the damage scale from the current combo count, with a
// flat bonus while time dilation is active.
func (d *Director) comboMultiplier() float64 {
	mult := 1 + d.cfg.Combo.ScalePerHit*float64(d.combo)
	if d.dilation.Active() {
		mult += d.cfg.Combo.DilationBonus
	}
	return mult
}

func (d *Director) resolvePlayerHit() {
	hitbox, ok := d.player.AttackHitbox()
	if !ok {
		return
	}
	swing := d.player.Swing()
	if swing == nil || swing.Connected() || !hitbox.Overlaps(d.foe.Box()) {
		return
	}

	profile := swing.Profile()
	base := profile.Damage
	knockback := profile.Knockback
	if d.foe.State() == enemy.StateStunned {
		base += d.cfg.Enemy.PunishBonus
		knockback *= d.cfg.Enemy.PunishKnockback
	}

	d.foe.ApplyHit(base*d.comboMultiplier(), knockback, d.player.Facing())
	swing.MarkConnected()

	d.player.GainMyth(d.cfg.Combo.MythBase + d.cfg.Combo.MythPerCombo*float64(d.combo))
	d.combo++
	if d.combo > d.maxCombo {
		d.maxCombo = d.combo
	}
	window := d.cfg.Combo.ResetWindow
	heavy := profile.Kind == attack.Heavy
	if heavy {
		window += d.cfg.Combo.HeavyExtension
	}
	d.comboTimer.Set(window)

	d.triggerHitEffects(heavy)
	d.emit(EventHit)

	if heavy {
		d.model.Observe(adaptive.ActionHeavy)
	} else {
		d.model.Observe(adaptive.ActionLight)
	}
}

func (d *Director) resolveEnemyHit() {
	hitbox, ok := d.foe.AttackHitbox()
	if !ok || !hitbox.Overlaps(d.player.Box()) {
		return
	}

	switch {
	case d.player.Invulnerable():
		// Void-shift i-frames: the swing passes through.
	case d.player.ParryOpen():
		d.player.RegisterParrySuccess()
		d.foe.Parried()
		d.player.RefundStamina(d.cfg.Parry.StaminaRefund)
		d.emit(EventParry)
	default:
		d.player.ApplyDamage(d.cfg.Enemy.AttackDamage)
		d.foe.ForceRecover(d.cfg.Enemy.PostHitRecover)
		d.combo = 0
		d.comboTimer.Clear()
		d.triggerHitEffects(false)
		d.setFeedback("BREAK")
		d.emit(EventHurt)
	}
}

func (d *Director) resolveStrike(s *abilities.Strike) {
	foeBox := d.foe.Box()
	if s.Within(foeBox.CenterX(), foeBox.CenterY()) {
		direction := 1
		if foeBox.CenterX() < s.CenterX() {
			direction = -1
		}
		d.foe.ForceStun(
			d.lightning.Damage()*d.comboMultiplier(),
			d.lightning.Knockback(),
			direction,
			d.lightning.Stun(),
		)
		d.triggerHitEffects(true)
		d.emit(EventLightningHit)
	}
	// One resolution attempt per strike, hit or miss.
	s.MarkApplied()
}

func (d *Director) triggerHitEffects(heavy bool) {
	if heavy {
		d.hitStop.Set(d.cfg.Effects.HitStopHeavy)
		d.shakeMagnitude = d.cfg.Effects.ShakeHeavy
	} else {
		d.hitStop.Set(d.cfg.Effects.HitStopLight)
		d.shakeMagnitude = d.cfg.Effects.ShakeLight
	}
	d.shakeTimer.Set(d.cfg.Effects.ShakeDuration)
}

func (d *Director) updateTrails(dt float64) {
	d.trailTimer.Tick(dt)
	if hitbox, ok := d.player.AttackHitbox(); ok && !d.trailTimer.Active() {
		trail := Trail{
			box:   collision.NewBoxCentered(hitbox.CenterX(), hitbox.CenterY(), hitbox.Width+20, hitbox.Height+10),
			heavy: d.player.Swing().Kind() == attack.Heavy,
		}
		trail.life.Set(d.cfg.Effects.TrailLife)
		d.trails = append(d.trails, trail)
		d.trailTimer.Set(d.cfg.Effects.TrailInterval)
	}

	alive := d.trails[:0]
	for i := range d.trails {
		d.trails[i].life.Tick(dt)
		if d.trails[i].life.Active() {
			alive = append(alive, d.trails[i])
		}
	}
	d.trails = alive
}

func (d *Director) setFeedback(text string) {
	d.feedbackText = text
	d.feedbackTimer.Set(d.cfg.Effects.FeedbackDuration)
}

// Mode returns the current game mode.
func (d *Director) Mode() Mode { return d.mode }

// Combo returns the current combo count.
func (d *Director) Combo() int { return d.combo }

// MaxCombo returns the best combo of this run.
func (d *Director) MaxCombo() int { return d.maxCombo }

// Elapsed returns the total real time fed into the simulation.
func (d *Director) Elapsed() float64 { return d.elapsed }

// Player exposes the player for read-only queries in tests; mutation stays
// inside Update.
func (d *Director) Player() *actor.Player { return d.player }

// Enemy exposes the enemy for read-only queries in tests.
func (d *Director) Enemy() *enemy.Enemy { return d.foe }
