package enemy

import (
	"mythduel/internal/collision"
	"mythduel/internal/config"
	"mythduel/internal/timing"
)

// State is the enemy AI state. Exactly one state is active at a time; every
// transition resets the state timer.
type State int

const (
	StatePatrol State = iota
	StateChase
	StateWindup
	StateAttack
	StateRecover
	StateStunned
)

// String returns the string representation of an enemy state.
func (s State) String() string {
	switch s {
	case StatePatrol:
		return "patrol"
	case StateChase:
		return "chase"
	case StateWindup:
		return "windup"
	case StateAttack:
		return "attack"
	case StateRecover:
		return "recover"
	case StateStunned:
		return "stunned"
	default:
		return "unknown"
	}
}

// Enemy is the AI-controlled fighter. It patrols a corridor on the right
// half of the arena, chases the player inside the outer threshold and
// attacks inside the inner one. The adaptive model tunes its chase speed
// and windup duration through SetBiases; biases are sampled when the
// matching state is entered, never retroactively.
type Enemy struct {
	cfg *config.Config

	box    collision.Box
	velX   float64
	facing int

	health float64

	state      State
	stateTimer timing.Countdown

	chaseSpeed float64 // sampled on Chase entry
	speedBias  float64
	windupBias float64

	wasParried bool

	hitFlash timing.Countdown
}

// NewEnemy creates the enemy at its spawn position, patrolling left.
func NewEnemy(cfg *config.Config) *Enemy {
	ec := cfg.Enemy
	return &Enemy{
		cfg: cfg,
		box: collision.NewBox(
			ec.SpawnX,
			cfg.Arena.GroundY-ec.Height,
			ec.Width,
			ec.Height,
		),
		velX:       -ec.PatrolSpeed,
		facing:     -1,
		health:     ec.MaxHealth,
		state:      StatePatrol,
		chaseSpeed: ec.ChaseSpeed,
		speedBias:  1,
		windupBias: 1,
	}
}

// SetBiases stores the adaptive model's current tuning. The speed bias is
// consumed on the next Chase entry, the windup bias on the next Windup
// entry.
func (e *Enemy) SetBiases(speed, windup float64) {
	e.speedBias = speed
	e.windupBias = windup
}

// Update advances the AI by dt. The director passes the enemy-side dt,
// which is scaled down while time dilation is active and zero during
// hit-stop.
func (e *Enemy) Update(dt float64, playerCenterX float64) {
	if dt <= 0 {
		return
	}

	switch e.state {
	case StatePatrol:
		e.patrol(dt)
		if abs(playerCenterX-e.box.CenterX()) < e.cfg.Enemy.OuterThreshold {
			e.changeState(StateChase, 0)
		}
	case StateChase:
		e.chase(dt, playerCenterX)
	case StateWindup:
		if e.stateTimer.Tick(dt) {
			e.changeState(StateAttack, e.cfg.Enemy.AttackDuration)
		}
	case StateAttack:
		if e.stateTimer.Tick(dt) {
			e.changeState(StateRecover, e.cfg.Enemy.RecoverDuration)
		}
	case StateRecover:
		if e.stateTimer.Tick(dt) {
			e.changeState(StatePatrol, 0)
		}
	case StateStunned:
		if e.stateTimer.Tick(dt) {
			e.changeState(StateRecover, e.cfg.Enemy.PostStunRecover)
		}
	}
}

// TickEffects advances presentation-only timers at real dt.
func (e *Enemy) TickEffects(dt float64) {
	e.hitFlash.Tick(dt)
}

func (e *Enemy) patrol(dt float64) {
	ec := e.cfg.Enemy
	e.box.X += e.velX * dt
	if e.box.Left() <= ec.PatrolMinX {
		e.box.X = ec.PatrolMinX
		e.velX = ec.PatrolSpeed
		e.facing = 1
	} else if e.box.Right() >= ec.PatrolMaxX {
		e.box.X = ec.PatrolMaxX - e.box.Width
		e.velX = -ec.PatrolSpeed
		e.facing = -1
	}
}

func (e *Enemy) chase(dt float64, playerCenterX float64) {
	if playerCenterX < e.box.CenterX() {
		e.facing = -1
	} else {
		e.facing = 1
	}
	e.box.X += float64(e.facing) * e.chaseSpeed * dt
	e.box = e.box.ClampHorizontal(e.cfg.Arena.Margin, e.cfg.Arena.Width-e.cfg.Arena.Margin)

	if abs(playerCenterX-e.box.CenterX()) < e.cfg.Enemy.InnerThreshold {
		windup := e.cfg.Enemy.WindupDuration * e.windupBias
		if windup < e.cfg.Enemy.WindupFloor {
			windup = e.cfg.Enemy.WindupFloor
		}
		e.changeState(StateWindup, windup)
	}
}

func (e *Enemy) changeState(state State, duration float64) {
	e.state = state
	e.stateTimer.Set(duration)
	if state == StateChase {
		e.chaseSpeed = e.cfg.Enemy.ChaseSpeed * e.speedBias
	}
	if state != StateStunned {
		e.wasParried = false
	}
}

// ApplyHit applies damage, knockback in the attacker's facing direction and
// the standard stun. Health clamps at zero.
func (e *Enemy) ApplyHit(damage, knockback float64, direction int) {
	e.damage(damage)
	e.applyKnockback(knockback, direction)
	e.changeState(StateStunned, e.cfg.Enemy.StunDuration)
}

// ForceStun applies damage and a caller-chosen stun duration; used by the
// delayed-area strike.
func (e *Enemy) ForceStun(damage, knockback float64, direction int, stun float64) {
	e.damage(damage)
	e.applyKnockback(knockback, direction)
	e.changeState(StateStunned, stun)
}

// Parried interrupts the attack with the longer parried stun.
func (e *Enemy) Parried() {
	e.changeState(StateStunned, e.cfg.Enemy.ParriedStun)
	e.wasParried = true
	e.hitFlash.Set(e.cfg.Enemy.HitFlash)
}

// ForceRecover pushes the enemy into Recover for the given duration; used
// after its attack lands so it cannot immediately swing again.
func (e *Enemy) ForceRecover(duration float64) {
	e.changeState(StateRecover, duration)
}

func (e *Enemy) damage(amount float64) {
	e.health -= amount
	if e.health < 0 {
		e.health = 0
	}
	e.hitFlash.Set(e.cfg.Enemy.HitFlash)
}

func (e *Enemy) applyKnockback(amount float64, direction int) {
	e.box.X += float64(direction) * amount / 2
	e.box = e.box.ClampHorizontal(e.cfg.Enemy.PatrolMinX, e.cfg.Enemy.PatrolMaxX)
}

// AttackHitbox returns the enemy's attack box. It exists only while the
// Attack state is active.
func (e *Enemy) AttackHitbox() (collision.Box, bool) {
	if e.state != StateAttack {
		return collision.Box{}, false
	}
	ec := e.cfg.Enemy
	box := collision.NewBoxCentered(
		e.box.CenterX()+float64(e.facing)*ec.AttackBoxOffset,
		e.box.CenterY(),
		ec.AttackBoxWidth,
		ec.AttackBoxHeight,
	)
	return box, true
}

// Action returns the logical action for animation selection.
func (e *Enemy) Action() string {
	switch e.state {
	case StatePatrol, StateChase:
		return "moving"
	case StateWindup:
		return "windup"
	case StateAttack:
		return "attacking"
	case StateStunned:
		return "stunned"
	default:
		return "idle"
	}
}

// State returns the current AI state.
func (e *Enemy) State() State { return e.state }

// Box returns the enemy's current bounds.
func (e *Enemy) Box() collision.Box { return e.box }

// Facing returns -1 or 1.
func (e *Enemy) Facing() int { return e.facing }

// Health returns current health in [0, max].
func (e *Enemy) Health() float64 { return e.health }

// MaxHealth returns the health capacity.
func (e *Enemy) MaxHealth() float64 { return e.cfg.Enemy.MaxHealth }

// HealthFraction returns health as a 0..1 bar fill.
func (e *Enemy) HealthFraction() float64 {
	if e.cfg.Enemy.MaxHealth <= 0 {
		return 0
	}
	return e.health / e.cfg.Enemy.MaxHealth
}

// WasParried reports whether the current stun came from a parry.
func (e *Enemy) WasParried() bool { return e.wasParried }

// HitFlash returns the hit flash intensity in [0,1].
func (e *Enemy) HitFlash() float64 { return e.hitFlash.Fraction(e.cfg.Enemy.HitFlash) }

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
