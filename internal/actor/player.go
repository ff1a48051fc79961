package actor

import (
	"mythduel/internal/attack"
	"mythduel/internal/collision"
	"mythduel/internal/config"
	"mythduel/internal/resource"
	"mythduel/internal/timing"
)

// Action is the player's current logical action, read by the presentation
// layer to pick an animation. Locked actions (attacks, parry, hurt) hold
// until their lock timer drains; the rest derive from physics state.
type Action int

const (
	ActionIdle Action = iota
	ActionMoving
	ActionJumping
	ActionCrouching
	ActionAttackingLight
	ActionAttackingHeavy
	ActionParrying
	ActionHurt
)

// String returns the string representation of a player action.
func (a Action) String() string {
	switch a {
	case ActionIdle:
		return "idle"
	case ActionMoving:
		return "moving"
	case ActionJumping:
		return "jumping"
	case ActionCrouching:
		return "crouching"
	case ActionAttackingLight:
		return "attacking-light"
	case ActionAttackingHeavy:
		return "attacking-heavy"
	case ActionParrying:
		return "parrying"
	case ActionHurt:
		return "hurt"
	default:
		return "unknown"
	}
}

// Feedback is a one-shot message the player queues for the director.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackParryMiss
	FeedbackParrySuccess
)

// Player is the player-controlled fighter. All fields are private; the
// director and the presentation layer interact only through methods.
type Player struct {
	cfg      *config.Config
	profiles attack.Table

	box       collision.Box
	velX      float64
	velY      float64
	facing    int
	crouching bool
	onGround  bool

	health  float64
	stamina resource.Pool
	myth    resource.Pool

	// Single optional slot: at most one swing at a time.
	swing          *attack.Instance
	attackCooldown timing.Countdown

	parryWindow     timing.Countdown
	parryCooldown   timing.Countdown
	parryTriggered  bool
	parrySucceeded  bool
	pendingFeedback Feedback

	invuln timing.Countdown

	lockedAction Action
	actionLock   timing.Countdown

	hitFlash   timing.Countdown
	parryFlash timing.Countdown
	castFlash  timing.Countdown
}

// NewPlayer creates the player at its spawn position, grounded and at full
// resources.
func NewPlayer(cfg *config.Config, profiles attack.Table) *Player {
	pc := cfg.Player
	return &Player{
		cfg:      cfg,
		profiles: profiles,
		box: collision.NewBox(
			pc.SpawnX,
			cfg.Arena.GroundY-pc.StandingHeight,
			pc.Width,
			pc.StandingHeight,
		),
		facing:   1,
		onGround: true,
		health:   pc.MaxHealth,
		stamina:  resource.NewPool(pc.MaxStamina),
		myth:     resource.NewPool(pc.MaxMyth),
	}
}

// HandleMovement applies held movement intents for this frame. Crouching
// and jumping are grounded-only; crouching swaps the box height around a
// fixed offset so the feet stay planted.
func (p *Player) HandleMovement(direction int, crouch, jump bool) {
	pc := p.cfg.Player

	speed := pc.MoveSpeed
	if p.crouching {
		speed *= pc.CrouchFactor
	}

	p.velX = 0
	if direction < 0 {
		p.velX = -speed
		p.facing = -1
	} else if direction > 0 {
		p.velX = speed
		p.facing = 1
	}

	if crouch && p.onGround {
		if !p.crouching {
			offset := pc.StandingHeight - pc.CrouchingHeight
			p.box.Height = pc.CrouchingHeight
			p.box.Y += offset
			p.crouching = true
		}
	} else if p.crouching {
		offset := pc.StandingHeight - pc.CrouchingHeight
		p.box.Y -= offset
		p.box.Height = pc.StandingHeight
		p.crouching = false
	}

	if jump && p.onGround {
		p.velY = pc.JumpVelocity
		p.onGround = false
	}
}

// TriggerAttack starts a swing of the given kind. It silently rejects when
// a swing or its cooldown is active, while the parry window is open, or
// when stamina cannot cover the cost.
func (p *Player) TriggerAttack(kind attack.Kind) bool {
	if p.swing != nil || p.attackCooldown.Active() || p.parryWindow.Active() {
		return false
	}
	profile := p.profiles.Get(kind)
	if !p.stamina.Spend(profile.StaminaCost) {
		return false
	}
	p.swing = attack.NewInstance(profile)
	p.attackCooldown.Set(profile.Cooldown)
	if kind == attack.Heavy {
		p.lockAction(ActionAttackingHeavy, profile.Duration)
	} else {
		p.lockAction(ActionAttackingLight, profile.Duration)
	}
	return true
}

// TriggerParry opens the parry window. Rejected while the window or its
// cooldown is active, while a swing is in progress, or when underfunded.
func (p *Player) TriggerParry() bool {
	if p.parryWindow.Active() || p.parryCooldown.Active() || p.swing != nil {
		return false
	}
	if !p.stamina.Spend(p.cfg.Parry.StaminaCost) {
		return false
	}
	p.parryWindow.Set(p.cfg.Parry.Window)
	p.parryCooldown.Set(p.cfg.Parry.Cooldown)
	p.parryTriggered = true
	p.parrySucceeded = false
	p.lockAction(ActionParrying, p.cfg.Parry.Window)
	return true
}

// Dash applies the void-shift displacement: an instant offset in the given
// direction, clamped to the arena, plus a brief invulnerability window and
// a cast flash. Cost and cooldown gating live in the ability state.
func (p *Player) Dash(direction int) {
	vs := p.cfg.Abilities.VoidShift
	p.box = p.box.
		Shifted(vs.Distance*float64(direction), 0).
		ClampHorizontal(p.cfg.Arena.Margin, p.cfg.Arena.Width-p.cfg.Arena.Margin)
	if direction != 0 {
		p.facing = direction
	}
	p.invuln.Set(vs.Invuln)
	p.castFlash.Set(p.cfg.Abilities.CastFlash)
}

// StartCastFlash marks an ability cast for the presentation layer.
func (p *Player) StartCastFlash() {
	p.castFlash.Set(p.cfg.Abilities.CastFlash)
}

// Update advances the player's simulation state. During hit-stop the
// director passes dt=0 and this is a no-op; presentation flashes advance
// separately through TickEffects.
func (p *Player) Update(dt float64) {
	if dt <= 0 {
		return
	}

	p.velY += p.cfg.Arena.Gravity * dt
	p.box.X += p.velX * dt
	p.box.Y += p.velY * dt

	var grounded bool
	p.box, grounded = p.box.ClampBottom(p.cfg.Arena.GroundY)
	if grounded {
		p.velY = 0
	}
	p.onGround = grounded

	p.box = p.box.ClampHorizontal(p.cfg.Arena.Margin, p.cfg.Arena.Width-p.cfg.Arena.Margin)

	if p.swing != nil {
		p.swing.Tick(dt)
		if p.swing.Done() {
			p.swing = nil
		}
	}

	p.attackCooldown.Tick(dt)
	p.parryCooldown.Tick(dt)
	p.invuln.Tick(dt)
	p.actionLock.Tick(dt)

	if p.parryWindow.Tick(dt) && p.parryTriggered && !p.parrySucceeded {
		p.pendingFeedback = FeedbackParryMiss
		p.parryTriggered = false
	}

	p.stamina.Regen(p.cfg.Player.StaminaRegen, dt)
}

// TickEffects advances presentation-only timers. These run at real dt so
// hit-stop freezes the fight but not the feedback.
func (p *Player) TickEffects(dt float64) {
	p.hitFlash.Tick(dt)
	p.parryFlash.Tick(dt)
	p.castFlash.Tick(dt)
}

// ApplyDamage reduces health (clamped at zero), starts the hit flash and
// drains the myth penalty for getting caught.
func (p *Player) ApplyDamage(amount float64) {
	p.health -= amount
	if p.health < 0 {
		p.health = 0
	}
	p.hitFlash.Set(p.cfg.Player.HitFlash)
	p.myth.Drain(p.cfg.Player.MythHitPenalty)
	p.lockAction(ActionHurt, p.cfg.Player.HitLock)
}

// RegisterParrySuccess marks the open parry as successful and grants the
// parry myth reward.
func (p *Player) RegisterParrySuccess() {
	p.parrySucceeded = true
	p.parryTriggered = false
	p.pendingFeedback = FeedbackParrySuccess
	p.parryFlash.Set(p.cfg.Parry.SuccessFlash)
	p.myth.Gain(p.cfg.Parry.MythGain)
	p.lockAction(ActionParrying, 0.25)
}

// ConsumeFeedback returns the pending one-shot feedback and clears it.
func (p *Player) ConsumeFeedback() Feedback {
	f := p.pendingFeedback
	p.pendingFeedback = FeedbackNone
	return f
}

// RefundStamina returns stamina after a successful parry.
func (p *Player) RefundStamina(amount float64) {
	p.stamina.Gain(amount)
}

// SpendMyth pays an ability cost, rejecting without change when the pool
// cannot cover it.
func (p *Player) SpendMyth(cost float64) bool {
	return p.myth.Spend(cost)
}

// GainMyth rewards combat success.
func (p *Player) GainMyth(amount float64) {
	p.myth.Gain(amount)
}

func (p *Player) lockAction(action Action, duration float64) {
	p.lockedAction = action
	p.actionLock.Set(duration)
}

// Action returns the current logical action for animation selection.
func (p *Player) Action() Action {
	if p.actionLock.Active() {
		return p.lockedAction
	}
	switch {
	case p.swing != nil && p.swing.Kind() == attack.Heavy:
		return ActionAttackingHeavy
	case p.swing != nil:
		return ActionAttackingLight
	case p.parryWindow.Active():
		return ActionParrying
	case !p.onGround:
		return ActionJumping
	case p.crouching:
		return ActionCrouching
	case p.velX > 10 || p.velX < -10:
		return ActionMoving
	default:
		return ActionIdle
	}
}

// AttackHitbox returns the active swing hitbox, if the swing is inside its
// active window.
func (p *Player) AttackHitbox() (collision.Box, bool) {
	if p.swing == nil {
		return collision.Box{}, false
	}
	return p.swing.Hitbox(p.box, p.facing)
}

// Swing exposes the in-flight attack instance, nil between swings.
func (p *Player) Swing() *attack.Instance { return p.swing }

// Box returns the player's current bounds.
func (p *Player) Box() collision.Box { return p.box }

// Facing returns -1 or 1.
func (p *Player) Facing() int { return p.facing }

// OnGround reports whether the player is standing on the arena floor.
func (p *Player) OnGround() bool { return p.onGround }

// Crouching reports the crouch state.
func (p *Player) Crouching() bool { return p.crouching }

// Health returns current health in [0, max].
func (p *Player) Health() float64 { return p.health }

// MaxHealth returns the health capacity.
func (p *Player) MaxHealth() float64 { return p.cfg.Player.MaxHealth }

// Stamina returns the current stamina value.
func (p *Player) Stamina() float64 { return p.stamina.Current() }

// StaminaFraction returns stamina as a 0..1 bar fill.
func (p *Player) StaminaFraction() float64 { return p.stamina.Fraction() }

// Myth returns the current myth-energy value.
func (p *Player) Myth() float64 { return p.myth.Current() }

// MythFraction returns myth energy as a 0..1 bar fill.
func (p *Player) MythFraction() float64 { return p.myth.Fraction() }

// ParryOpen reports whether the parry window is currently open.
func (p *Player) ParryOpen() bool { return p.parryWindow.Active() }

// ParryWindowFraction returns the remaining share of the parry window.
func (p *Player) ParryWindowFraction() float64 {
	return p.parryWindow.Fraction(p.cfg.Parry.Window)
}

// Invulnerable reports whether the void-shift invulnerability is active.
func (p *Player) Invulnerable() bool { return p.invuln.Active() }

// HitFlash returns the hit flash intensity in [0,1].
func (p *Player) HitFlash() float64 { return p.hitFlash.Fraction(p.cfg.Player.HitFlash) }

// ParryFlash returns the parry-success flash intensity in [0,1].
func (p *Player) ParryFlash() float64 { return p.parryFlash.Fraction(p.cfg.Parry.SuccessFlash) }

// CastFlash returns the ability-cast flash intensity in [0,1].
func (p *Player) CastFlash() float64 { return p.castFlash.Fraction(p.cfg.Abilities.CastFlash) }
