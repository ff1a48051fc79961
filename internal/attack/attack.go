package attack

import (
	"mythduel/internal/collision"
	"mythduel/internal/config"
)

// Kind tags an attack profile. Profiles are compared by tag, never by
// pointer identity.
type Kind int

const (
	Light Kind = iota
	Heavy
)

// String returns the string representation of an attack kind.
func (k Kind) String() string {
	switch k {
	case Light:
		return "light"
	case Heavy:
		return "heavy"
	default:
		return "unknown"
	}
}

// Profile is an immutable attack definition built once from config at
// startup. The hitbox exists only while elapsed swing time lies inside
// [ActiveStart, ActiveEnd].
type Profile struct {
	Kind         Kind
	Damage       float64
	StaminaCost  float64
	Duration     float64
	Cooldown     float64
	HitboxWidth  float64
	HitboxHeight float64
	HitboxRaise  float64
	Knockback    float64
	ActiveStart  float64
	ActiveEnd    float64
}

// Table holds the two profiles of the game.
type Table struct {
	Light Profile
	Heavy Profile
}

// Get returns the profile for a kind.
func (t Table) Get(kind Kind) Profile {
	if kind == Heavy {
		return t.Heavy
	}
	return t.Light
}

// TableFromConfig builds the profile table from loaded configuration.
func TableFromConfig(cfg *config.Config) Table {
	return Table{
		Light: profileFromConfig(Light, cfg.Attacks.Light, cfg.Attacks),
		Heavy: profileFromConfig(Heavy, cfg.Attacks.Heavy, cfg.Attacks),
	}
}

func profileFromConfig(kind Kind, ac config.AttackConfig, table config.AttackTable) Profile {
	return Profile{
		Kind:         kind,
		Damage:       ac.Damage,
		StaminaCost:  ac.StaminaCost,
		Duration:     ac.Duration,
		Cooldown:     ac.Cooldown,
		HitboxWidth:  ac.HitboxWidth,
		HitboxHeight: table.HitboxHeight,
		HitboxRaise:  table.HitboxRaise,
		Knockback:    ac.Knockback,
		ActiveStart:  ac.ActiveStart,
		ActiveEnd:    ac.ActiveEnd,
	}
}

// Instance is the runtime binding of a profile to one swing. It is created
// on trigger and discarded once the duration expires. The connected flag
// guarantees at most one hit per swing.
type Instance struct {
	profile   Profile
	elapsed   float64
	connected bool
}

// NewInstance starts a swing of the given profile.
func NewInstance(profile Profile) *Instance {
	return &Instance{profile: profile}
}

// Profile returns the immutable profile backing this swing.
func (i *Instance) Profile() Profile { return i.profile }

// Kind returns the swing's attack kind.
func (i *Instance) Kind() Kind { return i.profile.Kind }

// Tick advances the swing clock.
func (i *Instance) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	i.elapsed += dt
	if i.elapsed > i.profile.Duration {
		i.elapsed = i.profile.Duration
	}
}

// Done reports whether the swing's full duration has elapsed.
func (i *Instance) Done() bool {
	return i.elapsed >= i.profile.Duration
}

// Elapsed returns time since the swing was triggered.
func (i *Instance) Elapsed() float64 { return i.elapsed }

// Connected reports whether this swing already landed.
func (i *Instance) Connected() bool { return i.connected }

// MarkConnected records that the swing landed; further overlap frames are
// ignored.
func (i *Instance) MarkConnected() { i.connected = true }

// Hitbox derives the swing's hitbox from the owner's box and facing. The
// second return is false outside the active window, including the exact
// moment the duration expires.
func (i *Instance) Hitbox(owner collision.Box, facing int) (collision.Box, bool) {
	if i.Done() || i.elapsed < i.profile.ActiveStart || i.elapsed > i.profile.ActiveEnd {
		return collision.Box{}, false
	}
	offset := i.profile.HitboxWidth * float64(facing)
	box := collision.NewBox(
		owner.CenterX()+offset-i.profile.HitboxWidth/2,
		owner.CenterY()-i.profile.HitboxRaise,
		i.profile.HitboxWidth,
		i.profile.HitboxHeight,
	)
	return box, true
}
