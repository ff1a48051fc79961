package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tuning value for the simulation. It is built once at
// startup and passed by pointer into the components that need it; nothing
// mutates it after load.
type Config struct {
	Display   DisplayConfig   `yaml:"display"`
	Arena     ArenaConfig     `yaml:"arena"`
	Player    PlayerConfig    `yaml:"player"`
	Attacks   AttackTable     `yaml:"attacks"`
	Parry     ParryConfig     `yaml:"parry"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Combo     ComboConfig     `yaml:"combo"`
	Abilities AbilitiesConfig `yaml:"abilities"`
	Adaptive  AdaptiveConfig  `yaml:"adaptive"`
	Effects   EffectsConfig   `yaml:"effects"`
}

type DisplayConfig struct {
	WindowTitle string `yaml:"window_title"`
	Resizable   bool   `yaml:"resizable"`
}

type ArenaConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"`
	Margin  float64 `yaml:"margin"`
	Gravity float64 `yaml:"gravity"`
}

type PlayerConfig struct {
	SpawnX          float64 `yaml:"spawn_x"`
	Width           float64 `yaml:"width"`
	StandingHeight  float64 `yaml:"standing_height"`
	CrouchingHeight float64 `yaml:"crouching_height"`
	MoveSpeed       float64 `yaml:"move_speed"`
	CrouchFactor    float64 `yaml:"crouch_factor"`
	JumpVelocity    float64 `yaml:"jump_velocity"`
	MaxHealth       float64 `yaml:"max_health"`
	MaxStamina      float64 `yaml:"max_stamina"`
	StaminaRegen    float64 `yaml:"stamina_regen"`
	MaxMyth         float64 `yaml:"max_myth"`
	HitFlash        float64 `yaml:"hit_flash"`
	HitLock         float64 `yaml:"hit_lock"`
	MythHitPenalty  float64 `yaml:"myth_hit_penalty"`
}

// AttackConfig describes one immutable attack profile.
type AttackConfig struct {
	Damage      float64 `yaml:"damage"`
	StaminaCost float64 `yaml:"stamina_cost"`
	Duration    float64 `yaml:"duration"`
	Cooldown    float64 `yaml:"cooldown"`
	HitboxWidth float64 `yaml:"hitbox_width"`
	Knockback   float64 `yaml:"knockback"`
	ActiveStart float64 `yaml:"active_start"`
	ActiveEnd   float64 `yaml:"active_end"`
}

type AttackTable struct {
	Light        AttackConfig `yaml:"light"`
	Heavy        AttackConfig `yaml:"heavy"`
	HitboxHeight float64      `yaml:"hitbox_height"`
	HitboxRaise  float64      `yaml:"hitbox_raise"`
}

type ParryConfig struct {
	StaminaCost   float64 `yaml:"stamina_cost"`
	Window        float64 `yaml:"window"`
	Cooldown      float64 `yaml:"cooldown"`
	StaminaRefund float64 `yaml:"stamina_refund"`
	MythGain      float64 `yaml:"myth_gain"`
	SuccessFlash  float64 `yaml:"success_flash"`
}

type EnemyConfig struct {
	SpawnX          float64 `yaml:"spawn_x"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	MaxHealth       float64 `yaml:"max_health"`
	PatrolMinX      float64 `yaml:"patrol_min_x"`
	PatrolMaxX      float64 `yaml:"patrol_max_x"`
	PatrolSpeed     float64 `yaml:"patrol_speed"`
	ChaseSpeed      float64 `yaml:"chase_speed"`
	OuterThreshold  float64 `yaml:"outer_threshold"`
	InnerThreshold  float64 `yaml:"inner_threshold"`
	WindupDuration  float64 `yaml:"windup_duration"`
	WindupFloor     float64 `yaml:"windup_floor"`
	AttackDuration  float64 `yaml:"attack_duration"`
	RecoverDuration float64 `yaml:"recover_duration"`
	StunDuration    float64 `yaml:"stun_duration"`
	ParriedStun     float64 `yaml:"parried_stun"`
	PostStunRecover float64 `yaml:"post_stun_recover"`
	PostHitRecover  float64 `yaml:"post_hit_recover"`
	AttackDamage    float64 `yaml:"attack_damage"`
	AttackBoxWidth  float64 `yaml:"attack_box_width"`
	AttackBoxHeight float64 `yaml:"attack_box_height"`
	AttackBoxOffset float64 `yaml:"attack_box_offset"`
	HitFlash        float64 `yaml:"hit_flash"`
	PunishBonus     float64 `yaml:"punish_bonus"`
	PunishKnockback float64 `yaml:"punish_knockback"`
}

type ComboConfig struct {
	ScalePerHit    float64 `yaml:"scale_per_hit"`
	DilationBonus  float64 `yaml:"dilation_bonus"`
	ResetWindow    float64 `yaml:"reset_window"`
	HeavyExtension float64 `yaml:"heavy_extension"`
	MythBase       float64 `yaml:"myth_base"`
	MythPerCombo   float64 `yaml:"myth_per_combo"`
}

type AbilitiesConfig struct {
	TimeDilation TimeDilationConfig `yaml:"time_dilation"`
	Lightning    LightningConfig    `yaml:"lightning"`
	VoidShift    VoidShiftConfig    `yaml:"void_shift"`
	CastFlash    float64            `yaml:"cast_flash"`
}

type TimeDilationConfig struct {
	MythCost   float64 `yaml:"myth_cost"`
	Cooldown   float64 `yaml:"cooldown"`
	Duration   float64 `yaml:"duration"`
	SlowFactor float64 `yaml:"slow_factor"`
}

type LightningConfig struct {
	MythCost  float64 `yaml:"myth_cost"`
	Cooldown  float64 `yaml:"cooldown"`
	Damage    float64 `yaml:"damage"`
	Radius    float64 `yaml:"radius"`
	Warmup    float64 `yaml:"warmup"`
	Lifetime  float64 `yaml:"lifetime"`
	Stun      float64 `yaml:"stun"`
	Knockback float64 `yaml:"knockback"`
}

type VoidShiftConfig struct {
	MythCost  float64 `yaml:"myth_cost"`
	Cooldown  float64 `yaml:"cooldown"`
	TapWindow float64 `yaml:"tap_window"`
	Distance  float64 `yaml:"distance"`
	Invuln    float64 `yaml:"invuln"`
}

type AdaptiveConfig struct {
	Retention      float64 `yaml:"retention"`   // per-second multiplicative decay
	CrossDecay     float64 `yaml:"cross_decay"` // extra decay of the other weights on observe
	SpeedThreshold float64 `yaml:"speed_threshold"`
	SpeedGain      float64 `yaml:"speed_gain"`
	SpeedBiasMax   float64 `yaml:"speed_bias_max"`
	HeavyThreshold float64 `yaml:"heavy_threshold"`
	HeavyGain      float64 `yaml:"heavy_gain"`
	ParryThreshold float64 `yaml:"parry_threshold"`
	ParryGain      float64 `yaml:"parry_gain"`
	WindupBiasMin  float64 `yaml:"windup_bias_min"`
	WindupBiasMax  float64 `yaml:"windup_bias_max"`
}

type EffectsConfig struct {
	HitStopLight     float64 `yaml:"hit_stop_light"`
	HitStopHeavy     float64 `yaml:"hit_stop_heavy"`
	ShakeDuration    float64 `yaml:"shake_duration"`
	ShakeLight       float64 `yaml:"shake_light"`
	ShakeHeavy       float64 `yaml:"shake_heavy"`
	FeedbackDuration float64 `yaml:"feedback_duration"`
	TrailInterval    float64 `yaml:"trail_interval"`
	TrailLife        float64 `yaml:"trail_life"`
}

// DefaultConfig returns the canonical tuning. config.yaml overrides these
// values; tests construct their fixtures from this directly.
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			WindowTitle: "Mythduel - Combat Prototype",
			Resizable:   false,
		},
		Arena: ArenaConfig{
			Width:   960,
			Height:  540,
			GroundY: 420,
			Margin:  30,
			Gravity: 2200,
		},
		Player: PlayerConfig{
			SpawnX:          260,
			Width:           54,
			StandingHeight:  90,
			CrouchingHeight: 60,
			MoveSpeed:       280,
			CrouchFactor:    0.6,
			JumpVelocity:    -780,
			MaxHealth:       100,
			MaxStamina:      100,
			StaminaRegen:    26,
			MaxMyth:         100,
			HitFlash:        0.25,
			HitLock:         0.2,
			MythHitPenalty:  8,
		},
		Attacks: AttackTable{
			Light: AttackConfig{
				Damage:      12,
				StaminaCost: 12,
				Duration:    0.24,
				Cooldown:    0.35,
				HitboxWidth: 70,
				Knockback:   220,
				ActiveStart: 0.08,
				ActiveEnd:   0.18,
			},
			Heavy: AttackConfig{
				Damage:      24,
				StaminaCost: 24,
				Duration:    0.42,
				Cooldown:    0.62,
				HitboxWidth: 96,
				Knockback:   340,
				ActiveStart: 0.12,
				ActiveEnd:   0.28,
			},
			HitboxHeight: 68,
			HitboxRaise:  34,
		},
		Parry: ParryConfig{
			StaminaCost:   16,
			Window:        0.25,
			Cooldown:      0.6,
			StaminaRefund: 18,
			MythGain:      14,
			SuccessFlash:  0.4,
		},
		Enemy: EnemyConfig{
			SpawnX:          740,
			Width:           54,
			Height:          90,
			MaxHealth:       120,
			PatrolMinX:      480,
			PatrolMaxX:      880,
			PatrolSpeed:     120,
			ChaseSpeed:      200,
			OuterThreshold:  220,
			InnerThreshold:  120,
			WindupDuration:  0.35,
			WindupFloor:     0.18,
			AttackDuration:  0.22,
			RecoverDuration: 0.5,
			StunDuration:    0.5,
			ParriedStun:     0.75,
			PostStunRecover: 0.6,
			PostHitRecover:  0.8,
			AttackDamage:    18,
			AttackBoxWidth:  100,
			AttackBoxHeight: 70,
			AttackBoxOffset: 45,
			HitFlash:        0.3,
			PunishBonus:     6,
			PunishKnockback: 1.2,
		},
		Combo: ComboConfig{
			ScalePerHit:    0.12,
			DilationBonus:  0.08,
			ResetWindow:    2.0,
			HeavyExtension: 0.4,
			MythBase:       6,
			MythPerCombo:   2,
		},
		Abilities: AbilitiesConfig{
			TimeDilation: TimeDilationConfig{
				MythCost:   35,
				Cooldown:   9,
				Duration:   4,
				SlowFactor: 0.45,
			},
			Lightning: LightningConfig{
				MythCost:  45,
				Cooldown:  6,
				Damage:    30,
				Radius:    90,
				Warmup:    0.45,
				Lifetime:  0.8,
				Stun:      0.6,
				Knockback: 260,
			},
			VoidShift: VoidShiftConfig{
				MythCost:  25,
				Cooldown:  3.5,
				TapWindow: 0.25,
				Distance:  150,
				Invuln:    0.35,
			},
			CastFlash: 0.3,
		},
		Adaptive: AdaptiveConfig{
			Retention:      0.6,
			CrossDecay:     0.7,
			SpeedThreshold: 0.45,
			SpeedGain:      1.2,
			SpeedBiasMax:   1.6,
			HeavyThreshold: 0.4,
			HeavyGain:      0.8,
			ParryThreshold: 0.35,
			ParryGain:      0.9,
			WindupBiasMin:  0.55,
			WindupBiasMax:  1.45,
		},
		Effects: EffectsConfig{
			HitStopLight:     0.055,
			HitStopHeavy:     0.08,
			ShakeDuration:    0.35,
			ShakeLight:       6,
			ShakeHeavy:       10,
			FeedbackDuration: 0.6,
			TrailInterval:    0.05,
			TrailLife:        0.25,
		},
	}
}

// LoadConfig reads the YAML file at path over the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoadConfig loads configuration or panics. Call this once at startup.
func MustLoadConfig(path string) *Config {
	cfg, err := LoadConfig(path)
	if err != nil {
		panic("Failed to load config from " + path + ": " + err.Error())
	}
	return cfg
}

// GetScreenWidth returns the arena width as a pixel count for the window.
func (c *Config) GetScreenWidth() int {
	return int(c.Arena.Width)
}

// GetScreenHeight returns the arena height as a pixel count for the window.
func (c *Config) GetScreenHeight() int {
	return int(c.Arena.Height)
}
