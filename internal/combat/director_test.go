package combat

import (
	"math"
	"testing"

	"mythduel/internal/config"
	"mythduel/internal/enemy"
)

const frameDT = 1.0 / 60.0

// closeQuartersConfig spawns the player just inside the enemy's inner
// threshold so attacks connect within a few frames.
func closeQuartersConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Player.SpawnX = 660
	return cfg
}

// zeroKnockbackConfig additionally disables player knockback so follow-up
// hits land on a stationary target.
func zeroKnockbackConfig() *config.Config {
	cfg := closeQuartersConfig()
	cfg.Attacks.Light.Knockback = 0
	cfg.Attacks.Heavy.Knockback = 0
	return cfg
}

func step(d *Director, frames int, in Input) {
	for i := 0; i < frames; i++ {
		d.Update(frameDT, in)
	}
}

func stepIdle(d *Director, frames int) {
	step(d, frames, Input{})
}

// runUntilHit drives one light attack until it connects, returning the
// number of frames it took. Fails the test if nothing lands.
func runUntilHit(t *testing.T, d *Director) int {
	t.Helper()
	before := d.Enemy().Health()
	d.Update(frameDT, Input{LightAttack: true})
	for i := 1; i < 30; i++ {
		if d.Enemy().Health() < before {
			return i
		}
		d.Update(frameDT, Input{})
	}
	t.Fatal("expected the light attack to connect within 30 frames")
	return 0
}

func drainFor(d *Director, want Event) bool {
	for _, e := range d.DrainEvents() {
		if e == want {
			return true
		}
	}
	return false
}

func TestLightAttackHitsOnce(t *testing.T) {
	d := NewDirector(closeQuartersConfig())
	runUntilHit(t, d)

	if got := d.Enemy().Health(); got != 108 {
		t.Fatalf("expected enemy health 108 after one light hit, got %v", got)
	}
	if d.Combo() != 1 {
		t.Errorf("expected combo 1, got %d", d.Combo())
	}
	if d.Enemy().State() != enemy.StateStunned {
		t.Errorf("expected enemy stunned after the hit, got %v", d.Enemy().State())
	}
	if !drainFor(d, EventHit) {
		t.Error("expected a hit event")
	}

	// The swing stays active for several more frames; the connected flag
	// must keep it from landing again.
	stepIdle(d, 10)
	if got := d.Enemy().Health(); got != 108 {
		t.Errorf("expected exactly one hit per swing, health %v", got)
	}
}

func TestComboScalesDamage(t *testing.T) {
	d := NewDirector(zeroKnockbackConfig())

	runUntilHit(t, d)
	firstDelta := 120 - d.Enemy().Health()

	// Wait out the attack cooldown, then land the second hit.
	stepIdle(d, 21)
	healthBefore := d.Enemy().Health()
	d.Update(frameDT, Input{LightAttack: true})
	for i := 0; i < 30 && d.Enemy().Health() == healthBefore; i++ {
		d.Update(frameDT, Input{})
	}

	secondDelta := healthBefore - d.Enemy().Health()
	if secondDelta <= firstDelta {
		t.Errorf("expected combo-scaled second hit to exceed the first: %v vs %v",
			secondDelta, firstDelta)
	}
	if d.Combo() != 2 {
		t.Errorf("expected combo 2, got %d", d.Combo())
	}
	if d.MaxCombo() != 2 {
		t.Errorf("expected max combo 2, got %d", d.MaxCombo())
	}
}

func TestComboExpiresAfterResetWindow(t *testing.T) {
	d := NewDirector(closeQuartersConfig())
	runUntilHit(t, d)

	if d.Combo() != 1 {
		t.Fatalf("expected combo 1, got %d", d.Combo())
	}

	// The reset window is 2s of simulation time.
	stepIdle(d, 150)
	if d.Combo() != 0 {
		t.Errorf("expected combo expired, got %d", d.Combo())
	}
	if d.MaxCombo() != 1 {
		t.Errorf("expected max combo preserved at 1, got %d", d.MaxCombo())
	}
}

func TestStunnedEnemyTakesPunishDamage(t *testing.T) {
	d := NewDirector(zeroKnockbackConfig())
	runUntilHit(t, d)
	d.DrainEvents()

	// Second hit lands while the enemy is still stunned: base 12 + punish 6,
	// scaled by the one-hit combo multiplier 1.12.
	stepIdle(d, 21)
	if d.Enemy().State() != enemy.StateStunned {
		t.Skip("enemy left stun before the punish window; timing config changed")
	}
	healthBefore := d.Enemy().Health()
	d.Update(frameDT, Input{LightAttack: true})
	for i := 0; i < 30 && d.Enemy().Health() == healthBefore; i++ {
		d.Update(frameDT, Input{})
	}

	want := (12 + 6) * 1.12
	got := healthBefore - d.Enemy().Health()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected punish damage %v, got %v", want, got)
	}
}

func TestEnemyAttackHurtsAndBreaksCombo(t *testing.T) {
	d := NewDirector(closeQuartersConfig())
	runUntilHit(t, d)
	d.DrainEvents()

	// Stand still until the enemy recovers, closes in and lands its swing.
	for i := 0; i < 600 && d.Player().Health() == 100; i++ {
		d.Update(frameDT, Input{})
	}

	if got := d.Player().Health(); got != 82 {
		t.Fatalf("expected player health 82 after one enemy hit, got %v", got)
	}
	if d.Combo() != 0 {
		t.Errorf("expected combo broken, got %d", d.Combo())
	}
	if d.Enemy().State() != enemy.StateRecover {
		t.Errorf("expected enemy forced into recover, got %v", d.Enemy().State())
	}
	if !drainFor(d, EventHurt) {
		t.Error("expected a hurt event")
	}

	snap := d.Snapshot()
	if snap.FeedbackText != "BREAK" {
		t.Errorf("expected BREAK feedback, got %q", snap.FeedbackText)
	}
}

func TestParryNegatesDamageAndStunsEnemy(t *testing.T) {
	d := NewDirector(closeQuartersConfig())

	// Track the windup and open the parry window late enough to cover the
	// incoming attack (windup 0.35s, window 0.25s).
	windupFrames := 0
	for i := 0; i < 600; i++ {
		in := Input{}
		if d.Enemy().State() == enemy.StateWindup {
			windupFrames++
			if windupFrames == 10 {
				in.Parry = true
			}
		}
		d.Update(frameDT, in)
		if d.Enemy().WasParried() {
			break
		}
	}

	if !d.Enemy().WasParried() {
		t.Fatal("expected the enemy attack to be parried")
	}
	if got := d.Player().Health(); got != 100 {
		t.Errorf("expected parry to negate all damage, got health %v", got)
	}
	if d.Enemy().State() != enemy.StateStunned {
		t.Errorf("expected enemy stunned by the parry, got %v", d.Enemy().State())
	}
	if !drainFor(d, EventParry) {
		t.Error("expected a parry event")
	}

	snap := d.Snapshot()
	if snap.FeedbackText != "PARRY!" {
		t.Errorf("expected PARRY! feedback, got %q", snap.FeedbackText)
	}
}

func TestHitStopFreezesSimulation(t *testing.T) {
	d := NewDirector(closeQuartersConfig())
	runUntilHit(t, d)

	// Hit-stop (0.055s) spans the next three frames; movement input must
	// not move the player while it runs.
	frozen := d.Player().Box()
	flashBefore := d.Snapshot().Enemy.HitFlash
	step(d, 2, Input{MoveDir: -1})
	if d.Player().Box() != frozen {
		t.Fatal("expected player frozen during hit-stop")
	}

	// Presentation timers run at real dt, so the hit flash keeps decaying
	// through the frozen frames.
	if got := d.Snapshot().Enemy.HitFlash; got >= flashBefore {
		t.Errorf("expected hit flash to decay during hit-stop, %v vs %v", got, flashBefore)
	}

	step(d, 5, Input{MoveDir: -1})
	if d.Player().Box() == frozen {
		t.Error("expected movement to resume after hit-stop")
	}
}

func TestTimeDilationSlowsOnlyTheEnemy(t *testing.T) {
	cfg := config.DefaultConfig()
	slowed := NewDirector(cfg)
	plain := NewDirector(config.DefaultConfig())

	slowed.Update(frameDT, Input{CastDilation: true})
	plain.Update(frameDT, Input{})

	if got := slowed.Player().Myth(); got != 65 {
		t.Fatalf("expected myth 65 after dilation cast, got %v", got)
	}
	if !slowed.Snapshot().Abilities.DilationActive {
		t.Fatal("expected dilation active")
	}

	slowedStart := slowed.Enemy().Box().X
	plainStart := plain.Enemy().Box().X
	step(slowed, 30, Input{})
	step(plain, 30, Input{})

	slowedMoved := math.Abs(slowed.Enemy().Box().X - slowedStart)
	plainMoved := math.Abs(plain.Enemy().Box().X - plainStart)
	if slowedMoved >= plainMoved {
		t.Errorf("expected dilated enemy to move less: %v vs %v", slowedMoved, plainMoved)
	}

	// The player is unaffected: one second of movement covers full speed.
	playerStart := slowed.Player().Box().X
	step(slowed, 30, Input{MoveDir: 1})
	moved := slowed.Player().Box().X - playerStart
	if moved < 100 {
		t.Errorf("expected full player speed under dilation, moved %v", moved)
	}
}

func TestDilationRejectedWhenUnderfunded(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Player.MaxMyth = 20
	d := NewDirector(cfg)

	d.Update(frameDT, Input{CastDilation: true})
	if d.Snapshot().Abilities.DilationActive {
		t.Error("expected cast rejected with 20 myth against cost 35")
	}
	if got := d.Player().Myth(); got != 20 {
		t.Errorf("expected myth unchanged on rejection, got %v", got)
	}
}

func TestLightningStrikeHitsAfterWarmup(t *testing.T) {
	d := NewDirector(config.DefaultConfig())

	d.Update(frameDT, Input{CastLightning: true})
	if got := d.Player().Myth(); got != 55 {
		t.Fatalf("expected myth 55 after lightning cast, got %v", got)
	}
	if len(d.Snapshot().Strikes) != 1 {
		t.Fatal("expected one pending strike in the snapshot")
	}

	// Warmup is 0.45s; the patrolling enemy stays inside the 90px radius.
	stepIdle(d, 30)
	if got := d.Enemy().Health(); got != 90 {
		t.Fatalf("expected enemy health 90 after the strike, got %v", got)
	}
	if d.Enemy().State() != enemy.StateStunned {
		t.Errorf("expected forced stun, got %v", d.Enemy().State())
	}
	if !drainFor(d, EventLightningHit) {
		t.Error("expected a lightning hit event")
	}

	// The strike resolves exactly once.
	stepIdle(d, 30)
	if got := d.Enemy().Health(); got != 90 {
		t.Errorf("expected single strike resolution, health %v", got)
	}
}

func TestVoidShiftDoubleTapDash(t *testing.T) {
	d := NewDirector(config.DefaultConfig())
	startX := d.Player().Box().X

	d.Update(frameDT, Input{TapRight: true})
	if d.Player().Box().X != startX {
		t.Fatal("expected single tap not to dash")
	}
	d.Update(frameDT, Input{TapRight: true})

	if got := d.Player().Box().X - startX; got < 140 {
		t.Fatalf("expected dash displacement near 150, got %v", got)
	}
	if !d.Player().Invulnerable() {
		t.Error("expected i-frames after dash")
	}
	if got := d.Player().Myth(); got != 75 {
		t.Errorf("expected myth 75 after dash, got %v", got)
	}
	if !drainFor(d, EventCastVoidShift) {
		t.Error("expected a void-shift event")
	}
}

func TestVoidShiftRejectedDuringCooldown(t *testing.T) {
	d := NewDirector(config.DefaultConfig())

	d.Update(frameDT, Input{TapRight: true})
	d.Update(frameDT, Input{TapRight: true})
	mythAfterDash := d.Player().Myth()

	// A second double-tap during the 3.5s cooldown must not fire or charge.
	stepIdle(d, 10)
	d.Update(frameDT, Input{TapRight: true})
	d.Update(frameDT, Input{TapRight: true})
	if got := d.Player().Myth(); got != mythAfterDash {
		t.Errorf("expected no charge during cooldown, myth %v vs %v", got, mythAfterDash)
	}
}

func TestVictoryWhenEnemyDies(t *testing.T) {
	cfg := closeQuartersConfig()
	cfg.Enemy.MaxHealth = 10
	d := NewDirector(cfg)

	runUntilHit(t, d)
	if d.Mode() != ModeVictory {
		t.Fatalf("expected victory, got %v", d.Mode())
	}
	if !drainFor(d, EventVictory) {
		t.Error("expected a victory event")
	}

	// Terminal mode ignores further updates.
	before := d.Player().Box()
	step(d, 10, Input{MoveDir: 1})
	if d.Player().Box() != before {
		t.Error("expected simulation frozen after victory")
	}
}

func TestDefeatWhenPlayerDies(t *testing.T) {
	cfg := closeQuartersConfig()
	cfg.Player.MaxHealth = 10
	d := NewDirector(cfg)

	for i := 0; i < 600 && d.Mode() == ModeRunning; i++ {
		d.Update(frameDT, Input{})
	}
	if d.Mode() != ModeDefeat {
		t.Fatalf("expected defeat, got %v", d.Mode())
	}
	if !drainFor(d, EventDefeat) {
		t.Error("expected a defeat event")
	}
}

func TestSimultaneousLethalHitsResolveAsVictory(t *testing.T) {
	// Both actors one hit from death. Windup 0.34s drains on its 21st tick
	// and the light swing's hitbox opens on its 5th tick, so triggering the
	// swing 17 frames into the windup puts both lethal hits on the same
	// frame. The player's hit resolves first: the enemy dies before its
	// counter lands.
	cfg := closeQuartersConfig()
	cfg.Player.MaxHealth = 1
	cfg.Enemy.MaxHealth = 1
	cfg.Enemy.WindupDuration = 0.34
	d := NewDirector(cfg)

	for i := 0; i < 600 && d.Enemy().State() != enemy.StateWindup; i++ {
		d.Update(frameDT, Input{})
	}
	if d.Enemy().State() != enemy.StateWindup {
		t.Fatal("expected the enemy to wind up")
	}

	stepIdle(d, 16)
	d.Update(frameDT, Input{LightAttack: true})
	stepIdle(d, 4)

	if d.Mode() != ModeVictory {
		t.Fatalf("expected the simultaneous exchange to resolve as victory, got %v", d.Mode())
	}
	if got := d.Enemy().Health(); got != 0 {
		t.Errorf("expected enemy dead, health %v", got)
	}
	if got := d.Player().Health(); got != 1 {
		t.Errorf("expected the counter-hit preempted, player health %v", got)
	}
	if drainFor(d, EventHurt) {
		t.Error("expected no hurt event in the exchange")
	}
}

func TestDashInvulnerabilityAvoidsEnemyHit(t *testing.T) {
	// Zero dash distance with a long invulnerability window keeps the
	// player inside the enemy's swing while the i-frames negate it.
	cfg := closeQuartersConfig()
	cfg.Abilities.VoidShift.Distance = 0
	cfg.Abilities.VoidShift.Invuln = 10
	d := NewDirector(cfg)

	d.Update(frameDT, Input{TapRight: true})
	d.Update(frameDT, Input{TapRight: true})
	if !d.Player().Invulnerable() {
		t.Fatal("expected i-frames after dash")
	}

	attacked := false
	for i := 0; i < 300; i++ {
		d.Update(frameDT, Input{})
		if d.Enemy().State() == enemy.StateAttack {
			attacked = true
		}
	}

	if !attacked {
		t.Fatal("expected the enemy to attack during the run")
	}
	if got := d.Player().Health(); got != 100 {
		t.Errorf("expected i-frames to negate the hit, got health %v", got)
	}
	if drainFor(d, EventHurt) {
		t.Error("expected no hurt event while invulnerable")
	}
}

func TestResetRestoresFreshState(t *testing.T) {
	d := NewDirector(closeQuartersConfig())
	runUntilHit(t, d)
	stepIdle(d, 30)

	d.Reset()
	if d.Mode() != ModeRunning {
		t.Errorf("expected running mode after reset, got %v", d.Mode())
	}
	if d.Enemy().Health() != 120 || d.Player().Health() != 100 {
		t.Error("expected both actors restored to full health")
	}
	if d.Combo() != 0 || d.MaxCombo() != 0 {
		t.Error("expected combo state cleared")
	}
	if d.Elapsed() != 0 {
		t.Errorf("expected elapsed cleared, got %v", d.Elapsed())
	}
	if len(d.DrainEvents()) != 0 {
		t.Error("expected event queue cleared")
	}
}

func TestSnapshotCarriesTrailsDuringSwing(t *testing.T) {
	d := NewDirector(config.DefaultConfig())

	d.Update(frameDT, Input{LightAttack: true})
	stepIdle(d, 7) // inside the active window, past the trail interval

	if len(d.Snapshot().Trails) == 0 {
		t.Error("expected trails while the swing hitbox is live")
	}
}

func TestHeavyHitObservedByAdaptiveModel(t *testing.T) {
	d := NewDirector(closeQuartersConfig())

	before := d.Enemy().Health()
	d.Update(frameDT, Input{HeavyAttack: true})
	for i := 0; i < 40 && d.Enemy().Health() == before; i++ {
		d.Update(frameDT, Input{})
	}
	if d.Enemy().Health() == before {
		t.Fatal("expected the heavy attack to connect")
	}

	// A connected heavy is 24 base damage at combo 0.
	if got := before - d.Enemy().Health(); got != 24 {
		t.Errorf("expected heavy damage 24, got %v", got)
	}
}
