package attack

import (
	"testing"

	"mythduel/internal/collision"
	"mythduel/internal/config"
)

func testTable(t *testing.T) Table {
	t.Helper()
	return TableFromConfig(config.DefaultConfig())
}

func TestTableFromConfig(t *testing.T) {
	table := testTable(t)

	if table.Light.Kind != Light || table.Heavy.Kind != Heavy {
		t.Fatal("expected profiles tagged with their kinds")
	}
	if table.Light.Damage != 12 || table.Heavy.Damage != 24 {
		t.Errorf("expected damage 12/24, got %v/%v", table.Light.Damage, table.Heavy.Damage)
	}
	if table.Get(Light).Kind != Light || table.Get(Heavy).Kind != Heavy {
		t.Error("expected Get to return the matching profile")
	}
	if table.Light.HitboxHeight != table.Heavy.HitboxHeight {
		t.Error("expected shared hitbox height across profiles")
	}
}

func TestHitboxExistsOnlyInActiveWindow(t *testing.T) {
	table := testTable(t)
	owner := collision.NewBox(200, 330, 54, 90)

	cases := []struct {
		name    string
		elapsed float64
		want    bool
	}{
		{"before active start", 0.04, false},
		{"at active start", 0.08, true},
		{"mid window", 0.12, true},
		{"at active end", 0.18, true},
		{"after active end", 0.20, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inst := NewInstance(table.Light)
			inst.Tick(tc.elapsed)
			if _, ok := inst.Hitbox(owner, 1); ok != tc.want {
				t.Errorf("expected hitbox presence %v at elapsed %v, got %v",
					tc.want, tc.elapsed, ok)
			}
		})
	}
}

func TestHitboxPlacementFollowsFacing(t *testing.T) {
	table := testTable(t)
	owner := collision.NewBox(200, 330, 54, 90)

	inst := NewInstance(table.Light)
	inst.Tick(0.1)

	right, ok := inst.Hitbox(owner, 1)
	if !ok {
		t.Fatal("expected active hitbox")
	}
	if right.CenterX() <= owner.CenterX() {
		t.Errorf("expected right-facing hitbox ahead of owner, got center %v vs %v",
			right.CenterX(), owner.CenterX())
	}

	left, ok := inst.Hitbox(owner, -1)
	if !ok {
		t.Fatal("expected active hitbox")
	}
	if left.CenterX() >= owner.CenterX() {
		t.Errorf("expected left-facing hitbox behind owner, got center %v vs %v",
			left.CenterX(), owner.CenterX())
	}
}

func TestInstanceDone(t *testing.T) {
	table := testTable(t)
	inst := NewInstance(table.Light)

	inst.Tick(0.1)
	if inst.Done() {
		t.Fatal("expected swing still running mid-duration")
	}

	inst.Tick(1)
	if !inst.Done() {
		t.Fatal("expected swing done after full duration")
	}
	if _, ok := inst.Hitbox(collision.NewBox(0, 0, 10, 10), 1); ok {
		t.Error("expected no hitbox from a finished swing")
	}
}

func TestMarkConnected(t *testing.T) {
	table := testTable(t)
	inst := NewInstance(table.Heavy)

	if inst.Connected() {
		t.Fatal("expected fresh swing unconnected")
	}
	inst.MarkConnected()
	if !inst.Connected() {
		t.Fatal("expected swing connected after mark")
	}
}

func TestKindString(t *testing.T) {
	if Light.String() != "light" || Heavy.String() != "heavy" {
		t.Errorf("expected light/heavy, got %v/%v", Light.String(), Heavy.String())
	}
}
