package collision

import "testing"

func TestBoxAccessors(t *testing.T) {
	b := NewBox(10, 20, 30, 40)

	if b.Left() != 10 || b.Right() != 40 {
		t.Errorf("expected edges 10/40, got %v/%v", b.Left(), b.Right())
	}
	if b.Top() != 20 || b.Bottom() != 60 {
		t.Errorf("expected edges 20/60, got %v/%v", b.Top(), b.Bottom())
	}
	if b.CenterX() != 25 || b.CenterY() != 40 {
		t.Errorf("expected center 25/40, got %v/%v", b.CenterX(), b.CenterY())
	}
}

func TestNewBoxCentered(t *testing.T) {
	b := NewBoxCentered(100, 50, 20, 10)
	if b.X != 90 || b.Y != 45 {
		t.Errorf("expected top-left 90/45, got %v/%v", b.X, b.Y)
	}
	if b.CenterX() != 100 || b.CenterY() != 50 {
		t.Errorf("expected center preserved, got %v/%v", b.CenterX(), b.CenterY())
	}
}

func TestOverlaps(t *testing.T) {
	base := NewBox(0, 0, 10, 10)

	cases := []struct {
		name  string
		other Box
		want  bool
	}{
		{"identical", NewBox(0, 0, 10, 10), true},
		{"partial", NewBox(5, 5, 10, 10), true},
		{"contained", NewBox(2, 2, 4, 4), true},
		{"touching right edge", NewBox(10, 0, 10, 10), false},
		{"touching bottom edge", NewBox(0, 10, 10, 10), false},
		{"disjoint", NewBox(50, 50, 5, 5), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Overlaps(tc.other); got != tc.want {
				t.Errorf("expected overlap %v, got %v", tc.want, got)
			}
			// Overlap is symmetric.
			if got := tc.other.Overlaps(base); got != tc.want {
				t.Errorf("expected symmetric overlap %v, got %v", tc.want, got)
			}
		})
	}
}

func TestShifted(t *testing.T) {
	b := NewBox(5, 5, 10, 10).Shifted(3, -2)
	if b.X != 8 || b.Y != 3 {
		t.Errorf("expected shifted to 8/3, got %v/%v", b.X, b.Y)
	}
}

func TestClampHorizontal(t *testing.T) {
	left := NewBox(-10, 0, 20, 20).ClampHorizontal(0, 100)
	if left.Left() != 0 {
		t.Errorf("expected left edge clamped to 0, got %v", left.Left())
	}

	right := NewBox(95, 0, 20, 20).ClampHorizontal(0, 100)
	if right.Right() != 100 {
		t.Errorf("expected right edge clamped to 100, got %v", right.Right())
	}

	inside := NewBox(40, 0, 20, 20).ClampHorizontal(0, 100)
	if inside.X != 40 {
		t.Errorf("expected box unchanged inside bounds, got x=%v", inside.X)
	}
}

func TestClampBottom(t *testing.T) {
	falling, grounded := NewBox(0, 390, 20, 40).ClampBottom(420)
	if !grounded {
		t.Fatal("expected box below ground to be grounded")
	}
	if falling.Bottom() != 420 {
		t.Errorf("expected bottom at 420, got %v", falling.Bottom())
	}

	airborne, grounded := NewBox(0, 100, 20, 40).ClampBottom(420)
	if grounded {
		t.Fatal("expected airborne box not grounded")
	}
	if airborne.Y != 100 {
		t.Errorf("expected airborne box unchanged, got y=%v", airborne.Y)
	}
}
