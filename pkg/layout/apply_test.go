package layout

import "testing"

func TestApplyConstraintEffects(t *testing.T) {
	// Target occupies (100,200)-(300,500): width 200, height 300.
	target := TargetRect{
		Left: 100, Top: 200, Right: 300, Bottom: 500,
		Width: 200, Height: 300,
	}
	// Source is 40x20, seeded away from everything.
	seed := Rect{X: 7, Y: 13, Width: 40, Height: 20}

	tests := []struct {
		rel    Relation
		margin int
		bias   float64
		wantX  int
		wantY  int
	}{
		{LeftToLeft, 10, 0, 110, seed.Y},
		{LeftToRight, 10, 0, 310, seed.Y},
		{RightToLeft, 10, 0, 100 - 40 - 10, seed.Y},
		{RightToRight, 10, 0, 300 - 40 - 10, seed.Y},
		{TopToTop, 10, 0, seed.X, 210},
		{TopToBottom, 10, 0, seed.X, 510},
		{BottomToTop, 10, 0, seed.X, 200 - 20 - 10},
		{BottomToBottom, 10, 0, seed.X, 500 - 20 - 10},

		// Writing-direction forms behave as their left/right counterparts.
		{StartToStart, 5, 0, 105, seed.Y},
		{StartToEnd, 5, 0, 305, seed.Y},
		{EndToStart, 5, 0, 100 - 40 - 5, seed.Y},
		{EndToEnd, 5, 0, 300 - 40 - 5, seed.Y},

		// Legacy verbs.
		{Above, 5, 0, seed.X, 200 - 20 - 5},
		{Below, 5, 0, seed.X, 505},
		{LeftOf, 5, 0, 100 - 40 - 5, seed.Y},
		{RightOf, 5, 0, 305, seed.Y},

		// Centering: x = left + floor((tw - w) * bias).
		{CenterHorizontal, 0, 0.5, 100 + 80, seed.Y},
		{CenterVertical, 0, 0.5, seed.X, 200 + 140},
		{CenterHorizontal, 0, 0.0, 100, seed.Y},
		{CenterHorizontal, 0, 1.0, 100 + 160, seed.Y},
		{CenterHorizontal, 0, 0.25, 100 + 40, seed.Y},
	}

	for _, tt := range tests {
		t.Run(tt.rel.String(), func(t *testing.T) {
			r := seed
			applyConstraint(&r, tt.rel, target, tt.margin, tt.bias)
			if r.X != tt.wantX || r.Y != tt.wantY {
				t.Errorf("%v: got (%d,%d), want (%d,%d)", tt.rel, r.X, r.Y, tt.wantX, tt.wantY)
			}
			if r.Width != seed.Width || r.Height != seed.Height {
				t.Errorf("%v mutated size: %dx%d", tt.rel, r.Width, r.Height)
			}
		})
	}
}

func TestApplyConstraintCenterFloorsNegative(t *testing.T) {
	// Component wider than its target: (tw - w) is negative and the offset
	// must floor, not truncate toward zero.
	target := TargetRect{Left: 0, Top: 0, Right: 100, Bottom: 100, Width: 100, Height: 100}
	r := Rect{Width: 151, Height: 10}
	applyConstraint(&r, CenterHorizontal, target, 0, 0.5)
	// floor(-51 * 0.5) = floor(-25.5) = -26
	if r.X != -26 {
		t.Errorf("X = %d, want -26", r.X)
	}
}

func TestFloorScale(t *testing.T) {
	tests := []struct {
		n    int
		bias float64
		want int
	}{
		{100, 0.5, 50},
		{101, 0.5, 50},
		{-101, 0.5, -51},
		{0, 0.5, 0},
		{100, 0, 0},
		{100, 1, 100},
	}
	for _, tt := range tests {
		if got := floorScale(tt.n, tt.bias); got != tt.want {
			t.Errorf("floorScale(%d, %v) = %d, want %d", tt.n, tt.bias, got, tt.want)
		}
	}
}
