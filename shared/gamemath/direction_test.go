package gamemath

import "testing"

var cardinals = []Direction{Forward, Backward, Left, Right}

func TestDirection_RotationIsInvertible(t *testing.T) {
	for _, d := range cardinals {
		if got := d.RotateLeft().RotateRight(); got != d {
			t.Errorf("%v: left then right gave %v", d, got)
		}
		if got := d.RotateRight().RotateLeft(); got != d {
			t.Errorf("%v: right then left gave %v", d, got)
		}
	}
}

func TestDirection_RotateLeftCycle(t *testing.T) {
	want := []Direction{Left, Backward, Right, Forward}
	d := Forward
	for i, w := range want {
		d = d.RotateLeft()
		if d != w {
			t.Fatalf("step %d: expected %v, got %v", i, w, d)
		}
	}
}

func TestDirection_FourRotationsIsIdentity(t *testing.T) {
	for _, d := range cardinals {
		l, r := d, d
		for i := 0; i < 4; i++ {
			l = l.RotateLeft()
			r = r.RotateRight()
		}
		if l != d || r != d {
			t.Errorf("%v: four rotations gave left=%v right=%v", d, l, r)
		}
	}
}

func TestDirection_Cardinal(t *testing.T) {
	for _, d := range cardinals {
		if !d.Cardinal() {
			t.Errorf("%v should be cardinal", d)
		}
	}
	if (Forward | Left).Cardinal() {
		t.Error("combined flags should not be cardinal")
	}
	if Direction(0).Cardinal() {
		t.Error("zero direction should not be cardinal")
	}
}

func TestDirection_Unit(t *testing.T) {
	tests := []struct {
		d    Direction
		x, y float64
	}{
		{Forward, 0, -1},
		{Backward, 0, 1},
		{Left, -1, 0},
		{Right, 1, 0},
	}
	for _, tt := range tests {
		u := tt.d.Unit()
		if u.X != tt.x || u.Y != tt.y {
			t.Errorf("%v: expected (%v, %v), got (%v, %v)", tt.d, tt.x, tt.y, u.X, u.Y)
		}
	}
}

func TestIntegrate(t *testing.T) {
	pos := Vec2{X: 10, Y: 20}
	vel := Vec2{X: 0, Y: -300}
	got := Integrate(pos, vel, 0.5)
	if got.X != 10 || got.Y != -130 {
		t.Errorf("Expected (10, -130), got (%v, %v)", got.X, got.Y)
	}
}
