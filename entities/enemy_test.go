package entities

import (
	"testing"

	"github.com/automoto/skyraid/shared/gamemath"
	"github.com/google/uuid"
)

func TestEnemy_IsShot(t *testing.T) {
	e := NewEnemy(gamemath.Vec2{X: 100, Y: 100})

	tests := []struct {
		name string
		pos  gamemath.Vec2
		want bool
	}{
		{"dead center", gamemath.Vec2{X: 100, Y: 100}, true},
		{"far away", gamemath.Vec2{X: 400, Y: 400}, false},
		// Rectangles overlap on the enemy's transparent top-left corner.
		{"corner of bounding box", gamemath.Vec2{X: 70, Y: 70}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBullet(tt.pos, gamemath.Forward, uuid.New())
			if got := e.IsShot(b); got != tt.want {
				t.Errorf("IsShot = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnemy_CornerRectanglesIntersect(t *testing.T) {
	e := NewEnemy(gamemath.Vec2{X: 100, Y: 100})
	b := NewBullet(gamemath.Vec2{X: 70, Y: 70}, gamemath.Forward, uuid.New())

	if !gamemath.AreIntersecting(e.Rectangle(), b.Rectangle()) {
		t.Fatalf("Expected %v and %v to intersect", e.Rectangle(), b.Rectangle())
	}
}

func TestEnemy_Shoot(t *testing.T) {
	e := NewEnemy(gamemath.Vec2{X: 245, Y: 100})
	b := e.Shoot()

	if p := b.Position(); p.X != 245 || p.Y != 100 {
		t.Errorf("Expected bullet at (245, 100), got (%v, %v)", p.X, p.Y)
	}
	if b.Direction() != gamemath.Backward || b.Launcher() != uuid.Nil {
		t.Error("Expected a backward bullet without launcher")
	}
}

func TestEnemy_DoesNotMove(t *testing.T) {
	e := NewEnemy(gamemath.Vec2{X: 45, Y: 100})
	e.Update(10)

	if p := e.Position(); p.X != 45 || p.Y != 100 {
		t.Errorf("Expected enemy to stay at (45, 100), got (%v, %v)", p.X, p.Y)
	}
}
