package entities

import (
	"github.com/automoto/skyraid/assets"
	"github.com/automoto/skyraid/shared/gamemath"
	"github.com/automoto/skyraid/sprite"
	"github.com/automoto/skyraid/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
)

// Enemy is a stationary target. Its resolv body mirrors the sprite's bounding
// rectangle so the owning group can narrow hit tests.
type Enemy struct {
	sprite *sprite.Sprite
	body   *resolv.Object
}

func NewEnemy(pos gamemath.Vec2) *Enemy {
	s := sprite.New(assets.Enemy())
	s.Position = pos

	r := s.Rectangle()
	body := resolv.NewObject(float64(r.Left), float64(r.Top), float64(s.Width()), float64(s.Height()), tags.ResolvEnemy)

	return &Enemy{sprite: s, body: body}
}

// IsShot reports whether b hits this enemy: the bounding rectangles must
// intersect and the masks must overlap.
func (e *Enemy) IsShot(b *Bullet) bool {
	if !gamemath.AreIntersecting(b.Rectangle(), e.Rectangle()) {
		return false
	}
	return e.sprite.MasksOverlap(b.Sprite())
}

// Shoot returns a new enemy bullet at the enemy's position. The caller owns it.
func (e *Enemy) Shoot() *Bullet {
	return NewEnemyBullet(e.sprite.Position)
}

func (e *Enemy) Update(dt float64) {
	e.sprite.Update(dt)
}

func (e *Enemy) Draw(screen *ebiten.Image) {
	e.sprite.Draw(screen)
}

func (e *Enemy) Rectangle() gamemath.Rect { return e.sprite.Rectangle() }
func (e *Enemy) Position() gamemath.Vec2  { return e.sprite.Position }
