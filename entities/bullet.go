package entities

import (
	"github.com/automoto/skyraid/assets"
	"github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/shared/gamemath"
	"github.com/automoto/skyraid/sprite"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
)

// Bullet is a projectile travelling along one cardinal direction at a fixed
// speed. Its heading never changes after construction.
type Bullet struct {
	sprite   *sprite.Sprite
	dir      gamemath.Direction
	launcher uuid.UUID
}

// NewBullet spawns a bullet at pos heading in dir. launcher identifies the
// actor that fired it; uuid.Nil means an enemy.
func NewBullet(pos gamemath.Vec2, dir gamemath.Direction, launcher uuid.UUID) *Bullet {
	s := sprite.New(assets.Bullet(dir, launcher == uuid.Nil))
	s.Position = pos
	s.Velocity = dir.Unit().MulScalar(config.Bullet.Speed)

	return &Bullet{
		sprite:   s,
		dir:      dir,
		launcher: launcher,
	}
}

// NewEnemyBullet spawns a bullet heading down the screen with no launcher.
func NewEnemyBullet(pos gamemath.Vec2) *Bullet {
	return NewBullet(pos, gamemath.Backward, uuid.Nil)
}

func (b *Bullet) Update(dt float64) {
	b.sprite.Update(dt)
}

func (b *Bullet) Draw(screen *ebiten.Image) {
	b.sprite.Draw(screen)
}

// IsInRectangle reports whether any part of the bullet is still inside bounds.
func (b *Bullet) IsInRectangle(bounds gamemath.Rect) bool {
	return !b.Rectangle().Outside(bounds)
}

// WasFiredBy reports whether id launched this bullet.
func (b *Bullet) WasFiredBy(id uuid.UUID) bool {
	return b.launcher == id
}

func (b *Bullet) Rectangle() gamemath.Rect      { return b.sprite.Rectangle() }
func (b *Bullet) Sprite() *sprite.Sprite        { return b.sprite }
func (b *Bullet) Direction() gamemath.Direction { return b.dir }
func (b *Bullet) Launcher() uuid.UUID           { return b.launcher }
func (b *Bullet) Position() gamemath.Vec2       { return b.sprite.Position }
