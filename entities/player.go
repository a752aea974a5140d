package entities

import (
	"iter"
	"slices"
	"time"

	"github.com/automoto/skyraid/assets"
	"github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/shared/gamemath"
	"github.com/automoto/skyraid/sprite"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
)

// SpeedState tracks the jet engine sound.
type SpeedState int

const (
	SpeedStop SpeedState = iota
	SpeedStart
)

// Player is the plane controlled by the user. It owns the bullets it fires.
//
// A player is either alive or exploding. Explode starts the explosion and
// AdvanceExplosion steps it until the last frame, after which the player is
// alive again.
type Player struct {
	id        uuid.UUID
	sprite    *sprite.Sprite
	explosion *sprite.Animated
	bullets   []*Bullet
	facing    gamemath.Direction

	lives int
	score int

	exploding      bool
	explosionFrame int

	now      func() time.Time
	lastShot time.Time

	speedState SpeedState
	soundTimer float64
	sound      SoundPlayer
}

type PlayerOption func(*Player)

// WithPlayerClock replaces time.Now for the shoot cooldown.
func WithPlayerClock(now func() time.Time) PlayerOption {
	return func(p *Player) { p.now = now }
}

// WithSoundPlayer sets where jet and explosion sounds are sent.
func WithSoundPlayer(s SoundPlayer) PlayerOption {
	return func(p *Player) { p.sound = s }
}

// NewPlayer creates a player facing forward at pos.
func NewPlayer(pos gamemath.Vec2, opts ...PlayerOption) *Player {
	p := &Player{
		id:        uuid.New(),
		sprite:    sprite.New(assets.Plane(gamemath.Forward)),
		explosion: sprite.NewAnimated(assets.Explosion()),
		facing:    gamemath.Forward,
		lives:     config.Player.StartingLives,
		now:       time.Now,
	}
	p.sprite.Position = pos
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Move adds the configured increment to the velocity once per direction set
// in flags. Repeated calls accumulate.
func (p *Player) Move(flags gamemath.Direction) {
	inc := config.Player.MoveIncrement
	v := &p.sprite.Velocity
	if flags.Has(gamemath.Left) {
		v.X -= inc
	}
	if flags.Has(gamemath.Right) {
		v.X += inc
	}
	if flags.Has(gamemath.Forward) {
		v.Y -= inc
	}
	if flags.Has(gamemath.Backward) {
		v.Y += inc
	}
}

// Update stops the plane at the edges of bounds, drops bullets that left
// bounds, moves the plane and its bullets, and updates the engine sound.
func (p *Player) Update(dt float64, bounds gamemath.Rect) {
	r := p.sprite.Rectangle()
	v := p.sprite.Velocity
	if (v.X < 0 && r.Left <= bounds.Left) || (v.X > 0 && r.Right >= bounds.Right) {
		p.ResetXVelocity()
	}
	if (v.Y < 0 && r.Top <= bounds.Top) || (v.Y > 0 && r.Bottom >= bounds.Bottom) {
		p.ResetYVelocity()
	}

	p.bullets = slices.DeleteFunc(p.bullets, func(b *Bullet) bool {
		return !b.IsInRectangle(bounds)
	})

	p.sprite.Update(dt)
	for _, b := range p.bullets {
		b.Update(dt)
	}

	p.updateEngineSound(dt)
}

func (p *Player) updateEngineSound(dt float64) {
	speed := p.sprite.Velocity.Magnitude()
	p.soundTimer += dt

	switch p.speedState {
	case SpeedStop:
		if speed > config.Player.JetStartSpeed {
			p.speedState = SpeedStart
			p.play(config.SoundJetStart)
			p.soundTimer = 0
		}
	case SpeedStart:
		if speed < config.Player.JetStopSpeed {
			p.speedState = SpeedStop
			p.play(config.SoundJetStop)
			p.soundTimer = 0
		} else if p.soundTimer > config.Player.JetCabinInterval {
			p.play(config.SoundJetCabin)
			p.soundTimer = 0
		}
	}
}

func (p *Player) play(id config.SoundID) {
	if p.sound != nil {
		p.sound.Play(id)
	}
}

// Shoot fires a bullet in the facing direction. It does nothing while
// exploding or within the cooldown of the previous shot.
func (p *Player) Shoot() {
	if p.exploding {
		return
	}

	now := p.now()
	if !p.lastShot.IsZero() && now.Sub(p.lastShot) < config.Player.ShootCooldown {
		return
	}

	p.bullets = append(p.bullets, NewBullet(p.sprite.Position, p.facing, p.id))
	p.lastShot = now
}

// ShootEnemies offers every bullet to group. Bullets that hit are removed and
// each one scores a point. It returns the number of kills.
func (p *Player) ShootEnemies(group *EnemyGroup) int {
	kills := 0
	p.bullets = slices.DeleteFunc(p.bullets, func(b *Bullet) bool {
		if group.HandleBullet(b) {
			kills++
			return true
		}
		return false
	})
	p.score += kills
	return kills
}

// RotateLeft turns the plane a quarter turn counterclockwise.
func (p *Player) RotateLeft() {
	p.face(p.facing.RotateLeft())
}

// RotateRight turns the plane a quarter turn clockwise.
func (p *Player) RotateRight() {
	p.face(p.facing.RotateRight())
}

func (p *Player) face(dir gamemath.Direction) {
	p.facing = dir
	p.sprite.SetVisual(assets.Plane(dir))
}

// GetShot checks the group's bullets against the plane. The first hit costs
// a life, starts the explosion and is removed from the group.
func (p *Player) GetShot(group *EnemyGroup) bool {
	if p.exploding {
		return false
	}

	r := p.sprite.Rectangle()
	var hit *Bullet
	for b := range group.Bullets() {
		if gamemath.AreIntersecting(b.Rectangle(), r) && p.sprite.MasksOverlap(b.Sprite()) {
			hit = b
			break
		}
	}
	if hit == nil {
		return false
	}

	group.RemoveBullet(hit)
	p.DecreaseLives()
	p.Explode()
	return true
}

// IsShot reports whether b hits the plane. The player's own bullets never do,
// and nothing does while exploding.
func (p *Player) IsShot(b *Bullet) bool {
	if b.WasFiredBy(p.id) || p.exploding {
		return false
	}
	if !gamemath.AreIntersecting(b.Rectangle(), p.sprite.Rectangle()) {
		return false
	}
	return p.sprite.MasksOverlap(b.Sprite())
}

// Explode starts the explosion animation at the plane's position.
func (p *Player) Explode() {
	p.explosion.Position = p.sprite.Position
	p.explosion.SetFrame(0)
	p.exploding = true
	p.play(config.SoundExplosion)
}

// AdvanceExplosion shows the next explosion frame. After the last frame the
// player is alive again, stationary, and AdvanceExplosion returns false. It
// also returns false when the player is not exploding.
func (p *Player) AdvanceExplosion() bool {
	if !p.exploding {
		return false
	}

	p.explosion.SetFrame(p.explosionFrame)
	p.explosionFrame++
	if p.explosionFrame == p.explosion.FrameCount() {
		p.exploding = false
		p.explosionFrame = 0
		p.sprite.Velocity = gamemath.Vec2{}
		p.speedState = SpeedStop
		return false
	}
	return true
}

// Draw renders the bullets, then the plane or its explosion.
func (p *Player) Draw(screen *ebiten.Image) {
	for _, b := range p.bullets {
		b.Draw(screen)
	}
	if p.exploding {
		p.explosion.Draw(screen)
		return
	}
	p.sprite.Draw(screen)
}

func (p *Player) DecreaseLives()  { p.lives-- }
func (p *Player) ResetXVelocity() { p.sprite.Velocity.X = 0 }
func (p *Player) ResetYVelocity() { p.sprite.Velocity.Y = 0 }

func (p *Player) Position() gamemath.Vec2       { return p.sprite.Position }
func (p *Player) SetPosition(pos gamemath.Vec2) { p.sprite.Position = pos }
func (p *Player) Velocity() gamemath.Vec2       { return p.sprite.Velocity }
func (p *Player) SetVelocity(v gamemath.Vec2)   { p.sprite.Velocity = v }
func (p *Player) Rectangle() gamemath.Rect      { return p.sprite.Rectangle() }
func (p *Player) Sprite() *sprite.Sprite        { return p.sprite }

func (p *Player) ID() uuid.UUID              { return p.id }
func (p *Player) Lives() int                 { return p.lives }
func (p *Player) Score() int                 { return p.score }
func (p *Player) Facing() gamemath.Direction { return p.facing }
func (p *Player) IsExploding() bool          { return p.exploding }
func (p *Player) SpeedState() SpeedState     { return p.speedState }
func (p *Player) ExplosionFrame() int        { return p.explosion.FrameIndex() }

// Bullets iterates over the player's bullets in flight, oldest first.
func (p *Player) Bullets() iter.Seq[*Bullet] { return slices.Values(p.bullets) }
func (p *Player) BulletCount() int           { return len(p.bullets) }
