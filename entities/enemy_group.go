package entities

import (
	"iter"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/shared/gamemath"
	"github.com/automoto/skyraid/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
)

// EnemyGroup is one wave of enemies together with the bullets they have
// fired. A group starts populated and becomes empty as enemies are shot;
// GenerateEnemies starts the next wave.
type EnemyGroup struct {
	enemies []*Enemy
	bullets []*Bullet

	space *resolv.Space

	rng      *rand.Rand
	now      func() time.Time
	lastFire time.Time
}

type GroupOption func(*EnemyGroup)

// WithGroupClock replaces time.Now for the fire gate.
func WithGroupClock(now func() time.Time) GroupOption {
	return func(g *EnemyGroup) { g.now = now }
}

// WithGroupRand sets the source used to pick which enemy fires.
func WithGroupRand(r *rand.Rand) GroupOption {
	return func(g *EnemyGroup) { g.rng = r }
}

// NewEnemyGroup builds a populated wave. The fire gate starts closed, so the
// first shot comes one fire interval after construction.
func NewEnemyGroup(opts ...GroupOption) *EnemyGroup {
	g := &EnemyGroup{now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(uint64(g.now().UnixNano()), 0))
	}

	w, h := waveExtent()
	g.space = resolv.NewSpace(w, h, config.Wave.SpaceCellSize, config.Wave.SpaceCellSize)
	g.lastFire = g.now()

	g.GenerateEnemies()
	return g
}

// waveExtent returns a space size covering both the screen and the full
// enemy grid.
func waveExtent() (int, int) {
	w := config.Wave
	rows := (w.EnemyCount + w.EnemiesPerRow - 1) / w.EnemiesPerRow
	gridW := int(w.OriginX+w.SpacingX*float64(w.EnemiesPerRow)) + w.EnemyWidth
	gridH := int(w.OriginY+w.SpacingY*float64(rows)) + w.EnemyHeight
	return max(config.C.Width, gridW), max(config.C.Height, gridH)
}

// GenerateEnemies replaces the current wave with a fresh grid of enemies and
// discards any enemy bullets still in flight.
func (g *EnemyGroup) GenerateEnemies() {
	for _, e := range g.enemies {
		g.space.Remove(e.body)
	}

	w := config.Wave
	g.enemies = make([]*Enemy, 0, w.EnemyCount)
	g.bullets = nil

	for i := 0; i < w.EnemyCount; i++ {
		pos := gamemath.Vec2{
			X: w.OriginX + w.SpacingX*float64(i%w.EnemiesPerRow),
			Y: w.OriginY + w.SpacingY*float64(i/w.EnemiesPerRow),
		}
		e := NewEnemy(pos)
		g.space.Add(e.body)
		g.enemies = append(g.enemies, e)
	}
}

// HandleBullet removes the first enemy hit by b. At most one enemy is removed
// per call.
func (g *EnemyGroup) HandleBullet(b *Bullet) bool {
	near := g.nearby(b)
	if len(near) == 0 {
		return false
	}

	for i, e := range g.enemies {
		if _, ok := near[e.body]; !ok {
			continue
		}
		if e.IsShot(b) {
			g.space.Remove(e.body)
			g.enemies = slices.Delete(g.enemies, i, i+1)
			return true
		}
	}
	return false
}

// nearby returns the enemy bodies sharing space cells with b's rectangle,
// padded by the probe margin.
func (g *EnemyGroup) nearby(b *Bullet) map[*resolv.Object]struct{} {
	r := b.Rectangle()
	m := config.Wave.ProbeMargin

	probe := resolv.NewObject(float64(r.Left)-m, float64(r.Top)-m, float64(r.Width())+2*m, float64(r.Height())+2*m, tags.ResolvProbe)
	g.space.Add(probe)
	defer g.space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return nil
	}

	found := check.ObjectsByTags(tags.ResolvEnemy)
	near := make(map[*resolv.Object]struct{}, len(found))
	for _, obj := range found {
		near[obj] = struct{}{}
	}
	return near
}

// ShootRandom lets one randomly chosen enemy fire, at most once per fire
// interval. It does nothing when the group is empty.
func (g *EnemyGroup) ShootRandom() {
	if len(g.enemies) == 0 {
		return
	}

	now := g.now()
	if now.Sub(g.lastFire) < config.Wave.FireInterval {
		return
	}
	g.lastFire = now

	e := g.enemies[g.rng.IntN(len(g.enemies))]
	g.bullets = append(g.bullets, e.Shoot())
}

// Update advances enemies and their bullets, then drops bullets that have
// left bounds.
func (g *EnemyGroup) Update(dt float64, bounds gamemath.Rect) {
	for _, e := range g.enemies {
		e.Update(dt)
	}
	for _, b := range g.bullets {
		b.Update(dt)
	}

	g.bullets = slices.DeleteFunc(g.bullets, func(b *Bullet) bool {
		return !b.IsInRectangle(bounds)
	})
}

func (g *EnemyGroup) Draw(screen *ebiten.Image) {
	for _, e := range g.enemies {
		e.Draw(screen)
	}
	for _, b := range g.bullets {
		b.Draw(screen)
	}
}

// Bullets iterates over in-flight enemy bullets, oldest first.
func (g *EnemyGroup) Bullets() iter.Seq[*Bullet] {
	return slices.Values(g.bullets)
}

// RemoveBullet drops b from the group. It reports whether b was in flight.
func (g *EnemyGroup) RemoveBullet(b *Bullet) bool {
	i := slices.Index(g.bullets, b)
	if i < 0 {
		return false
	}
	g.bullets = slices.Delete(g.bullets, i, i+1)
	return true
}

func (g *EnemyGroup) IsEmpty() bool    { return len(g.enemies) == 0 }
func (g *EnemyGroup) Len() int         { return len(g.enemies) }
func (g *EnemyGroup) BulletCount() int { return len(g.bullets) }
