package sprite

import (
	"github.com/automoto/skyraid/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
)

var drawOp = &ebiten.DrawImageOptions{}

// Sprite is a movable entity with a centered bounding rectangle and a
// collision mask taken from its current frame.
type Sprite struct {
	Position gamemath.Vec2
	Velocity gamemath.Vec2
	visual   *Frame
}

func New(visual *Frame) *Sprite {
	return &Sprite{visual: visual}
}

// Update integrates position by velocity over dt seconds.
func (s *Sprite) Update(dt float64) {
	s.Position = gamemath.Integrate(s.Position, s.Velocity, dt)
}

func (s *Sprite) Width() int     { return s.visual.Width() }
func (s *Sprite) Height() int    { return s.visual.Height() }
func (s *Sprite) Visual() *Frame { return s.visual }

// SetVisual swaps the image and mask in place. Position and velocity are kept.
func (s *Sprite) SetVisual(f *Frame) {
	s.visual = f
}

// Rectangle returns the bounding rectangle at the current position.
func (s *Sprite) Rectangle() gamemath.Rect {
	return gamemath.NewRect(s.Position.X, s.Position.Y, s.Width(), s.Height())
}

// MasksOverlap reports whether a solid pixel of s coincides with a solid pixel
// of other in world space.
func (s *Sprite) MasksOverlap(other *Sprite) bool {
	a, b := s.Rectangle(), other.Rectangle()
	return s.visual.Mask().Overlaps(other.visual.Mask(), b.Left-a.Left, b.Top-a.Top)
}

func (s *Sprite) Draw(screen *ebiten.Image) {
	r := s.Rectangle()
	drawOp.GeoM.Reset()
	drawOp.GeoM.Translate(float64(r.Left), float64(r.Top))
	screen.DrawImage(s.visual.Image(), drawOp)
}
