package sprite

import (
	"image"
	"image/color"
	"testing"

	"github.com/automoto/skyraid/shared/gamemath"
)

// solidImage returns a w x h image whose pixels are opaque where solid returns true.
func solidImage(w, h int, solid func(x, y int) bool) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if solid(x, y) {
				img.Set(x, y, color.NRGBA{R: 255, A: 255})
			}
		}
	}
	return img
}

func filled(x, y int) bool { return true }

func TestMask_FromAlpha(t *testing.T) {
	// Only the left column is solid, plus one half-transparent pixel.
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		img.Set(0, y, color.NRGBA{A: 255})
	}
	img.Set(3, 2, color.NRGBA{A: 0x40})

	m := NewMask(img)
	if m.Width() != 4 || m.Height() != 3 {
		t.Fatalf("Expected 4x3 mask, got %dx%d", m.Width(), m.Height())
	}
	if m.Count() != 3 {
		t.Errorf("Expected 3 solid pixels, got %d", m.Count())
	}
	if !m.Opaque(0, 1) {
		t.Error("Expected (0,1) to be solid")
	}
	if m.Opaque(3, 2) {
		t.Error("Expected faint pixel (3,2) to be transparent")
	}
	if m.Opaque(-1, 0) || m.Opaque(4, 0) || m.Opaque(0, 3) {
		t.Error("Expected out-of-range pixels to be transparent")
	}
}

func TestMask_WideRowsUseSeveralWords(t *testing.T) {
	m := NewMask(solidImage(130, 2, func(x, y int) bool { return x == 129 && y == 1 }))
	if !m.Opaque(129, 1) {
		t.Error("Expected (129,1) to be solid")
	}
	if m.Opaque(129, 0) || m.Opaque(65, 1) {
		t.Error("Expected neighbouring pixels to stay transparent")
	}
	if m.Count() != 1 {
		t.Errorf("Expected 1 solid pixel, got %d", m.Count())
	}
}

func TestMask_Overlaps(t *testing.T) {
	// A hollow 10x10 square and a 2x2 block.
	ring := NewMask(solidImage(10, 10, func(x, y int) bool {
		return x == 0 || y == 0 || x == 9 || y == 9
	}))
	block := NewMask(solidImage(2, 2, filled))

	tests := []struct {
		name   string
		dx, dy int
		want   bool
	}{
		{"inside the hole", 4, 4, false},
		{"on the left wall", -1, 4, true},
		{"on the bottom wall", 4, 8, true},
		{"just outside", 10, 4, false},
		{"far away", 50, 50, false},
		{"corner overlap", -1, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ring.Overlaps(block, tt.dx, tt.dy); got != tt.want {
				t.Errorf("ring.Overlaps(block, %d, %d) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
			if got := block.Overlaps(ring, -tt.dx, -tt.dy); got != tt.want {
				t.Errorf("block.Overlaps(ring, %d, %d) = %v, want %v", -tt.dx, -tt.dy, got, tt.want)
			}
		})
	}
}

func TestSprite_UpdateIntegratesVelocity(t *testing.T) {
	s := New(NewFrame(solidImage(4, 4, filled)))
	s.Position = gamemath.Vec2{X: 100, Y: 100}
	s.Velocity = gamemath.Vec2{X: 30, Y: -300}

	s.Update(0.5)

	if s.Position.X != 115 || s.Position.Y != -50 {
		t.Errorf("Expected position (115, -50), got (%v, %v)", s.Position.X, s.Position.Y)
	}
}

func TestSprite_RectangleFollowsPosition(t *testing.T) {
	s := New(NewFrame(solidImage(20, 10, filled)))
	s.Position = gamemath.Vec2{X: 50, Y: 50}

	want := gamemath.Rect{Left: 40, Top: 45, Right: 60, Bottom: 55}
	if got := s.Rectangle(); got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}

	s.Velocity = gamemath.Vec2{X: 10}
	s.Update(1)

	want = gamemath.Rect{Left: 50, Top: 45, Right: 70, Bottom: 55}
	if got := s.Rectangle(); got != want {
		t.Errorf("Expected %v after move, got %v", want, got)
	}
}

func TestSprite_MasksOverlapInWorldSpace(t *testing.T) {
	// Diagonal line: only pixels where x == y are solid.
	diag := NewFrame(solidImage(10, 10, func(x, y int) bool { return x == y }))
	dot := NewFrame(solidImage(2, 2, filled))

	a := New(diag)
	a.Position = gamemath.Vec2{X: 100, Y: 100} // top-left (95, 95)

	b := New(dot)
	b.Position = gamemath.Vec2{X: 96, Y: 96} // top-left (95, 95), on the diagonal
	if !a.MasksOverlap(b) || !b.MasksOverlap(a) {
		t.Error("Expected dot on the diagonal to overlap")
	}

	b.Position = gamemath.Vec2{X: 104, Y: 97} // top-left (103, 96), below the diagonal's reach
	if a.MasksOverlap(b) || b.MasksOverlap(a) {
		t.Error("Expected dot off the diagonal not to overlap")
	}
}

func TestSprite_SetVisualKeepsMotion(t *testing.T) {
	s := New(NewFrame(solidImage(4, 4, filled)))
	s.Position = gamemath.Vec2{X: 7, Y: 9}
	s.Velocity = gamemath.Vec2{X: 1, Y: 2}

	s.SetVisual(NewFrame(solidImage(8, 2, filled)))

	if s.Width() != 8 || s.Height() != 2 {
		t.Errorf("Expected new 8x2 visual, got %dx%d", s.Width(), s.Height())
	}
	if s.Position.X != 7 || s.Position.Y != 9 || s.Velocity.X != 1 || s.Velocity.Y != 2 {
		t.Error("Expected position and velocity to be preserved")
	}
}

func TestAnimated_SetFrame(t *testing.T) {
	frames := []*Frame{
		NewFrame(solidImage(2, 2, filled)),
		NewFrame(solidImage(4, 4, filled)),
		NewFrame(solidImage(6, 6, filled)),
	}
	a := NewAnimated(frames)

	if a.FrameCount() != 3 {
		t.Fatalf("Expected 3 frames, got %d", a.FrameCount())
	}
	if a.FrameIndex() != 0 || a.Visual() != frames[0] {
		t.Error("Expected to start on frame 0")
	}

	a.SetFrame(2)
	if a.FrameIndex() != 2 || a.Visual() != frames[2] {
		t.Errorf("Expected frame 2, got %d", a.FrameIndex())
	}

	a.SetFrame(10)
	if a.FrameIndex() != 2 {
		t.Errorf("Expected index clamped to 2, got %d", a.FrameIndex())
	}
	a.SetFrame(-3)
	if a.FrameIndex() != 0 {
		t.Errorf("Expected index clamped to 0, got %d", a.FrameIndex())
	}
}
