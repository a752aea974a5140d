package sprite

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Frame is one visual of a sprite together with its collision mask.
// The GPU image is created on first draw, so frames can be built and
// collision-tested without a running game.
type Frame struct {
	src  image.Image
	mask *Mask
	img  *ebiten.Image
}

func NewFrame(src image.Image) *Frame {
	return &Frame{
		src:  src,
		mask: NewMask(src),
	}
}

func (f *Frame) Width() int          { return f.src.Bounds().Dx() }
func (f *Frame) Height() int         { return f.src.Bounds().Dy() }
func (f *Frame) Mask() *Mask         { return f.mask }
func (f *Frame) Source() image.Image { return f.src }

// Image returns the drawable image for this frame.
func (f *Frame) Image() *ebiten.Image {
	if f.img == nil {
		f.img = ebiten.NewImageFromImage(f.src)
	}
	return f.img
}
