package sprite

import "image"

// opaqueThreshold is the 16-bit alpha at or above which a pixel is solid.
const opaqueThreshold = 0x8000

// Mask is a packed per-pixel solidity map used for fine collision tests.
type Mask struct {
	w, h   int
	stride int // words per row
	bits   []uint64
}

// NewMask builds a mask from the alpha channel of img.
func NewMask(img image.Image) *Mask {
	b := img.Bounds()
	m := newMask(b.Dx(), b.Dy())
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if _, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA(); a >= opaqueThreshold {
				m.set(x, y)
			}
		}
	}
	return m
}

func newMask(w, h int) *Mask {
	stride := (w + 63) / 64
	return &Mask{
		w:      w,
		h:      h,
		stride: stride,
		bits:   make([]uint64, stride*h),
	}
}

func (m *Mask) set(x, y int) {
	m.bits[y*m.stride+x/64] |= 1 << uint(x%64)
}

func (m *Mask) Width() int  { return m.w }
func (m *Mask) Height() int { return m.h }

// Opaque reports whether the pixel at (x, y) is solid. Coordinates outside the
// mask are transparent.
func (m *Mask) Opaque(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.bits[y*m.stride+x/64]&(1<<uint(x%64)) != 0
}

// Count returns the number of solid pixels.
func (m *Mask) Count() int {
	n := 0
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if m.Opaque(x, y) {
				n++
			}
		}
	}
	return n
}

// Overlaps reports whether any solid pixel of m coincides with a solid pixel of
// other when other's top-left corner sits at (dx, dy) in m's coordinates.
func (m *Mask) Overlaps(other *Mask, dx, dy int) bool {
	x0, x1 := max(0, dx), min(m.w, dx+other.w)
	y0, y1 := max(0, dy), min(m.h, dy+other.h)
	if x0 >= x1 || y0 >= y1 {
		return false
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.Opaque(x, y) && other.Opaque(x-dx, y-dy) {
				return true
			}
		}
	}
	return false
}
