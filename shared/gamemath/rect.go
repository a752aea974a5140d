package gamemath

// Rect is an axis-aligned rectangle in integer screen coordinates.
// All four edges are inclusive.
type Rect struct {
	Left, Top, Right, Bottom int
}

// NewRect returns a Rect of the given size centered on (x, y). Coordinates are
// truncated toward zero before the half extents are applied.
func NewRect(x, y float64, w, h int) Rect {
	cx, cy := int(x), int(y)
	return Rect{
		Left:   cx - w/2,
		Top:    cy - h/2,
		Right:  cx + w/2,
		Bottom: cy + h/2,
	}
}

func (r Rect) Width() int {
	return r.Right - r.Left
}

func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// Outside reports whether r lies wholly outside bounds on either axis.
func (r Rect) Outside(bounds Rect) bool {
	if r.Right < bounds.Left || r.Left > bounds.Right {
		return true
	}
	return r.Bottom < bounds.Top || r.Top > bounds.Bottom
}

// AreIntersecting reports whether a and b overlap. Shared edges count as an
// overlap.
func AreIntersecting(a, b Rect) bool {
	if a.Right < b.Left || b.Right < a.Left {
		return false
	}
	if a.Bottom < b.Top || b.Bottom < a.Top {
		return false
	}
	return true
}
