package gamemath

import "testing"

func TestAreIntersecting(t *testing.T) {
	base := Rect{Left: 0, Top: 0, Right: 10, Bottom: 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", base, true},
		{"contained", Rect{Left: 2, Top: 2, Right: 4, Bottom: 4}, true},
		{"partial overlap", Rect{Left: 5, Top: 5, Right: 15, Bottom: 15}, true},
		{"touching right edge", Rect{Left: 10, Top: 0, Right: 20, Bottom: 10}, true},
		{"touching bottom edge", Rect{Left: 0, Top: 10, Right: 10, Bottom: 20}, true},
		{"touching corner", Rect{Left: 10, Top: 10, Right: 20, Bottom: 20}, true},
		{"right of", Rect{Left: 11, Top: 0, Right: 20, Bottom: 10}, false},
		{"left of", Rect{Left: -20, Top: 0, Right: -1, Bottom: 10}, false},
		{"above", Rect{Left: 0, Top: -20, Right: 10, Bottom: -1}, false},
		{"below", Rect{Left: 0, Top: 11, Right: 10, Bottom: 20}, false},
		{"diagonal apart", Rect{Left: 11, Top: 11, Right: 20, Bottom: 20}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AreIntersecting(base, tt.other); got != tt.want {
				t.Errorf("AreIntersecting(base, %v) = %v, want %v", tt.other, got, tt.want)
			}
			// Symmetry
			if got := AreIntersecting(tt.other, base); got != tt.want {
				t.Errorf("AreIntersecting(%v, base) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestAreIntersecting_Symmetric(t *testing.T) {
	var rects []Rect
	for x := -2; x <= 2; x++ {
		for y := -2; y <= 2; y++ {
			rects = append(rects, NewRect(float64(x*7), float64(y*7), 10, 6))
		}
	}

	for _, a := range rects {
		for _, b := range rects {
			if AreIntersecting(a, b) != AreIntersecting(b, a) {
				t.Fatalf("intersection not symmetric for %v and %v", a, b)
			}
		}
	}
}

func TestNewRect_CenteredAndTruncated(t *testing.T) {
	r := NewRect(45.9, 100.2, 64, 48)
	want := Rect{Left: 13, Top: 76, Right: 77, Bottom: 124}
	if r != want {
		t.Errorf("Expected %v, got %v", want, r)
	}
	if r.Width() != 64 || r.Height() != 48 {
		t.Errorf("Expected 64x48, got %dx%d", r.Width(), r.Height())
	}
}

func TestRect_Outside(t *testing.T) {
	bounds := Rect{Left: 0, Top: 0, Right: 800, Bottom: 600}

	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"inside", NewRect(400, 300, 6, 18), false},
		{"straddling top", NewRect(400, 0, 6, 18), false},
		{"touching right edge", Rect{Left: 800, Top: 10, Right: 806, Bottom: 28}, false},
		{"above", Rect{Left: 10, Top: -30, Right: 16, Bottom: -1}, true},
		{"right of", Rect{Left: 801, Top: 10, Right: 807, Bottom: 28}, true},
		{"below", Rect{Left: 10, Top: 601, Right: 16, Bottom: 619}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Outside(bounds); got != tt.want {
				t.Errorf("Outside() = %v, want %v", got, tt.want)
			}
		})
	}
}
