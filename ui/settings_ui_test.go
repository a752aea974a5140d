package ui

import (
	"math"
	"testing"
)

func TestStepVolume(t *testing.T) {
	tests := []struct {
		name  string
		v     float64
		steps int
		want  float64
	}{
		{"up", 0.5, 1, 0.6},
		{"down", 0.5, -1, 0.4},
		{"snaps off-grid value", 0.83, 1, 0.9},
		{"clamps high", 1.0, 1, 1.0},
		{"clamps low", 0.0, -1, 0.0},
		{"several", 0.2, 3, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stepVolume(tt.v, tt.steps, 0.1)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestStepVolume_ZeroStep(t *testing.T) {
	if got := stepVolume(0.3, 2, 0); got != 0.3 {
		t.Errorf("Expected unchanged volume 0.3, got %v", got)
	}
}

func TestVolumeText(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "  0%"},
		{0.8, " 80%"},
		{1, "100%"},
		{0.299999, " 30%"},
	}

	for _, tt := range tests {
		if got := volumeText(tt.v); got != tt.want {
			t.Errorf("volumeText(%v): expected %q, got %q", tt.v, tt.want, got)
		}
	}
}
