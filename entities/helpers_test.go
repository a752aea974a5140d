package entities

import (
	"testing"
	"time"

	"github.com/automoto/skyraid/config"
)

type fakeClock struct{ t time.Time }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// withWave applies a temporary change to the wave configuration.
func withWave(t *testing.T, change func(w *config.WaveConfig)) {
	t.Helper()
	saved := config.Wave
	change(&config.Wave)
	t.Cleanup(func() { config.Wave = saved })
}
