package factory

import (
	"math/rand/v2"

	"github.com/automoto/skyraid/archetypes"
	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateStarfield scatters the background stars over the screen.
func CreateStarfield(ecs *ecs.ECS) *donburi.Entry {
	field := archetypes.Starfield.Spawn(ecs)

	stars := make([]components.Star, cfg.Starfield.Count)
	for i := range stars {
		stars[i] = components.Star{
			X:     rand.Float64() * float64(cfg.C.Width),
			Y:     rand.Float64() * float64(cfg.C.Height),
			Speed: cfg.Starfield.MinSpeed + rand.Float64()*(cfg.Starfield.MaxSpeed-cfg.Starfield.MinSpeed),
		}
	}
	components.Starfield.SetValue(field, components.StarfieldData{Stars: stars})

	return field
}
