package systems

import (
	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

func UpdateStarfield(ecs *ecs.ECS) {
	entry, ok := components.Starfield.First(ecs.World)
	if !ok {
		return
	}
	field := components.Starfield.Get(entry)
	scrollStars(field.Stars, cfg.DeltaTime(), float64(cfg.C.Height))
}

// scrollStars moves stars down the screen, wrapping them back to the top.
func scrollStars(stars []components.Star, dt, height float64) {
	for i := range stars {
		stars[i].Y += stars[i].Speed * dt
		if stars[i].Y >= height {
			stars[i].Y -= height
		}
	}
}

func DrawStarfield(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Starfield.First(ecs.World)
	if !ok {
		return
	}
	for _, s := range components.Starfield.Get(entry).Stars {
		size := float32(1)
		if s.Speed > (cfg.Starfield.MinSpeed+cfg.Starfield.MaxSpeed)/2 {
			size = 2
		}
		vector.FillRect(screen, float32(s.X), float32(s.Y), size, size, cfg.Starfield.Color, false)
	}
}
