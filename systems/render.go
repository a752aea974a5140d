package systems

import (
	"github.com/automoto/skyraid/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawPlayer renders the plane, or its explosion, with its bullets.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		components.Player.Get(playerEntry).Draw(screen)
	})
}
