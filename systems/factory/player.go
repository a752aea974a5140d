package factory

import (
	"github.com/automoto/skyraid/archetypes"
	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/entities"
	"github.com/automoto/skyraid/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the plane at its configured start position. Engine and
// explosion sounds go to sound.
func CreatePlayer(ecs *ecs.ECS, sound entities.SoundPlayer) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	start := gamemath.Vec2{X: cfg.Player.StartX, Y: cfg.Player.StartY}
	components.Player.SetValue(player, components.PlayerData{
		Player: entities.NewPlayer(start, entities.WithSoundPlayer(sound)),
	})

	return player
}
