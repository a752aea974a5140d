package systems

import (
	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateExplosion creates the system that steps the player's explosion and
// ends the run once the last life is gone.
func NewUpdateExplosion(sceneChanger SceneChanger, createGameOver func(score, wave int) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		playerEntry, ok := components.Player.First(e.World)
		if !ok {
			return
		}
		player := components.Player.Get(playerEntry)
		if !player.IsExploding() {
			return
		}

		player.ExplosionTicks++
		if player.ExplosionTicks < cfg.Explosion.TicksPerFrame {
			return
		}
		player.ExplosionTicks = 0

		if player.AdvanceExplosion() || player.Lives() > 0 {
			return
		}

		wave := 0
		if waveEntry, ok := components.Wave.First(e.World); ok {
			wave = components.Wave.Get(waveEntry).Number
		}
		sceneChanger.ChangeScene(createGameOver(player.Score(), wave))
	}
}
