package systems

import (
	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat resolves player bullets against the wave and enemy bullets
// against the player.
func UpdateCombat(ecs *ecs.ECS) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	waveEntry, ok := components.Wave.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	group := components.Wave.Get(waveEntry).Group

	if kills := player.ShootEnemies(group); kills > 0 {
		PlaySFX(ecs, cfg.SoundEnemyDown)
		hud := GetOrCreateHUD(ecs)
		hud.ScorePop = gween.New(cfg.HUD.ScorePopScale, 1, cfg.HUD.ScorePopTime, ease.OutQuad)
	}

	if player.GetShot(group) {
		player.ExplosionTicks = 0
		TriggerScreenShake(ecs, cfg.ScreenShake.HitIntensity, cfg.ScreenShake.HitDuration)
	}
}
