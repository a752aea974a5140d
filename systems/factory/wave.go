package factory

import (
	"github.com/automoto/skyraid/archetypes"
	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/entities"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWave spawns the first enemy wave.
func CreateWave(ecs *ecs.ECS) *donburi.Entry {
	wave := archetypes.Wave.Spawn(ecs)
	components.Wave.SetValue(wave, components.WaveData{
		Group:       entities.NewEnemyGroup(),
		Number:      1,
		Banner:      NewWaveBanner(),
		BannerAlpha: 1,
	})
	return wave
}

// NewWaveBanner returns the fade-out tween for the "WAVE n" banner.
func NewWaveBanner() *gween.Tween {
	return gween.New(1, 0, cfg.HUD.BannerDuration, ease.InQuad)
}
