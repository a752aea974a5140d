package systems

import (
	"image/color"
	"testing"

	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/entities"
	"github.com/automoto/skyraid/shared/gamemath"
	"github.com/automoto/skyraid/systems/factory"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestUpdateWave_ClearedWaveRegenerates(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	entry := factory.CreateWave(e)
	wave := components.Wave.Get(entry)

	// Shoot down every enemy with bullets placed on the grid
	for i := 0; i < cfg.Wave.EnemyCount; i++ {
		wave.Group.HandleBullet(entities.NewBullet(gridPosition(i), gamemath.Forward, uuid.New()))
	}
	if !wave.Group.IsEmpty() {
		t.Fatalf("Expected wave to be cleared, %d left", wave.Group.Len())
	}

	UpdateWave(e)

	if wave.Number != 2 {
		t.Errorf("Expected wave 2, got %d", wave.Number)
	}
	if wave.Group.Len() != cfg.Wave.EnemyCount {
		t.Errorf("Expected %d enemies, got %d", cfg.Wave.EnemyCount, wave.Group.Len())
	}
	if wave.BannerAlpha <= 0 || wave.Banner == nil {
		t.Error("Expected banner to restart for the new wave")
	}
}

func TestUpdateWave_BannerFades(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	entry := factory.CreateWave(e)
	wave := components.Wave.Get(entry)

	ticks := int(float64(cfg.HUD.BannerDuration)*float64(cfg.C.TPS)) + 2
	for i := 0; i < ticks; i++ {
		UpdateWave(e)
	}

	if wave.Banner != nil || wave.BannerAlpha != 0 {
		t.Errorf("Expected banner finished, alpha %v", wave.BannerAlpha)
	}
	if wave.Number != 1 {
		t.Errorf("Expected wave 1, got %d", wave.Number)
	}
}

func gridPosition(i int) gamemath.Vec2 {
	return gamemath.Vec2{
		X: cfg.Wave.OriginX + cfg.Wave.SpacingX*float64(i%cfg.Wave.EnemiesPerRow),
		Y: cfg.Wave.OriginY + cfg.Wave.SpacingY*float64(i/cfg.Wave.EnemiesPerRow),
	}
}

func TestFade(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}

	if got := fade(c, 1); got != c {
		t.Errorf("Expected %v at full alpha, got %v", c, got)
	}
	if got := fade(c, 0); got != (color.RGBA{}) {
		t.Errorf("Expected transparent at zero alpha, got %v", got)
	}
	if got := fade(c, 0.5); got != (color.RGBA{R: 100, G: 50, B: 25, A: 127}) {
		t.Errorf("Expected half-faded color, got %v", got)
	}
	if got := fade(c, 2); got != c {
		t.Errorf("Expected alpha above one to clamp, got %v", got)
	}
}
