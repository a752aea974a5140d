package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/systems"
	"github.com/automoto/skyraid/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ShooterScene is a single run: one plane against endless enemy waves.
type ShooterScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	canvas       *ebiten.Image
	drawOp       *ebiten.DrawImageOptions
	once         sync.Once
}

func NewShooterScene(sc SceneChanger) *ShooterScene {
	return &ShooterScene{sceneChanger: sc, drawOp: &ebiten.DrawImageOptions{}}
}

func (ss *ShooterScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()
}

func (ss *ShooterScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

func (ss *ShooterScene) configure() {
	// Preload sounds to avoid lag on first use
	systems.PreloadAllSFX()

	ecs := ecs.NewECS(donburi.NewWorld())

	createGameOverScene := func(score, wave int) interface{} {
		return NewGameOverScene(ss.sceneChanger, score, wave)
	}

	// Audio system (runs first, even when paused for menu sounds)
	ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateStarfield))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateWave))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCombat))
	ecs.AddSystem(systems.WithPauseCheck(systems.NewUpdateExplosion(ss.sceneChanger, createGameOverScene)))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateHUD))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	// World goes through the shaking canvas, overlays do not
	ecs.AddRenderer(cfg.Default, ss.drawWorld)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ss.ecs = ecs
	ss.canvas = ebiten.NewImage(cfg.C.Width, cfg.C.Height)

	factory.CreateCamera(ss.ecs)
	factory.CreateStarfield(ss.ecs)
	factory.CreateWave(ss.ecs)
	factory.CreatePlayer(ss.ecs, systems.SoundFor(ss.ecs))
}

func (ss *ShooterScene) drawWorld(e *ecs.ECS, screen *ebiten.Image) {
	ss.canvas.Clear()
	systems.DrawStarfield(e, ss.canvas)
	systems.DrawWave(e, ss.canvas)
	systems.DrawPlayer(e, ss.canvas)

	offset := systems.CameraOffset(e)
	ss.drawOp.GeoM.Reset()
	ss.drawOp.GeoM.Translate(offset.X, offset.Y)
	screen.DrawImage(ss.canvas, ss.drawOp)
}
