package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/systems"
	"github.com/automoto/skyraid/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SettingsScene edits sound volume and starting lives and can clear the
// high score. Changes apply and persist immediately.
type SettingsScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	settingsUI   *ui.SettingsUI
	once         sync.Once
	shouldGoBack bool
}

func NewSettingsScene(sc SceneChanger) *SettingsScene {
	return &SettingsScene{sceneChanger: sc}
}

func (s *SettingsScene) Update() {
	s.once.Do(s.configure)

	s.ecsWorld.Update()
	s.settingsUI.Update()

	if s.shouldGoBack {
		s.sceneChanger.ChangeScene(NewMenuScene(s.sceneChanger))
	}
}

func (s *SettingsScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if s.ecsWorld == nil {
		return
	}

	s.settingsUI.UI.Draw(screen)
}

func (s *SettingsScene) configure() {
	s.ecsWorld = ecs.NewECS(donburi.NewWorld())
	s.ecsWorld.AddSystem(systems.UpdateAudio)
	s.ecsWorld.AddSystem(systems.UpdateInput)
	s.ecsWorld.AddSystem(func(e *ecs.ECS) {
		if systems.GetAction(systems.GetOrCreateInput(e), cfg.ActionMenuBack).JustPressed {
			s.shouldGoBack = true
		}
	})

	current := systems.CurrentSettings()
	s.settingsUI = ui.NewSettingsUI(
		ui.SettingsValues{SFXVolume: current.SFXVolume, StartingLives: current.StartingLives},
		ui.SettingsLimits{
			VolumeStep: cfg.Settings.VolumeStep,
			MinLives:   cfg.Settings.MinLives,
			MaxLives:   cfg.Settings.MaxLives,
		},
	)

	s.settingsUI.OnChange = func(v ui.SettingsValues) {
		saved := systems.SavedSettings{SFXVolume: v.SFXVolume, StartingLives: v.StartingLives}
		systems.ApplySettingsGlobal(&saved)
		_ = systems.SaveSettings(saved)
		systems.PlaySFX(s.ecsWorld, cfg.SoundMenuNavigate)
	}
	s.settingsUI.OnResetHighScore = func() {
		_ = systems.ClearHighScore()
		systems.PlaySFX(s.ecsWorld, cfg.SoundMenuSelect)
	}
	s.settingsUI.OnGoBack = func() {
		s.shouldGoBack = true
	}
}
