package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the final score of a run
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	score        int
	wave         int
	once         sync.Once
}

// NewGameOverScene creates a new game over scene for a run that scored score
// and reached wave.
func NewGameOverScene(sc SceneChanger, score, wave int) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, score: score, wave: wave}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	// Scene factories
	createShooterScene := func() interface{} {
		return NewShooterScene(gs.sceneChanger)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(gs.sceneChanger)
	}

	gs.ecs.AddSystem(systems.UpdateAudio)

	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createShooterScene, createMenuScene))

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	systems.RecordRun(gs.ecs, gs.score, gs.wave)
}
