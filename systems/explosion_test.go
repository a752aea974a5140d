package systems

import (
	"testing"

	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type recordingChanger struct {
	scenes []interface{}
}

func (r *recordingChanger) ChangeScene(scene interface{}) {
	r.scenes = append(r.scenes, scene)
}

type gameOverResult struct {
	score, wave int
}

func explosionTicks() int {
	return cfg.Explosion.TicksPerFrame * cfg.Explosion.FrameCount
}

func TestUpdateExplosion_LastLifeEndsRun(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	entry := factory.CreatePlayer(e, nil)
	factory.CreateWave(e)
	player := components.Player.Get(entry)

	for player.Lives() > 0 {
		player.DecreaseLives()
	}
	player.Explode()

	changer := &recordingChanger{}
	update := NewUpdateExplosion(changer, func(score, wave int) interface{} {
		return gameOverResult{score, wave}
	})

	for i := 0; i < explosionTicks()-1; i++ {
		update(e)
	}
	if len(changer.scenes) != 0 {
		t.Fatalf("Expected no scene change mid-explosion, got %d", len(changer.scenes))
	}

	update(e)
	if len(changer.scenes) != 1 {
		t.Fatalf("Expected one scene change, got %d", len(changer.scenes))
	}
	if got := changer.scenes[0].(gameOverResult); got != (gameOverResult{0, 1}) {
		t.Errorf("Expected game over with score 0 on wave 1, got %+v", got)
	}
}

func TestUpdateExplosion_RespawnWithLivesLeft(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	entry := factory.CreatePlayer(e, nil)
	player := components.Player.Get(entry)

	player.DecreaseLives()
	player.Explode()

	changer := &recordingChanger{}
	update := NewUpdateExplosion(changer, func(score, wave int) interface{} { return nil })

	for i := 0; i < explosionTicks()+10; i++ {
		update(e)
	}

	if len(changer.scenes) != 0 {
		t.Errorf("Expected no scene change with lives left, got %d", len(changer.scenes))
	}
	if player.IsExploding() {
		t.Error("Expected explosion to have finished")
	}
}
