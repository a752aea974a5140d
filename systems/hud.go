package systems

import (
	"fmt"

	"github.com/automoto/skyraid/assets"
	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/fonts"
	"github.com/automoto/skyraid/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const livesIconScale = 0.35

var hudDrawOp = &ebiten.DrawImageOptions{}

// UpdateHUD steps the score pop animation.
func UpdateHUD(ecs *ecs.ECS) {
	hud := GetOrCreateHUD(ecs)
	if hud.ScorePop == nil {
		hud.ScoreScale = 1
		return
	}

	scale, done := hud.ScorePop.Update(float32(cfg.DeltaTime()))
	hud.ScoreScale = scale
	if done {
		hud.ScorePop = nil
		hud.ScoreScale = 1
	}
}

// DrawHUD renders score, lives and wave in the top corners.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	hud := GetOrCreateHUD(ecs)
	margin := cfg.HUD.Margin

	// Score, scaled around its top-left corner while popping
	hudDrawOp.GeoM.Reset()
	hudDrawOp.ColorScale.Reset()
	hudDrawOp.GeoM.Scale(float64(hud.ScoreScale), float64(hud.ScoreScale))
	hudDrawOp.GeoM.Translate(margin, margin+20)
	hudDrawOp.ColorScale.ScaleWithColor(cfg.HUD.TextColor)
	text.DrawWithOptions(screen, fmt.Sprintf("SCORE %d", player.Score()), fonts.Bold.Get(), hudDrawOp)

	if hud.HighScore > 0 {
		text.Draw(screen, fmt.Sprintf("BEST %d", max(hud.HighScore, player.Score())), fonts.Small.Get(),
			int(margin), int(margin)+40, cfg.HUD.TextColor)
	}

	drawLives(screen, player.Lives())

	if waveEntry, ok := components.Wave.First(ecs.World); ok {
		label := fmt.Sprintf("WAVE %d", components.Wave.Get(waveEntry).Number)
		x := screen.Bounds().Dx() - int(margin) - len(label)*12
		text.Draw(screen, label, fonts.Bold.Get(), x, int(margin)+20, cfg.HUD.TextColor)
	}
}

func drawLives(screen *ebiten.Image, lives int) {
	icon := assets.Plane(gamemath.Forward).Image()
	iconWidth := float64(icon.Bounds().Dx()) * livesIconScale
	y := float64(screen.Bounds().Dy()) - cfg.HUD.Margin - float64(icon.Bounds().Dy())*livesIconScale

	for i := 0; i < lives; i++ {
		hudDrawOp.GeoM.Reset()
		hudDrawOp.ColorScale.Reset()
		hudDrawOp.GeoM.Scale(livesIconScale, livesIconScale)
		hudDrawOp.GeoM.Translate(cfg.HUD.Margin+float64(i)*(iconWidth+4), y)
		hudDrawOp.ColorScale.ScaleWithColor(cfg.HUD.LivesColor)
		screen.DrawImage(icon, hudDrawOp)
	}
}

// GetOrCreateHUD returns the singleton HUD component, creating if needed
func GetOrCreateHUD(ecs *ecs.ECS) *components.HUDData {
	if _, ok := components.HUD.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.HUD))
		components.HUD.SetValue(ent, components.HUDData{
			ScoreScale: 1,
			HighScore:  LoadHighScore().Score,
		})
	}

	ent, _ := components.HUD.First(ecs.World)
	return components.HUD.Get(ent)
}
