package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/fonts"
	"github.com/automoto/skyraid/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// UpdateWave moves the enemies and their bullets, lets a random enemy fire,
// and starts the next wave once the current one is cleared.
func UpdateWave(ecs *ecs.ECS) {
	waveEntry, ok := components.Wave.First(ecs.World)
	if !ok {
		return
	}
	wave := components.Wave.Get(waveEntry)

	if wave.Banner != nil {
		alpha, done := wave.Banner.Update(float32(cfg.DeltaTime()))
		wave.BannerAlpha = alpha
		if done {
			wave.Banner = nil
			wave.BannerAlpha = 0
		}
	}

	group := wave.Group
	if group.IsEmpty() {
		group.GenerateEnemies()
		wave.Number++
		wave.Banner = factory.NewWaveBanner()
		wave.BannerAlpha = 1
	}

	group.Update(cfg.DeltaTime(), PlayfieldBounds())
	group.ShootRandom()
}

// DrawWave renders the enemies, their bullets and the wave banner.
func DrawWave(ecs *ecs.ECS, screen *ebiten.Image) {
	waveEntry, ok := components.Wave.First(ecs.World)
	if !ok {
		return
	}
	wave := components.Wave.Get(waveEntry)
	wave.Group.Draw(screen)

	if wave.BannerAlpha <= 0 {
		return
	}

	label := fmt.Sprintf("WAVE %d", wave.Number)
	clr := fade(cfg.HUD.BannerColor, wave.BannerAlpha)
	width := screen.Bounds().Dx()
	x := (width - len(label)*22) / 2
	text.Draw(screen, label, fonts.Title.Get(), x, screen.Bounds().Dy()/2, clr)
}

// fade scales every channel of the premultiplied color c by alpha.
func fade(c color.RGBA, alpha float32) color.RGBA {
	alpha = min(max(alpha, 0), 1)
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
