package components

import (
	"github.com/automoto/skyraid/entities"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// WaveData holds the current enemy group and the "WAVE n" banner fade.
type WaveData struct {
	Group       *entities.EnemyGroup
	Number      int
	Banner      *gween.Tween
	BannerAlpha float32
}

var Wave = donburi.NewComponentType[WaveData]()
