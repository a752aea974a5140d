package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HUDData tracks animated HUD state (singleton component)
type HUDData struct {
	ScorePop   *gween.Tween // nil when idle
	ScoreScale float32
	HighScore  int
}

var HUD = donburi.NewComponentType[HUDData]()
