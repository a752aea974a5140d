package components

import (
	"github.com/automoto/skyraid/entities"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	*entities.Player
	ExplosionTicks int // ticks since the last explosion frame
}

var Player = donburi.NewComponentType[PlayerData]()
