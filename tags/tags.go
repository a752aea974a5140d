package tags

import "github.com/yohamta/donburi"

var (
	Player    = donburi.NewTag().SetName("Player")
	Wave      = donburi.NewTag().SetName("Wave")
	Starfield = donburi.NewTag().SetName("Starfield")
)

// Resolv tags for the enemy broad phase
const (
	ResolvEnemy = "enemy"
	ResolvProbe = "probe"
)
