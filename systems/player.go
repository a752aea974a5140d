package systems

import (
	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayfieldBounds is the area the plane and all bullets live in.
func PlayfieldBounds() gamemath.Rect {
	return gamemath.Rect{Left: 0, Top: 0, Right: cfg.C.Width, Bottom: cfg.C.Height}
}

// UpdatePlayer applies input to the plane and advances it one tick.
func UpdatePlayer(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)

	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		player := components.Player.Get(playerEntry)

		if !player.IsExploding() {
			if flags := MovementFlags(input); flags != 0 {
				player.Move(flags)
			}
			if GetAction(input, cfg.ActionRotateLeft).JustPressed {
				player.RotateLeft()
			}
			if GetAction(input, cfg.ActionRotateRight).JustPressed {
				player.RotateRight()
			}
			if GetAction(input, cfg.ActionShoot).Pressed {
				player.Shoot()
			}
		}

		player.Update(cfg.DeltaTime(), PlayfieldBounds())
	})
}
