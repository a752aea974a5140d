package systems

import (
	"testing"

	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/shared/gamemath"
)

func TestGetAction(t *testing.T) {
	tests := []struct {
		name       string
		prev, curr bool
		want       components.ActionState
	}{
		{"idle", false, false, components.ActionState{}},
		{"just pressed", false, true, components.ActionState{Pressed: true, JustPressed: true}},
		{"held", true, true, components.ActionState{Pressed: true}},
		{"just released", true, false, components.ActionState{JustReleased: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input components.InputData
			input.Previous[cfg.ActionShoot] = tt.prev
			input.Current[cfg.ActionShoot] = tt.curr

			if got := GetAction(&input, cfg.ActionShoot); got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestMovementFlags(t *testing.T) {
	tests := []struct {
		name    string
		actions []cfg.ActionID
		want    gamemath.Direction
	}{
		{"none", nil, 0},
		{"up", []cfg.ActionID{cfg.ActionMoveUp}, gamemath.Forward},
		{"down right", []cfg.ActionID{cfg.ActionMoveDown, cfg.ActionMoveRight}, gamemath.Backward | gamemath.Right},
		{"all", []cfg.ActionID{cfg.ActionMoveUp, cfg.ActionMoveDown, cfg.ActionMoveLeft, cfg.ActionMoveRight},
			gamemath.Forward | gamemath.Backward | gamemath.Left | gamemath.Right},
		{"shoot is not movement", []cfg.ActionID{cfg.ActionShoot}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input components.InputData
			for _, a := range tt.actions {
				input.Current[a] = true
			}
			if got := MovementFlags(&input); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
