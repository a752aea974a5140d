package systems

import (
	"math"
	"testing"

	"github.com/automoto/skyraid/components"
	"github.com/automoto/skyraid/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestShakeOffset_DecaysToZero(t *testing.T) {
	first := shakeOffset(components.ScreenShakeData{Intensity: 8, Duration: 10, Elapsed: 1})
	if first.X == 0 && first.Y == 0 {
		t.Error("Expected non-zero offset at the start of a shake")
	}
	if math.Abs(first.X) > 8 || math.Abs(first.Y) > 8 {
		t.Errorf("Expected offset within intensity, got %+v", first)
	}

	last := shakeOffset(components.ScreenShakeData{Intensity: 8, Duration: 10, Elapsed: 10})
	if last.X != 0 || last.Y != 0 {
		t.Errorf("Expected zero offset at the end, got %+v", last)
	}

	if got := shakeOffset(components.ScreenShakeData{Intensity: 8}); got.X != 0 || got.Y != 0 {
		t.Errorf("Expected zero offset without duration, got %+v", got)
	}
}

func TestScreenShake_Lifecycle(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateCamera(e)

	TriggerScreenShake(e, 8, 3)
	cameraEntry, _ := components.Camera.First(e.World)
	if !cameraEntry.HasComponent(components.ScreenShake) {
		t.Fatal("Expected shake component after trigger")
	}

	// Weaker shake does not replace the active one
	TriggerScreenShake(e, 2, 30)
	if got := components.ScreenShake.Get(cameraEntry).Duration; got != 3 {
		t.Errorf("Expected duration 3, got %d", got)
	}

	UpdateCamera(e)
	if off := CameraOffset(e); off.X == 0 && off.Y == 0 {
		t.Error("Expected camera offset while shaking")
	}

	UpdateCamera(e)
	UpdateCamera(e)
	cameraEntry, _ = components.Camera.First(e.World)
	if cameraEntry.HasComponent(components.ScreenShake) {
		t.Error("Expected shake component removed after duration")
	}

	UpdateCamera(e)
	if off := CameraOffset(e); off.X != 0 || off.Y != 0 {
		t.Errorf("Expected zero offset after shake, got %+v", off)
	}
}

func TestTriggerScreenShake_NoCamera(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	TriggerScreenShake(e, 8, 3)
	if off := CameraOffset(e); off.X != 0 || off.Y != 0 {
		t.Errorf("Expected zero offset without camera, got %+v", off)
	}
}
