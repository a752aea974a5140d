package systems

import (
	"math"

	"github.com/automoto/skyraid/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateCamera recomputes the draw offset. The playfield is fixed, so the
// only offset comes from screen shake.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.Offset = dmath.Vec2{}

	updateScreenShake(cameraEntry, camera)
}

// updateScreenShake applies screen shake offset to camera and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++
	camera.Offset = shakeOffset(*shake)

	// Remove component when shake is complete
	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// shakeOffset is the oscillating offset for a shake, decaying linearly to
// zero over its duration.
func shakeOffset(shake components.ScreenShakeData) dmath.Vec2 {
	if shake.Duration <= 0 {
		return dmath.Vec2{}
	}
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	return dmath.Vec2{
		X: math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity,
		Y: math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity,
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
			Elapsed:   0,
		})
	}
}

// CameraOffset returns the current draw offset, or zero without a camera.
func CameraOffset(e *ecs.ECS) dmath.Vec2 {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return dmath.Vec2{}
	}
	return components.Camera.Get(cameraEntry).Offset
}
