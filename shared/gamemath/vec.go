package gamemath

import "github.com/yohamta/donburi/features/math"

// Vec2 is the position and velocity type used by every moving entity.
type Vec2 = math.Vec2

// Integrate advances pos by vel over dt seconds.
func Integrate(pos, vel Vec2, dt float64) Vec2 {
	return pos.Add(vel.MulScalar(dt))
}
