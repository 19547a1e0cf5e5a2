// internal/defs/overrides.go
package defs

import "golang.org/x/image/math/f64"

// Overrides are the spawn-time fields a script may change on a fresh object.
// Zero values keep the archetype's value; Velocity is applied only when set.
type Overrides struct {
	Velocity *f64.Vec2
	Radius   float64
	HP       int
	Color    string
	Angle    float64
	Homing   bool
	AI       string
	Life     int
}

// Vel is shorthand for an Overrides carrying only a velocity.
func Vel(vx, vy float64) Overrides {
	return Overrides{Velocity: &f64.Vec2{vx, vy}}
}
