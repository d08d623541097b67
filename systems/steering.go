package systems

import (
	"math"
	"time"

	"github.com/automoto/ironsight/components"
	"github.com/automoto/ironsight/controls"
)

// SteerPlayer returns the poller handler that integrates movement into buf
// between game ticks and keeps the aim current. speed is in pixels per
// second. Press edges are left to the systems that run once per tick.
func SteerPlayer(buf *components.SteeringBuffer, speed float64) func(v *controls.View, dt time.Duration) {
	return func(v *controls.View, dt time.Duration) {
		move := movement(v)
		step := speed * dt.Seconds()
		if move.X != 0 || move.Y != 0 {
			buf.Move(move.X*step, move.Y*step)
		}

		if aim, ok := aimVector(v, buf); ok {
			buf.SetAim(aim, AimDirection(aim.X, aim.Y))
		}
	}
}

// movement returns the move direction with length at most 1. Forward wins
// over Backward and Right over Left when both are held.
func movement(v *controls.View) components.Vector {
	if v.Mode() == controls.DeviceGamepad {
		if s := v.Gamepad().LeftStick; s.X != 0 || s.Y != 0 {
			return clampLength(components.Vector{X: s.X, Y: s.Y})
		}
	}

	var dir components.Vector
	switch {
	case v.IsPressed(controls.ActionForward):
		dir.Y = -1
	case v.IsPressed(controls.ActionBackward):
		dir.Y = 1
	}
	switch {
	case v.IsPressed(controls.ActionRight):
		dir.X = 1
	case v.IsPressed(controls.ActionLeft):
		dir.X = -1
	}
	return clampLength(dir)
}

// aimVector aims at the cursor with keyboard and mouse, or along the right
// stick on a gamepad. A resting stick keeps the previous aim.
func aimVector(v *controls.View, buf *components.SteeringBuffer) (components.Vector, bool) {
	if v.Mode() == controls.DeviceGamepad {
		s := v.Gamepad().RightStick
		return normalize(components.Vector{X: s.X, Y: s.Y})
	}

	ox, oy := buf.Origin()
	m := v.Mouse()
	return normalize(components.Vector{X: float64(m.X) - ox, Y: float64(m.Y) - oy})
}

func clampLength(v components.Vector) components.Vector {
	if l := math.Hypot(v.X, v.Y); l > 1 {
		return components.Vector{X: v.X / l, Y: v.Y / l}
	}
	return v
}
