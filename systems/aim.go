package systems

import (
	"math"

	"github.com/automoto/ironsight/components"
)

// AimDirection maps an offset from the player to one of eight 45 degree
// sectors. Y grows downwards, so (0, 1) is Down.
func AimDirection(dx, dy float64) components.Direction {
	// 0 degrees points down, 90 right and +-180 up
	deg := math.Atan2(dx, dy) * 180 / math.Pi
	sector := int(math.Floor((180-deg)/45+0.5)) % 8
	return components.Direction(sector)
}

// normalize returns v scaled to unit length and false for the zero vector.
func normalize(v components.Vector) (components.Vector, bool) {
	l := math.Hypot(v.X, v.Y)
	if l == 0 {
		return components.Vector{}, false
	}
	return components.Vector{X: v.X / l, Y: v.Y / l}, true
}
