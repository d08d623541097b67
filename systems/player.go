package systems

import (
	"github.com/automoto/ironsight/components"
	"github.com/automoto/ironsight/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer applies what the steering poller accumulated since the last
// tick: movement against the walls and aim.
func UpdatePlayer(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		obj := components.Object.Get(e)
		steering := components.Steering.Get(e)

		frame := steering.Drain()
		moveWithCollision(obj.Object, frame.DX, frame.DY)
		obj.Update()
		steering.SetOrigin(obj.Center())

		if frame.HasAim {
			player.Aim = frame.Aim
			player.Facing = frame.Facing
		}
	})
}

// moveWithCollision moves obj one axis at a time, stopping flush against
// solids.
func moveWithCollision(obj *resolv.Object, dx, dy float64) {
	if dx != 0 {
		if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				dx = check.ContactWithObject(solids[0]).X()
			}
		}
		obj.X += dx
	}
	if dy != 0 {
		if check := obj.Check(0, dy, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				dy = check.ContactWithObject(solids[0]).Y()
			}
		}
		obj.Y += dy
	}
}
