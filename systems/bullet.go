package systems

import (
	"math"

	"github.com/automoto/ironsight/components"
	"github.com/automoto/ironsight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBullets moves bullets in a straight line and removes them when they
// hit a wall or run out of range.
func UpdateBullets(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		bullet := components.Bullet.Get(e)
		obj := components.Object.Get(e)

		dx, dy := bullet.Velocity.X, bullet.Velocity.Y
		if obj.Check(dx, dy, tags.ResolvSolid) != nil {
			toRemove = append(toRemove, e)
			return
		}

		obj.X += dx
		obj.Y += dy
		obj.Update()

		bullet.Travelled += math.Hypot(dx, dy)
		if bullet.Travelled >= bullet.Range {
			toRemove = append(toRemove, e)
		}
	})

	for _, bullet := range toRemove {
		destroyBullet(ecs, bullet)
	}
}

func destroyBullet(ecs *ecs.ECS, bulletEntry *donburi.Entry) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		obj := components.Object.Get(bulletEntry)
		if obj != nil && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	ecs.World.Remove(bulletEntry.Entity())
}
