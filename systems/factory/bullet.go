package factory

import (
	"github.com/automoto/ironsight/archetypes"
	"github.com/automoto/ironsight/components"
	cfg "github.com/automoto/ironsight/config"
	"github.com/automoto/ironsight/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBullet spawns a bullet centered on (x, y) travelling along dir,
// which must be a unit vector.
func CreateBullet(ecs *ecs.ECS, x, y float64, dir components.Vector, w cfg.WeaponConfig) *donburi.Entry {
	bullet := archetypes.Bullet.Spawn(ecs)

	size := w.BulletSize
	obj := resolv.NewObject(x-size/2, y-size/2, size, size, tags.ResolvBullet)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = bullet
	components.Object.SetValue(bullet, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Bullet.SetValue(bullet, components.BulletData{
		Velocity: components.Vector{X: dir.X * w.BulletSpeed, Y: dir.Y * w.BulletSpeed},
		Range:    w.Range,
	})

	return bullet
}
