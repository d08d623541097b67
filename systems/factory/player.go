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

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	size := cfg.Player.Size
	obj := resolv.NewObject(x, y, size, size, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		Facing: components.DirRight,
		Aim:    components.Vector{X: 1, Y: 0},
		Speed:  cfg.Player.Speed,
	})
	steering := &components.SteeringBuffer{}
	steering.SetOrigin(x+size/2, y+size/2)
	components.Steering.SetValue(player, components.SteeringData{SteeringBuffer: steering})

	inventory := make([]components.WeaponState, 0, len(cfg.Weapons))
	for _, w := range cfg.Weapons {
		inventory = append(inventory, components.NewWeaponState(w))
	}
	components.Weapon.SetValue(player, components.WeaponData{Inventory: inventory})

	return player
}
