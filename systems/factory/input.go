package factory

import (
	"github.com/automoto/ironsight/archetypes"
	"github.com/automoto/ironsight/components"
	"github.com/automoto/ironsight/controls"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateInput spawns the input singleton around m.
func CreateInput(ecs *ecs.ECS, m *controls.Manager) *donburi.Entry {
	input := archetypes.Input.Spawn(ecs)
	components.Input.SetValue(input, components.InputData{
		Manager:    m,
		LastDevice: m.Mode(),
	})
	return input
}
