package factory

import (
	"testing"

	"github.com/automoto/ironsight/components"
	cfg "github.com/automoto/ironsight/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestCreatePlayer(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	space := CreateSpace(e, 320, 240, 16)

	player := CreatePlayer(e, 10, 20)

	data := components.Player.Get(player)
	assert.Equal(t, cfg.Player.Speed, data.Speed)
	assert.Equal(t, components.DirRight, data.Facing)

	x, y := components.Steering.Get(player).Origin()
	assert.Equal(t, 10+cfg.Player.Size/2, x)
	assert.Equal(t, 20+cfg.Player.Size/2, y)

	require.Len(t, components.Weapon.Get(player).Inventory, len(cfg.Weapons))
	assert.Len(t, components.Space.Get(space).Objects(), 1)
}
