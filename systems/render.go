package systems

import (
	"github.com/automoto/ironsight/components"
	cfg "github.com/automoto/ironsight/config"
	"github.com/automoto/ironsight/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// aimLineLength is how far the aim indicator reaches past the player.
const aimLineLength = 18

// DrawArena renders walls, bullets and the player with its aim line.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Arena.BackgroundColor)

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		vector.FillRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H),
			cfg.Arena.WallColor, false)
	})

	tags.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		vector.FillRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H),
			cfg.Yellow, false)
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		player := components.Player.Get(e)

		vector.FillRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H),
			cfg.Player.Color, false)

		cx, cy := obj.Center()
		reach := obj.W/2 + aimLineLength
		vector.StrokeLine(screen,
			float32(cx), float32(cy),
			float32(cx+player.Aim.X*reach), float32(cy+player.Aim.Y*reach),
			2, cfg.White, true)
	})
}
