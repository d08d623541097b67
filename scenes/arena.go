package scenes

import (
	"context"
	"image/color"
	"sync"

	"github.com/automoto/ironsight/components"
	cfg "github.com/automoto/ironsight/config"
	"github.com/automoto/ironsight/controls"
	"github.com/automoto/ironsight/systems"
	"github.com/automoto/ironsight/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene is the single playable scene: one player in a walled arena.
type ArenaScene struct {
	ecs    *ecs.ECS
	poller *controls.Poller
	once   sync.Once
}

func NewArenaScene() *ArenaScene {
	return &ArenaScene{}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

// Close stops the steering poller. It is safe to call more than once.
func (as *ArenaScene) Close() {
	if as.poller != nil {
		as.poller.Stop()
	}
}

func (as *ArenaScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input must be sampled before anything queries it
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateWeapon)
	ecs.AddSystem(systems.UpdateBullets)

	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	as.ecs = ecs

	factory.CreateSpace(ecs, cfg.C.Width, cfg.C.Height, cfg.Arena.CellSize)
	for _, wall := range cfg.Arena.Walls {
		factory.CreateWall(ecs, wall)
	}

	manager := controls.NewEbitenManager(cfg.Input.StickDeadzone, cfg.Input.TriggerThreshold)
	factory.CreateInput(ecs, manager)

	player := factory.CreatePlayer(ecs, cfg.Player.SpawnX, cfg.Player.SpawnY)
	steering := components.Steering.Get(player)
	speed := components.Player.Get(player).Speed

	as.poller = controls.NewPoller(manager, cfg.Input.PollInterval,
		systems.SteerPlayer(steering.SteeringBuffer, speed))
	as.poller.Start(context.Background())
}
