package systems

import (
	"github.com/automoto/ironsight/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// deviceBannerTicks is how long the HUD shows a device switch.
const deviceBannerTicks = 90

// UpdateInput samples every device once for this tick.
// Must run BEFORE any system that queries the input manager.
func UpdateInput(ecs *ecs.ECS) {
	input := getInput(ecs)
	if input == nil {
		return
	}

	input.Manager.Update()
	trackDevice(input)

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
		SaveCurrentSettings()
	}
}

// trackDevice arms the HUD banner when the active device class changes.
func trackDevice(input *components.InputData) {
	if input.SwitchTimer > 0 {
		input.SwitchTimer--
	}
	if mode := input.Manager.Mode(); mode != input.LastDevice {
		input.LastDevice = mode
		input.SwitchTimer = deviceBannerTicks
	}
}

func getInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Input.Get(entry)
}
