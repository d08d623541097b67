package systems

import (
	"fmt"

	"github.com/automoto/ironsight/components"
	cfg "github.com/automoto/ironsight/config"
	"github.com/automoto/ironsight/controls"
	"github.com/automoto/ironsight/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// hudPrompts are the actions listed in the bottom-left help panel.
var hudPrompts = []controls.Action{
	controls.ActionFire,
	controls.ActionReload,
	controls.ActionNextWeapon,
	controls.ActionPrevWeapon,
	controls.ActionInteract,
	controls.ActionSecondaryAim,
}

// DrawHUD renders ammo, reload progress, the device banner and control
// prompts for whichever device is active.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	input := getInput(ecs)
	playerEntry, ok := components.Player.First(ecs.World)
	if input == nil || !ok {
		return
	}

	if w := components.Weapon.Get(playerEntry).Active(); w != nil {
		drawAmmo(screen, w)
	}
	drawPrompts(screen, input.Manager)

	if input.SwitchTimer > 0 {
		drawDeviceBanner(screen, input.LastDevice)
	}
}

func drawAmmo(screen *ebiten.Image, w *components.WeaponState) {
	face := fonts.HUD.Get()
	x := int(cfg.HUD.Margin)
	y := int(cfg.HUD.Margin) + cfg.HUD.LineHeight

	label := fmt.Sprintf("%s  %d/%d", w.Config.Name, w.Clip, w.Config.ClipSize)
	text.Draw(screen, label, face, x, y, cfg.HUD.TextColor)

	if !w.Reloading() {
		return
	}
	barY := float32(y + 4)
	vector.FillRect(screen, float32(x), barY,
		float32(cfg.HUD.ReloadBarWidth), float32(cfg.HUD.ReloadBarHeight),
		cfg.HUD.ReloadBgColor, false)
	vector.FillRect(screen, float32(x), barY,
		float32(cfg.HUD.ReloadBarWidth)*w.ReloadProgress, float32(cfg.HUD.ReloadBarHeight),
		cfg.HUD.ReloadFgColor, false)
}

func drawPrompts(screen *ebiten.Image, m *controls.Manager) {
	face := fonts.HUDSmall.Get()
	x := int(cfg.HUD.Margin)
	y := cfg.C.Height - int(cfg.HUD.Margin) - cfg.HUD.LineHeight*(len(hudPrompts)-1)

	for i, a := range hudPrompts {
		prompt := m.Prompt(a)
		if prompt == "" {
			continue
		}
		line := fmt.Sprintf("%s: %s", a, prompt)
		text.Draw(screen, line, face, x, y+i*cfg.HUD.LineHeight, cfg.HUD.PromptColor)
	}
}

func drawDeviceBanner(screen *ebiten.Image, d controls.DeviceClass) {
	face := fonts.HUD.Get()
	label := "Using " + d.String()

	width := float32(len(label)*7 + 16)
	x := float32(cfg.C.Width)/2 - width/2
	y := float32(cfg.HUD.Margin)
	vector.FillRect(screen, x, y, width, 20, cfg.HUD.PanelColor, false)
	text.Draw(screen, label, face, int(x)+8, int(y)+14, cfg.HUD.TextColor)
}
