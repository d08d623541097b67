package systems

import (
	"github.com/automoto/ironsight/components"
	"github.com/automoto/ironsight/controls"
	"github.com/automoto/ironsight/systems/factory"
	"github.com/automoto/ironsight/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWeapon runs the player's weapon: cooldown and reload timers,
// weapon cycling, manual reloads and firing.
func UpdateWeapon(ecs *ecs.ECS) {
	input := getInput(ecs)
	if input == nil {
		return
	}
	m := input.Manager
	dt := 1.0 / float64(ebiten.TPS())

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		weapons := components.Weapon.Get(e)
		if !runWeapon(m, weapons, dt) {
			return
		}
		player := components.Player.Get(e)
		x, y := components.Object.Get(e).Center()
		factory.CreateBullet(ecs, x, y, player.Aim, weapons.Active().Config)
	})
}

// runWeapon advances the selected weapon by one tick of dt seconds and
// reports whether it fired. Holding Fire keeps shooting at the weapon's
// fire rate until the clip runs dry.
func runWeapon(r controls.Reader, weapons *components.WeaponData, dt float64) bool {
	switch {
	case r.JustPressed(controls.ActionNextWeapon):
		CycleWeapon(weapons, 1)
	case r.JustPressed(controls.ActionPrevWeapon):
		CycleWeapon(weapons, -1)
	}

	w := weapons.Active()
	if w == nil {
		return false
	}
	StepWeapon(w, dt)

	if r.JustPressed(controls.ActionReload) {
		StartReload(w)
	}
	return r.IsPressed(controls.ActionFire) && TryFire(w)
}

// CycleWeapon selects the next (step 1) or previous (step -1) weapon,
// wrapping around the inventory.
func CycleWeapon(weapons *components.WeaponData, step int) {
	n := len(weapons.Inventory)
	if n == 0 {
		return
	}
	weapons.Current = ((weapons.Current+step)%n + n) % n
}

// StepWeapon advances the fire cooldown and any running reload by dt
// seconds. A finished reload refills the clip.
func StepWeapon(w *components.WeaponState, dt float64) {
	if w.Fired() {
		w.Cooldown -= dt
		if w.Cooldown < 0 {
			w.Cooldown = 0
		}
	}

	if w.Reloading() {
		progress, done := w.Reload.Update(float32(dt))
		w.ReloadProgress = progress
		if done {
			w.Reload = nil
			w.ReloadProgress = 0
			w.Clip = w.Config.ClipSize
		}
	}
}

// StartReload begins a reload unless one is running or the clip is full.
func StartReload(w *components.WeaponState) {
	if w.Reloading() || w.Clip >= w.Config.ClipSize {
		return
	}
	w.Reload = gween.New(0, 1, float32(w.Config.ReloadTime), ease.Linear)
	w.ReloadProgress = 0
}

// TryFire consumes a round and reports whether a shot left the barrel.
// Trying to fire an empty weapon starts a reload instead.
func TryFire(w *components.WeaponState) bool {
	if w.Fired() || w.Reloading() {
		return false
	}
	if w.Clip <= 0 {
		StartReload(w)
		return false
	}
	w.Clip--
	w.Cooldown = w.Config.FireRate
	return true
}
