package components

import (
	cfg "github.com/automoto/ironsight/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// WeaponState is the runtime state of one weapon in the inventory.
type WeaponState struct {
	Config   cfg.WeaponConfig
	Clip     int
	Cooldown float64 // Seconds until the weapon may fire again

	// Reload runs from 0 to 1 over Config.ReloadTime; nil when not reloading.
	Reload         *gween.Tween
	ReloadProgress float32
}

// Fired reports whether the weapon is still cooling down from a shot.
func (w *WeaponState) Fired() bool {
	return w.Cooldown > 0
}

// Reloading reports whether a reload is in progress.
func (w *WeaponState) Reloading() bool {
	return w.Reload != nil
}

// NewWeaponState returns a weapon with a full clip.
func NewWeaponState(c cfg.WeaponConfig) WeaponState {
	return WeaponState{Config: c, Clip: c.ClipSize}
}

type WeaponData struct {
	Inventory []WeaponState
	Current   int
}

// Active returns the selected weapon, or nil with an empty inventory.
func (w *WeaponData) Active() *WeaponState {
	if len(w.Inventory) == 0 {
		return nil
	}
	return &w.Inventory[w.Current]
}

var Weapon = donburi.NewComponentType[WeaponData]()
