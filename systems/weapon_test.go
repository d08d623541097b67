package systems

import (
	"testing"

	"github.com/automoto/ironsight/components"
	cfg "github.com/automoto/ironsight/config"
	"github.com/automoto/ironsight/controls"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWeapon() components.WeaponState {
	return components.NewWeaponState(cfg.WeaponConfig{
		Name:       "Test",
		ClipSize:   2,
		FireRate:   0.1,
		ReloadTime: 0.5,
	})
}

func TestTryFireConsumesOneRoundPerShot(t *testing.T) {
	w := testWeapon()

	require.True(t, TryFire(&w))
	assert.Equal(t, 1, w.Clip)
	assert.True(t, w.Fired())

	// Still cooling down
	assert.False(t, TryFire(&w))
	assert.Equal(t, 1, w.Clip)

	StepWeapon(&w, 0.1)
	assert.False(t, w.Fired())
	require.True(t, TryFire(&w))
	assert.Equal(t, 0, w.Clip)
}

func TestEmptyClipStartsReload(t *testing.T) {
	w := testWeapon()
	w.Clip = 0

	assert.False(t, TryFire(&w))
	assert.True(t, w.Reloading())

	// No firing mid-reload
	assert.False(t, TryFire(&w))
}

func TestReloadRefillsClip(t *testing.T) {
	w := testWeapon()
	w.Clip = 0
	StartReload(&w)

	StepWeapon(&w, 0.25)
	assert.True(t, w.Reloading())
	assert.InDelta(t, 0.5, w.ReloadProgress, 0.01)
	assert.Equal(t, 0, w.Clip)

	StepWeapon(&w, 0.3)
	assert.False(t, w.Reloading())
	assert.Equal(t, 2, w.Clip)
	assert.Zero(t, w.ReloadProgress)
}

func TestStartReloadIgnoredWhenFullOrRunning(t *testing.T) {
	w := testWeapon()
	StartReload(&w)
	assert.False(t, w.Reloading(), "full clip")

	w.Clip = 1
	StartReload(&w)
	require.True(t, w.Reloading())
	StepWeapon(&w, 0.25)
	tween := w.Reload

	StartReload(&w)
	assert.Same(t, tween, w.Reload, "running reload restarted")
}

func TestCycleWeaponWraps(t *testing.T) {
	weapons := &components.WeaponData{Inventory: make([]components.WeaponState, 3)}

	CycleWeapon(weapons, -1)
	assert.Equal(t, 2, weapons.Current)
	CycleWeapon(weapons, 1)
	assert.Equal(t, 0, weapons.Current)
	CycleWeapon(weapons, 1)
	assert.Equal(t, 1, weapons.Current)

	empty := &components.WeaponData{}
	CycleWeapon(empty, 1)
	assert.Equal(t, 0, empty.Current)
	assert.Nil(t, empty.Active())
}

func TestHoldingFireRepeatsUntilClipEmpty(t *testing.T) {
	m, d := newSteeringManager()
	w := testWeapon()
	w.Config.ClipSize, w.Clip = 3, 3
	weapons := &components.WeaponData{Inventory: []components.WeaponState{w}}

	d.ms.Left = true
	var shots []int
	for tick := range 10 {
		m.Update()
		if runWeapon(m, weapons, 0.06) {
			shots = append(shots, tick)
		}
	}

	assert.Equal(t, []int{0, 2, 4}, shots)
	active := weapons.Active()
	assert.Equal(t, 0, active.Clip)
	assert.True(t, active.Reloading(), "empty clip under a held trigger reloads")
}

func TestReleasedFireDoesNotShoot(t *testing.T) {
	m, _ := newSteeringManager()
	weapons := &components.WeaponData{Inventory: []components.WeaponState{testWeapon()}}

	m.Update()
	assert.False(t, runWeapon(m, weapons, 0.06))
	assert.Equal(t, 2, weapons.Active().Clip)
}

func TestRunWeaponReloadsOnPressEdge(t *testing.T) {
	m, d := newSteeringManager()
	w := testWeapon()
	w.Clip = 1
	weapons := &components.WeaponData{Inventory: []components.WeaponState{w}}

	d.kb = controls.NewKeyboardState(ebiten.KeyR)
	m.Update()
	runWeapon(m, weapons, 0.06)
	require.True(t, weapons.Active().Reloading())

	// Holding R through the reload does not restart it
	tween := weapons.Active().Reload
	m.Update()
	runWeapon(m, weapons, 0.06)
	assert.Same(t, tween, weapons.Active().Reload)
}

func TestRunWeaponCyclesOnScroll(t *testing.T) {
	m, d := newSteeringManager()
	weapons := &components.WeaponData{Inventory: []components.WeaponState{testWeapon(), testWeapon()}}

	m.Update()
	d.ms.ScrollWheelValue = 120
	m.Update()
	runWeapon(m, weapons, 0.06)
	assert.Equal(t, 1, weapons.Current)
}
