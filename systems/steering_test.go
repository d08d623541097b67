package systems

import (
	"testing"
	"time"

	"github.com/automoto/ironsight/components"
	"github.com/automoto/ironsight/controls"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

type fakeDevices struct {
	kb controls.KeyboardState
	ms controls.MouseState
	gp controls.GamepadState
}

func (d *fakeDevices) Keyboard() controls.KeyboardState { return d.kb }
func (d *fakeDevices) Mouse() controls.MouseState       { return d.ms }
func (d *fakeDevices) Gamepad() controls.GamepadState   { return d.gp }

func newSteeringManager() (*controls.Manager, *fakeDevices) {
	d := &fakeDevices{kb: controls.NewKeyboardState()}
	return controls.NewManager(d, d, d), d
}

func TestSteerPlayerKeyboardMovement(t *testing.T) {
	m, d := newSteeringManager()
	buf := &components.SteeringBuffer{}
	handle := SteerPlayer(buf, 100)

	// W and S together: Forward wins
	d.kb = controls.NewKeyboardState(ebiten.KeyW, ebiten.KeyS, ebiten.KeyD)
	m.Update()
	handle(m.View(), 100*time.Millisecond)

	f := buf.Drain()
	step := 10 / 1.4142135623730951
	assert.InDelta(t, step, f.DX, 1e-6)
	assert.InDelta(t, -step, f.DY, 1e-6)

	// Drain resets the displacement
	f = buf.Drain()
	assert.Zero(t, f.DX)
	assert.Zero(t, f.DY)
}

func TestSteerPlayerAimsAtCursor(t *testing.T) {
	m, d := newSteeringManager()
	buf := &components.SteeringBuffer{}
	buf.SetOrigin(100, 100)
	handle := SteerPlayer(buf, 100)

	d.ms = controls.MouseState{X: 100, Y: 40}
	m.Update()
	handle(m.View(), time.Millisecond)

	f := buf.Drain()
	assert.True(t, f.HasAim)
	assert.Equal(t, components.DirUp, f.Facing)
	assert.InDelta(t, -1, f.Aim.Y, 1e-9)
}

func TestSteerPlayerGamepadSticks(t *testing.T) {
	m, d := newSteeringManager()
	buf := &components.SteeringBuffer{}
	handle := SteerPlayer(buf, 100)

	d.gp = controls.GamepadState{
		Connected:    true,
		PacketNumber: 1,
		LeftStick:    controls.Vector{X: 0.5},
		RightStick:   controls.Vector{X: -1},
	}
	d.gp.Buttons[controls.GamepadLeftThumbstickRight] = true
	m.Update()
	assert.Equal(t, controls.DeviceGamepad, m.Mode())

	handle(m.View(), time.Second)
	f := buf.Drain()
	assert.InDelta(t, 50, f.DX, 1e-9, "analog stick scales speed")
	assert.Zero(t, f.DY)
	assert.Equal(t, components.DirLeft, f.Facing)

	// A resting right stick keeps the last aim
	d.gp.RightStick = controls.Vector{}
	d.gp.PacketNumber = 2
	m.Update()
	handle(m.View(), time.Millisecond)
	assert.Equal(t, components.DirLeft, buf.Drain().Facing)
}
