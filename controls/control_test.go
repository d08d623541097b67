package controls

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestSetControlDispatchesOnDeviceClass(t *testing.T) {
	c := NewControl(ActionFire)
	assert.False(t, c.IsMouseControl())
	assert.False(t, c.HasGamepadControl())
	_, hasKey := c.Key()
	assert.False(t, hasKey)

	SetControl(c, ebiten.KeyF)
	SetControl(c, MouseLeft)
	SetControl(c, GamepadRightTrigger)

	key, hasKey := c.Key()
	assert.True(t, hasKey)
	assert.Equal(t, ebiten.KeyF, key)
	assert.True(t, c.IsMouseControl())
	assert.Equal(t, MouseLeft, c.MouseButton())
	assert.True(t, c.HasGamepadControl())
	assert.Equal(t, GamepadRightTrigger, c.GamepadButton())
	assert.Equal(t, ActionFire, c.Action())
}

func TestSetControlOverwritesSameClass(t *testing.T) {
	c := NewControl(ActionReload)

	SetControl(c, ebiten.KeyR)
	SetControl(c, GamepadX)
	SetControl(c, ebiten.KeyT)
	SetControl(c, GamepadRightShoulder)

	key, _ := c.Key()
	assert.Equal(t, ebiten.KeyT, key)
	assert.Equal(t, GamepadRightShoulder, c.GamepadButton())
	assert.Equal(t, ActionReload, c.Action())
}

func TestClearKeepsAction(t *testing.T) {
	c := NewControl(ActionInteract)
	c.SetKey(ebiten.KeyEnter)
	c.SetMouseButton(MouseX1)
	c.SetGamepadButton(GamepadA)

	c.Clear()

	assert.Equal(t, ActionInteract, c.Action())
	_, hasKey := c.Key()
	assert.False(t, hasKey)
	assert.False(t, c.IsMouseControl())
	assert.False(t, c.HasGamepadControl())
	assert.Equal(t, MouseNone, c.MouseButton())
	assert.Equal(t, GamepadNone, c.GamepadButton())
}

func TestControlString(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *Control)
		want  string
	}{
		{"unbound", func(c *Control) {}, "Unbound"},
		{"key only", func(c *Control) { c.SetKey(ebiten.KeyW) }, "W"},
		{"mouse shadows key", func(c *Control) {
			c.SetKey(ebiten.KeyW)
			c.SetMouseButton(MouseScrollDown)
		}, "Scroll Down"},
		{"gamepad only", func(c *Control) { c.SetGamepadButton(GamepadDPadDown) }, "D-Pad Down"},
		{"both", func(c *Control) {
			c.SetMouseButton(MouseLeft)
			c.SetGamepadButton(GamepadRightTrigger)
		}, "Left Mouse / RT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewControl(ActionFire)
			tt.setup(c)
			assert.Equal(t, tt.want, c.String())
		})
	}
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "Next Weapon", ActionNextWeapon.String())
	assert.Equal(t, "Unknown", ActionCount.String())
	assert.Equal(t, "Gamepad", DeviceGamepad.String())
	assert.Equal(t, "Keyboard+Mouse", DeviceKeyboardMouse.String())
	assert.Equal(t, "Mouse X2", MouseX2.String())
	assert.Equal(t, "Unknown", MouseButton(42).String())
	assert.Equal(t, "Right Stick Left", GamepadRightThumbstickLeft.String())
	assert.Equal(t, "Unknown", gamepadButtonCount.String())
}
