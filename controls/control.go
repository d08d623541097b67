package controls

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Input is any physical control a binding can hold.
type Input interface {
	ebiten.Key | MouseButton | GamepadButton
}

// Control binds one action to at most one key, one mouse button and one
// gamepad button. The fields do not conflict; which one is consulted
// depends on the active device class.
type Control struct {
	action Action

	key    ebiten.Key
	hasKey bool

	mouse    MouseButton
	hasMouse bool

	gamepad    GamepadButton
	hasGamepad bool
}

// NewControl creates an empty binding for the action.
func NewControl(a Action) *Control {
	return &Control{
		action:  a,
		mouse:   MouseNone,
		gamepad: GamepadNone,
	}
}

// SetControl assigns v to the field of its device class.
func SetControl[T Input](c *Control, v T) {
	switch v := any(v).(type) {
	case ebiten.Key:
		c.SetKey(v)
	case MouseButton:
		c.SetMouseButton(v)
	case GamepadButton:
		c.SetGamepadButton(v)
	}
}

func (c *Control) SetKey(k ebiten.Key) {
	c.key = k
	c.hasKey = true
}

// SetMouseButton marks the binding as a mouse binding. Binding MouseNone
// still shadows the keyboard key while keyboard+mouse is active.
func (c *Control) SetMouseButton(b MouseButton) {
	c.mouse = b
	c.hasMouse = true
}

func (c *Control) SetGamepadButton(b GamepadButton) {
	c.gamepad = b
	c.hasGamepad = true
}

// Clear removes every device binding while keeping the action.
func (c *Control) Clear() {
	*c = *NewControl(c.action)
}

func (c *Control) Action() Action {
	return c.action
}

func (c *Control) Key() (ebiten.Key, bool) {
	return c.key, c.hasKey
}

func (c *Control) MouseButton() MouseButton {
	return c.mouse
}

func (c *Control) GamepadButton() GamepadButton {
	return c.gamepad
}

func (c *Control) IsMouseControl() bool {
	return c.hasMouse
}

func (c *Control) HasGamepadControl() bool {
	return c.hasGamepad
}

// keyboardMouseName names what resolves for the action under keyboard+mouse.
func (c *Control) keyboardMouseName() string {
	if c.hasMouse {
		return c.mouse.String()
	}
	if c.hasKey {
		return c.key.String()
	}
	return ""
}

func (c *Control) gamepadName() string {
	if c.hasGamepad {
		return c.gamepad.String()
	}
	return ""
}

// String lists every bound control, e.g. "W / Left Stick Up".
func (c *Control) String() string {
	var parts []string
	if name := c.keyboardMouseName(); name != "" {
		parts = append(parts, name)
	}
	if name := c.gamepadName(); name != "" {
		parts = append(parts, name)
	}
	if len(parts) == 0 {
		return "Unbound"
	}
	return strings.Join(parts, " / ")
}
