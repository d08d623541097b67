package controls

import (
	"image"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// KeyboardState is the set of keys held down at one sampling instant.
type KeyboardState struct {
	pressed []ebiten.Key // sorted, never mutated after construction
}

// NewKeyboardState captures the given keys. Duplicates are dropped.
func NewKeyboardState(keys ...ebiten.Key) KeyboardState {
	pressed := slices.Clone(keys)
	slices.Sort(pressed)
	return KeyboardState{pressed: slices.Compact(pressed)}
}

func (s KeyboardState) IsKeyDown(k ebiten.Key) bool {
	_, found := slices.BinarySearch(s.pressed, k)
	return found
}

func (s KeyboardState) IsKeyUp(k ebiten.Key) bool {
	return !s.IsKeyDown(k)
}

// PressedKeys returns a copy of the held keys in ascending order.
func (s KeyboardState) PressedKeys() []ebiten.Key {
	return slices.Clone(s.pressed)
}

// AnyPressed reports whether at least one key is down.
func (s KeyboardState) AnyPressed() bool {
	return len(s.pressed) > 0
}

// MouseState is the pointer, wheel and button state at one sampling instant.
// ScrollWheelValue is cumulative since the source was created.
type MouseState struct {
	X, Y             int
	ScrollWheelValue int

	Left, Middle, Right bool
	X1, X2              bool
}

func (m MouseState) Position() image.Point {
	return image.Pt(m.X, m.Y)
}

// button returns the held state of a physical button. Virtual buttons
// report false.
func (m MouseState) button(b MouseButton) bool {
	switch b {
	case MouseLeft:
		return m.Left
	case MouseMiddle:
		return m.Middle
	case MouseRight:
		return m.Right
	case MouseX1:
		return m.X1
	case MouseX2:
		return m.X2
	}
	return false
}

// Vector is an analog stick position in [-1, 1] on both axes, Y down.
type Vector struct {
	X, Y float64
}

// GamepadState is the pad state at one sampling instant. PacketNumber
// changes whenever the pad reports new input.
type GamepadState struct {
	Connected    bool
	PacketNumber uint64

	Buttons [gamepadButtonCount]bool

	LeftTrigger  float64
	RightTrigger float64
	LeftStick    Vector
	RightStick   Vector
}

func (g GamepadState) IsButtonDown(b GamepadButton) bool {
	if b <= GamepadNone || b >= gamepadButtonCount {
		return false
	}
	return g.Buttons[b]
}

func (g GamepadState) IsButtonUp(b GamepadButton) bool {
	return !g.IsButtonDown(b)
}

// KeyboardSource, MouseSource and GamepadSource sample one device each.
// They are called once per Manager.Update.
type KeyboardSource interface {
	Keyboard() KeyboardState
}

type MouseSource interface {
	Mouse() MouseState
}

type GamepadSource interface {
	Gamepad() GamepadState
}
