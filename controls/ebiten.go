package controls

import (
	"log"
	"math"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// scrollNotch is the scroll value reported per wheel notch.
const scrollNotch = 120

// NewEbitenManager creates a Manager reading the devices through ebiten.
func NewEbitenManager(stickDeadzone, triggerThreshold float64) *Manager {
	return NewManager(
		&EbitenKeyboard{},
		&EbitenMouse{},
		&EbitenGamepad{StickDeadzone: stickDeadzone, TriggerThreshold: triggerThreshold},
	)
}

// EbitenKeyboard samples the keyboard.
type EbitenKeyboard struct {
	// Reusable slice to avoid allocations
	keys []ebiten.Key
}

func (k *EbitenKeyboard) Keyboard() KeyboardState {
	k.keys = inpututil.AppendPressedKeys(k.keys[:0])
	return NewKeyboardState(k.keys...)
}

// EbitenMouse samples the mouse. ebiten reports wheel movement as a per
// tick offset, so the offsets are accumulated into an absolute value.
type EbitenMouse struct {
	scroll float64
}

func (m *EbitenMouse) Mouse() MouseState {
	_, dy := ebiten.Wheel()
	m.scroll += dy * scrollNotch

	x, y := ebiten.CursorPosition()
	return MouseState{
		X:                x,
		Y:                y,
		ScrollWheelValue: int(math.Round(m.scroll)),
		Left:             ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Middle:           ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		Right:            ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		X1:               ebiten.IsMouseButtonPressed(ebiten.MouseButton3),
		X2:               ebiten.IsMouseButtonPressed(ebiten.MouseButton4),
	}
}

// standardButtons maps digital gamepad buttons to the standard layout.
var standardButtons = map[GamepadButton]ebiten.StandardGamepadButton{
	GamepadA:             ebiten.StandardGamepadButtonRightBottom,
	GamepadB:             ebiten.StandardGamepadButtonRightRight,
	GamepadX:             ebiten.StandardGamepadButtonRightLeft,
	GamepadY:             ebiten.StandardGamepadButtonRightTop,
	GamepadLeftShoulder:  ebiten.StandardGamepadButtonFrontTopLeft,
	GamepadRightShoulder: ebiten.StandardGamepadButtonFrontTopRight,
	GamepadLeftTrigger:   ebiten.StandardGamepadButtonFrontBottomLeft,
	GamepadRightTrigger:  ebiten.StandardGamepadButtonFrontBottomRight,
	GamepadBack:          ebiten.StandardGamepadButtonCenterLeft,
	GamepadStart:         ebiten.StandardGamepadButtonCenterRight,
	GamepadGuide:         ebiten.StandardGamepadButtonCenterCenter,
	GamepadLeftStick:     ebiten.StandardGamepadButtonLeftStick,
	GamepadRightStick:    ebiten.StandardGamepadButtonRightStick,
	GamepadDPadUp:        ebiten.StandardGamepadButtonLeftTop,
	GamepadDPadDown:      ebiten.StandardGamepadButtonLeftBottom,
	GamepadDPadLeft:      ebiten.StandardGamepadButtonLeftLeft,
	GamepadDPadRight:     ebiten.StandardGamepadButtonLeftRight,
}

// EbitenGamepad samples the first connected gamepad with a standard layout
// and stays on it until it disconnects.
type EbitenGamepad struct {
	StickDeadzone    float64 // Radial deadzone for both sticks (0.0 to 1.0)
	TriggerThreshold float64 // Trigger values below this read as 0

	ids    []ebiten.GamepadID
	id     ebiten.GamepadID
	bound  bool
	packet uint64
	last   GamepadState
}

func (g *EbitenGamepad) Gamepad() GamepadState {
	id, ok := g.pick()
	if !ok {
		g.last = GamepadState{PacketNumber: g.packet}
		return g.last
	}

	s := GamepadState{Connected: true}
	for b, sb := range standardButtons {
		s.Buttons[b] = ebiten.IsStandardGamepadButtonPressed(id, sb)
	}

	s.LeftTrigger = g.trigger(ebiten.StandardGamepadButtonValue(id, ebiten.StandardGamepadButtonFrontBottomLeft))
	s.RightTrigger = g.trigger(ebiten.StandardGamepadButtonValue(id, ebiten.StandardGamepadButtonFrontBottomRight))
	s.LeftStick = g.stick(
		ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
		ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
	)
	s.RightStick = g.stick(
		ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal),
		ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical),
	)
	setStickButtons(&s, s.LeftStick, GamepadLeftThumbstickUp, g.StickDeadzone)
	setStickButtons(&s, s.RightStick, GamepadRightThumbstickUp, g.StickDeadzone)

	// Any change since the last sample counts as a new packet
	s.PacketNumber = g.last.PacketNumber
	if s != g.last {
		g.packet++
	}
	s.PacketNumber = g.packet
	g.last = s
	return s
}

// pick returns the gamepad to read, rebinding when the current one is gone.
func (g *EbitenGamepad) pick() (ebiten.GamepadID, bool) {
	g.ids = ebiten.AppendGamepadIDs(g.ids[:0])
	if g.bound && slices.Contains(g.ids, g.id) && ebiten.IsStandardGamepadLayoutAvailable(g.id) {
		return g.id, true
	}
	if g.bound {
		log.Printf("[controls] gamepad %d disconnected", g.id)
		g.bound = false
	}

	for _, id := range g.ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		g.id, g.bound = id, true
		log.Printf("[controls] using gamepad %d (%s)", id, ebiten.GamepadName(id))
		return id, true
	}
	return 0, false
}

func (g *EbitenGamepad) trigger(v float64) float64 {
	if v < g.TriggerThreshold {
		return 0
	}
	return v
}

// stick applies a circular deadzone so a resting stick reads exactly zero.
func (g *EbitenGamepad) stick(x, y float64) Vector {
	if math.Hypot(x, y) < g.StickDeadzone {
		return Vector{}
	}
	return Vector{X: x, Y: y}
}

// setStickButtons derives the four virtual direction buttons of a stick.
// up must be the stick's Up entry; Down, Left and Right follow it.
func setStickButtons(s *GamepadState, v Vector, up GamepadButton, threshold float64) {
	s.Buttons[up] = v.Y < -threshold
	s.Buttons[up+1] = v.Y > threshold
	s.Buttons[up+2] = v.X < -threshold
	s.Buttons[up+3] = v.X > threshold
}
