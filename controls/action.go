package controls

// Action represents a logical game action
type Action int

const (
	ActionForward Action = iota
	ActionBackward
	ActionLeft
	ActionRight
	ActionReload
	ActionInteract
	ActionFire
	ActionNextWeapon
	ActionPrevWeapon
	ActionSecondaryAim
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionForward:      "Forward",
	ActionBackward:     "Backward",
	ActionLeft:         "Left",
	ActionRight:        "Right",
	ActionReload:       "Reload",
	ActionInteract:     "Interact",
	ActionFire:         "Fire",
	ActionNextWeapon:   "Next Weapon",
	ActionPrevWeapon:   "Previous Weapon",
	ActionSecondaryAim: "Aim",
}

func (a Action) String() string {
	if !a.valid() {
		return "Unknown"
	}
	return actionNames[a]
}

func (a Action) valid() bool {
	return a >= 0 && a < ActionCount
}

// DeviceClass is the family of physical devices the manager resolves bindings against.
type DeviceClass int

const (
	DeviceKeyboardMouse DeviceClass = iota
	DeviceGamepad
)

func (d DeviceClass) String() string {
	switch d {
	case DeviceKeyboardMouse:
		return "Keyboard+Mouse"
	case DeviceGamepad:
		return "Gamepad"
	default:
		return "Unknown"
	}
}

// BindingSet selects one of the two parallel binding tables.
type BindingSet int

const (
	Primary BindingSet = iota
	Alternate
	bindingSetCount
)

// MouseButton identifies a mouse control. The scroll entries are virtual
// buttons derived from the wheel value.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	MouseX1
	MouseX2
	MouseScrollUp
	MouseScrollDown
	MouseNone
)

var mouseButtonNames = [...]string{
	MouseLeft:       "Left Mouse",
	MouseMiddle:     "Middle Mouse",
	MouseRight:      "Right Mouse",
	MouseX1:         "Mouse X1",
	MouseX2:         "Mouse X2",
	MouseScrollUp:   "Scroll Up",
	MouseScrollDown: "Scroll Down",
	MouseNone:       "None",
}

func (b MouseButton) String() string {
	if b < 0 || int(b) >= len(mouseButtonNames) {
		return "Unknown"
	}
	return mouseButtonNames[b]
}

// GamepadButton identifies a gamepad control. Triggers and thumbstick
// directions are axes exposed as buttons.
type GamepadButton int

const (
	GamepadNone GamepadButton = iota
	GamepadA
	GamepadB
	GamepadX
	GamepadY
	GamepadLeftShoulder
	GamepadRightShoulder
	GamepadLeftTrigger
	GamepadRightTrigger
	GamepadBack
	GamepadStart
	GamepadGuide
	GamepadLeftStick
	GamepadRightStick
	GamepadDPadUp
	GamepadDPadDown
	GamepadDPadLeft
	GamepadDPadRight
	GamepadLeftThumbstickUp
	GamepadLeftThumbstickDown
	GamepadLeftThumbstickLeft
	GamepadLeftThumbstickRight
	GamepadRightThumbstickUp
	GamepadRightThumbstickDown
	GamepadRightThumbstickLeft
	GamepadRightThumbstickRight
	gamepadButtonCount
)

var gamepadButtonNames = [gamepadButtonCount]string{
	GamepadNone:                 "None",
	GamepadA:                    "A",
	GamepadB:                    "B",
	GamepadX:                    "X",
	GamepadY:                    "Y",
	GamepadLeftShoulder:         "LB",
	GamepadRightShoulder:        "RB",
	GamepadLeftTrigger:          "LT",
	GamepadRightTrigger:         "RT",
	GamepadBack:                 "Back",
	GamepadStart:                "Start",
	GamepadGuide:                "Guide",
	GamepadLeftStick:            "L3",
	GamepadRightStick:           "R3",
	GamepadDPadUp:               "D-Pad Up",
	GamepadDPadDown:             "D-Pad Down",
	GamepadDPadLeft:             "D-Pad Left",
	GamepadDPadRight:            "D-Pad Right",
	GamepadLeftThumbstickUp:     "Left Stick Up",
	GamepadLeftThumbstickDown:   "Left Stick Down",
	GamepadLeftThumbstickLeft:   "Left Stick Left",
	GamepadLeftThumbstickRight:  "Left Stick Right",
	GamepadRightThumbstickUp:    "Right Stick Up",
	GamepadRightThumbstickDown:  "Right Stick Down",
	GamepadRightThumbstickLeft:  "Right Stick Left",
	GamepadRightThumbstickRight: "Right Stick Right",
}

func (b GamepadButton) String() string {
	if b < 0 || b >= gamepadButtonCount {
		return "Unknown"
	}
	return gamepadButtonNames[b]
}
