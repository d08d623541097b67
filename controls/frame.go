package controls

// frame is one generation of sampled device history together with the
// device class active for it. A frame is never modified once published.
type frame struct {
	mode DeviceClass

	kbs     KeyboardState
	prevKbs KeyboardState

	ms         MouseState
	prevMs     MouseState
	prevPrevMs MouseState

	gps     GamepadState
	prevGps GamepadState
}

// initialFrame fills every generation with the same sample.
func initialFrame(kb KeyboardState, ms MouseState, gp GamepadState) *frame {
	return &frame{
		mode:       DeviceKeyboardMouse,
		kbs:        kb,
		prevKbs:    kb,
		ms:         ms,
		prevMs:     ms,
		prevPrevMs: ms,
		gps:        gp,
		prevGps:    gp,
	}
}

// next shifts history back one generation, appends the fresh samples and
// runs device detection.
func (f *frame) next(kb KeyboardState, ms MouseState, gp GamepadState) *frame {
	n := &frame{
		kbs:        kb,
		prevKbs:    f.kbs,
		ms:         ms,
		prevMs:     f.ms,
		prevPrevMs: f.prevMs,
		gps:        gp,
		prevGps:    f.gps,
	}
	n.mode = n.detectMode(f.mode)
	return n
}

// detectMode applies at most one transition. The gamepad check runs first
// and the keyboard/mouse check is gated on the mode the pass started in,
// so pad activity wins a frame where both devices were used.
func (f *frame) detectMode(start DeviceClass) DeviceClass {
	if start != DeviceGamepad && f.gamepadActive() {
		return DeviceGamepad
	}
	if start != DeviceKeyboardMouse && f.keyboardMouseActive() {
		return DeviceKeyboardMouse
	}
	return start
}

func (f *frame) gamepadActive() bool {
	return f.gps.Connected && f.gps.PacketNumber != f.prevGps.PacketNumber
}

func (f *frame) keyboardMouseActive() bool {
	return f.kbs.AnyPressed() || f.ms.Position() != f.prevMs.Position()
}

// resolve reports whether c reads as pressed and as released in the
// current sample, or in the previous one when prev is set. A binding with
// nothing for the active device class is neither.
func (f *frame) resolve(c *Control, prev bool) (pressed, released bool) {
	if c == nil {
		return false, false
	}

	switch f.mode {
	case DeviceKeyboardMouse:
		if c.hasMouse {
			return f.mouseButton(c.mouse, prev)
		}
		if !c.hasKey {
			return false, false
		}
		kbs := f.kbs
		if prev {
			kbs = f.prevKbs
		}
		down := kbs.IsKeyDown(c.key)
		return down, !down
	case DeviceGamepad:
		if !c.hasGamepad {
			return false, false
		}
		return f.gamepadButton(c.gamepad, prev)
	}
	return false, false
}

// mouseButton compares the chosen snapshot with the one sampled right
// before it for the scroll entries.
func (f *frame) mouseButton(b MouseButton, prev bool) (pressed, released bool) {
	cur, before := f.ms, f.prevMs
	if prev {
		cur, before = f.prevMs, f.prevPrevMs
	}

	switch b {
	case MouseLeft, MouseMiddle, MouseRight, MouseX1, MouseX2:
		down := cur.button(b)
		return down, !down
	case MouseScrollUp:
		return cur.ScrollWheelValue > before.ScrollWheelValue, cur.ScrollWheelValue == before.ScrollWheelValue
	case MouseScrollDown:
		return cur.ScrollWheelValue < before.ScrollWheelValue, cur.ScrollWheelValue == before.ScrollWheelValue
	}
	return false, false
}

func (f *frame) gamepadButton(b GamepadButton, prev bool) (pressed, released bool) {
	if b <= GamepadNone || b >= gamepadButtonCount {
		return false, false
	}

	gps := f.gps
	if prev {
		gps = f.prevGps
	}

	switch b {
	case GamepadRightTrigger:
		return gps.RightTrigger > 0, gps.RightTrigger == 0
	case GamepadLeftTrigger:
		return gps.LeftTrigger > 0, gps.LeftTrigger == 0
	case GamepadRightStick:
		// Aim is held on the right stick, so the previous sample always
		// counts it as pressed.
		if prev {
			return true, gps.IsButtonUp(b)
		}
	}
	down := gps.IsButtonDown(b)
	return down, !down
}

// bindingPair is an action's primary and alternate binding.
type bindingPair [bindingSetCount]Control

func (f *frame) pressed(p *bindingPair, prev bool) bool {
	for set := range p {
		if pressed, _ := f.resolve(&p[set], prev); pressed {
			return true
		}
	}
	return false
}

func (f *frame) released(p *bindingPair, prev bool) bool {
	for set := range p {
		if _, released := f.resolve(&p[set], prev); released {
			return true
		}
	}
	return false
}

// justPressed checks each binding set on its own; primary current state
// is never paired with the alternate previous state.
func (f *frame) justPressed(p *bindingPair) bool {
	for set := range p {
		pressed, _ := f.resolve(&p[set], false)
		_, wasReleased := f.resolve(&p[set], true)
		if pressed && wasReleased {
			return true
		}
	}
	return false
}

func (f *frame) justReleased(p *bindingPair) bool {
	for set := range p {
		_, released := f.resolve(&p[set], false)
		wasPressed, _ := f.resolve(&p[set], true)
		if released && wasPressed {
			return true
		}
	}
	return false
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

func (f *frame) state(p *bindingPair) ActionState {
	return ActionState{
		Pressed:      f.pressed(p, false),
		JustPressed:  f.justPressed(p),
		JustReleased: f.justReleased(p),
	}
}
