package controls

import "github.com/hajimehoshi/ebiten/v2"

// LoadBindings creates one binding per action in both sets and applies the
// defaults. Bindings live in memory only.
func (m *Manager) LoadBindings() {
	m.mu.Lock()
	for set := range bindingSetCount {
		for a := range ActionCount {
			if m.bindings[set][a] == nil {
				m.bindings[set][a] = NewControl(a)
			}
		}
	}
	m.mu.Unlock()

	m.SetDefaults()
}

// SaveBindings is a no-op: customized bindings are not persisted.
func (m *Manager) SaveBindings() error {
	return nil
}

// SetDefaults clears both binding sets and applies the default layout.
// Keyboard+mouse bindings go in first and gamepad bindings are layered
// into the same objects afterwards.
func (m *Manager) SetDefaults() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for set := range bindingSetCount {
		for _, c := range m.bindings[set] {
			if c != nil {
				c.Clear()
			}
		}
	}

	p := &m.bindings[Primary]
	alt := &m.bindings[Alternate]

	// Movement for keyboard+mouse
	p[ActionForward].SetKey(ebiten.KeyW)
	p[ActionBackward].SetKey(ebiten.KeyS)
	p[ActionLeft].SetKey(ebiten.KeyA)
	p[ActionRight].SetKey(ebiten.KeyD)
	// Gameplay for keyboard+mouse
	p[ActionReload].SetKey(ebiten.KeyR)
	p[ActionInteract].SetKey(ebiten.KeyEnter)
	p[ActionFire].SetMouseButton(MouseLeft)
	p[ActionNextWeapon].SetMouseButton(MouseScrollUp)
	p[ActionPrevWeapon].SetMouseButton(MouseScrollDown)

	// Movement for gamepad
	p[ActionForward].SetGamepadButton(GamepadLeftThumbstickUp)
	p[ActionBackward].SetGamepadButton(GamepadLeftThumbstickDown)
	p[ActionLeft].SetGamepadButton(GamepadLeftThumbstickLeft)
	p[ActionRight].SetGamepadButton(GamepadLeftThumbstickRight)
	// Gameplay for gamepad
	p[ActionReload].SetGamepadButton(GamepadRightShoulder)
	p[ActionInteract].SetGamepadButton(GamepadA)
	p[ActionFire].SetGamepadButton(GamepadRightTrigger)
	p[ActionNextWeapon].SetGamepadButton(GamepadDPadUp)
	p[ActionPrevWeapon].SetGamepadButton(GamepadDPadDown)
	p[ActionSecondaryAim].SetGamepadButton(GamepadRightStick)

	alt[ActionNextWeapon].SetKey(ebiten.KeyControlLeft)
	alt[ActionNextWeapon].SetGamepadButton(GamepadLeftShoulder)
}

// control returns the live binding. Callers must hold m.mu.
func (m *Manager) control(set BindingSet, a Action) *Control {
	if set < 0 || set >= bindingSetCount || !a.valid() {
		return nil
	}
	c := m.bindings[set][a]
	if c == nil {
		c = NewControl(a)
		m.bindings[set][a] = c
	}
	return c
}

// Bind assigns v to the action's binding in the given set, replacing any
// previous control of the same device class.
func Bind[T Input](m *Manager, set BindingSet, a Action, v T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c := m.control(set, a); c != nil {
		SetControl(c, v)
	}
}

// Unbind clears every device control of the action in the given set.
func (m *Manager) Unbind(set BindingSet, a Action) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c := m.control(set, a); c != nil {
		c.Clear()
	}
}

// Binding returns a copy of the action's binding in the given set.
func (m *Manager) Binding(set BindingSet, a Action) (Control, bool) {
	if set < 0 || set >= bindingSetCount || !a.valid() {
		return Control{}, false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	c := m.bindings[set][a]
	if c == nil {
		return Control{}, false
	}
	return *c, true
}

// ControlName describes the primary binding of the action.
func (m *Manager) ControlName(a Action) string {
	c, ok := m.Binding(Primary, a)
	if !ok {
		return "Unbound"
	}
	return c.String()
}

func (m *Manager) KeyControl(a Action) (ebiten.Key, bool) {
	c, _ := m.Binding(Primary, a)
	return c.Key()
}

func (m *Manager) MouseControl(a Action) MouseButton {
	c, ok := m.Binding(Primary, a)
	if !ok || !c.IsMouseControl() {
		return MouseNone
	}
	return c.MouseButton()
}

func (m *Manager) GamepadControl(a Action) GamepadButton {
	c, ok := m.Binding(Primary, a)
	if !ok || !c.HasGamepadControl() {
		return GamepadNone
	}
	return c.GamepadButton()
}

// Prompt names the control that triggers the action on the active device
// class, preferring the primary binding. Empty when nothing is bound.
func (m *Manager) Prompt(a Action) string {
	p := m.pair(a)
	mode := m.Mode()
	for set := range p {
		var name string
		if mode == DeviceGamepad {
			name = p[set].gamepadName()
		} else {
			name = p[set].keyboardMouseName()
		}
		if name != "" {
			return name
		}
	}
	return ""
}
