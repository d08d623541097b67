package controls

import (
	"log"
	"sync"
	"sync/atomic"
)

// Reader is the read-only query surface gameplay code consumes.
type Reader interface {
	Mode() DeviceClass
	IsPressed(a Action) bool
	IsReleased(a Action) bool
	WasPressedLastFrame(a Action) bool
	WasReleasedLastFrame(a Action) bool
	JustPressed(a Action) bool
	JustReleased(a Action) bool
	State(a Action) ActionState
}

// Manager samples the input devices once per tick, keeps the frame history
// needed for edge detection, tracks the active device class and resolves
// action queries against the primary and alternate binding tables.
//
// Update must only be called from the game loop. Queries are safe from any
// goroutine: each one reads a single published frame.
type Manager struct {
	keyboard KeyboardSource
	mouse    MouseSource
	gamepad  GamepadSource

	mu       sync.RWMutex
	bindings [bindingSetCount][ActionCount]*Control

	frame atomic.Pointer[frame]
}

// NewManager samples every source once and loads the default bindings.
func NewManager(kb KeyboardSource, ms MouseSource, gp GamepadSource) *Manager {
	m := &Manager{
		keyboard: kb,
		mouse:    ms,
		gamepad:  gp,
	}
	m.frame.Store(initialFrame(kb.Keyboard(), ms.Mouse(), gp.Gamepad()))
	m.LoadBindings()
	return m
}

// Update advances the frame history and re-evaluates the active device.
func (m *Manager) Update() {
	prev := m.frame.Load()
	next := prev.next(m.keyboard.Keyboard(), m.mouse.Mouse(), m.gamepad.Gamepad())
	m.frame.Store(next)

	if next.mode != prev.mode {
		log.Printf("[controls] active device: %s", next.mode)
	}
}

// Mode returns the device class queries are currently resolved against.
func (m *Manager) Mode() DeviceClass {
	return m.frame.Load().mode
}

// pair copies the action's bindings so resolution runs without the lock.
func (m *Manager) pair(a Action) bindingPair {
	var p bindingPair
	if !a.valid() {
		return p
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for set := range p {
		if c := m.bindings[set][a]; c != nil {
			p[set] = *c
		}
	}
	return p
}

// IsPressed reports whether either binding of the action is held in the
// current sample.
func (m *Manager) IsPressed(a Action) bool {
	p := m.pair(a)
	return m.frame.Load().pressed(&p, false)
}

func (m *Manager) IsReleased(a Action) bool {
	p := m.pair(a)
	return m.frame.Load().released(&p, false)
}

func (m *Manager) WasPressedLastFrame(a Action) bool {
	p := m.pair(a)
	return m.frame.Load().pressed(&p, true)
}

func (m *Manager) WasReleasedLastFrame(a Action) bool {
	p := m.pair(a)
	return m.frame.Load().released(&p, true)
}

// JustPressed reports a press edge on either binding set.
func (m *Manager) JustPressed(a Action) bool {
	p := m.pair(a)
	return m.frame.Load().justPressed(&p)
}

func (m *Manager) JustReleased(a Action) bool {
	p := m.pair(a)
	return m.frame.Load().justReleased(&p)
}

// State returns Pressed/JustPressed/JustReleased computed from one frame.
func (m *Manager) State(a Action) ActionState {
	p := m.pair(a)
	return m.frame.Load().state(&p)
}

// View pins the current frame and a copy of both binding tables.
func (m *Manager) View() *View {
	v := &View{f: m.frame.Load()}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for set := range bindingSetCount {
		for a := range ActionCount {
			if c := m.bindings[set][a]; c != nil {
				v.bindings[a][set] = *c
			}
		}
	}
	return v
}

// View is an immutable snapshot of the manager. Every query on a View sees
// the same samples, bindings and device class.
type View struct {
	f        *frame
	bindings [ActionCount]bindingPair
}

func (v *View) pair(a Action) *bindingPair {
	if !a.valid() {
		return &bindingPair{}
	}
	return &v.bindings[a]
}

func (v *View) Mode() DeviceClass                  { return v.f.mode }
func (v *View) IsPressed(a Action) bool            { return v.f.pressed(v.pair(a), false) }
func (v *View) IsReleased(a Action) bool           { return v.f.released(v.pair(a), false) }
func (v *View) WasPressedLastFrame(a Action) bool  { return v.f.pressed(v.pair(a), true) }
func (v *View) WasReleasedLastFrame(a Action) bool { return v.f.released(v.pair(a), true) }
func (v *View) JustPressed(a Action) bool          { return v.f.justPressed(v.pair(a)) }
func (v *View) JustReleased(a Action) bool         { return v.f.justReleased(v.pair(a)) }
func (v *View) State(a Action) ActionState         { return v.f.state(v.pair(a)) }

// Mouse returns the current mouse sample.
func (v *View) Mouse() MouseState { return v.f.ms }

// Gamepad returns the current gamepad sample.
func (v *View) Gamepad() GamepadState { return v.f.gps }

// Keyboard returns the current keyboard sample.
func (v *View) Keyboard() KeyboardState { return v.f.kbs }

var (
	_ Reader = (*Manager)(nil)
	_ Reader = (*View)(nil)
)
