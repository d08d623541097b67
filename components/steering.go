package components

import (
	"sync"

	"github.com/yohamta/donburi"
)

// SteeringBuffer accumulates movement from the input poller goroutine until the
// game loop drains it. The latest aim rides along with it.
type SteeringBuffer struct {
	mu     sync.Mutex
	dx, dy float64
	aim    Vector
	facing Direction
	hasAim bool

	originX, originY float64
}

// Move adds a displacement in pixels.
func (s *SteeringBuffer) Move(dx, dy float64) {
	s.mu.Lock()
	s.dx += dx
	s.dy += dy
	s.mu.Unlock()
}

// SetAim records the latest aim. The zero vector is ignored.
func (s *SteeringBuffer) SetAim(aim Vector, facing Direction) {
	if aim.X == 0 && aim.Y == 0 {
		return
	}
	s.mu.Lock()
	s.aim, s.facing, s.hasAim = aim, facing, true
	s.mu.Unlock()
}

// SetOrigin publishes the player's center for aiming from the poller.
func (s *SteeringBuffer) SetOrigin(x, y float64) {
	s.mu.Lock()
	s.originX, s.originY = x, y
	s.mu.Unlock()
}

// Origin returns the last published player center.
func (s *SteeringBuffer) Origin() (float64, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.originX, s.originY
}

// SteeringFrame is what the game loop takes from a SteeringBuffer in one tick.
type SteeringFrame struct {
	DX, DY float64
	Aim    Vector
	Facing Direction
	HasAim bool
}

// Drain returns everything accumulated since the last call and resets the
// displacement. The last aim is kept.
func (s *SteeringBuffer) Drain() SteeringFrame {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := SteeringFrame{
		DX:     s.dx,
		DY:     s.dy,
		Aim:    s.aim,
		Facing: s.facing,
		HasAim: s.hasAim,
	}
	s.dx, s.dy = 0, 0
	return f
}

type SteeringData struct {
	*SteeringBuffer
}

var Steering = donburi.NewComponentType[SteeringData]()
