package components

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSteeringBufferConcurrentMoves(t *testing.T) {
	s := &SteeringBuffer{}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				s.Move(1, -0.5)
			}
		}()
	}
	wg.Wait()

	f := s.Drain()
	assert.Equal(t, 800.0, f.DX)
	assert.Equal(t, -400.0, f.DY)
}

func TestSteeringBufferKeepsAimAcrossDrains(t *testing.T) {
	s := &SteeringBuffer{}
	assert.False(t, s.Drain().HasAim)

	s.SetAim(Vector{X: 1}, DirRight)
	s.SetAim(Vector{}, DirUp) // ignored

	for range 2 {
		f := s.Drain()
		assert.True(t, f.HasAim)
		assert.Equal(t, DirRight, f.Facing)
		assert.Equal(t, Vector{X: 1}, f.Aim)
	}
}

func TestSteeringBufferOrigin(t *testing.T) {
	s := &SteeringBuffer{}
	s.SetOrigin(12, 34)
	x, y := s.Origin()
	assert.Equal(t, 12.0, x)
	assert.Equal(t, 34.0, y)
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "Down-Left", DirDownLeft.String())
	assert.Equal(t, "Unknown", Direction(8).String())
}
