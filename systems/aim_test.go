package systems

import (
	"testing"

	"github.com/automoto/ironsight/components"
	"github.com/stretchr/testify/assert"
)

func TestAimDirectionSectors(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   components.Direction
	}{
		{0, -10, components.DirUp},
		{10, -10, components.DirUpRight},
		{10, 0, components.DirRight},
		{10, 10, components.DirDownRight},
		{0, 10, components.DirDown},
		{-10, 10, components.DirDownLeft},
		{-10, 0, components.DirLeft},
		{-10, -10, components.DirUpLeft},
		// 20 degrees off straight down stays Down, 25 tips into Down-Right
		{3.64, 10, components.DirDown},
		{4.66, 10, components.DirDownRight},
		{-0.01, -10, components.DirUp},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, AimDirection(tt.dx, tt.dy))
		})
	}
}

func TestNormalize(t *testing.T) {
	v, ok := normalize(components.Vector{X: 3, Y: -4})
	assert.True(t, ok)
	assert.InDelta(t, 0.6, v.X, 1e-9)
	assert.InDelta(t, -0.8, v.Y, 1e-9)

	_, ok = normalize(components.Vector{})
	assert.False(t, ok)
}
