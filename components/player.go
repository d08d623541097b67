package components

import (
	"github.com/yohamta/donburi"
)

// Direction is one of eight facings, clockwise from Up.
type Direction int

const (
	DirUp Direction = iota
	DirUpRight
	DirRight
	DirDownRight
	DirDown
	DirDownLeft
	DirLeft
	DirUpLeft
)

var directionNames = [...]string{"Up", "Up-Right", "Right", "Down-Right", "Down", "Down-Left", "Left", "Up-Left"}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "Unknown"
	}
	return directionNames[d]
}

// Vector is a 2D vector in screen space (Y grows downwards).
type Vector struct {
	X float64
	Y float64
}

type PlayerData struct {
	Facing Direction
	Aim    Vector // Unit vector bullets travel along
	Speed  float64
}

var Player = donburi.NewComponentType[PlayerData]()
