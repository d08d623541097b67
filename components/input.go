package components

import (
	"github.com/automoto/ironsight/controls"
	"github.com/yohamta/donburi"
)

// InputData is the singleton that owns the input coordinator.
// Manager.Update must run once per tick before any system queries it.
type InputData struct {
	Manager     *controls.Manager
	LastDevice  controls.DeviceClass // Device class seen on the previous tick
	SwitchTimer int                  // Ticks left to show the device banner
}

var Input = donburi.NewComponentType[InputData]()
