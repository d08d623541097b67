package components

import "github.com/yohamta/donburi"

type BulletData struct {
	Velocity  Vector // Pixels per tick
	Travelled float64
	Range     float64
}

var Bullet = donburi.NewComponentType[BulletData]()
