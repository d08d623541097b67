package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Wall   = donburi.NewTag().SetName("Wall")
	Bullet = donburi.NewTag().SetName("Bullet")
)

// Resolv tags for collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvBullet = "Bullet"
)
