package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	// Solid entities push the player out of them.
	Solid = donburi.NewTag().SetName("Solid")
	// Hazard entities kill the player on contact.
	Hazard = donburi.NewTag().SetName("Hazard")
	// Platform marks solids that move on a script and can carry a rider.
	Platform = donburi.NewTag().SetName("Platform")
	Enemy    = donburi.NewTag().SetName("Enemy")
)

// Resolv tags for broad-phase lookups
const (
	ResolvSolid  = "solid"
	ResolvHazard = "hazard"
	ResolvPlayer = "Player"
)
