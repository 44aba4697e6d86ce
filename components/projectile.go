package components

import "github.com/yohamta/donburi"

// ProjectileData is a star's launch speed and direction.
type ProjectileData struct {
	Speed     float64
	Direction Facing
}

var Projectile = donburi.NewComponentType[ProjectileData]()

// OffscreenData removes an entity once it is further than Margin outside
// the camera view. Entered is set the first time it is within range, so
// entities spawned far away live until they have come close once.
type OffscreenData struct {
	Margin  float64
	Entered bool
}

var Offscreen = donburi.NewComponentType[OffscreenData]()
