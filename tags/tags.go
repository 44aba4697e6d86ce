package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Platform     = donburi.NewTag().SetName("Platform")
	Exit         = donburi.NewTag().SetName("Exit")
	Enemy        = donburi.NewTag().SetName("Enemy")
	Projectile   = donburi.NewTag().SetName("Projectile")
	InhaleEffect = donburi.NewTag().SetName("InhaleEffect")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvPlatform   = "platform"
	ResolvExit       = "exit"
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvInhaleZone = "inhaleZone"
	ResolvProjectile = "projectile"
)
