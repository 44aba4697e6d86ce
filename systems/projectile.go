package systems

import (
	"github.com/automoto/puffball/components"
	"github.com/automoto/puffball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles keeps stars flying at their launch speed and removes
// those that ran into a platform.
func UpdateProjectiles(ecs *ecs.ECS) {
	var removals []*donburi.Entry

	tags.Projectile.Each(ecs.World, func(star *donburi.Entry) {
		p := components.Projectile.Get(star)
		components.Physics.Get(star).SpeedX = p.Direction.Sign() * p.Speed

		for _, c := range components.Contacts.Get(star).Began {
			if c.Object.HasTags(tags.ResolvPlatform) {
				removals = append(removals, star)
				return
			}
		}
	})

	removeAll(ecs, removals)
}
