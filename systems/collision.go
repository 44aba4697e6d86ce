package systems

import (
	"github.com/automoto/puffball/components"
	"github.com/automoto/puffball/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// contactEpsilon absorbs float drift when objects rest against each other.
const contactEpsilon = 0.01

// UpdateCollisions moves every body by its speed, stopping bodies at solid
// colliders. Bodies that ignore solids just move.
func UpdateCollisions(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		if physics.IgnoreSolids {
			obj.X += physics.SpeedX
			obj.Y += physics.SpeedY
			return
		}

		resolveObjectHorizontalCollision(physics, obj)
		resolveObjectVerticalCollision(physics, obj)
	})
}

// resolveObjectHorizontalCollision moves object by SpeedX, stopping flush
// against the nearest solid in the way.
func resolveObjectHorizontalCollision(physics *components.PhysicsData, object *resolv.Object) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}

	blocked := false
	for _, solid := range nearbySolids(object, dx, 0) {
		if !overlapsVertically(object, solid) {
			continue
		}
		if dx > 0 && solid.X >= object.X+object.W-contactEpsilon {
			if gap := max(solid.X-(object.X+object.W), 0); gap < dx {
				dx = gap
				blocked = true
			}
		}
		if dx < 0 && solid.X+solid.W <= object.X+contactEpsilon {
			if gap := min(solid.X+solid.W-object.X, 0); gap > dx {
				dx = gap
				blocked = true
			}
		}
	}

	object.X += dx
	if blocked {
		physics.SpeedX = 0
	}
}

// resolveObjectVerticalCollision moves object by SpeedY. Landing on a solid
// sets OnGround; hitting a ceiling stops the rise.
func resolveObjectVerticalCollision(physics *components.PhysicsData, object *resolv.Object) {
	dy := physics.SpeedY
	physics.OnGround = nil
	if dy == 0 {
		return
	}

	var landedOn *resolv.Object
	bumped := false
	for _, solid := range nearbySolids(object, 0, dy) {
		if !overlapsHorizontally(object, solid) {
			continue
		}
		if dy > 0 && solid.Y >= object.Y+object.H-contactEpsilon {
			if gap := max(solid.Y-(object.Y+object.H), 0); gap < dy {
				dy = gap
				landedOn = solid
			}
		}
		if dy < 0 && solid.Y+solid.H <= object.Y+contactEpsilon {
			if gap := min(solid.Y+solid.H-object.Y, 0); gap > dy {
				dy = gap
				bumped = true
			}
		}
	}

	object.Y += dy
	if landedOn != nil {
		physics.OnGround = landedOn
		physics.SpeedY = 0
	} else if bumped {
		physics.SpeedY = 0
	}
}

// nearbySolids returns the solids sharing space cells with object moved by dx, dy.
func nearbySolids(object *resolv.Object, dx, dy float64) []*resolv.Object {
	if object.Space == nil {
		return nil
	}
	check := object.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return nil
	}
	return check.ObjectsByTags(tags.ResolvSolid)
}

func overlapsHorizontally(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X
}

func overlapsVertically(a, b *resolv.Object) bool {
	return a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// overlaps reports whether two boxes share area; touching edges do not count.
func overlaps(a, b *resolv.Object) bool {
	return overlapsHorizontally(a, b) && overlapsVertically(a, b)
}
