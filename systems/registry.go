package systems

import (
	"github.com/automoto/puffball/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// liveEntry returns the entry for id, or nil once it has been removed.
func liveEntry(e *ecs.ECS, id donburi.Entity) *donburi.Entry {
	if id == donburi.Null || !e.World.Valid(id) {
		return nil
	}
	return e.World.Entry(id)
}

// entryOf returns the live entry owning obj.
func entryOf(obj *resolv.Object) *donburi.Entry {
	if obj == nil {
		return nil
	}
	entry, ok := obj.Data.(*donburi.Entry)
	if !ok || !entry.Valid() {
		return nil
	}
	return entry
}

func getSceneRegistry(e *ecs.ECS) *components.SceneRegistryData {
	entry, ok := components.SceneRegistry.First(e.World)
	if !ok {
		return nil
	}
	return components.SceneRegistry.Get(entry)
}

// registeredPlayer returns the scene's player while it is alive.
func registeredPlayer(e *ecs.ECS) *donburi.Entry {
	reg := getSceneRegistry(e)
	if reg == nil {
		return nil
	}
	return liveEntry(e, reg.Player)
}

// inhaleEffect returns the player's inhale effect entity while it is alive.
func inhaleEffect(e *ecs.ECS, player *components.PlayerData) *donburi.Entry {
	return liveEntry(e, player.InhaleEffect)
}

func getSpace(e *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(e.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry).Space
}

// removeEntity takes entry out of the world and its collision objects out
// of the space. Removing the player also removes its inhale zone and effect.
func removeEntity(e *ecs.ECS, entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}

	if space := getSpace(e); space != nil {
		if entry.HasComponent(components.Object) {
			if obj := components.Object.Get(entry); obj.Space != nil {
				space.Remove(obj.Object)
			}
		}
		if entry.HasComponent(components.Player) {
			if zone := components.Player.Get(entry).InhaleZone; zone != nil && zone.Space != nil {
				space.Remove(zone)
			}
		}
	}

	if entry.HasComponent(components.Player) {
		if effect := inhaleEffect(e, components.Player.Get(entry)); effect != nil {
			e.World.Remove(effect.Entity())
		}
	}

	e.World.Remove(entry.Entity())
}

// removeAll removes every entry once, skipping entries already gone.
func removeAll(e *ecs.ECS, entries []*donburi.Entry) {
	seen := make(map[donburi.Entity]bool, len(entries))
	for _, entry := range entries {
		if entry == nil || !entry.Valid() || seen[entry.Entity()] {
			continue
		}
		seen[entry.Entity()] = true
		removeEntity(e, entry)
	}
}
