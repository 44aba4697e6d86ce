package systems

import (
	"github.com/automoto/puffball/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContacts recomputes which watched objects overlap each entity and
// records the contacts that began or ended this frame. Contacts with
// entities that were removed count as ended.
func UpdateContacts(ecs *ecs.ECS) {
	components.Contacts.Each(ecs.World, func(e *donburi.Entry) {
		contacts := components.Contacts.Get(e)
		obj := components.Object.Get(e).Object

		current := overlappingContacts(e, obj, contacts.Watch)

		contacts.Began = contacts.Began[:0]
		for _, c := range current {
			if !contacts.IsTouching(c.Entity) {
				contacts.Began = append(contacts.Began, c)
			}
		}

		contacts.Ended = contacts.Ended[:0]
		for _, c := range contacts.Touching {
			if !containsEntity(current, c.Entity) {
				contacts.Ended = append(contacts.Ended, c)
			}
		}

		contacts.Touching = current
	})
}

func overlappingContacts(self *donburi.Entry, obj *resolv.Object, watch []string) []components.Contact {
	if obj.Space == nil || len(watch) == 0 {
		return nil
	}
	check := obj.Check(0, 0, watch...)
	if check == nil {
		return nil
	}

	var out []components.Contact
	for _, other := range check.Objects {
		if !overlaps(obj, other) {
			continue
		}
		owner := entryOf(other)
		if owner == nil || owner.Entity() == self.Entity() || containsEntity(out, owner.Entity()) {
			continue
		}
		out = append(out, components.Contact{Entity: owner.Entity(), Object: other})
	}
	return out
}

func containsEntity(contacts []components.Contact, e donburi.Entity) bool {
	for _, c := range contacts {
		if c.Entity == e {
			return true
		}
	}
	return false
}
