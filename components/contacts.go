package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Contact is another entity's collision box overlapping this one.
type Contact struct {
	Entity donburi.Entity
	Object *resolv.Object
}

// ContactsData tracks overlaps with objects carrying any of the Watch tags.
// Began and Ended only hold this frame's changes.
type ContactsData struct {
	Watch    []string
	Touching []Contact
	Began    []Contact
	Ended    []Contact
}

// IsTouching reports whether e currently overlaps this entity.
func (c *ContactsData) IsTouching(e donburi.Entity) bool {
	for _, t := range c.Touching {
		if t.Entity == e {
			return true
		}
	}
	return false
}

var Contacts = donburi.NewComponentType[ContactsData]()
