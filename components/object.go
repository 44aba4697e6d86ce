package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's collision box. OffsetX/OffsetY place the box
// inside the entity's sprite frame.
type ObjectData struct {
	*resolv.Object
	OffsetX float64
	OffsetY float64
}

// Position returns the top-left of the sprite frame.
func (o *ObjectData) Position() (x, y float64) {
	return o.X - o.OffsetX, o.Y - o.OffsetY
}

// SetPosition moves the sprite frame's top-left to x, y.
func (o *ObjectData) SetPosition(x, y float64) {
	o.X = x + o.OffsetX
	o.Y = y + o.OffsetY
}

var Object = donburi.NewComponentType[ObjectData]()
