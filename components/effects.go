package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlickerData fades a sprite's opacity through a tween sequence.
type FlickerData struct {
	Sequence *gween.Sequence
}

var Flicker = donburi.NewComponentType[FlickerData]()
