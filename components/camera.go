package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position   math.Vec2 // view centre in level pixels
	LookAheadX float64   // Current smoothed X offset for look-ahead
	Zoom       float64
}

var Camera = donburi.NewComponentType[CameraData]()
