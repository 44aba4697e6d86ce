package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedX       float64
	SpeedY       float64
	Gravity      float64
	MaxFallSpeed float64
	OnGround     *resolv.Object
	// IgnoreSolids moves the object without platform resolution.
	IgnoreSolids bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
