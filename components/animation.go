package components

import (
	"github.com/automoto/puffball/assets/animations"
	"github.com/automoto/puffball/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Current          config.AnimID
	CurrentAnimation *animations.Animation
}

// Play switches to id. Playing the current animation again is a no-op.
func (a *AnimationData) Play(id config.AnimID) {
	if a.Current == id && a.CurrentAnimation != nil {
		return
	}

	def, ok := config.Animations[id]
	if !ok {
		a.Current = id
		a.CurrentAnimation = nil
		return
	}

	a.Current = id
	a.CurrentAnimation = animations.NewAnimation(def.First, def.Last, def.Step, def.Speed)
}

// Frame returns the sheet index to draw, or -1 without an animation.
func (a *AnimationData) Frame() int {
	if a.CurrentAnimation == nil {
		return -1
	}
	return a.CurrentAnimation.Frame()
}

var Animation = donburi.NewComponentType[AnimationData]()
