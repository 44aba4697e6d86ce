package systems

import (
	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances sprite animations and damage flickers.
func UpdateEffects(ecs *ecs.ECS) {
	updateAnimations(ecs)
	updateFlickers(ecs)
}

func updateAnimations(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		if anim := components.Animation.Get(e); anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}

// updateFlickers drives sprite opacity from the flicker tween and removes
// the flicker once its sequence is complete.
func updateFlickers(ecs *ecs.ECS) {
	dt := float32(1.0 / cfg.TPS)

	var finished []*donburi.Entry
	components.Flicker.Each(ecs.World, func(e *donburi.Entry) {
		flicker := components.Flicker.Get(e)
		sprite := components.Sprite.Get(e)

		opacity, _, done := flicker.Sequence.Update(dt)
		sprite.Opacity = float64(opacity)
		if done {
			sprite.Opacity = 1
			finished = append(finished, e)
		}
	})

	for _, e := range finished {
		e.RemoveComponent(components.Flicker)
	}
}

// StartFlicker fades the entry's sprite out and back in. A running flicker
// starts over.
func StartFlicker(e *donburi.Entry) {
	fade := cfg.Player.FlickerFade

	seq := gween.NewSequence()
	seq.Add(
		gween.New(1, 0, fade, ease.Linear),
		gween.New(0, 1, fade, ease.Linear),
	)

	if !e.HasComponent(components.Flicker) {
		e.AddComponent(components.Flicker)
	}
	components.Flicker.SetValue(e, components.FlickerData{Sequence: seq})
}
