package components

import "github.com/yohamta/donburi"

type SpriteData struct {
	FrameWidth  int
	FrameHeight int
	FlipX       bool
	// Opacity multiplies the frame's alpha, 0 hides the sprite.
	Opacity float64
}

var Sprite = donburi.NewComponentType[SpriteData]()
