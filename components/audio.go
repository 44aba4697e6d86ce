package components

import (
	cfg "github.com/automoto/puffball/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects raised during the frame (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
