package systems

import (
	"sync"

	"github.com/automoto/puffball/assets"
	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/logger"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	sfxCache           = map[cfg.SoundID][]byte{}
	audioInitOnce      sync.Once
)

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// PlaySFX queues a sound effect for this frame.
func PlaySFX(e *ecs.ECS, id cfg.SoundID) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
	}
	audioData := components.Audio.Get(entry)
	audioData.PendingSFX = append(audioData.PendingSFX, id)
}

// UpdateAudio plays the sound effects queued during the previous frame.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if len(audioData.PendingSFX) == 0 {
		return
	}

	if !cfg.Audio.Muted && cfg.Audio.SFXVolume > 0 {
		initGlobalAudio()
		for _, id := range audioData.PendingSFX {
			playSFX(id)
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(id cfg.SoundID) {
	pcm, ok := sfxCache[id]
	if !ok {
		tone, known := cfg.Sounds[id]
		if !known {
			return
		}
		pcm = assets.SynthesizeTone(tone, cfg.Audio.SampleRate)
		sfxCache[id] = pcm
	}

	player := globalAudioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(cfg.Audio.SFXVolume)
	player.Play()
	logger.L().Debug("sfx", zap.Int("sound", int(id)))
}
