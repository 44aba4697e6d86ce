package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundInhale
	SoundSwallow
	SoundShoot
	SoundHurt
	SoundPop // enemy hit by a star
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
	SFXVolume  float64 `yaml:"sfx_volume"`
	Muted      bool    `yaml:"muted"`
}

// Tone describes a synthesised sound effect: a frequency sweep with a
// linear decay envelope.
type Tone struct {
	StartHz float64
	EndHz   float64
	Seconds float64
	Square  bool // square wave instead of sine
	Noise   float64
	Volume  float64
}

var Audio AudioConfig

// Sounds maps each sound effect to its synthesis recipe.
var Sounds map[SoundID]Tone

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		SFXVolume:  0.6,
	}

	Sounds = map[SoundID]Tone{
		SoundJump:       {StartHz: 320, EndHz: 640, Seconds: 0.12, Square: true, Volume: 0.35},
		SoundInhale:     {StartHz: 900, EndHz: 300, Seconds: 0.25, Noise: 0.6, Volume: 0.25},
		SoundSwallow:    {StartHz: 500, EndHz: 180, Seconds: 0.18, Volume: 0.5},
		SoundShoot:      {StartHz: 700, EndHz: 1400, Seconds: 0.15, Square: true, Volume: 0.3},
		SoundHurt:       {StartHz: 220, EndHz: 90, Seconds: 0.3, Square: true, Noise: 0.3, Volume: 0.4},
		SoundPop:        {StartHz: 1200, EndHz: 400, Seconds: 0.1, Noise: 0.5, Volume: 0.4},
		SoundMenuSelect: {StartHz: 660, EndHz: 880, Seconds: 0.08, Volume: 0.3},
	}
}
