package assets

import (
	"encoding/binary"
	"math"
	"math/rand/v2"

	"github.com/automoto/puffball/config"
)

const attackSeconds = 0.005

// SynthesizeTone renders tone as 16-bit little-endian stereo PCM, the
// format ebiten's audio players take.
func SynthesizeTone(tone config.Tone, sampleRate int) []byte {
	n := int(tone.Seconds * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	out := make([]byte, n*4)
	rng := rand.New(rand.NewPCG(uint64(tone.StartHz), uint64(n)))

	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		hz := tone.StartHz + (tone.EndHz-tone.StartHz)*t
		phase += hz / float64(sampleRate)
		phase -= math.Floor(phase)

		v := math.Sin(2 * math.Pi * phase)
		if tone.Square {
			v = 1
			if phase >= 0.5 {
				v = -1
			}
		}
		if tone.Noise > 0 {
			v = v*(1-tone.Noise) + (rng.Float64()*2-1)*tone.Noise
		}

		s := int16(v * envelope(float64(i)/float64(sampleRate), tone.Seconds) * tone.Volume * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(s))
	}
	return out
}

// envelope is a short linear attack followed by a linear release to zero.
func envelope(at, length float64) float64 {
	if at < attackSeconds {
		return at / attackSeconds
	}
	return math.Max(0, 1-(at-attackSeconds)/math.Max(length-attackSeconds, attackSeconds))
}
