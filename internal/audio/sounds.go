package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// tone is a decaying oscillator mixed with optional noise.
type tone struct {
	sr    beep.SampleRate
	freq  float64 // Start frequency in Hz
	slide float64 // Frequency change per second
	noise float64 // Noise share in [0, 1]
	decay float64 // Exponential decay rate
	pos   int
	seed  uint32
}

func (g *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		freq := math.Max(g.freq+g.slide*t, 20)

		g.seed = g.seed*1664525 + 1013904223
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1

		wave := math.Sin(2 * math.Pi * freq * t)
		sample := math.Exp(-t*g.decay) * ((1-g.noise)*wave + g.noise*noise)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *tone) Err() error {
	return nil
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// shotSound is a short low thump with a noisy crack.
func shotSound(sr beep.SampleRate, vol float64) beep.Streamer {
	thump := &tone{sr: sr, freq: 140, slide: -300, noise: 0.55, decay: 18, seed: 7}
	return withVolume(beep.Take(sr.N(180*time.Millisecond), thump), vol)
}

// lifeSound is a rising two-note chime.
func lifeSound(sr beep.SampleRate, vol float64) beep.Streamer {
	low := beep.Take(sr.N(90*time.Millisecond), &tone{sr: sr, freq: 659.25, decay: 6})
	high := beep.Take(sr.N(220*time.Millisecond), &tone{sr: sr, freq: 987.77, decay: 9})
	return withVolume(beep.Seq(low, high), vol)
}
