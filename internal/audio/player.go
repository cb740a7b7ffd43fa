// Package audio plays procedural sound effects for engine events.
// When no audio device is available every call is a silent no-op.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tancheke/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player turns core events into sounds.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a silent player. Call Init to open the audio device.
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the speaker. It is safe to call more than once.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether sounds are audible.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Sound returns the streamer for an event, or nil if the event is silent.
func Sound(e core.Event, vol float64) beep.Streamer {
	switch e {
	case core.EventShotFired:
		return shotSound(sampleRate, vol)
	case core.EventBonusLife:
		return lifeSound(sampleRate, vol)
	default:
		return nil
	}
}

// Play queues the sounds for the given events. Fire and forget.
func (p *Player) Play(events ...core.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	var streams []beep.Streamer
	for _, e := range events {
		if s := Sound(e, p.volume); s != nil {
			streams = append(streams, s)
		}
	}
	if len(streams) == 0 {
		return
	}
	speaker.Lock()
	p.mixer.Add(streams...)
	speaker.Unlock()
}

// Close silences everything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
