package audio

import (
	"testing"

	"github.com/vovakirdan/tancheke/internal/core"
)

func TestPlayerSilentWithoutInit(t *testing.T) {
	p := NewPlayer(0.5)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("uninitialized player panicked: %v", r)
		}
	}()

	if p.Enabled() {
		t.Error("player should start disabled")
	}
	p.Play(core.EventShotFired, core.EventBonusLife, core.EventExplosion)
	p.Close()
}

func TestPlayerInit(t *testing.T) {
	p := NewPlayer(0.5)

	// Speaker initialization fails on machines without an audio device.
	if err := p.Init(); err != nil {
		t.Logf("audio init failed (expected without a device): %v", err)
		return
	}
	if err := p.Init(); err != nil {
		t.Errorf("second Init should be a no-op, got %v", err)
	}
	p.Play(core.EventShotFired)
	p.Close()
	if p.Enabled() {
		t.Error("player should be disabled after Close")
	}
}

func TestSoundForEvents(t *testing.T) {
	tests := []struct {
		event core.Event
		sound bool
	}{
		{core.EventShotFired, true},
		{core.EventBonusLife, true},
		{core.EventExplosion, false},
		{core.EventRunEnded, false},
	}
	for _, tt := range tests {
		if got := Sound(tt.event, 1) != nil; got != tt.sound {
			t.Errorf("Sound(%s) present = %v, expected %v", tt.event, got, tt.sound)
		}
	}
}

func TestSoundsAreFiniteAndBounded(t *testing.T) {
	for _, e := range []core.Event{core.EventShotFired, core.EventBonusLife} {
		s := Sound(e, 1)
		buf := make([][2]float64, 512)
		total := 0
		for {
			n, ok := s.Stream(buf)
			for i := 0; i < n; i++ {
				if buf[i][0] < -1 || buf[i][0] > 1 {
					t.Fatalf("%s: sample %d out of range: %v", e, total+i, buf[i][0])
				}
			}
			total += n
			if !ok || total > int(sampleRate) {
				break
			}
		}
		if total == 0 || total > int(sampleRate) {
			t.Errorf("%s: streamed %d samples, expected a short finite sound", e, total)
		}
	}
}
