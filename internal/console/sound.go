package console

import (
	"sync"
	"time"

	"go-lane-defense/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	freq     float64
	duration time.Duration
}

var tones = map[event.EventType]tone{
	event.TowerPlaced:     {660, 60 * time.Millisecond},
	event.MonsterDefeated: {880, 80 * time.Millisecond},
	event.MonsterEscaped:  {220, 200 * time.Millisecond},
	event.WaveSpawned:     {440, 120 * time.Millisecond},
	event.GameWon:         {1320, 400 * time.Millisecond},
	event.GameLost:        {110, 500 * time.Millisecond},
}

// toneFor returns the cue for t. Attacks are too frequent to beep on.
func toneFor(t event.EventType) (tone, bool) {
	tn, ok := tones[t]
	return tn, ok
}

// Sound plays short sine cues for game events. A nil *Sound is silent.
type Sound struct {
	mu          sync.Mutex
	initialized bool
}

// NewSound initializes the speaker. The game runs fine without it, so
// callers usually log the error and carry on with a nil *Sound.
func NewSound() (*Sound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Sound{initialized: true}, nil
}

func (s *Sound) OnEvent(e event.Event) {
	if s == nil {
		return
	}
	tn, ok := toneFor(e.Type)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	sine, err := generators.SineTone(sampleRate, tn.freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(tn.duration), sine))
}

func (s *Sound) Close() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		speaker.Close()
		s.initialized = false
	}
}
