package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/ascii-clock/parameter"
)

// SoundManager owns the speaker and plays the hourly chime
// All methods are safe on an uninitialized manager and do nothing
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a manager; call Initialize to open the device
func NewSoundManager() *SoundManager {
	return &SoundManager{
		rate:  beep.SampleRate(parameter.AudioSampleRate),
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the audio device; repeated calls are no-ops
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Chime queues one bell strike without blocking the caller
func (sm *SoundManager) Chime() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !parameter.ChimeEnabled {
		return
	}

	chime := CreateChime(sm.rate)
	speaker.Lock()
	sm.mixer.Add(chime)
	speaker.Unlock()
}

// Cleanup silences pending sounds and closes the device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}
