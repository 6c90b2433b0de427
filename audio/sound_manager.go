package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-timer/config"
	"github.com/lixenwraith/vi-timer/constant"
)

// Player is the sound surface used by the app loop
type Player interface {
	PlayChime()
	PlayClick()
	Cleanup()
}

// NopPlayer is used when audio is disabled or the device is unavailable
type NopPlayer struct{}

func (NopPlayer) PlayChime() {}
func (NopPlayer) PlayClick() {}
func (NopPlayer) Cleanup()   {}

// speakerInit and speakerPlay are swapped in tests to avoid a device
var (
	speakerInit = speaker.Init
	speakerPlay = speaker.Play
)

// SoundManager plays timer alerts through a single speaker mixer
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	mixer       *beep.Mixer
	chime       *beep.Ctrl
	initialized bool
}

// NewSoundManager creates a sound manager, Initialize opens the device
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = constant.AudioSampleRate
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speakerInit(rate, rate.N(constant.AudioBufferDuration)); err != nil {
		return err
	}

	speakerPlay(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences playing sounds and detaches the mixer
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if sm.chime != nil {
		sm.chime.Paused = true
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker close, a cleared mixer leaves it silent
	sm.initialized = false
}

// PlayChime plays the countdown finish alert, restarting it if already playing
func (sm *SoundManager) PlayChime() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.cfg.Chime {
		return
	}

	if sm.chime != nil {
		speaker.Lock()
		sm.chime.Paused = true
		speaker.Unlock()
	}

	ctrl := &beep.Ctrl{Streamer: CreateChimeSound(sm.cfg.SampleRate, sm.cfg.Volume)}
	sm.chime = ctrl
	sm.add(ctrl)
}

// PlayClick plays the pause toggle tick
func (sm *SoundManager) PlayClick() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.cfg.Click {
		return
	}

	sm.add(CreateClickSound(sm.cfg.SampleRate, sm.cfg.Volume))
}

func (sm *SoundManager) add(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Mixer exposes the mixer for inspection
func (sm *SoundManager) Mixer() *beep.Mixer {
	return sm.mixer
}
