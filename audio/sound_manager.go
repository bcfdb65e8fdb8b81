package audio

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/seihou/engine"
	"github.com/lixenwraith/seihou/parameter"
)

// SoundManager plays gameplay cues through the speaker
// It implements engine.Listener; every method is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	log         *slog.Logger
	mixer       *beep.Mixer
	cache       *soundCache
	initialized bool
	played      [cueCount]uint64
}

var _ engine.Listener = (*SoundManager)(nil)

// NewSoundManager creates a new sound manager; cfg nil uses the defaults
func NewSoundManager(cfg *AudioConfig, log *slog.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &SoundManager{
		cfg:   cfg,
		log:   log,
		mixer: &beep.Mixer{},
		cache: newSoundCache(beep.SampleRate(cfg.SampleRate)),
	}
}

// Initialize opens the speaker and starts the mixer
// Returns ErrAudioDisabled when configuration turns audio off; the game runs silent either way
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled || sm.cfg.MasterVolume <= 0 {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	sm.cache.preload()
	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.Info("audio initialized", "sample_rate", sm.cfg.SampleRate, "volume", sm.cfg.MasterVolume)
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Play mixes one cue in; dropped when too many cues are already sounding
func (sm *SoundManager) Play(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	buf := sm.cache.get(cue)
	if buf == nil {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	if sm.mixer.Len() >= parameter.AudioMaxVoices {
		return
	}
	sm.mixer.Add(scaled(buf.Streamer(0, buf.Len()), sm.cfg.volume(cue)))
	sm.played[cue]++
}

// Played returns how many times a cue reached the mixer
func (sm *SoundManager) Played(cue Cue) uint64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if cue < 0 || cue >= cueCount {
		return 0
	}
	return sm.played[cue]
}

// PhaseChanged plays the session result cues
func (sm *SoundManager) PhaseChanged(_, to engine.Phase) {
	if cue, ok := phaseCue(to); ok {
		sm.Play(cue)
	}
}

// ShotFired plays the shot cue
func (sm *SoundManager) ShotFired() { sm.Play(CueShot) }

// BossHit plays the boss hit cue; the final hit is covered by the win cue
func (sm *SoundManager) BossHit(health float64) {
	if health > 0 {
		sm.Play(CueBossHit)
	}
}

// PlayerHit plays the player hit cue; the final hit is covered by the lose cue
func (sm *SoundManager) PlayerHit(hp int) {
	if hp > 0 {
		sm.Play(CuePlayerHit)
	}
}

func phaseCue(p engine.Phase) (Cue, bool) {
	switch p {
	case engine.PhaseWin:
		return CueWin, true
	case engine.PhaseLose:
		return CueLose, true
	default:
		return 0, false
	}
}
