package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMaxVoices caps concurrently mixed cues; extra cues are dropped
	AudioMaxVoices = 8
)

// Shot Sound
const (
	ShotSoundDuration = 40 * time.Millisecond
	ShotSoundAttack   = 2 * time.Millisecond
	ShotSoundRelease  = 25 * time.Millisecond
)

// Boss Hit Sound
const (
	BossHitSoundDuration = 60 * time.Millisecond
	BossHitSoundAttack   = 2 * time.Millisecond
	BossHitSoundRelease  = 40 * time.Millisecond
)

// Player Hit Sound
const (
	PlayerHitSoundDuration = 300 * time.Millisecond
	PlayerHitSoundAttack   = 5 * time.Millisecond
	PlayerHitSoundRelease  = 200 * time.Millisecond
)

// Win Sound
const (
	WinSoundNoteDuration  = 120 * time.Millisecond
	WinSoundFinalDuration = 480 * time.Millisecond
	WinSoundAttack        = 5 * time.Millisecond
	WinSoundRelease       = 60 * time.Millisecond
)

// Lose Sound
const (
	LoseSoundDuration = 900 * time.Millisecond
	LoseSoundAttack   = 10 * time.Millisecond
	LoseSoundRelease  = 600 * time.Millisecond
)
