package audio

import "errors"

// Cue is a gameplay sound effect
type Cue int

const (
	CueShot      Cue = iota // Player shot fired
	CueBossHit              // Shot landed on the boss
	CuePlayerHit            // Bullet landed on the player
	CueWin                  // Boss defeated
	CueLose                 // Out of hit points
	cueCount
)

var cueNames = [cueCount]string{
	CueShot:      "shot",
	CueBossHit:   "boss_hit",
	CuePlayerHit: "player_hit",
	CueWin:       "win",
	CueLose:      "lose",
}

// String returns the cue name used in logs and config
func (c Cue) String() string {
	if c >= 0 && c < cueCount {
		return cueNames[c]
	}
	return "unknown"
}

// ErrAudioDisabled is returned by Initialize when audio is turned off by configuration
var ErrAudioDisabled = errors.New("audio disabled by configuration")
