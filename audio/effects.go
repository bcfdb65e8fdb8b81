package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/seihou/parameter"
)

// WaveType selects the waveform of a generated tone
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// waveforms map a cycle position in [0, 1) to a sample in [-1, 1]
var waveforms = [...]func(cycle float64) float64{
	WaveSine: func(c float64) float64 { return math.Sin(2 * math.Pi * c) },
	WaveSquare: func(c float64) float64 {
		if c < 0.5 {
			return 1
		}
		return -1
	},
	WaveSaw:   func(c float64) float64 { return 2*c - 1 },
	WaveNoise: func(float64) float64 { return rand.Float64()*2 - 1 },
}

// NewOscillator returns a constant-pitch tone of the given length
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep returns a tone whose pitch glides linearly from one frequency to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	shape := waveforms[wave]
	step := 1 / float64(rate)

	var pos int
	var cycle float64
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n := min(len(samples), total-pos)
		for i := 0; i < n; i++ {
			v := shape(cycle)
			samples[i] = [2]float64{v, v}

			freq := from + (to-from)*float64(pos)/float64(total)
			_, cycle = math.Modf(cycle + freq*step)
			pos++
		}
		return n, n > 0
	})
}

// envelopeGain is the linear attack/release gain at sample pos of a total-sample sound
func envelopeGain(pos, attack, release, total int) float64 {
	switch {
	case release > 0 && pos >= max(total-release, attack):
		return float64(total-pos) / float64(release)
	case attack > 0 && pos < attack:
		return float64(pos) / float64(attack)
	default:
		return 1
	}
}

// NewEnvelope fades s in over attack and out over release, cutting it at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total, att, rel := rate.N(duration), rate.N(attack), rate.N(release)

	var pos int
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		samples = samples[:min(len(samples), total-pos)]

		n, ok := s.Stream(samples)
		for i := range samples[:n] {
			g := envelopeGain(pos, att, rel, total)
			samples[i][0] *= g
			samples[i][1] *= g
			pos++
		}
		return n, ok
	})
}

// scaled multiplies s by a linear gain; non-positive gains are silent
func scaled(s beep.Streamer, gain float64) beep.Streamer {
	return &effects.Gain{Streamer: s, Gain: max(gain, 0) - 1}
}

// CreateShotSound generates a short high blip
func CreateShotSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.ShotSoundDuration
	osc := NewSweep(1400, 900, d, WaveSquare, rate)
	return NewEnvelope(osc, d, parameter.ShotSoundAttack, parameter.ShotSoundRelease, rate)
}

// CreateBossHitSound generates a dull thud with a noise transient
func CreateBossHitSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.BossHitSoundDuration
	body := NewEnvelope(NewSweep(220, 110, d, WaveSine, rate), d,
		parameter.BossHitSoundAttack, parameter.BossHitSoundRelease, rate)
	click := NewEnvelope(NewOscillator(0, d/3, WaveNoise, rate), d/3,
		parameter.BossHitSoundAttack, d/4, rate)
	return beep.Mix(scaled(body, 0.65), scaled(click, 0.3))
}

// CreatePlayerHitSound generates a falling saw buzz
func CreatePlayerHitSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.PlayerHitSoundDuration
	osc := NewSweep(320, 80, d, WaveSaw, rate)
	return NewEnvelope(osc, d, parameter.PlayerHitSoundAttack, parameter.PlayerHitSoundRelease, rate)
}

// CreateWinSound generates a rising major arpeggio ending on a held note
func CreateWinSound(rate beep.SampleRate) beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99} // C5 E5 G5
	parts := make([]beep.Streamer, 0, len(notes)+1)
	for _, f := range notes {
		parts = append(parts, tone(f, parameter.WinSoundNoteDuration, rate))
	}
	parts = append(parts, tone(1046.5, parameter.WinSoundFinalDuration, rate)) // C6
	return beep.Seq(parts...)
}

// CreateLoseSound generates a slow descending drone
func CreateLoseSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.LoseSoundDuration
	low := NewEnvelope(NewSweep(196, 98, d, WaveSaw, rate), d,
		parameter.LoseSoundAttack, parameter.LoseSoundRelease, rate)
	high := NewEnvelope(NewSweep(233, 116, d, WaveSine, rate), d,
		parameter.LoseSoundAttack, parameter.LoseSoundRelease, rate)
	return beep.Mix(scaled(low, 0.55), scaled(high, 0.4))
}

// tone is a shaped pure sine note
func tone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		// Frequency above Nyquist for this rate
		return beep.Silence(rate.N(d))
	}
	return NewEnvelope(beep.Take(rate.N(d), sine), d, parameter.WinSoundAttack, parameter.WinSoundRelease, rate)
}

// CreateCue returns a unity-gain streamer for the cue, or nil for an unknown cue
func CreateCue(cue Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case CueShot:
		return CreateShotSound(rate)
	case CueBossHit:
		return CreateBossHitSound(rate)
	case CuePlayerHit:
		return CreatePlayerHitSound(rate)
	case CueWin:
		return CreateWinSound(rate)
	case CueLose:
		return CreateLoseSound(rate)
	default:
		return nil
	}
}
