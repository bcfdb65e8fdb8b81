package audio

import (
	"sync"

	"github.com/gopxl/beep"
)

// soundCache stores pre-rendered unity-gain cue buffers
type soundCache struct {
	mu     sync.RWMutex
	format beep.Format
	store  [cueCount]*beep.Buffer
}

func newSoundCache(rate beep.SampleRate) *soundCache {
	return &soundCache{
		format: beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2},
	}
}

// get returns the cached buffer or renders it on demand
func (c *soundCache) get(cue Cue) *beep.Buffer {
	if cue < 0 || cue >= cueCount {
		return nil
	}

	c.mu.RLock()
	buf := c.store[cue]
	c.mu.RUnlock()
	if buf != nil {
		return buf
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.store[cue] != nil {
		return c.store[cue]
	}

	buf = beep.NewBuffer(c.format)
	buf.Append(CreateCue(cue, c.format.SampleRate))
	c.store[cue] = buf
	return buf
}

// preload renders every cue so the first playback does not synthesize on the game goroutine
func (c *soundCache) preload() {
	for cue := Cue(0); cue < cueCount; cue++ {
		c.get(cue)
	}
}
