// Package status holds lock-free game metrics shared between the simulation and the renderer
package status

import "sync/atomic"

// Metric keys published by the engine
const (
	KeyFrames        = "engine.frames"
	KeyBullets       = "engine.bullets"
	KeyShots         = "engine.shots"
	KeyBulletsCulled = "engine.bullets_culled"
	KeyShotsCulled   = "engine.shots_culled"
	KeyPlayerHP      = "player.hp"
	KeyBossHealth    = "boss.health"
	KeyPhase         = "game.phase"
	KeySession       = "game.session"
	KeyAudio         = "audio.enabled"
)

// Registry groups metric maps by value type
// Writers cache the pointer returned by Get once and store into it every frame
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns the number of registered metrics across all maps
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}
