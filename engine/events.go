package engine

//go:generate go tool mockgen -destination=./mocks/listener_mock.go -package=mocks . Listener

// Listener receives gameplay notifications from the simulation goroutine
// Implementations must not block; the audio cue player is the production listener
type Listener interface {
	PhaseChanged(from, to Phase)
	ShotFired()
	BossHit(health float64)
	PlayerHit(hp int)
}

// NopListener ignores every notification
type NopListener struct{}

func (NopListener) PhaseChanged(Phase, Phase) {}
func (NopListener) ShotFired()                {}
func (NopListener) BossHit(float64)           {}
func (NopListener) PlayerHit(int)             {}
