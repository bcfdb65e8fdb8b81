package engine

import (
	"fmt"

	"github.com/lixenwraith/seihou/component"
	"github.com/lixenwraith/seihou/vmath"
)

// Store is an ordered collection of value records of one entity kind
// Every attribute of an entity lives in one record, so insertion and removal
// can never leave attributes out of step
type Store[T any] struct {
	items []T
}

// NewStore creates a store with room for capacity records
func NewStore[T any](capacity int) *Store[T] {
	return &Store[T]{items: make([]T, 0, capacity)}
}

// Spawn appends one record
func (s *Store[T]) Spawn(item T) {
	s.items = append(s.items, item)
}

// Len returns the number of live records
func (s *Store[T]) Len() int {
	return len(s.items)
}

// At returns a pointer for in-place mutation; valid until the next Spawn, RemoveAt or Retain
func (s *Store[T]) At(i int) *T {
	s.checkIndex(i)
	return &s.items[i]
}

// RemoveAt deletes record i, shifting later records down by one
// Relative order is preserved; a forward iteration must revisit index i afterwards
func (s *Store[T]) RemoveAt(i int) {
	s.checkIndex(i)
	copy(s.items[i:], s.items[i+1:])
	var zero T
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
}

// Retain keeps records for which keep returns true, in order, and returns the removed count
// keep may mutate the record; the mutation is kept only for surviving records
func (s *Store[T]) Retain(keep func(*T) bool) int {
	n := 0
	for i := range s.items {
		item := &s.items[i]
		if keep(item) {
			s.items[n] = *item
			n++
		}
	}
	removed := len(s.items) - n
	clear(s.items[n:])
	s.items = s.items[:n]
	return removed
}

// Clear removes every record, keeping capacity
func (s *Store[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// Snapshot appends a copy of all records to dst and returns it
func (s *Store[T]) Snapshot(dst []T) []T {
	return append(dst[:0], s.items...)
}

func (s *Store[T]) checkIndex(i int) {
	if i < 0 || i >= len(s.items) {
		panic(fmt.Sprintf("engine: store index %d out of range [0,%d)", i, len(s.items)))
	}
}

// BulletStore holds enemy bullets
type BulletStore struct {
	Store[component.Bullet]
}

// NewBulletStore creates an empty bullet store
func NewBulletStore(capacity int) *BulletStore {
	return &BulletStore{Store: Store[component.Bullet]{items: make([]component.Bullet, 0, capacity)}}
}

// StepAndCull moves every bullet by its velocity and drops those fully outside bounds
// Returns the number of bullets removed
func (s *BulletStore) StepAndCull(dt float64, bounds vmath.Bounds) int {
	return s.Retain(func(b *component.Bullet) bool {
		x := b.X + b.VX*dt
		y := b.Y + b.VY*dt
		if bounds.CircleOutside(x, y, b.Radius) {
			return false
		}
		b.X, b.Y = x, y
		return true
	})
}

// ShotStore holds player shots travelling straight up
type ShotStore struct {
	Store[component.Shot]
	speed float64
}

// NewShotStore creates an empty shot store; speed is in units per second
func NewShotStore(capacity int, speed float64) *ShotStore {
	return &ShotStore{
		Store: Store[component.Shot]{items: make([]component.Shot, 0, capacity)},
		speed: speed,
	}
}

// StepAndCull drops shots whose top edge reached the top bound, then moves the rest up
// The exit test runs before integration, so a shot is visible for the frame it crosses
// Shots only move up, so the top edge is the only bound tested
// Returns the number of shots removed
func (s *ShotStore) StepAndCull(dt float64, bounds vmath.Bounds) int {
	return s.Retain(func(sh *component.Shot) bool {
		if sh.Y-sh.Radius <= 0 {
			return false
		}
		sh.Y -= s.speed * dt
		return true
	})
}
