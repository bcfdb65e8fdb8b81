package engine

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/lixenwraith/seihou/component"
	"github.com/lixenwraith/seihou/vmath"
)

func TestStoreRemoveAtPreservesOrder(t *testing.T) {
	s := NewStore[int](4)
	for i := 0; i < 5; i++ {
		s.Spawn(i)
	}

	s.RemoveAt(1)

	want := []int{0, 2, 3, 4}
	got := s.Snapshot(nil)
	if len(got) != len(want) {
		t.Fatalf("Expected %d items, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestStoreForwardRemovalRevisitsIndex(t *testing.T) {
	// Two adjacent doomed items: the cursor must revisit index i after a removal
	s := NewStore[int](8)
	for _, v := range []int{1, -1, -2, 3, -4} {
		s.Spawn(v)
	}

	for i := 0; i < s.Len(); i++ {
		if *s.At(i) < 0 {
			s.RemoveAt(i)
			i--
		}
	}

	got := s.Snapshot(nil)
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("Expected [1 3], got %v", got)
	}
}

func TestStoreRemoveAtOutOfRangePanics(t *testing.T) {
	s := NewStore[int](1)
	s.Spawn(7)

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for out-of-range index")
		}
	}()
	s.RemoveAt(1)
}

func TestStoreRetainKeepsMutations(t *testing.T) {
	s := NewStore[int](4)
	for i := 1; i <= 4; i++ {
		s.Spawn(i)
	}

	removed := s.Retain(func(v *int) bool {
		*v *= 10
		return *v%20 == 0
	})

	if removed != 2 {
		t.Errorf("Expected 2 removed, got %d", removed)
	}
	got := s.Snapshot(nil)
	if len(got) != 2 || got[0] != 20 || got[1] != 40 {
		t.Errorf("Expected [20 40], got %v", got)
	}
}

func TestStoreSnapshotIsACopy(t *testing.T) {
	s := NewStore[component.Shot](2)
	s.Spawn(component.Shot{X: 1, Y: 2, Radius: 3})

	snap := s.Snapshot(nil)
	snap[0].X = 99

	if s.At(0).X != 1 {
		t.Errorf("Expected store to be unaffected by snapshot edits, got X=%v", s.At(0).X)
	}
}

func TestBulletStoreStepAndCull(t *testing.T) {
	bounds := vmath.Bounds{Width: 100, Height: 100}
	s := NewBulletStore(4)
	s.Spawn(component.Bullet{X: 50, Y: 50, Radius: 2, VX: 10, VY: 0})  // stays
	s.Spawn(component.Bullet{X: 97, Y: 50, Radius: 2, VX: 10, VY: 0})  // 98 - 2 < 100, partially inside
	s.Spawn(component.Bullet{X: 97, Y: 50, Radius: 2, VX: 50, VY: 0})  // 102 - 2 >= 100, gone
	s.Spawn(component.Bullet{X: 5, Y: 3, Radius: 2, VX: 0, VY: -50})   // -2 + 2 <= 0, gone
	s.Spawn(component.Bullet{X: 5, Y: 95, Radius: 2, VX: -20, VY: 20}) // (3, 97), stays

	removed := s.StepAndCull(0.1, bounds)
	if removed != 2 {
		t.Errorf("Expected 2 removed, got %d", removed)
	}
	if s.Len() != 3 {
		t.Fatalf("Expected 3 bullets left, got %d", s.Len())
	}

	want := [][2]float64{{51, 50}, {98, 50}, {3, 97}}
	for i, w := range want {
		b := s.At(i)
		if b.X != w[0] || b.Y != w[1] {
			t.Errorf("bullet %d at (%v, %v), want %v", i, b.X, b.Y, w)
		}
	}
}

func TestShotStoreCullsBeforeMoving(t *testing.T) {
	bounds := vmath.Bounds{Width: 100, Height: 100}
	s := NewShotStore(4, 100)
	s.Spawn(component.Shot{X: 10, Y: 50, Radius: 4}) // moves to 40
	s.Spawn(component.Shot{X: 10, Y: 5, Radius: 4})  // 1 > 0, moves to -5 and survives this frame
	s.Spawn(component.Shot{X: 10, Y: 4, Radius: 4})  // 0 <= 0, removed unmoved

	removed := s.StepAndCull(0.1, bounds)
	if removed != 1 {
		t.Errorf("Expected 1 removed, got %d", removed)
	}
	if s.Len() != 2 {
		t.Fatalf("Expected 2 shots, got %d", s.Len())
	}
	if s.At(0).Y != 40 || s.At(1).Y != -5 {
		t.Errorf("Expected shots at y=40 and y=-5, got %v and %v", s.At(0).Y, s.At(1).Y)
	}

	// The shot past the top edge goes on the next frame
	if removed := s.StepAndCull(0, bounds); removed != 1 {
		t.Errorf("Expected overshooting shot removed next frame, got %d removed", removed)
	}
}

// TestBulletStoreMatchesModel drives random spawn/remove/step sequences against a plain slice model
func TestBulletStoreMatchesModel(t *testing.T) {
	bounds := vmath.Bounds{Width: 200, Height: 150}

	rapid.Check(t, func(t *rapid.T) {
		store := NewBulletStore(0)
		var model []component.Bullet

		coord := rapid.Float64Range(-20, 220)
		vel := rapid.Float64Range(-300, 300)

		t.Repeat(map[string]func(*rapid.T){
			"spawn": func(t *rapid.T) {
				b := component.Bullet{
					X:      coord.Draw(t, "x"),
					Y:      coord.Draw(t, "y"),
					Radius: rapid.Float64Range(0, 10).Draw(t, "r"),
					VX:     vel.Draw(t, "vx"),
					VY:     vel.Draw(t, "vy"),
				}
				store.Spawn(b)
				model = append(model, b)
			},
			"removeAt": func(t *rapid.T) {
				if len(model) == 0 {
					t.Skip("empty")
				}
				i := rapid.IntRange(0, len(model)-1).Draw(t, "i")
				store.RemoveAt(i)
				model = append(model[:i:i], model[i+1:]...)
			},
			"stepAndCull": func(t *rapid.T) {
				dt := rapid.Float64Range(0, 0.1).Draw(t, "dt")
				removed := store.StepAndCull(dt, bounds)

				var next []component.Bullet
				for _, b := range model {
					b.X += b.VX * dt
					b.Y += b.VY * dt
					if !bounds.CircleOutside(b.X, b.Y, b.Radius) {
						next = append(next, b)
					}
				}
				if removed != len(model)-len(next) {
					t.Fatalf("removed %d, model removed %d", removed, len(model)-len(next))
				}
				model = next
			},
			"": func(t *rapid.T) {
				if store.Len() != len(model) {
					t.Fatalf("store has %d bullets, model has %d", store.Len(), len(model))
				}
				for i, want := range model {
					if got := *store.At(i); got != want {
						t.Fatalf("bullet %d = %+v, model %+v", i, got, want)
					}
				}
			},
		})
	})
}
