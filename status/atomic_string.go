package status

import "sync/atomic"

// AtomicString is a string cell safe for one writer and many readers
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store replaces the value
func (s *AtomicString) Store(val string) {
	s.ptr.Store(&val)
}

// Load returns the value, or "" if never stored
func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
