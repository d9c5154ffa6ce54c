package service

import "sync/atomic"

// State holds the process-wide loaded Encoder. It is empty before startup
// completes and after shutdown begins.
type State struct {
	current atomic.Pointer[loaded]
}

type loaded struct {
	enc Encoder
}

func NewState() *State {
	return &State{}
}

// Set publishes enc. Passing nil clears the state.
func (s *State) Set(enc Encoder) {
	if enc == nil {
		s.current.Store(nil)
		return
	}
	s.current.Store(&loaded{enc: enc})
}

// Get returns the loaded Encoder, if any.
func (s *State) Get() (Encoder, bool) {
	l := s.current.Load()
	if l == nil {
		return nil, false
	}
	return l.enc, true
}

// Clear empties the state and returns what was loaded.
func (s *State) Clear() Encoder {
	l := s.current.Swap(nil)
	if l == nil {
		return nil
	}
	return l.enc
}

func (s *State) Loaded() bool {
	return s.current.Load() != nil
}
