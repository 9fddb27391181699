package audio

import "sync"

// Slot holds at most one clip. Installing a clip closes the one it
// replaces, and Release closes the current clip, so a superseded clip is
// never left open.
//
// A Ticket taken before a load starts ties the load to the current
// generation: if the slot is released while the load is in flight, the
// late clip is closed instead of installed.
type Slot struct {
	mu         sync.Mutex
	clip       Clip
	generation uint64
}

// Ticket identifies the slot generation a load was started in.
type Ticket uint64

// Ticket returns the current generation.
func (s *Slot) Ticket() Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Ticket(s.generation)
}

// Install makes clip current and closes the previous clip. If the slot was
// released after t was taken, clip is closed and Install returns false.
func (s *Slot) Install(t Ticket, clip Clip) bool {
	s.mu.Lock()
	if Ticket(s.generation) != t {
		s.mu.Unlock()
		_ = clip.Close()
		return false
	}
	prev := s.clip
	s.clip = clip
	s.mu.Unlock()

	if prev != nil && prev != clip {
		_ = prev.Close()
	}
	return true
}

// Current returns the installed clip, or nil.
func (s *Slot) Current() Clip {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clip
}

// Release closes and forgets the current clip and invalidates tickets
// taken so far.
func (s *Slot) Release() error {
	s.mu.Lock()
	prev := s.clip
	s.clip = nil
	s.generation++
	s.mu.Unlock()

	if prev == nil {
		return nil
	}
	return prev.Close()
}
