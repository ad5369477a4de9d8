package tetris

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// Observer is called with a fresh Snapshot after every change to an engine.
type Observer func(Snapshot)

// observerSet is not safe for concurrent use; the engine guards it with its
// own mutex. order keeps ids in registration order because intmap iteration
// is unordered.
type observerSet struct {
	nextID uint32
	byID   *intmap.Map[uint32, Observer]
	order  []uint32
}

func newObserverSet() *observerSet {
	return &observerSet{
		byID: intmap.New[uint32, Observer](4),
	}
}

func (s *observerSet) add(fn Observer) uint32 {
	s.nextID++
	s.byID.Put(s.nextID, fn)
	s.order = append(s.order, s.nextID)
	return s.nextID
}

func (s *observerSet) remove(id uint32) bool {
	if !s.byID.Del(id) {
		return false
	}
	s.order = slices.DeleteFunc(s.order, func(v uint32) bool { return v == id })
	return true
}

// list copies the current observers, in registration order, so they can be
// called after the engine lock is released.
func (s *observerSet) list() []Observer {
	if len(s.order) == 0 {
		return nil
	}
	out := make([]Observer, 0, len(s.order))
	for _, id := range s.order {
		if fn, ok := s.byID.Get(id); ok {
			out = append(out, fn)
		}
	}
	return out
}
