package store

import (
	"github.com/grovetools/flux/errors"
)

// Observer receives the state tree: once on registration with the current
// state, then again after every dispatch.
type Observer func(state State)

// Observe exposes state changes as a minimal observable stream. The returned
// capability removes the underlying listener; calling it more than once is a
// no-op.
func (s *Store) Observe(observer Observer) (Unsubscribe, error) {
	if observer == nil {
		return nil, errors.InvalidArgument("observer", "expected the observer to be a function")
	}

	state, err := s.GetState()
	if err != nil {
		return nil, err
	}
	observer(state)

	return s.Subscribe(func() {
		if current, err := s.GetState(); err == nil {
			observer(current)
		}
	})
}
