// Package store implements a single-writer, in-memory state container.
// A central state tree is transformed exclusively by pure reducers invoked
// through a serialized Dispatch entry point; listeners react to completed
// transitions, and enhancers/middleware layer cross-cutting behavior around
// dispatch without the store knowing about it.
package store

import (
	"sync"
	"sync/atomic"

	"github.com/grovetools/flux/errors"
)

// State is the application-defined state tree. It is replaced wholesale on
// every dispatch and must be treated as immutable by reducers and listeners.
type State = any

// Action describes an intended state transition. Type is required; Payload
// is an open value bag interpreted by reducers.
type Action struct {
	Type    string
	Payload any
}

// Reducer computes the next state from the current state and an action.
// Reducers must be pure, must return a defined default when state is nil,
// and must return the input state unchanged for unrecognized action types.
type Reducer func(state State, action Action) (State, error)

// Listener is invoked after every completed dispatch, with no arguments;
// read the new state via Store.GetState.
type Listener func()

// Unsubscribe removes the listener registered by the corresponding Subscribe
// call. Calling it more than once is a no-op.
type Unsubscribe func() error

// Dispatch applies an action and echoes it back for chaining.
type Dispatch func(action Action) (Action, error)

// StoreFactory is the construction signature shared by New and enhancers.
type StoreFactory func(reducer Reducer, preloaded State) (*Store, error)

// Enhancer wraps store construction with additional capability. Enhancers
// compose by wrapping one another before being passed to New.
type Enhancer func(factory StoreFactory) StoreFactory

// listenerEntry gives each subscription its own identity so removal never
// depends on function value equality.
type listenerEntry struct {
	fn         Listener
	subscribed bool
}

// Store holds the current state tree, the current reducer and the listener
// set. All state changes flow through Dispatch.
type Store struct {
	mu      sync.Mutex
	reducer Reducer
	state   State

	// dispatch is the entry point applications call. It starts as
	// baseDispatch and is replaced when an enhancer wraps the store.
	dispatch Dispatch

	// dispatching covers the whole dispatch, reducing only the reducer call.
	// Nested dispatch is illegal for the entire duration; GetState, Subscribe
	// and unsubscribe are illegal only while the reducer runs, so listeners
	// can read the new state and adjust subscriptions for the next dispatch.
	dispatching atomic.Bool
	reducing    atomic.Bool

	// Listener lists use copy-on-write: nextListeners is cloned from
	// currentListeners the first time it is mutated after a dispatch
	// snapshot, so subscription churn between dispatches is cheap and an
	// in-flight notification is never affected.
	currentListeners []*listenerEntry
	nextListeners    []*listenerEntry
	nextShared       bool
}

// New creates a store holding the given preloaded state (nil for none).
// When an enhancer is supplied, construction is delegated to it: the enhancer
// receives the plain factory and returns the factory actually used, which
// lets arbitrarily many enhancers layer by composing before the call.
// On success the store has already dispatched ActionTypeInit, so every
// reducer has populated its default substate.
func New(reducer Reducer, preloaded State, enhancer Enhancer) (*Store, error) {
	if reducer == nil {
		return nil, errors.InvalidArgument("reducer", "expected the reducer to be a function")
	}

	if enhancer != nil {
		factory := func(r Reducer, p State) (*Store, error) {
			return New(r, p, nil)
		}
		return enhancer(factory)(reducer, preloaded)
	}

	s := &Store{
		reducer:    reducer,
		state:      preloaded,
		nextShared: true,
	}
	s.dispatch = s.baseDispatch

	if _, err := s.baseDispatch(Action{Type: ActionTypeInit}); err != nil {
		return nil, err
	}

	return s, nil
}

// GetState returns the current state tree. It fails with IllegalReentrancy
// while the reducer is executing; reducers must read state from their own
// arguments.
func (s *Store) GetState() (State, error) {
	if s.reducing.Load() {
		return nil, errors.IllegalReentrancy("Store.GetState")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, nil
}

// Subscribe registers a change listener, invoked after every dispatch. It
// returns the capability that removes this registration.
//
// The listener list used by an in-flight dispatch is a snapshot taken when
// that dispatch started: subscribing or unsubscribing from inside a listener
// takes effect for the next dispatch, never the current one.
func (s *Store) Subscribe(listener Listener) (Unsubscribe, error) {
	if listener == nil {
		return nil, errors.InvalidArgument("listener", "expected the listener to be a function")
	}
	if s.reducing.Load() {
		return nil, errors.IllegalReentrancy("Store.Subscribe")
	}

	entry := &listenerEntry{fn: listener, subscribed: true}

	s.mu.Lock()
	s.ensureCanMutateNextListeners()
	s.nextListeners = append(s.nextListeners, entry)
	s.mu.Unlock()

	return func() error {
		if s.reducing.Load() {
			return errors.IllegalReentrancy("unsubscribe")
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		if !entry.subscribed {
			return nil
		}
		entry.subscribed = false

		s.ensureCanMutateNextListeners()
		for i, e := range s.nextListeners {
			if e == entry {
				s.nextListeners = append(s.nextListeners[:i], s.nextListeners[i+1:]...)
				break
			}
		}
		return nil
	}, nil
}

// Dispatch applies an action through the store's current dispatch function,
// which may have been wrapped by enhancers. The action is echoed back for
// chaining.
func (s *Store) Dispatch(action Action) (Action, error) {
	return s.dispatch(action)
}

// baseDispatch is the unwrapped dispatch: validate, reduce, publish, notify.
func (s *Store) baseDispatch(action Action) (Action, error) {
	if action.Type == "" {
		return action, errors.InvalidAction("actions must have a non-empty Type")
	}

	if !s.dispatching.CompareAndSwap(false, true) {
		return action, errors.IllegalReentrancy("Store.Dispatch")
	}
	defer s.dispatching.Store(false)

	s.mu.Lock()
	reducer := s.reducer
	state := s.state
	s.mu.Unlock()

	next, err := s.reduce(reducer, state, action)
	if err != nil {
		return action, err
	}

	s.mu.Lock()
	s.state = next
	// Promote the pending listener list to become this dispatch's snapshot.
	s.currentListeners = s.nextListeners
	s.nextShared = true
	snapshot := s.currentListeners
	s.mu.Unlock()

	for _, entry := range snapshot {
		entry.fn()
	}

	return action, nil
}

// reduce runs the reducer with the reentrancy flag set. The flag is cleared
// even if the reducer panics, so the store remains usable afterwards while
// the panic propagates to the caller.
func (s *Store) reduce(reducer Reducer, state State, action Action) (State, error) {
	s.reducing.Store(true)
	defer s.reducing.Store(false)
	return reducer(state, action)
}

// ReplaceReducer swaps the current reducer and dispatches ActionTypeReplace
// so every substate is recomputed against the new reducer's shape.
func (s *Store) ReplaceReducer(reducer Reducer) error {
	if reducer == nil {
		return errors.InvalidArgument("reducer", "expected the reducer to be a function")
	}

	s.mu.Lock()
	s.reducer = reducer
	s.mu.Unlock()

	_, err := s.baseDispatch(Action{Type: ActionTypeReplace})
	return err
}

// ensureCanMutateNextListeners clones the listener list on first mutation
// after a dispatch snapshot. Callers must hold s.mu.
func (s *Store) ensureCanMutateNextListeners() {
	if s.nextShared {
		s.nextListeners = append([]*listenerEntry(nil), s.currentListeners...)
		s.nextShared = false
	}
}
