// Package testutil provides canned reducers, listeners and middleware used
// by the store tests and examples.
package testutil

import (
	"sync"

	"github.com/grovetools/flux/store"
)

// Action types understood by the canned reducers.
const (
	ActionIncrement = "counter/increment"
	ActionDecrement = "counter/decrement"
	ActionAppend    = "log/append"
)

// CounterReducer manages an int substate, starting at 0.
func CounterReducer(state store.State, action store.Action) (store.State, error) {
	if state == nil {
		state = 0
	}
	n := state.(int)

	switch action.Type {
	case ActionIncrement:
		return n + 1, nil
	case ActionDecrement:
		return n - 1, nil
	default:
		return state, nil
	}
}

// AppendReducer manages a []string substate, appending the payload of every
// ActionAppend. Unrecognized actions return the input slice unchanged so the
// no-change shortcut applies.
func AppendReducer(state store.State, action store.Action) (store.State, error) {
	if state == nil {
		state = []string(nil)
	}
	entries := state.([]string)

	if action.Type != ActionAppend {
		return entries, nil
	}

	value, _ := action.Payload.(string)
	next := make([]string, len(entries), len(entries)+1)
	copy(next, entries)
	return append(next, value), nil
}

// Recorder collects ordered event strings from listeners and middleware.
// Safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []string
}

// Record appends an event.
func (r *Recorder) Record(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of the recorded events in order.
func (r *Recorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

// RecordingListener returns a listener that records its name on every call.
func RecordingListener(rec *Recorder, name string) store.Listener {
	return func() {
		rec.Record(name)
	}
}

// RecordingMiddleware returns a middleware that records "<name>:before" and
// "<name>:after" around every forwarded action, making chain order visible.
func RecordingMiddleware(rec *Recorder, name string) store.Middleware {
	return func(api store.MiddlewareAPI) func(next store.Dispatch) store.Dispatch {
		return func(next store.Dispatch) store.Dispatch {
			return func(action store.Action) (store.Action, error) {
				rec.Record(name + ":before")
				result, err := next(action)
				rec.Record(name + ":after")
				return result, err
			}
		}
	}
}
