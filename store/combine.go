package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/grovetools/flux/config"
	"github.com/grovetools/flux/errors"
	"github.com/grovetools/flux/logging"
)

// CombineReducers builds a single reducer out of a mapping of named
// sub-reducers. The combined reducer manages a map[string]State record,
// delegating each key's substate to the sub-reducer registered under that key.
//
// Nil entries are dropped (with a warning in development mode). Every kept
// reducer is probed once with ActionTypeInit and once with a randomized
// unknown action type; a reducer returning nil for either violates the
// default-value contract and the resulting ShapeError is cached and returned
// by every invocation of the combined reducer.
//
// When no substate changed, the combined reducer returns the input record
// unchanged, so callers can detect "nothing happened" by identity.
func CombineReducers(reducers map[string]Reducer) Reducer {
	finalReducers := make(map[string]Reducer, len(reducers))
	for key, reducer := range reducers {
		if reducer == nil {
			if config.Development() {
				logging.NewLogger("store").Warnf("No reducer provided for key %q; entry dropped", key)
			}
			continue
		}
		finalReducers[key] = reducer
	}

	// Fixed iteration order keeps substate evaluation deterministic.
	keys := make([]string, 0, len(finalReducers))
	for key := range finalReducers {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	// Probe every reducer up front; the failure, if any, is cached and
	// surfaces on every dispatch rather than only once.
	shapeErr := assertReducerShape(keys, finalReducers)

	var (
		warnedMu    sync.Mutex
		warnedKeys  = make(map[string]bool)
		warnedShape bool
	)

	return func(state State, action Action) (State, error) {
		if shapeErr != nil {
			return nil, shapeErr
		}

		record, isRecord := stateRecord(state)

		if config.Development() {
			warnedMu.Lock()
			if !isRecord && !warnedShape {
				warnedShape = true
				logging.NewLogger("store").Warnf(
					"Combined reducer received state of type %T; expected a map[string]store.State record", state)
			}
			// A full reshape is expected on replace, so skip the key check.
			if isRecord && action.Type != ActionTypeReplace {
				if unexpected := unexpectedKeys(record, finalReducers, warnedKeys); len(unexpected) > 0 {
					logging.NewLogger("store").Warnf(
						"Unexpected state keys %s will be ignored; no reducer handles them",
						strings.Join(unexpected, ", "))
				}
			}
			warnedMu.Unlock()
		}

		hasChanged := false
		nextRecord := make(map[string]State, len(keys))
		for _, key := range keys {
			var prev State
			if record != nil {
				prev = record[key]
			}

			next, err := finalReducers[key](prev, action)
			if err != nil {
				return nil, fmt.Errorf("reducer %q: %w", key, err)
			}
			if next == nil {
				return nil, errors.UndefinedSubstate(key, action.Type)
			}

			nextRecord[key] = next
			hasChanged = hasChanged || !identical(next, prev)
		}
		hasChanged = hasChanged || len(keys) != len(record)

		if !hasChanged {
			return state, nil
		}
		return nextRecord, nil
	}
}

// assertReducerShape verifies the default-value contract for every reducer:
// a defined state for ActionTypeInit and for an action type it cannot know.
func assertReducerShape(keys []string, reducers map[string]Reducer) error {
	for _, key := range keys {
		reducer := reducers[key]

		initial, err := reducer(nil, Action{Type: ActionTypeInit})
		if err != nil {
			return errors.ShapeError(key, ActionTypeInit).WithDetail("cause", err.Error())
		}
		if initial == nil {
			return errors.ShapeError(key, ActionTypeInit)
		}

		probe := probeActionType()
		result, err := reducer(nil, Action{Type: probe})
		if err != nil {
			return errors.ShapeError(key, probe).WithDetail("cause", err.Error())
		}
		if result == nil {
			return errors.ShapeError(key, probe)
		}
	}
	return nil
}

// unexpectedKeys returns the not-yet-warned-about keys present in the state
// record but absent from the reducer mapping, marking them as warned.
func unexpectedKeys(record map[string]State, reducers map[string]Reducer, warned map[string]bool) []string {
	var unexpected []string
	for key := range record {
		if _, ok := reducers[key]; !ok && !warned[key] {
			warned[key] = true
			unexpected = append(unexpected, fmt.Sprintf("%q", key))
		}
	}
	sort.Strings(unexpected)
	return unexpected
}

// stateRecord interprets the state tree as a combined-reducer record.
// A nil state (first dispatch) is a valid empty record.
func stateRecord(state State) (map[string]State, bool) {
	if state == nil {
		return nil, true
	}
	record, ok := state.(map[string]State)
	return record, ok
}
