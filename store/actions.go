package store

import (
	"crypto/rand"
	"encoding/hex"
)

// Reserved action types dispatched by the store itself. Reducers must treat
// them like any other unrecognized type unless they special-case them to
// populate defaults.
const (
	// ActionTypeInit is dispatched once at construction, so every reducer
	// returns its initial state and populates the tree.
	ActionTypeInit = "@@flux/INIT"

	// ActionTypeReplace is dispatched by ReplaceReducer after the swap, so
	// every substate is recomputed against the new reducer.
	ActionTypeReplace = "@@flux/REPLACE"
)

// probeActionType returns a randomized action type that no reducer can know
// about. CombineReducers uses it to verify reducers pass unknown actions
// through; it is never dispatched through the public API.
func probeActionType() string {
	return "@@flux/PROBE_UNKNOWN_ACTION_" + randomString(12)
}

// randomString generates a random hex string of the specified length
func randomString(length int) string {
	bytes := make([]byte, length/2+1)
	if _, err := rand.Read(bytes); err != nil {
		panic(err)
	}
	return hex.EncodeToString(bytes)[:length]
}
