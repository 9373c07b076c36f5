package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/flux/errors"
	"github.com/grovetools/flux/store"
	"github.com/grovetools/flux/testutil"
)

func TestObserveEmitsCurrentStateImmediately(t *testing.T) {
	s, err := store.New(testutil.CounterReducer, 7, nil)
	require.NoError(t, err)

	var seen []store.State
	_, err = s.Observe(func(state store.State) {
		seen = append(seen, state)
	})
	require.NoError(t, err)

	assert.Equal(t, []store.State{7}, seen,
		"registration must emit the current state before any dispatch")
}

func TestObserveEmitsOnEveryDispatch(t *testing.T) {
	s, err := store.New(testutil.CounterReducer, nil, nil)
	require.NoError(t, err)

	var seen []store.State
	_, err = s.Observe(func(state store.State) {
		seen = append(seen, state)
	})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := s.Dispatch(store.Action{Type: testutil.ActionIncrement})
		require.NoError(t, err)
	}

	assert.Equal(t, []store.State{0, 1, 2, 3}, seen)
}

func TestObserveUnsubscribeStopsEmissions(t *testing.T) {
	s, err := store.New(testutil.CounterReducer, nil, nil)
	require.NoError(t, err)

	var seen []store.State
	unsub, err := s.Observe(func(state store.State) {
		seen = append(seen, state)
	})
	require.NoError(t, err)

	_, err = s.Dispatch(store.Action{Type: testutil.ActionIncrement})
	require.NoError(t, err)

	require.NoError(t, unsub())
	require.NoError(t, unsub())

	_, err = s.Dispatch(store.Action{Type: testutil.ActionIncrement})
	require.NoError(t, err)

	assert.Equal(t, []store.State{0, 1}, seen,
		"no emissions after the subscription is removed")
}

func TestObserveRequiresObserver(t *testing.T) {
	s, err := store.New(testutil.CounterReducer, nil, nil)
	require.NoError(t, err)

	_, err = s.Observe(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidArgument))
}
