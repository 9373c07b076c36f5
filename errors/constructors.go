package errors

import "fmt"

// InvalidArgument creates an error for a non-usable argument (nil reducer,
// listener, observer or middleware).
func InvalidArgument(name string, reason string) *FluxError {
	return New(ErrCodeInvalidArgument, fmt.Sprintf("invalid argument '%s': %s", name, reason)).
		WithDetail("argument", name)
}

// InvalidAction creates an error for an action that cannot be dispatched.
func InvalidAction(reason string) *FluxError {
	return New(ErrCodeInvalidAction, fmt.Sprintf("invalid action: %s", reason))
}

// IllegalReentrancy creates an error for a store operation invoked while the
// reducer is executing, or for a dispatch nested inside another dispatch.
func IllegalReentrancy(operation string) *FluxError {
	return New(ErrCodeIllegalReentrancy,
		fmt.Sprintf("%s may not be called while a dispatch is in progress", operation)).
		WithDetail("operation", operation)
}

// ShapeError creates an error for a sub-reducer that failed the default-value
// contract at combination time.
func ShapeError(key string, actionType string) *FluxError {
	return New(ErrCodeReducerShape,
		fmt.Sprintf("reducer '%s' returned no state when probed with action type %q; "+
			"reducers must return a defined default state and pass unknown actions through", key, actionType)).
		WithDetail("key", key).
		WithDetail("actionType", actionType)
}

// UndefinedSubstate creates an error for a sub-reducer that returned no state
// for a live action.
func UndefinedSubstate(key string, actionType string) *FluxError {
	return New(ErrCodeUndefinedSubstate,
		fmt.Sprintf("reducer '%s' returned no state for action type %q; "+
			"to signal an empty substate, return an explicit zero value instead of nil", key, actionType)).
		WithDetail("key", key).
		WithDetail("actionType", actionType)
}

// PrematureDispatch creates an error for a middleware that dispatched while
// the middleware chain was still being constructed.
func PrematureDispatch() *FluxError {
	return New(ErrCodePrematureDispatch,
		"dispatching while constructing the middleware chain is not allowed; "+
			"other middleware would not be applied to this dispatch")
}

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *FluxError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *FluxError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}
