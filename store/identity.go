package store

import "reflect"

// identical reports whether two state values are the same value in the
// reference sense: same map, slice, pointer, channel or function identity,
// or equal comparable values. Reducers signal "no change" by returning their
// input, and this is how that signal is detected.
func identical(a, b State) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Map, reflect.Func, reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		// Same backing array and length; value comparison would defeat the
		// identity semantics.
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	default:
		if !va.Comparable() {
			return false
		}
		return a == b
	}
}
