package store

// Compose composes single-argument functions from right to left:
// Compose(f, g, h) yields a function applying h first, then g, then f.
// With no arguments it returns the identity function; with one argument it
// returns that function unchanged.
func Compose[T any](fns ...func(T) T) func(T) T {
	if len(fns) == 0 {
		return func(v T) T { return v }
	}
	if len(fns) == 1 {
		return fns[0]
	}
	return func(v T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			v = fns[i](v)
		}
		return v
	}
}
