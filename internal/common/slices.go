package common

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// Last returns the last element of the slice and true, or the zero value and false if empty.
func Last[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[len(s)-1], true
}

// AppendUnique appends v to s unless s already contains it.
// The second result reports whether v was appended.
func AppendUnique[S ~[]E, E comparable](s S, v E) (S, bool) {
	for _, e := range s {
		if e == v {
			return s, false
		}
	}

	return append(s, v), true
}

// Clone returns a copy of s that never aliases the input.
// A nil slice stays nil.
func Clone[S ~[]E, E any](s S) S {
	if s == nil {
		return nil
	}

	out := make(S, len(s))
	copy(out, s)

	return out
}
