package util

import "unicode"

// IsNullOrEmpty reports whether s is nil or points to an empty string.
func IsNullOrEmpty(s *string) bool {
	return s == nil || IsEmpty(*s)
}

// IsNullOrWhitespace reports whether s is nil, empty, or only whitespace.
func IsNullOrWhitespace(s *string) bool {
	return s == nil || IsBlank(*s)
}

// IsEmpty reports whether s has zero length.
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank reports whether s is empty or made up only of Unicode whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Coalesce returns the first non-zero value, or the zero value if all are zero.
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
