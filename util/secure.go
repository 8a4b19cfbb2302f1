package util

import "crypto/subtle"

// SecureEqual reports whether a and b hold the same bytes. The time taken
// depends only on the lengths, never on the contents.
func SecureEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// SecureEqualString is SecureEqual for strings.
func SecureEqualString(a, b string) bool {
	return SecureEqual([]byte(a), []byte(b))
}
