// Package util provides small stateless helpers for obtkit applications.
//
// It includes uppercase hex encoding of byte ranges, null/empty/whitespace
// string checks, boolean-to-word conversion, byte size formatting, list
// dumps and constant-time comparison.
package util
