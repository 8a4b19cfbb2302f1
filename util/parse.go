package util

import (
	"fmt"
	"strconv"
	"strings"
)

const bytesPerMegabyte = 1024 * 1024

// ParseSize parses a human-readable size string (e.g. "10MB", "512KB", "2GB")
// into bytes. Returns defaultBytes if the string cannot be parsed.
func ParseSize(s string, defaultBytes int64) int64 {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return defaultBytes
	}

	var multiplier int64 = 1
	switch {
	case strings.HasSuffix(s, "GB"):
		multiplier = 1024 * bytesPerMegabyte
		s = s[:len(s)-2]
	case strings.HasSuffix(s, "MB"):
		multiplier = bytesPerMegabyte
		s = s[:len(s)-2]
	case strings.HasSuffix(s, "KB"):
		multiplier = 1024
		s = s[:len(s)-2]
	}

	var val int64
	if _, err := fmt.Sscanf(s, "%d", &val); err == nil {
		return val * multiplier
	}
	return defaultBytes
}

// FormatMegabytes renders a byte count as megabytes with at most two
// decimals, dropping trailing zeros ("1.5", "0.25", "3").
func FormatMegabytes(bytes float64) string {
	s := strconv.FormatFloat(bytes/bytesPerMegabyte, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
