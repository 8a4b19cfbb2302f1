package util

import "testing"

func TestParseSize(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"10MB", 10 * 1024 * 1024},
		{"512KB", 512 * 1024},
		{"2GB", 2 * 1024 * 1024 * 1024},
		{"1024", 1024},
		{"  10MB  ", 10 * 1024 * 1024},
		{"10mb", 10 * 1024 * 1024},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := ParseSize(tc.input, 0); got != tc.want {
				t.Errorf("ParseSize(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseSize_Default(t *testing.T) {
	defaultVal := int64(5 * 1024 * 1024)
	if got := ParseSize("", defaultVal); got != defaultVal {
		t.Errorf("expected default %d, got %d", defaultVal, got)
	}
	if got := ParseSize("invalid", defaultVal); got != defaultVal {
		t.Errorf("expected default %d for invalid input, got %d", defaultVal, got)
	}
}

func TestFormatMegabytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes float64
		want  string
	}{
		{"zero", 0, "0"},
		{"whole", 3 * 1024 * 1024, "3"},
		{"half", 1.5 * 1024 * 1024, "1.5"},
		{"quarter", 256 * 1024, "0.25"},
		{"rounds to two places", 1234567, "1.18"},
		{"tiny", 1, "0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatMegabytes(tc.bytes); got != tc.want {
				t.Errorf("FormatMegabytes(%v) = %q, want %q", tc.bytes, got, tc.want)
			}
		})
	}
}

func TestFormatMegabytes_ParseSizeAgreement(t *testing.T) {
	if got := FormatMegabytes(float64(ParseSize("10MB", 0))); got != "10" {
		t.Errorf("expected 10, got %q", got)
	}
}
