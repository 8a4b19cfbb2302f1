package util

import (
	"encoding/hex"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesToHex(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"mixed", []byte{0x00, 0xFF, 0x1A}, "00FF1A"},
		{"empty", []byte{}, ""},
		{"nil", nil, ""},
		{"all nibbles", []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF}, "0123456789ABCDEF"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, string(BytesToHex(tc.in)))
		})
	}
}

func TestBytesToHexChars_Window(t *testing.T) {
	b := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x10}

	assert.Equal(t, "ADBE", string(BytesToHexChars(b, 1, 2)))
	assert.Equal(t, "EF10", BytesToHexString(b, 3, 2))
	assert.Equal(t, "", string(BytesToHexChars(b, 5, 0)))
}

func TestBytesToHexChars_RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for n := 0; n < 64; n++ {
		b := make([]byte, n)
		for i := range b {
			b[i] = byte(r.Intn(256))
		}
		for start := 0; start <= n; start++ {
			for length := 0; start+length <= n; length++ {
				out := BytesToHexChars(b, start, length)
				require.Len(t, out, 2*length)

				decoded, err := hex.DecodeString(string(out))
				require.NoError(t, err)
				require.Equal(t, b[start:start+length], decoded)
			}
		}
	}
}

func TestBytesToHexChars_OutOfRangePanics(t *testing.T) {
	b := []byte{0x01, 0x02}
	assert.Panics(t, func() { BytesToHexChars(b, 1, 2) })
	assert.Panics(t, func() { BytesToHexChars(b, 3, 0) })
	assert.Panics(t, func() { BytesToHexChars(b, -1, 1) })
}
