package util

const hexDigits = "0123456789ABCDEF"

// BytesToHexChars encodes length bytes of b, starting at start, as uppercase
// hexadecimal, high nibble first. The result has 2*length bytes.
// A window outside b panics with the runtime's bounds error.
func BytesToHexChars(b []byte, start, length int) []byte {
	src := b[start : start+length]
	out := make([]byte, len(src)*2)
	for i, v := range src {
		out[i*2] = hexDigits[v>>4]
		out[i*2+1] = hexDigits[v&0x0F]
	}
	return out
}

// BytesToHex encodes all of b as uppercase hexadecimal.
func BytesToHex(b []byte) []byte {
	return BytesToHexChars(b, 0, len(b))
}

// BytesToHexString is BytesToHexChars returning a string.
func BytesToHexString(b []byte, start, length int) string {
	return string(BytesToHexChars(b, start, length))
}
