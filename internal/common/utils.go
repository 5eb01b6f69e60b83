package common

import "strings"

// WipeByteArray overwrites the contents of b with zeros. Used for password
// buffers read from the terminal. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// FirstWord returns the first whitespace separated word of s, or "" when s is
// blank.
func FirstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
