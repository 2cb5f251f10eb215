// Package fs reads messages from files and streams.
package fs

import (
	"strings"
	"unicode/utf8"
)

// decode checks that data is UTF-8 and trims surrounding whitespace.
func decode(data []byte) (string, bool) {
	if !utf8.Valid(data) {
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}
