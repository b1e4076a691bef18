// Package reader loads documents from disk as plain text for analysis.
// Formats register themselves by extension; anything unregistered is read
// as plain text.
package reader

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode converts raw file contents to a string. A UTF-8 or UTF-16 byte
// order mark selects the encoding and is dropped; without one the data
// must be valid UTF-8.
func Decode(data []byte) (string, error) {
	out, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), data)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(out) {
		return "", fmt.Errorf("invalid UTF-8 at byte %d", invalidOffset(out))
	}
	return string(out), nil
}

func invalidOffset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(b)
}
