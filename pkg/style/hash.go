package style

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"unicode/utf16"
)

// Hash returns a cheap checksum of v's JSON form. It signals equality for
// memoisation only; it is not collision resistant.
//
// Map keys are serialised in sorted order and HTML characters are not escaped.
func Hash(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("style hash: %w", err)
	}
	return HashString(string(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))), nil
}

// HashString applies hash = hash*31 + c over the UTF-16 code units of s,
// wrapping to a signed 32-bit integer, and returns the result in base 36.
func HashString(s string) string {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + int32(c)
	}
	return strconv.FormatInt(int64(h), 36)
}
