// Package base64codec converts text to and from Base64, in both standard
// and URL-safe alphabets.
package base64codec

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Encode returns the Base64 rendering of text. urlSafe selects the
// URL-and-filename-safe alphabet (- and _ instead of + and /).
func Encode(text string, urlSafe bool) string {
	if urlSafe {
		return base64.URLEncoding.EncodeToString([]byte(text))
	}
	return base64.StdEncoding.EncodeToString([]byte(text))
}

// Decode reverses Encode. Input is trimmed of surrounding whitespace and
// missing padding is repaired before decoding, since tokens copied from
// other tools frequently arrive unpadded.
func Decode(text string, urlSafe bool) (string, error) {
	s := strings.TrimSpace(text)
	if m := len(s) % 4; m != 0 {
		s += strings.Repeat("=", 4-m)
	}

	enc := base64.StdEncoding
	if urlSafe {
		enc = base64.URLEncoding
	}
	decoded, err := enc.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("invalid base64 input: %w", err)
	}
	return string(decoded), nil
}
