// Package urlcodec percent-encodes and decodes URL components.
package urlcodec

import (
	"fmt"
	"net/url"
	"strings"
)

// Encode percent-encodes text for use in a URL. With formStyle set, spaces
// become + as in application/x-www-form-urlencoded; otherwise spaces become
// %20 as in path and query components.
func Encode(text string, formStyle bool) string {
	encoded := url.QueryEscape(text)
	if !formStyle {
		encoded = strings.ReplaceAll(encoded, "+", "%20")
	}
	return encoded
}

// Decode reverses percent-encoding. Both + and %20 decode to a space.
func Decode(text string) (string, error) {
	decoded, err := url.QueryUnescape(text)
	if err != nil {
		return "", fmt.Errorf("invalid URL encoding: %w", err)
	}
	return decoded, nil
}
