// Package jsonformat pretty-prints and minifies JSON text.
package jsonformat

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"
)

// Format re-indents a JSON document with the given indent width (2 or 4
// spaces). When sortKeys is false the original key order is preserved; when
// true, object keys are sorted alphabetically at every level.
func Format(input string, indent int, sortKeys bool) (string, error) {
	if indent != 2 && indent != 4 {
		return "", fmt.Errorf("indent must be 2 or 4, got %d", indent)
	}

	if sortKeys {
		doc, err := oj.ParseString(input)
		if err != nil {
			return "", fmt.Errorf("invalid JSON: %w", err)
		}
		return oj.JSON(doc, &ojg.Options{Indent: indent, Sort: true}), nil
	}

	// json.Indent rewrites the token stream in place, so key order survives.
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(strings.TrimSpace(input)), "", strings.Repeat(" ", indent)); err != nil {
		return "", fmt.Errorf("invalid JSON: %w", err)
	}
	return buf.String(), nil
}

// Minify strips all insignificant whitespace from a JSON document, keeping
// key order.
func Minify(input string) (string, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(strings.TrimSpace(input))); err != nil {
		return "", fmt.Errorf("invalid JSON: %w", err)
	}
	return buf.String(), nil
}
