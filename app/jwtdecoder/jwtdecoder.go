// Package jwtdecoder splits and renders JSON Web Tokens without verifying
// their signatures.
package jwtdecoder

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"
)

// Token is a decoded JWT ready for display. Header and Payload are
// pretty-printed JSON; Signature is the raw third segment, untouched and
// unverified.
type Token struct {
	Header    string      `json:"header"`
	Payload   string      `json:"payload"`
	Signature string      `json:"signature"`
	Info      []ClaimInfo `json:"info"`
}

// ClaimInfo is one row of the human-readable claim summary.
type ClaimInfo struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Decode parses a compact-serialized JWT. The signature is not checked;
// this is an inspection tool, not an authenticator.
func Decode(token string) (*Token, error) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return nil, fmt.Errorf("token is empty")
	}
	if parts := strings.Split(trimmed, "."); len(parts) != 3 {
		return nil, fmt.Errorf("token must have 3 dot-separated parts, got %d", len(parts))
	}

	parsed, _, err := new(jwt.Parser).ParseUnverified(trimmed, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type %T", parsed.Claims)
	}

	parts := strings.Split(trimmed, ".")
	return &Token{
		Header:    prettyJSON(parsed.Header),
		Payload:   prettyJSON(map[string]any(claims)),
		Signature: parts[2],
		Info:      summarize(parsed.Header, claims),
	}, nil
}

// summarize builds the claim table in a fixed order: algorithm and type
// first, then the registered claims that are present.
func summarize(header map[string]any, claims jwt.MapClaims) []ClaimInfo {
	info := make([]ClaimInfo, 0, 8)

	alg := "N/A"
	if v, ok := header["alg"].(string); ok {
		alg = v
	}
	info = append(info, ClaimInfo{Label: "Algorithm", Value: alg})

	typ := "N/A"
	if v, ok := header["typ"].(string); ok {
		typ = v
	}
	info = append(info, ClaimInfo{Label: "Type", Value: typ})

	if v, ok := claims["iss"].(string); ok {
		info = append(info, ClaimInfo{Label: "Issuer", Value: v})
	}
	if v, ok := claims["sub"].(string); ok {
		info = append(info, ClaimInfo{Label: "Subject", Value: v})
	}
	if v, ok := claims["aud"]; ok {
		info = append(info, ClaimInfo{Label: "Audience", Value: fmt.Sprintf("%v", v)})
	}
	if v, ok := claimTime(claims["exp"]); ok {
		info = append(info, ClaimInfo{Label: "Expires", Value: v})
	}
	if v, ok := claimTime(claims["nbf"]); ok {
		info = append(info, ClaimInfo{Label: "Not Before", Value: v})
	}
	if v, ok := claimTime(claims["iat"]); ok {
		info = append(info, ClaimInfo{Label: "Issued At", Value: v})
	}
	if v, ok := claims["jti"].(string); ok {
		info = append(info, ClaimInfo{Label: "JWT ID", Value: v})
	}
	return info
}

// claimTime renders a numeric-date claim as a local timestamp.
func claimTime(v any) (string, bool) {
	var sec int64
	switch n := v.(type) {
	case float64:
		sec = int64(n)
	case int64:
		sec = n
	default:
		return "", false
	}
	return time.Unix(sec, 0).Format("2006-01-02 15:04:05"), true
}

func prettyJSON(v any) string {
	return oj.JSON(v, &ojg.Options{Indent: 2, Sort: true})
}
