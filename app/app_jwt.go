package app

import (
	"fmt"

	"qdevkit/app/jwtdecoder"
)

// DecodeJWT decodes a JWT without verifying its signature
func (a *App) DecodeJWT(token string) (*jwtdecoder.Token, error) {
	decoded, err := jwtdecoder.Decode(token)
	if err != nil {
		a.Log("error", fmt.Sprintf("JWT decode failed: %v", err))
		return nil, err
	}
	return decoded, nil
}
