package app

import (
	"qdevkit/app/base64codec"
	"qdevkit/app/urlcodec"
)

// EncodeBase64 encodes text as Base64. Variant selects the URL-safe alphabet
func (a *App) EncodeBase64(req CodecRequest) string {
	return base64codec.Encode(req.Input, req.Variant)
}

// DecodeBase64 decodes Base64 text, repairing missing padding
func (a *App) DecodeBase64(req CodecRequest) (string, error) {
	return base64codec.Decode(req.Input, req.Variant)
}

// EncodeURL percent-encodes text. Variant selects form-style (+ for space)
func (a *App) EncodeURL(req CodecRequest) string {
	return urlcodec.Encode(req.Input, req.Variant)
}

// DecodeURL reverses percent-encoding
func (a *App) DecodeURL(req CodecRequest) (string, error) {
	return urlcodec.Decode(req.Input)
}
