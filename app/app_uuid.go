package app

import (
	"fmt"

	"qdevkit/app/uuidgen"
)

// GenerateUUIDs produces a batch of UUID strings
func (a *App) GenerateUUIDs(req GenerateUUIDsRequest) ([]string, error) {
	out, err := uuidgen.GenerateBatch(req.Count, req.Version, req.Uppercase, req.StripDashes)
	if err != nil {
		a.Log("error", fmt.Sprintf("UUID generation failed: %v", err))
		return nil, err
	}
	return out, nil
}
