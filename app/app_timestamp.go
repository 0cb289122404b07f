package app

import (
	"fmt"
	"strconv"
	"strings"

	"qdevkit/app/timestamps"
)

// ConvertTimestamp resolves an input to an instant and renders it in several
// common formats. Numeric input is interpreted per req.Unit; anything else
// goes through the multi-format date parser using the configured ingest
// timezone.
func (a *App) ConvertTimestamp(req ConvertTimestampRequest) (*ConvertTimestampResponse, error) {
	input := strings.TrimSpace(req.Input)
	if input == "" {
		return nil, fmt.Errorf("nothing to convert")
	}

	var ms int64
	if n, err := strconv.ParseInt(input, 10, 64); err == nil {
		switch req.Unit {
		case "milliseconds":
			ms = n
		default:
			ms = n * 1000
		}
	} else {
		loc := timestamps.GetIngestTimezoneWithOverride(req.Timezone)
		parsed, ok := timestamps.ParseTimestampMillis(input, loc)
		if !ok {
			err := fmt.Errorf("could not parse %q. Try formats like 2024-01-15, 2024-01-15 14:30:00, or ISO 8601", input)
			a.Log("error", err.Error())
			return nil, err
		}
		ms = parsed
	}

	conv := timestamps.DescribeWithSettings(ms)
	return &ConvertTimestampResponse{
		Seconds: conv.Seconds,
		Millis:  conv.Millis,
		Lines:   conv.Lines,
	}, nil
}

// CurrentTimestamp returns the current instant in both units
func (a *App) CurrentTimestamp() CurrentTimestampResponse {
	sec, ms := timestamps.Now()
	return CurrentTimestampResponse{Seconds: sec, Millis: ms}
}
