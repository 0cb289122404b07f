package timestamps

import (
	"fmt"
	"time"

	"qdevkit/app/settings"
)

// Conversion is the result of resolving an input to an instant, rendered in
// several common formats.
type Conversion struct {
	Seconds int64    `json:"seconds"`
	Millis  int64    `json:"millis"`
	Lines   []string `json:"lines"`
}

// Describe renders a millisecond timestamp in UTC, plus the given display
// timezone when it differs, in a handful of common formats.
func Describe(ms int64, loc *time.Location) *Conversion {
	return describe(ms, loc, "")
}

// DescribeWithSettings renders a millisecond timestamp using the display
// timezone and format pattern from settings.
func DescribeWithSettings(ms int64) *Conversion {
	effective := settings.GetEffectiveSettings()
	loc := GetLocationForTZ(effective.DisplayTimezone)
	return describe(ms, loc, effective.TimestampDisplayFormat)
}

func describe(ms int64, loc *time.Location, formatPattern string) *Conversion {
	if loc == nil {
		loc = time.Local
	}

	t := time.UnixMilli(ms).UTC()
	lines := []string{
		fmt.Sprintf("UTC: %s UTC", t.Format("2006-01-02 15:04:05")),
		fmt.Sprintf("ISO 8601: %s", t.Format(time.RFC3339)),
		fmt.Sprintf("RFC 1123: %s", t.Format(time.RFC1123)),
	}
	if loc != time.UTC {
		lines = append(lines, fmt.Sprintf("%s: %s", loc, FormatTimestamp(ms, loc, formatPattern)))
	}
	lines = append(lines,
		"",
		"Additional formats:",
		fmt.Sprintf("  %s", t.Format("2006-01-02")),
		fmt.Sprintf("  %s", t.Format("02/01/2006 15:04:05")),
		fmt.Sprintf("  %s", t.Format("Monday, January 2, 2006")),
	)
	return &Conversion{
		Seconds: ms / 1000,
		Millis:  ms,
		Lines:   lines,
	}
}

// Now returns the current instant as epoch seconds and milliseconds.
func Now() (int64, int64) {
	now := time.Now()
	return now.Unix(), now.UnixMilli()
}
