package timestamps

import (
	"strconv"
	"strings"
	"time"
)

// ParseTimestampMillis tries several common formats and returns epoch milliseconds.
// If loc is nil, timezone-less formats will be interpreted using DefaultIngestTimezone.
func ParseTimestampMillis(s string, loc *time.Location) (int64, bool) {
	ss := strings.TrimSpace(s)
	if ss == "" {
		return 0, false
	}

	// Try integer epoch seconds/milliseconds first. This avoids 20+ failed
	// time.Parse attempts for numeric timestamps, which are the common case.
	if n, err := strconv.ParseInt(ss, 10, 64); err == nil {
		if n > 1_000_000_000_000 {
			// Epoch milliseconds (13+ digits)
			return n, true
		}
		// Epoch seconds (10 digits or less)
		return n * 1000, true
	}

	// Try explicit timezone formats first
	if t, err := time.Parse(time.RFC3339, ss); err == nil {
		return t.UnixMilli(), true
	}
	if t, err := time.Parse(time.RFC3339Nano, ss); err == nil {
		return t.UnixMilli(), true
	}
	// Space-separated with explicit Z or numeric offset
	if t, err := time.Parse("2006-01-02 15:04:05Z07:00", ss); err == nil {
		return t.UnixMilli(), true
	}
	if t, err := time.Parse("2006-01-02T15:04:05Z07:00", ss); err == nil {
		return t.UnixMilli(), true
	}

	// Try various numbers of millisecond digits with a zone abbreviation
	if t, err := time.Parse("2006-01-02T15:04:05.000 MST", ss); err == nil {
		return t.UnixMilli(), true
	}
	if t, err := time.Parse("2006-01-02 15:04:05.000 MST", ss); err == nil {
		return t.UnixMilli(), true
	}
	if t, err := time.Parse("2006-01-02 15:04:05 MST", ss); err == nil {
		return t.UnixMilli(), true
	}

	// With Z suffix
	if strings.HasSuffix(ss, "Z") {
		if t, err := time.Parse("2006-01-02 15:04:05Z", ss); err == nil {
			return t.UnixMilli(), true
		}
		if t, err := time.Parse("2006-01-02T15:04:05Z", ss); err == nil {
			return t.UnixMilli(), true
		}
	}

	// Determine ingest timezone for timezone-less formats if not provided
	if loc == nil {
		loc = GetDefaultIngestTimezone()
	}

	// Try various numbers of millisecond digits
	if t, err := time.ParseInLocation("2006-01-02T15:04:05.000", ss, loc); err == nil {
		return t.UnixMilli(), true
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04:05.000", ss, loc); err == nil {
		return t.UnixMilli(), true
	}

	// ISO-like without timezone and common space-separated formats
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", ss, loc); err == nil {
		return t.UnixMilli(), true
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04", ss, loc); err == nil {
		return t.UnixMilli(), true
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04:05", ss, loc); err == nil {
		return t.UnixMilli(), true
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", ss, loc); err == nil {
		return t.UnixMilli(), true
	}
	if t, err := time.ParseInLocation("2006-01-02", ss, loc); err == nil {
		return t.UnixMilli(), true
	}
	if t, err := time.ParseInLocation("2006/01/02 15:04:05", ss, loc); err == nil {
		return t.UnixMilli(), true
	}
	if t, err := time.ParseInLocation("2006/01/02", ss, loc); err == nil {
		return t.UnixMilli(), true
	}

	// Day-first forms
	if t, err := time.ParseInLocation("02/01/2006 15:04:05", ss, loc); err == nil {
		return t.UnixMilli(), true
	}
	if t, err := time.ParseInLocation("02/01/2006", ss, loc); err == nil {
		return t.UnixMilli(), true
	}
	if t, err := time.ParseInLocation("02-01-2006 15:04:05", ss, loc); err == nil {
		return t.UnixMilli(), true
	}
	if t, err := time.ParseInLocation("02-01-2006", ss, loc); err == nil {
		return t.UnixMilli(), true
	}
	if t, err := time.ParseInLocation("January 2, 2006 15:04:05", ss, loc); err == nil {
		return t.UnixMilli(), true
	}
	if t, err := time.ParseInLocation("January 2, 2006", ss, loc); err == nil {
		return t.UnixMilli(), true
	}

	// No format matched
	return 0, false
}

// FormatTimestamp formats a millisecond timestamp to a display string using
// the given timezone and format pattern. The pattern uses the same style as
// the display settings (e.g., "yyyy-MM-dd HH:mm:ss"), not a Go layout.
func FormatTimestamp(ms int64, loc *time.Location, formatPattern string) string {
	if loc == nil {
		loc = time.Local
	}

	t := time.UnixMilli(ms).In(loc)

	pattern := strings.TrimSpace(formatPattern)
	if pattern == "" {
		pattern = "yyyy-MM-dd HH:mm:ss"
	}

	r := strings.NewReplacer(
		"yyyy", "2006",
		"yy", "06",
		"MM", "01",
		"dd", "02",
		"HH", "15",
		"mm", "04",
		"ss", "05",
		"SSS", "000",
		"zzz", "MST",
	)
	layout := r.Replace(pattern)

	return t.Format(layout)
}
