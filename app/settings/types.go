package settings

// Settings holds application settings that can be overridden by the user.
type Settings struct {
	// Default timezone to assume when parsing timestamps that do not include an explicit timezone.
	// Examples: "Local" (system local), "UTC", or any IANA TZ like "America/Los_Angeles"
	DefaultIngestTimezone string `yaml:"default_ingest_timezone" json:"default_ingest_timezone"`
	// Timezone to use for displaying converted times. Same semantics as above.
	DisplayTimezone string `yaml:"display_timezone" json:"display_timezone"`
	// Common time format string used to render timestamps in copied/exported data.
	// Example: "yyyy-MM-dd HH:mm:ss" (e.g., 2024-12-31 23:59:59)
	TimestampDisplayFormat string `yaml:"timestamp_display_format" json:"timestamp_display_format"`
	// Maximum number of JSONPath expressions retained in the MRU history
	HistoryLimit int `yaml:"history_limit" json:"history_limit"`
	// InstanceID is a unique identifier for this installation (not visible in settings dialog)
	InstanceID string `yaml:"instance_id,omitempty" json:"instance_id,omitempty"`
	// Window size settings (not visible in settings dialog, but persisted)
	WindowWidth  int `yaml:"window_width,omitempty" json:"window_width,omitempty"`
	WindowHeight int `yaml:"window_height,omitempty" json:"window_height,omitempty"`
}

// defaultSettings defines the built-in defaults.
var defaultSettings = Settings{
	// By default, interpret no-timezone timestamps in the system local timezone
	DefaultIngestTimezone: "Local",
	// By default, display in system local timezone
	DisplayTimezone: "Local",
	// Default display format for timestamps (common pattern, not Go layout)
	TimestampDisplayFormat: "yyyy-MM-dd HH:mm:ss",
	HistoryLimit:           20,
	// Default window size (matches main.go defaults)
	WindowWidth:  1024,
	WindowHeight: 768,
}
