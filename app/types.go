package app

// FormatJSONRequest holds the input for a JSON format operation
type FormatJSONRequest struct {
	Input    string `json:"input"`
	Indent   int    `json:"indent"`
	SortKeys bool   `json:"sortKeys"`
}

// FilterJSONRequest holds the input for a JSONPath filter operation
type FilterJSONRequest struct {
	Input      string `json:"input"`
	Expression string `json:"expression"`
}

// FilterJSONResponse is the result of a JSONPath filter operation
type FilterJSONResponse struct {
	Matches int    `json:"matches"`
	Output  string `json:"output"`
}

// GenerateUUIDsRequest holds the input for a UUID batch generation
type GenerateUUIDsRequest struct {
	Count       int  `json:"count"`
	Version     int  `json:"version"`
	Uppercase   bool `json:"uppercase"`
	StripDashes bool `json:"stripDashes"`
}

// CodecRequest holds the input for Base64/URL encode and decode operations
type CodecRequest struct {
	Input string `json:"input"`
	// URL-safe alphabet for Base64, form-style (+ for space) for URL encoding
	Variant bool `json:"variant"`
}

// ConvertTimestampRequest holds the input for a timestamp conversion
type ConvertTimestampRequest struct {
	Input string `json:"input"`
	// "seconds" or "milliseconds", for numeric input
	Unit string `json:"unit"`
	// Optional timezone for interpreting zoneless date input; empty uses
	// the configured default ingest timezone
	Timezone string `json:"timezone,omitempty"`
}

// ConvertTimestampResponse is the result of a timestamp conversion
type ConvertTimestampResponse struct {
	Seconds int64    `json:"seconds"`
	Millis  int64    `json:"millis"`
	Lines   []string `json:"lines"`
}

// CurrentTimestampResponse is the current instant in both units
type CurrentTimestampResponse struct {
	Seconds int64 `json:"seconds"`
	Millis  int64 `json:"millis"`
}

// HashTextRequest holds the input for a text hash operation
type HashTextRequest struct {
	Input     string `json:"input"`
	Algorithm string `json:"algorithm"`
}

// HashFileResponse is the result of a file hash operation
type HashFileResponse struct {
	Path   string `json:"path"`
	Digest string `json:"digest"`
}

// HashDirectoryResponse is the result of a directory hash operation
type HashDirectoryResponse struct {
	Path     string            `json:"path"`
	Combined string            `json:"combined"`
	Files    map[string]string `json:"files"`
}
