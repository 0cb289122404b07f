package settings

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GetEffectiveSettings returns the effective settings (defaults overlaid with file overrides if any).
// If anything goes wrong, it returns defaults.
func GetEffectiveSettings() Settings {
	settings := defaultSettings
	path, err := settingsFilePath()
	if err != nil {
		return settings
	}
	if _, err := os.Stat(path); err != nil {
		// no file or other stat error -> return defaults
		return settings
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return settings
	}
	var m map[string]any
	if err := yaml.Unmarshal(b, &m); err != nil {
		return settings
	}
	applyOverrides(&settings, m)
	return settings
}

// applyOverrides overlays values from a generic map onto settings. Only keys
// that are present and of the right type take effect, so a partial file
// leaves the remaining defaults intact.
func applyOverrides(settings *Settings, m map[string]any) {
	if v, ok := m["default_ingest_timezone"]; ok {
		if vs, oks := v.(string); oks {
			settings.DefaultIngestTimezone = vs
		}
	}
	if v, ok := m["display_timezone"]; ok {
		if vs, oks := v.(string); oks {
			settings.DisplayTimezone = vs
		}
	}
	if v, ok := m["timestamp_display_format"]; ok {
		if vs, oks := v.(string); oks {
			settings.TimestampDisplayFormat = vs
		}
	}
	if v, ok := m["history_limit"]; ok {
		if vi, oki := v.(int); oki && vi >= 1 {
			settings.HistoryLimit = vi
		}
	}
	if v, ok := m["instance_id"]; ok {
		if vs, oks := v.(string); oks {
			settings.InstanceID = vs
		}
	}
	if v, ok := m["window_width"]; ok {
		if vi, oki := v.(int); oki && vi >= 400 {
			settings.WindowWidth = vi
		}
	}
	if v, ok := m["window_height"]; ok {
		if vi, oki := v.(int); oki && vi >= 300 {
			settings.WindowHeight = vi
		}
	}
}

func settingsFilePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	dir := filepath.Dir(exe)
	return filepath.Join(dir, "qdevkit.yml"), nil
}
