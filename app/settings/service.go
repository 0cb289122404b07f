package settings

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// SettingsService manages reading/writing settings from disk.
type SettingsService struct {
	ctx context.Context
}

func NewSettingsService() *SettingsService {
	return &SettingsService{}
}

// Startup receives the Wails context
func (s *SettingsService) Startup(ctx context.Context) {
	s.ctx = ctx
}

// GetSettings returns the effective settings (defaults overlaid with file overrides if any).
func (s *SettingsService) GetSettings() (Settings, error) {
	settings := defaultSettings
	path, err := settingsFilePath()
	if err != nil {
		return settings, err
	}
	// If file doesn't exist, return defaults
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return settings, err
	}
	// Unmarshal into a generic map to detect key presence
	var m map[string]any
	if err := yaml.Unmarshal(b, &m); err != nil {
		return settings, err
	}
	applyOverrides(&settings, m)
	return settings, nil
}

// SaveSettings saves only the values that differ from defaults into YAML in the binary directory.
func (s *SettingsService) SaveSettings(in Settings) error {
	old := GetEffectiveSettings()

	// Build a minimal map containing only non-default values to avoid zero-value serialization pitfalls
	data := make(map[string]any)
	if strings.TrimSpace(in.DefaultIngestTimezone) != strings.TrimSpace(defaultSettings.DefaultIngestTimezone) {
		data["default_ingest_timezone"] = strings.TrimSpace(in.DefaultIngestTimezone)
	}
	if strings.TrimSpace(in.DisplayTimezone) != strings.TrimSpace(defaultSettings.DisplayTimezone) {
		data["display_timezone"] = strings.TrimSpace(in.DisplayTimezone)
	}
	if strings.TrimSpace(in.TimestampDisplayFormat) != strings.TrimSpace(defaultSettings.TimestampDisplayFormat) {
		data["timestamp_display_format"] = strings.TrimSpace(in.TimestampDisplayFormat)
	}

	historyLimit := in.HistoryLimit
	if historyLimit == 0 {
		historyLimit = old.HistoryLimit
	}
	if historyLimit != defaultSettings.HistoryLimit && historyLimit >= 1 {
		data["history_limit"] = historyLimit
	}

	// Preserve instance ID (not visible in settings dialog, but must persist)
	instanceID := strings.TrimSpace(in.InstanceID)
	if instanceID == "" {
		instanceID = strings.TrimSpace(old.InstanceID)
	}
	if instanceID != "" {
		data["instance_id"] = instanceID
	}

	// Preserve window size (not visible in settings dialog, but must persist)
	windowWidth := in.WindowWidth
	if windowWidth == 0 {
		windowWidth = old.WindowWidth
	}
	if windowWidth != defaultSettings.WindowWidth && windowWidth >= 400 {
		data["window_width"] = windowWidth
	}

	windowHeight := in.WindowHeight
	if windowHeight == 0 {
		windowHeight = old.WindowHeight
	}
	if windowHeight != defaultSettings.WindowHeight && windowHeight >= 300 {
		data["window_height"] = windowHeight
	}

	path, err := settingsFilePath()
	if err != nil {
		return err
	}

	if len(data) == 0 {
		// If there is an existing file, remove it to reflect defaults-only state
		if _, statErr := os.Stat(path); statErr == nil {
			_ = os.Remove(path)
		}
		return nil
	}
	b, err := yaml.Marshal(data)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// EnsureInstanceID generates and saves a unique instance ID if one doesn't exist
func (s *SettingsService) EnsureInstanceID() error {
	settings, err := s.GetSettings()
	if err != nil {
		return err
	}

	// If instance ID already exists, nothing to do
	if strings.TrimSpace(settings.InstanceID) != "" {
		return nil
	}

	settings.InstanceID = uuid.New().String()
	return s.SaveSettings(settings)
}
