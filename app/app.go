package app

import (
	"context"
	"fmt"
	"sync"

	"qdevkit/app/history"
	"qdevkit/app/settings"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// App struct
type App struct {
	ctx context.Context

	// JSONPath expression history
	historyMu sync.Mutex
	history   *history.Store

	// clipboard init
	clipOnce sync.Once
	clipOK   bool
}

// NewApp creates a new App application struct
func NewApp() *App {
	currentSettings := settings.GetEffectiveSettings()
	store, err := history.NewStore(currentSettings.HistoryLimit)
	if err != nil {
		// No home directory. Run with in-memory history only.
		store = history.NewStoreAt("", currentSettings.HistoryLimit)
	}
	return &App{history: store}
}

// Startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
}

// Ctx returns the Wails context
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Log sends a log message to the frontend console
func (a *App) Log(level, message string) {
	if a == nil || a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, "log", map[string]any{
		"level":   level,
		"message": message,
	})
}

// GetEffectiveSettings returns the effective settings for the frontend
func (a *App) GetEffectiveSettings() settings.Settings {
	return settings.GetEffectiveSettings()
}

// SaveWindowSize saves the current window dimensions to the settings file
func (a *App) SaveWindowSize(width, height int) error {
	if width < 400 || height < 300 {
		return fmt.Errorf("window size too small: minimum 400x300, got %dx%d", width, height)
	}

	currentSettings := settings.GetEffectiveSettings()
	currentSettings.WindowWidth = width
	currentSettings.WindowHeight = height

	settingsService := settings.NewSettingsService()
	return settingsService.SaveSettings(currentSettings)
}

// GetSavedWindowSize returns the saved window dimensions from settings
func (a *App) GetSavedWindowSize() (width, height int, err error) {
	currentSettings := settings.GetEffectiveSettings()

	width = currentSettings.WindowWidth
	height = currentSettings.WindowHeight

	if width < 400 {
		width = 1024 // default
	}
	if height < 300 {
		height = 768 // default
	}

	return width, height, nil
}
