package main

import (
	"context"
	"embed"
	"runtime"

	"qdevkit/app"
	"qdevkit/app/settings"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/menu/keys"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	wruntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	// Create an instance of the app structure
	appInstance := app.NewApp()
	settingsService := settings.NewSettingsService()

	AppMenu := menu.NewMenu()
	if runtime.GOOS == "darwin" {
		AppMenu.Append(menu.AppMenu())
	}

	FileMenu := AppMenu.AddSubmenu("File")
	FileMenu.AddText("Settings", keys.CmdOrCtrl(","), func(_ *menu.CallbackData) {
		if appInstance != nil {
			wruntime.EventsEmit(appInstance.Ctx(), "menu:settings")
		}
	})

	ToolsMenu := AppMenu.AddSubmenu("Tools")
	ToolsMenu.AddText("JSON Formatter", keys.CmdOrCtrl("1"), func(_ *menu.CallbackData) {
		if appInstance != nil {
			wruntime.EventsEmit(appInstance.Ctx(), "menu:tool", "jsonFormatter")
		}
	})
	ToolsMenu.AddText("JSONPath Filter", keys.CmdOrCtrl("2"), func(_ *menu.CallbackData) {
		if appInstance != nil {
			wruntime.EventsEmit(appInstance.Ctx(), "menu:tool", "jsonPathFilter")
		}
	})
	ToolsMenu.AddText("UUID Generator", keys.CmdOrCtrl("3"), func(_ *menu.CallbackData) {
		if appInstance != nil {
			wruntime.EventsEmit(appInstance.Ctx(), "menu:tool", "uuidGenerator")
		}
	})
	ToolsMenu.AddText("Base64 Encoder", keys.CmdOrCtrl("4"), func(_ *menu.CallbackData) {
		if appInstance != nil {
			wruntime.EventsEmit(appInstance.Ctx(), "menu:tool", "base64Encoder")
		}
	})
	ToolsMenu.AddText("URL Encoder", keys.CmdOrCtrl("5"), func(_ *menu.CallbackData) {
		if appInstance != nil {
			wruntime.EventsEmit(appInstance.Ctx(), "menu:tool", "urlEncoder")
		}
	})
	ToolsMenu.AddText("JWT Decoder", keys.CmdOrCtrl("6"), func(_ *menu.CallbackData) {
		if appInstance != nil {
			wruntime.EventsEmit(appInstance.Ctx(), "menu:tool", "jwtDecoder")
		}
	})
	ToolsMenu.AddText("Timestamp Converter", keys.CmdOrCtrl("7"), func(_ *menu.CallbackData) {
		if appInstance != nil {
			wruntime.EventsEmit(appInstance.Ctx(), "menu:tool", "timestampConverter")
		}
	})
	ToolsMenu.AddText("Hash Generator", keys.CmdOrCtrl("8"), func(_ *menu.CallbackData) {
		if appInstance != nil {
			wruntime.EventsEmit(appInstance.Ctx(), "menu:tool", "hashGenerator")
		}
	})

	HelpMenu := AppMenu.AddSubmenu("Help")
	HelpMenu.AddText("About", nil, func(_ *menu.CallbackData) {
		if appInstance != nil {
			wruntime.EventsEmit(appInstance.Ctx(), "menu:about")
		}
	})

	// Get saved window size or use defaults
	width, height, err := appInstance.GetSavedWindowSize()
	if err != nil {
		println("Warning: Failed to get saved window size, using defaults:", err.Error())
		width, height = 1024, 768
	}

	// Create application with options
	err = wails.Run(&options.App{
		Title:     "QDevKit",
		Width:     width,
		Height:    height,
		Menu:      AppMenu,
		MinWidth:  400,
		MinHeight: 300,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup: func(ctx context.Context) {
			appInstance.Startup(ctx)
			settingsService.Startup(ctx)
			// Ensure instance ID is generated on first startup
			if err := settingsService.EnsureInstanceID(); err != nil {
				println("Warning: Failed to generate instance ID:", err.Error())
			}
		},
		Bind: []interface{}{
			appInstance,
			settingsService,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
