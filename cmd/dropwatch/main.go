// Package main provides the desktop entry point for Dropwatch.
package main

import (
	"embed"
	"os"

	"github.com/rs/zerolog"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"dropwatch/internal/app"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	backend := app.New(log)

	err := wails.Run(&options.App{
		Title:  "Dropwatch",
		Width:  960,
		Height: 640,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		OnStartup:  backend.Startup,
		OnShutdown: backend.Shutdown,
		Bind: []interface{}{
			backend,
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start application")
	}
}
