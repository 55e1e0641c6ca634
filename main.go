package main

import (
	"embed"
	"log"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/mac"

	slidesApp "slides/internal/app"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	// `slides --mcp` skips the GUI and serves MCP tools over stdio so
	// AI agents can edit the same deck collection.
	if len(os.Args) > 1 && os.Args[1] == "--mcp" {
		slidesApp.ServeMCP()
		return
	}

	app := slidesApp.New()

	// macOS needs an Edit menu for Cmd+C/V/X/A to reach the WebView
	appMenu := menu.NewMenu()
	appMenu.Append(menu.EditMenu())

	opts := &options.App{
		Title:            "Slides",
		Width:            1440,
		Height:           900,
		MinWidth:         960,
		MinHeight:        600,
		AssetServer:      &assetserver.Options{Assets: assets},
		BackgroundColour: &options.RGBA{R: 18, G: 18, B: 24, A: 1},
		Menu:             appMenu,
		OnStartup:        app.Startup,
		OnShutdown:       app.Shutdown,
		Bind:             []interface{}{app},
		Mac: &mac.Options{
			TitleBar: mac.TitleBarHiddenInset(),
			About: &mac.AboutInfo{
				Title:   "Slides",
				Message: "Desktop presentation editor",
			},
		},
	}

	if err := wails.Run(opts); err != nil {
		log.Fatal(err)
	}
}
