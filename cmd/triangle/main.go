package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	gekko "github.com/gekko3d/gekkogl"
	"github.com/gekko3d/gekkogl/triangle"
)

//go:embed assets
var embeddedAssets embed.FS

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, gekko.FormatError(err))
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "triangle.yaml", "Path to the YAML config file")
	debug := flag.Bool("debug", false, "Enable debug logging and per-frame GL error checks")
	flag.Parse()

	cfg, err := gekko.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *debug {
		cfg.Debug = true
	}

	assets, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return err
	}

	window := gekko.NewPlatformWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)
	window.VSync = cfg.Window.VSync

	app, err := gekko.NewAppBuilder().
		UseModule(
			gekko.LoggingModule{Prefix: "triangle", Debug: cfg.Debug},
			window,
			gekko.AssetServerModule{Dir: cfg.AssetsDir, Fallback: assets},
			gekko.WindowIconModule{Name: cfg.Window.Icon},
			gekko.GLRendererModule{ClearColor: cfg.ClearColorVec()},
			gekko.InputModule{QuitOnEscape: true},
			gekko.TimeModule{},
			triangle.Module{},
		).
		Build()
	if err != nil {
		return err
	}

	return app.Run()
}
