//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"mosaic/internal/app"
	"mosaic/internal/stage"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.InstallLogger(os.Stderr)

	src, err := cfg.OpenSource()
	if err != nil {
		log.Fatal(err)
	}
	stageCfg, err := cfg.StageConfig()
	if err != nil {
		log.Fatal(err)
	}

	director := stage.NewDirector(src, stageCfg, cfg.Viewport())
	game := app.New(director, cfg.HUDWidth)

	ebiten.SetWindowTitle("mosaic")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
