package main

import (
	"log"

	"mythduel/internal/config"
	"mythduel/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
)

const configPath = "config.yaml"

func main() {
	cfg := config.MustLoadConfig(configPath)

	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := game.NewGame(cfg, configPath)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
