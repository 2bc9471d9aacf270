package main

import (
	"flag"
	"log"

	"github.com/Garsondee/rts-tanks/internal/config"
	"github.com/Garsondee/rts-tanks/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to the TOML config file")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.ReadTOML(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("config: window=%dx%d spawn=(%.0f,%.0f) key=%s assets=%s",
		cfg.Window.Width, cfg.Window.Height, cfg.Spawn.X, cfg.Spawn.Y, cfg.Spawn.Key, cfg.Assets.Dir)

	assets, err := game.LoadAssets(cfg)
	if err != nil {
		log.Fatal(err)
	}
	g, err := game.New(cfg, assets)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
