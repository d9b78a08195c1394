package main

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/younwookim/bootleg/internal/application/game"
	"github.com/younwookim/bootleg/internal/application/scene/playing"
	"github.com/younwookim/bootleg/internal/infrastructure/assets"
	"github.com/younwookim/bootleg/internal/infrastructure/config"
	"github.com/younwookim/bootleg/internal/infrastructure/render"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()

	// Load configurations using embedded filesystem
	configFS, err := fs.Sub(gameFS, "configs")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get config subfs")
	}
	cfg, err := config.NewFSLoader(configFS, "configs").LoadAll()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	assetFS, err := fs.Sub(gameFS, "assets")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get asset subfs")
	}
	heart, err := assets.LoadIcon(assetFS, cfg.Assets.Heart, cfg.HUD.HeartSize)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load heart icon")
	}

	renderer := render.New(render.NewConfig(cfg), heart)
	defer renderer.Close()

	scene, err := playing.New(cfg, playing.Options{
		Renderer: renderer,
		Record:   true,
		Logger:   log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create scene")
	}

	g := game.New(scene, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, cfg.Display.Framerate)
	defer g.Close()

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error().Err(err).Msg("Game stopped")
		return
	}
	log.Info().Msg("Bye")
}
