package main

import (
	"context"
	"flag"
	"log"
	"math"
	"time"

	"github.com/BvdVoort/PWS/config"
	"github.com/BvdVoort/PWS/input/device"
	"github.com/BvdVoort/PWS/level"
	"github.com/BvdVoort/PWS/sim"
	"github.com/BvdVoort/PWS/systems/render"
	"github.com/hajimehoshi/ebiten/v2"
)

const appName = "pws-platformer"

// Game hosts a scene in an ebiten window. Pressing R restarts an ended level.
type Game struct {
	cfg    config.Config
	level  *level.Level
	input  *device.Ebiten
	scene  *sim.Scene
	store  *config.Store
	tuning chan config.Config
	width  int
	height int
}

func NewGame(cfg config.Config, lvl *level.Level, store *config.Store) (*Game, error) {
	g := &Game{
		cfg:    cfg,
		level:  lvl,
		input:  device.NewEbiten(device.Input),
		store:  store,
		tuning: make(chan config.Config, 1),
		width:  int(math.Ceil(lvl.Width * cfg.Collision.PixelsPerMeter)),
		height: int(math.Ceil(lvl.Height * cfg.Collision.PixelsPerMeter)),
	}
	if err := g.restart(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) restart() error {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	if g.scene != nil {
		// keep tuning applied to the previous scene
		g.cfg = g.scene.Config()
	}
	scene, err := sim.NewScene(g.cfg, g.level, g.input, time.Second/time.Duration(tps))
	if err != nil {
		return err
	}
	g.scene = scene
	return nil
}

// Retune hands a new config to the running scene. Safe to call from any
// goroutine; only the latest config is kept.
func (g *Game) Retune(cfg config.Config) {
	select {
	case <-g.tuning:
	default:
	}
	g.tuning <- cfg
}

func (g *Game) Update() error {
	select {
	case cfg := <-g.tuning:
		if err := g.scene.SetConfig(cfg); err != nil {
			log.Printf("[config] %v", err)
			break
		}
		if err := g.store.Save(cfg); err != nil {
			log.Printf("[config] could not save tuning: %v", err)
		}
	default:
	}

	if g.scene.State().Ended() && ebiten.IsKeyPressed(ebiten.KeyR) {
		if err := g.restart(); err != nil {
			return err
		}
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	render.DrawDebug(g.scene.ECS(), screen)
	render.DrawStatus(g.scene.ECS(), screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.width, g.height
}

func main() {
	configPath := flag.String("config", "", "YAML tuning file (empty = saved or default tuning)")
	scale := flag.Int("scale", 2, "Window scale")
	flag.Parse()

	// Initialize persistence and load saved tuning
	store, err := config.OpenStore(appName)
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	cfg := config.Default()
	if saved, ok, err := store.Load(); err != nil {
		log.Printf("Warning: Ignoring saved tuning: %v", err)
	} else if ok {
		cfg = saved
	}
	if *configPath != "" {
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	game, err := NewGame(cfg, level.Demo(), store)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if *configPath != "" {
		go func() {
			if err := config.Watch(ctx, *configPath, game.Retune); err != nil {
				log.Printf("[config] watch stopped: %v", err)
			}
		}()
	}

	ebiten.SetWindowSize(game.width**scale, game.height**scale)
	ebiten.SetWindowTitle("PWS platformer")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
