package main

import (
	"context"
	"flag"
	"log"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BvdVoort/PWS/config"
	"github.com/BvdVoort/PWS/input"
	"github.com/BvdVoort/PWS/level"
	"github.com/BvdVoort/PWS/sim"
)

func main() {
	configPath := flag.String("config", "", "YAML tuning file (empty = defaults)")
	watch := flag.Bool("watch", false, "Reload the tuning file when it changes")
	scriptPath := flag.String("script", "", "YAML input script (empty = stand still)")
	tickRate := flag.Int("tickrate", 60, "Simulation tick rate (updates per second)")
	ticks := flag.Int("ticks", 600, "Ticks to run (0 = until the level ends)")
	realtime := flag.Bool("realtime", false, "Pace ticks with the wall clock")
	flag.Parse()

	if *tickRate <= 0 {
		log.Fatalf("Tick rate must be positive, got %d", *tickRate)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	var source input.Source = input.NewScript()
	if *scriptPath != "" {
		script, err := input.LoadScript(*scriptPath)
		if err != nil {
			log.Fatalf("Failed to load input script: %v", err)
		}
		source = script
	}

	scene, err := sim.NewScene(cfg, level.Demo(), source, time.Second/time.Duration(*tickRate))
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if *watch && *configPath != "" {
		go func() {
			err := config.Watch(ctx, *configPath, func(c config.Config) {
				if err := scene.SetConfig(c); err != nil {
					log.Printf("[sim] %v", err)
				}
			})
			if err != nil {
				log.Printf("[config] watch stopped: %v", err)
			}
		}()
	}

	log.Printf("Starting simulation (tick rate: %d/s, ticks: %d, realtime: %v)", *tickRate, *ticks, *realtime)
	if *realtime {
		loop := sim.NewLoop(scene, *tickRate)
		loop.MaxTicks = *ticks
		if err := loop.Run(ctx); err != nil {
			log.Printf("Simulation interrupted: %v", err)
		}
	} else {
		n := *ticks
		if n <= 0 {
			n = math.MaxInt
		}
		scene.RunTicks(n)
	}

	report(scene)
}

func report(scene *sim.Scene) {
	log.Printf("Finished after %d ticks: %s", scene.Tick(), scene.State())
	for i, ch := range scene.Characters() {
		log.Printf("  character %d: velocity %v grounded %v jump %s",
			i, ch.Controller.Velocity().Vec(), ch.Controller.Grounded(), ch.Controller.State())
	}
}
