package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fenderz/fenderz/internal/debug"
	"github.com/fenderz/fenderz/internal/engineconfig"
	"github.com/fenderz/fenderz/internal/env"
	"github.com/fenderz/fenderz/internal/graphics"
	"github.com/fenderz/fenderz/internal/logger"
	"github.com/fenderz/fenderz/internal/physics"
	"github.com/fenderz/fenderz/internal/scene"
)

const (
	windowTitle = "fenderz - Physics Engine"
	cubesReset  = "Cubes reset."
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	if err := env.Load(".env"); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}
	over, err := env.Read()
	if err != nil {
		return err
	}

	physicsPath := flag.String("physics-config", orDefault(over.PhysicsConfig, physics.ConfigPath), "physics config (YAML)")
	enginePath := flag.String("engine-config", orDefault(over.EngineConfig, engineconfig.EngineConfigPath), "display preferences (JSON)")
	logPath := flag.String("log", orDefault(over.LogFile, logger.LogFilePath), "log file")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	flag.Parse()

	if *seed == 0 && over.Seed != nil {
		*seed = *over.Seed
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	prefs, err := engineconfig.Load(*enginePath)
	if err != nil {
		return err
	}
	cfg, err := physics.LoadConfig(*physicsPath)
	if err != nil {
		return err
	}

	log := logger.New(*logPath)
	if prefs.DebugMode {
		log.Echo = os.Stdout
	}

	world, err := physics.New(cfg, physics.NewRand(*seed))
	if err != nil {
		return err
	}
	if prefs.DebugMode {
		log.Logf("seed %d, %d cubes", *seed, world.Len())
		log.Log(cubesReset)
		if prefs.VSync() {
			log.Log("V-Sync enabled.")
		} else {
			log.Log("V-Sync disabled (debug mode).")
		}
	}

	scn := scene.New(prefs)
	overlay := debug.New(prefs.ShowFPS || prefs.DebugMode)

	var snap physics.Snapshot
	update := func(dt float32) {
		rep := world.Step(dt)
		if prefs.DebugMode {
			logStep(log, rep, world.Seconds)
		}
		scn.Update(dt)
		if err := world.Snapshot(&snap); err != nil {
			log.Log(err.Error())
		}
		if fps, ok := world.RecordFrame(dt); ok {
			overlay.Sample(fps, &snap)
			if prefs.DebugMode {
				log.Logf("FPS: %.2f", fps)
			}
		}
	}
	draw := func() {
		scn.Draw(&snap)
		overlay.Draw()
	}

	graphics.Run(graphics.Options{
		Title:     windowTitle,
		VSync:     prefs.VSync(),
		TargetFPS: prefs.TargetFPS,
		OnClose:   scn.Unload,
	}, update, draw)
	return nil
}

// logStep records the debug messages for one step: the seconds tick, then the reset.
func logStep(log *logger.Logger, rep physics.StepReport, seconds int) {
	if rep.SecondElapsed {
		log.Logf("Seconds: %d", seconds)
	}
	if rep.Reset {
		log.Log("Resetting cubes due to timer.")
		log.Log(cubesReset)
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
