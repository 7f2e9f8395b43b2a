// cmd/console/main.go
package main

import (
	"flag"
	"io"
	"log"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/console"
	"go-lane-defense/internal/utils"
	"go-lane-defense/pkg/logger"

	"github.com/gdamore/tcell/v2"
)

func main() {
	seed := flag.Int64("seed", 0, "random seed for wave composition (0 = time based)")
	rulesPath := flag.String("rules", "", "path to a JSON rules file")
	logPath := flag.String("log", "", "write logs to this file")
	level := flag.String("level", "info", "log level: debug, info, warn, error")
	withSound := flag.Bool("sound", false, "play sound cues")
	flag.Parse()

	lvl, err := logger.ParseLevel(*level)
	if err != nil {
		log.Fatal(err)
	}
	// The terminal belongs to tcell, so logs only go to a file.
	gameLog := logger.New(lvl, "CONSOLE", io.Discard)
	if *logPath != "" {
		if err := gameLog.SetFile(*logPath); err != nil {
			log.Fatal(err)
		}
		defer gameLog.Close()
	}

	rules, err := config.LoadRules(*rulesPath)
	if err != nil {
		log.Fatal(err)
	}

	var sound *console.Sound
	if *withSound {
		if sound, err = console.NewSound(); err != nil {
			gameLog.Warn("audio initialization failed: %v", err)
			sound = nil
		}
		defer sound.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	factory := app.NewFactory(
		app.WithRules(rules),
		app.WithRandom(utils.NewPRNGService(*seed)),
		app.WithLogger(gameLog),
	)
	console.New(screen, factory, gameLog, sound).Run()
}
