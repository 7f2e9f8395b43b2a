// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/assets"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/state"
	"go-lane-defense/internal/utils"
	"go-lane-defense/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.ShouldQuit() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "random seed for wave composition (0 = time based)")
	rulesPath := flag.String("rules", "", "path to a JSON rules file")
	logPath := flag.String("log", "", "write logs to this file")
	level := flag.String("level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	lvl, err := logger.ParseLevel(*level)
	if err != nil {
		log.Fatal(err)
	}
	gameLog := logger.New(lvl, "GAME", os.Stderr)
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
	fonts, err := assets.LoadFonts()
	if err != nil {
		log.Fatal(err)
	}

	factory := app.NewFactory(
		app.WithRules(rules),
		app.WithRandom(utils.NewPRNGService(*seed)),
		app.WithLogger(gameLog),
	)
	sm := state.NewStateMachine(state.Resources{Factory: factory, Fonts: fonts, Log: gameLog}) // Создаём машину состояний
	sm.SetState(state.NewTitleState(sm))

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Lane Defense")
	if err := ebiten.RunGame(a); err != nil {
		gameLog.Error("run: %v", err)
		log.Fatal(err)
	}
}
