// internal/state/end_state.go
package state

import (
	"fmt"

	"go-lane-defense/internal/config"
	"go-lane-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*EndState)(nil)

// EndState показывает итог игры и кнопки Restart и Exit.
type EndState struct {
	sm      *StateMachine
	won     bool
	wave    int
	restart *ui.Button
	exit    *ui.Button
}

func NewEndState(sm *StateMachine, won bool, wave int) *EndState {
	buttons := ui.ButtonRow(config.ScreenHeight/2+40, "Restart", "Exit")
	return &EndState{sm: sm, won: won, wave: wave, restart: buttons[0], exit: buttons[1]}
}

func (s *EndState) Enter() {
	s.sm.Resources().Log.Info("game finished: won=%v wave=%d", s.won, s.wave)
}

func (s *EndState) Exit() {}

// Headline is the large line on the end screen.
func (s *EndState) Headline() string {
	if s.won {
		return "YOU SURVIVED ALL WAVES!"
	}
	return "GAME OVER"
}

func (s *EndState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.sm.SetState(NewGameState(s.sm))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		s.sm.RequestQuit()
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.click(ebiten.CursorPosition())
	}
}

func (s *EndState) click(x, y int) {
	switch {
	case s.restart.IsClicked(x, y):
		s.sm.SetState(NewGameState(s.sm))
	case s.exit.IsClicked(x, y):
		s.sm.RequestQuit()
	}
}

func (s *EndState) Draw(screen *ebiten.Image) {
	fonts := s.sm.Resources().Fonts
	screen.Fill(config.BackgroundColor)
	clr := config.LoseColor
	if s.won {
		clr = config.WinColor
	}
	ui.DrawCenteredX(screen, s.Headline(), fonts.Title, config.ScreenHeight/3, clr)
	ui.DrawCenteredX(screen, fmt.Sprintf("Reached wave %d", s.wave), fonts.Status, config.ScreenHeight/3+40, config.TextMutedColor)
	x, y := ebiten.CursorPosition()
	s.restart.Draw(screen, fonts.Button, x, y)
	s.exit.Draw(screen, fonts.Button, x, y)
}
