// internal/state/title_state.go
package state

import (
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*TitleState)(nil)

// TitleState is the start screen.
type TitleState struct {
	sm    *StateMachine
	start *ui.Button
	exit  *ui.Button
}

func NewTitleState(sm *StateMachine) *TitleState {
	buttons := ui.ButtonRow(config.ScreenHeight/2, "Start", "Exit")
	return &TitleState{sm: sm, start: buttons[0], exit: buttons[1]}
}

func (s *TitleState) Enter() {}
func (s *TitleState) Exit()  {}

func (s *TitleState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.startGame()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.RequestQuit()
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.click(ebiten.CursorPosition())
	}
}

func (s *TitleState) click(x, y int) {
	switch {
	case s.start.IsClicked(x, y):
		s.startGame()
	case s.exit.IsClicked(x, y):
		s.sm.RequestQuit()
	}
}

func (s *TitleState) startGame() {
	s.sm.SetState(NewGameState(s.sm))
}

func (s *TitleState) Draw(screen *ebiten.Image) {
	fonts := s.sm.Resources().Fonts
	screen.Fill(config.BackgroundColor)
	ui.DrawCenteredX(screen, "LANE DEFENSE", fonts.Title, config.ScreenHeight/3, config.TextLightColor)
	ui.DrawCenteredX(screen, "Hold the lanes for five waves.", fonts.Status, config.ScreenHeight/3+40, config.TextMutedColor)
	x, y := ebiten.CursorPosition()
	s.start.Draw(screen, fonts.Button, x, y)
	s.exit.Draw(screen, fonts.Button, x, y)
}
