package ui

import (
	"fmt"
	"image"

	"go-lane-defense/internal/config"
	"go-lane-defense/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// StatusBar shows wave, gold and lives in a row under the title.
type StatusBar struct {
	Y int
}

func NewStatusBar(y int) *StatusBar {
	return &StatusBar{Y: y}
}

// Labels returns the three status texts in display order.
func (s *StatusBar) Labels(sb interfaces.Scoreboard) []string {
	return []string{
		fmt.Sprintf("Wave: %d/%d", sb.Wave(), sb.MaxWaves()),
		fmt.Sprintf("Gold: %d", sb.Gold()),
		fmt.Sprintf("Lives: %d", sb.Lives()),
	}
}

func (s *StatusBar) Draw(screen *ebiten.Image, face font.Face, sb interfaces.Scoreboard) {
	labels := s.Labels(sb)
	slot := config.ScreenWidth / (len(labels) + 2)
	for i, label := range labels {
		x := slot * (i + 1)
		DrawCentered(screen, label, face, image.Rect(x, s.Y, x+slot, s.Y+config.ButtonHeight/2), config.TextLightColor)
	}
}
