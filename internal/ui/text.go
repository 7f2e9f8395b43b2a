package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// DrawCentered draws s centered inside rect.
func DrawCentered(screen *ebiten.Image, s string, face font.Face, rect image.Rectangle, clr color.Color) {
	bounds := text.BoundString(face, s)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, s, face, x, y, clr)
}

// DrawCenteredX draws s horizontally centered on the screen with its baseline at y.
func DrawCenteredX(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	text.Draw(screen, s, face, x, y, clr)
}
