package ui

import (
	"image"

	"go-lane-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect    image.Rectangle
	Text    string
	Enabled bool
}

// NewButton создает новую кнопку.
func NewButton(x, y int, label string) *Button {
	return &Button{
		Rect:    image.Rect(x, y, x+config.ButtonWidth, y+config.ButtonHeight),
		Text:    label,
		Enabled: true,
	}
}

// Contains reports whether (x, y) is inside the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// IsClicked reports whether an enabled button was hit at (x, y).
func (b *Button) IsClicked(x, y int) bool {
	return b.Enabled && b.Contains(x, y)
}

// Draw отрисовывает кнопку; hovered buttons are drawn lighter.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, cursorX, cursorY int) {
	bg := config.ButtonColor
	switch {
	case !b.Enabled:
		bg = config.ButtonDisabled
	case b.Contains(cursorX, cursorY):
		bg = config.ButtonHover
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, config.StrokeWidth, config.ButtonStroke, true)

	fg := config.TextLightColor
	if !b.Enabled {
		fg = config.TextMutedColor
	}
	DrawCentered(screen, b.Text, face, b.Rect, fg)
}

// ButtonRow lays out n buttons centered horizontally at y.
func ButtonRow(y int, labels ...string) []*Button {
	total := len(labels)*config.ButtonWidth + (len(labels)-1)*config.ButtonSpacing
	x := (config.ScreenWidth - total) / 2
	buttons := make([]*Button, len(labels))
	for i, label := range labels {
		buttons[i] = NewButton(x, y, label)
		x += config.ButtonWidth + config.ButtonSpacing
	}
	return buttons
}
