package ui

import (
	"image"
	"image/color"

	"go-lane-defense/internal/config"
	"go-lane-defense/internal/entity"
	"go-lane-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// BoardView draws the lane grid and maps screen points back to cells.
type BoardView struct {
	Lanes, Width int
	Origin       image.Point
}

// NewBoardView centers a lanes x width grid horizontally at config.BoardOffsetY.
func NewBoardView(lanes, width int) *BoardView {
	gridWidth := width*(config.CellWidth+config.CellGap) - config.CellGap
	return &BoardView{
		Lanes:  lanes,
		Width:  width,
		Origin: image.Pt((config.ScreenWidth-gridWidth)/2, config.BoardOffsetY),
	}
}

// CellRect returns the screen rectangle of (lane, col).
func (v *BoardView) CellRect(lane, col int) image.Rectangle {
	x := v.Origin.X + col*(config.CellWidth+config.CellGap)
	y := v.Origin.Y + lane*(config.CellHeight+config.CellGap)
	return image.Rect(x, y, x+config.CellWidth, y+config.CellHeight)
}

// Bounds is the rectangle enclosing every cell.
func (v *BoardView) Bounds() image.Rectangle {
	return v.CellRect(0, 0).Union(v.CellRect(v.Lanes-1, v.Width-1))
}

// CellAt returns the cell under (x, y). Gaps between cells hit nothing.
func (v *BoardView) CellAt(x, y int) (lane, col int, ok bool) {
	p := image.Pt(x, y)
	if !p.In(v.Bounds()) {
		return 0, 0, false
	}
	col = (x - v.Origin.X) / (config.CellWidth + config.CellGap)
	lane = (y - v.Origin.Y) / (config.CellHeight + config.CellGap)
	if !p.In(v.CellRect(lane, col)) {
		return 0, 0, false
	}
	return lane, col, true
}

// Draw renders the snapshot. When preview is set, the hovered empty cell is highlighted.
func (v *BoardView) Draw(screen *ebiten.Image, board entity.BoardSnapshot, face font.Face, hoverLane, hoverCol int, preview bool) {
	frame := v.Bounds().Inset(-config.CellGap)
	vector.DrawFilledRect(screen, float32(frame.Min.X), float32(frame.Min.Y),
		float32(frame.Dx()), float32(frame.Dy()), config.BoardColor, true)

	for lane := 0; lane < v.Lanes; lane++ {
		for col := 0; col < v.Width; col++ {
			rect := v.CellRect(lane, col)
			bg, symbol := v.cellLook(board, lane, col)
			if symbol == 0 && preview && lane == hoverLane && col == hoverCol {
				bg = render.LightenColor(bg, 0.25)
			}
			vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y),
				float32(rect.Dx()), float32(rect.Dy()), bg, true)
			if symbol != 0 {
				vector.StrokeRect(screen, float32(rect.Min.X), float32(rect.Min.Y),
					float32(rect.Dx()), float32(rect.Dy()), config.StrokeWidth, render.DarkenColor(bg, 0.6), true)
				DrawCentered(screen, string(symbol), face, rect, config.TextLightColor)
			}
		}
	}
}

// Башня важнее монстра в той же клетке.
func (v *BoardView) cellLook(board entity.BoardSnapshot, lane, col int) (color.RGBA, rune) {
	if t, ok := board.TowerAt(lane, col); ok {
		return config.TowerCellColor, t.Symbol
	}
	if m, ok := board.MonsterAt(lane, col); ok {
		return config.MonsterColor, m.Symbol
	}
	return config.CellColor, 0
}
