package ui

import (
	"testing"

	"go-lane-defense/internal/config"
)

func TestBoardViewRoundTrip(t *testing.T) {
	v := NewBoardView(3, 6)
	for lane := 0; lane < 3; lane++ {
		for col := 0; col < 6; col++ {
			r := v.CellRect(lane, col)
			center := r.Min.Add(r.Size().Div(2))
			gotLane, gotCol, ok := v.CellAt(center.X, center.Y)
			if !ok || gotLane != lane || gotCol != col {
				t.Errorf("CellAt(center of %d,%d) = %d,%d,%v", lane, col, gotLane, gotCol, ok)
			}
		}
	}
}

func TestBoardViewMisses(t *testing.T) {
	v := NewBoardView(3, 6)
	gapX := v.CellRect(0, 0).Max.X // first pixel of the gap after column 0
	y := v.CellRect(0, 0).Min.Y + 5
	if _, _, ok := v.CellAt(gapX, y); ok {
		t.Error("Expected gap between cells to miss")
	}
	if _, _, ok := v.CellAt(v.Origin.X-1, y); ok {
		t.Error("Expected point left of the board to miss")
	}
	if _, _, ok := v.CellAt(v.Origin.X+1, v.Bounds().Max.Y); ok {
		t.Error("Expected point below the board to miss")
	}
}

func TestBoardViewCentered(t *testing.T) {
	v := NewBoardView(3, 6)
	b := v.Bounds()
	left := b.Min.X
	right := config.ScreenWidth - b.Max.X
	if d := left - right; d < -1 || d > 1 {
		t.Errorf("Board not centered: left margin %d, right margin %d", left, right)
	}
}

func TestButtonRowAndClicks(t *testing.T) {
	buttons := ButtonRow(500, "Arrow Tower (50)", "Cannon Tower (80)", "End Turn")
	if len(buttons) != 3 {
		t.Fatalf("Got %d buttons", len(buttons))
	}
	for i := 1; i < len(buttons); i++ {
		if buttons[i].Rect.Min.X <= buttons[i-1].Rect.Max.X {
			t.Errorf("Buttons %d and %d overlap", i-1, i)
		}
	}
	b := buttons[1]
	x, y := b.Rect.Min.X+1, b.Rect.Min.Y+1
	if !b.IsClicked(x, y) {
		t.Error("Expected click inside enabled button to register")
	}
	b.Enabled = false
	if b.IsClicked(x, y) {
		t.Error("Disabled button registered a click")
	}
	if b.IsClicked(b.Rect.Max.X, y) {
		t.Error("Click on the right edge should miss")
	}
}

type scoreboard struct{ wave, maxWaves, gold, lives int }

func (s scoreboard) Wave() int     { return s.wave }
func (s scoreboard) MaxWaves() int { return s.maxWaves }
func (s scoreboard) Gold() int     { return s.gold }
func (s scoreboard) Lives() int    { return s.lives }

func TestStatusBarLabels(t *testing.T) {
	got := NewStatusBar(80).Labels(scoreboard{2, 5, 130, 9})
	want := []string{"Wave: 2/5", "Gold: 130", "Lives: 9"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Label %d = %q, want %q", i, got[i], want[i])
		}
	}
}
