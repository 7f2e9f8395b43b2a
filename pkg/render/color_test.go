package render

import (
	"image/color"
	"testing"
)

func TestDarkenColor(t *testing.T) {
	got := DarkenColor(color.RGBA{200, 100, 50, 255}, 0.5)
	want := color.RGBA{100, 50, 25, 255}
	if got != want {
		t.Errorf("DarkenColor = %v, want %v", got, want)
	}
	if got := DarkenColor(color.RGBA{10, 10, 10, 7}, -1); got != (color.RGBA{0, 0, 0, 7}) {
		t.Errorf("Negative factor should clamp to black, got %v", got)
	}
}

func TestLightenColor(t *testing.T) {
	got := LightenColor(color.RGBA{55, 155, 255, 200}, 0.5)
	want := color.RGBA{155, 205, 255, 200}
	if got != want {
		t.Errorf("LightenColor = %v, want %v", got, want)
	}
	if got := LightenColor(color.RGBA{1, 2, 3, 255}, 2); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("Factor above 1 should clamp to white, got %v", got)
	}
}
