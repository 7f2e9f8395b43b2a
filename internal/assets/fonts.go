package assets

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Font sizes used by the window UI.
const (
	TitleFontSize  = 26
	StatusFontSize = 16
	ButtonFontSize = 14
	CellFontSize   = 22
)

// Fonts holds every face the window UI draws with.
type Fonts struct {
	Title  font.Face
	Status font.Face
	Button font.Face
	Cell   font.Face
}

// LoadFonts parses the embedded Go fonts and builds the faces.
func LoadFonts() (*Fonts, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}

	newFace := func(f *opentype.Font, size float64) (font.Face, error) {
		return opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	fonts := &Fonts{}
	faces := []struct {
		dst  *font.Face
		src  *opentype.Font
		size float64
	}{
		{&fonts.Title, bold, TitleFontSize},
		{&fonts.Status, regular, StatusFontSize},
		{&fonts.Button, regular, ButtonFontSize},
		{&fonts.Cell, bold, CellFontSize},
	}
	for _, f := range faces {
		face, err := newFace(f.src, f.size)
		if err != nil {
			return nil, fmt.Errorf("failed to create font face: %w", err)
		}
		*f.dst = face
	}
	return fonts, nil
}
