// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 900
	ScreenHeight = 600

	DefaultLanes   = 3
	DefaultWidth   = 6
	StartingGold   = 150
	StartingLives  = 10
	MaxWaves       = 5
	DefeatBounty   = 10
	StartingWave   = 1
	StartingTurn   = 1
	MaxDeltaTime   = 0.06
	ClickDebounce  = 100 // ms
	EventLogLength = 8

	CellWidth     = 72
	CellHeight    = 72
	CellGap       = 3
	BoardOffsetY  = 120
	ButtonWidth   = 170
	ButtonHeight  = 40
	ButtonSpacing = 24
	StatusOffsetY = 80
	TitleOffsetY  = 40
	StrokeWidth   = 2.0
)

// Dark theme with light lettering.
var (
	BackgroundColor = color.RGBA{0x1e, 0x1e, 0x1e, 255}
	BoardColor      = color.RGBA{0x00, 0x00, 0x00, 255}
	CellColor       = color.RGBA{0x2e, 0x2e, 0x2e, 255}
	TowerCellColor  = color.RGBA{0x4a, 0x7a, 0x3c, 255}
	MonsterColor    = color.RGBA{0x7a, 0x3c, 0x3c, 255}
	TextLightColor  = color.RGBA{0xff, 0xff, 0xff, 255}
	TextMutedColor  = color.RGBA{0xbb, 0xbb, 0xbb, 255}
	ButtonColor     = color.RGBA{70, 130, 180, 220}
	ButtonDisabled  = color.RGBA{60, 60, 60, 220}
	ButtonHover     = color.RGBA{100, 160, 210, 255}
	ButtonStroke    = color.RGBA{240, 240, 240, 255}
	LoseColor       = color.RGBA{220, 60, 60, 255}
	WinColor        = color.RGBA{255, 215, 0, 255}
)
