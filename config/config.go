package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer used by the arena.
const Default ecs.LayerID = iota

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed  float64 // Pixels per second at full stick deflection
	Size   float64
	SpawnX float64
	SpawnY float64
	Color  color.RGBA
}

// WeaponConfig describes one weapon in the player's inventory
type WeaponConfig struct {
	Name        string
	ClipSize    int
	FireRate    float64 // Seconds between shots
	ReloadTime  float64 // Seconds
	BulletSpeed float64 // Pixels per tick
	BulletSize  float64
	Range       float64 // Pixels travelled before the bullet despawns
	Color       color.RGBA
}

// Rect is an axis-aligned rectangle in arena coordinates
type Rect struct {
	X, Y, W, H float64
}

// ArenaConfig contains the arena layout
type ArenaConfig struct {
	CellSize        int
	Walls           []Rect
	BackgroundColor color.RGBA
	WallColor       color.RGBA
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	Margin          float64
	ReloadBarWidth  float64
	ReloadBarHeight float64
	LineHeight      int
	FontSize        float64
	SmallFontSize   float64
	PanelColor      color.RGBA
	ReloadBgColor   color.RGBA
	ReloadFgColor   color.RGBA
	TextColor       color.RGBA
	PromptColor     color.RGBA
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Weapons []WeaponConfig
var Arena ArenaConfig
var HUD HUDConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	Slate        = color.RGBA{R: 70, G: 80, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Player = PlayerConfig{
		Speed:  140,
		Size:   14,
		SpawnX: 313,
		SpawnY: 173,
		Color:  LightBlue,
	}

	Weapons = []WeaponConfig{
		{
			Name:        "Pistol",
			ClipSize:    8,
			FireRate:    0.25,
			ReloadTime:  0.9,
			BulletSpeed: 6,
			BulletSize:  3,
			Range:       260,
			Color:       Yellow,
		},
		{
			Name:        "Rifle",
			ClipSize:    30,
			FireRate:    0.1,
			ReloadTime:  1.6,
			BulletSpeed: 9,
			BulletSize:  2,
			Range:       420,
			Color:       Orange,
		},
	}

	// Border walls plus a few pillars to shoot around
	w, h := float64(C.Width), float64(C.Height)
	Arena = ArenaConfig{
		CellSize: 16,
		Walls: []Rect{
			{X: 0, Y: 0, W: w, H: 16},
			{X: 0, Y: h - 16, W: w, H: 16},
			{X: 0, Y: 16, W: 16, H: h - 32},
			{X: w - 16, Y: 16, W: 16, H: h - 32},
			{X: 128, Y: 96, W: 48, H: 48},
			{X: w - 176, Y: 96, W: 48, H: 48},
			{X: 128, Y: h - 144, W: 48, H: 48},
			{X: w - 176, Y: h - 144, W: 48, H: 48},
		},
		BackgroundColor: DarkGray,
		WallColor:       Slate,
	}

	HUD = HUDConfig{
		Margin:          24,
		ReloadBarWidth:  80,
		ReloadBarHeight: 5,
		LineHeight:      14,
		FontSize:        12,
		SmallFontSize:   10,
		PanelColor:      BlackOverlay,
		ReloadBgColor:   color.RGBA{R: 60, G: 60, B: 60, A: 255},
		ReloadFgColor:   LightGreen,
		TextColor:       White,
		PromptColor:     LightBlue,
	}
}
