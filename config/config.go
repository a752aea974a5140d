package config

import (
	"image/color"
	"time"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Spawn
	StartX float64
	StartY float64

	// Movement
	MoveIncrement float64 // velocity added per flagged direction per Move call

	// Combat
	ShootCooldown time.Duration

	// Lives
	StartingLives int

	// Jet sound state machine (units/sec and seconds)
	JetStartSpeed    float64
	JetStopSpeed     float64
	JetCabinInterval float64

	// Dimensions
	FrameWidth  int
	FrameHeight int
}

// BulletConfig contains projectile configuration
type BulletConfig struct {
	Speed       float64 // units/sec along one axis
	Length      int     // long side of the bullet sprite
	Thickness   int     // short side of the bullet sprite
	PlayerColor color.RGBA
	EnemyColor  color.RGBA
}

// WaveConfig contains enemy wave layout and fire cadence
type WaveConfig struct {
	EnemyCount    int
	EnemiesPerRow int
	OriginX       float64
	OriginY       float64
	SpacingX      float64
	SpacingY      float64
	FireInterval  time.Duration
	EnemyWidth    int
	EnemyHeight   int
	SpaceCellSize int     // resolv cell size for the enemy broad phase
	ProbeMargin   float64 // padding added around a bullet when querying the space
}

// ExplosionConfig contains the player explosion animation setup
type ExplosionConfig struct {
	FrameCount    int
	FrameSize     int
	TicksPerFrame int // host ticks between AdvanceExplosion calls
}

// HUDConfig contains in-game overlay configuration
type HUDConfig struct {
	Margin         float64
	TextColor      color.RGBA
	LivesColor     color.RGBA
	BannerColor    color.RGBA
	BannerDuration float32 // seconds for the wave banner fade
	ScorePopScale  float32
	ScorePopTime   float32
}

// StarfieldConfig contains the scrolling background configuration
type StarfieldConfig struct {
	Count    int
	MinSpeed float64
	MaxSpeed float64
	Color    color.RGBA
}

// ScreenShakeConfig contains camera shake values
type ScreenShakeConfig struct {
	HitIntensity float64 // pixels
	HitDuration  int     // frames
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title        string
	Hint         string
}

// SettingsConfig contains settings screen limits
type SettingsConfig struct {
	VolumeStep float64
	MinLives   int
	MaxLives   int
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	Title             string
	TitleY            float64
	HighScoreY        float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	ScoreY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// Config holds general game configuration
type Config struct {
	Title  string
	Width  int
	Height int
	TPS    int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu   bool // Skip menu and go directly to game
	ConfigPath string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Bullet BulletConfig
var Wave WaveConfig
var Explosion ExplosionConfig
var HUD HUDConfig
var Starfield StarfieldConfig
var ScreenShake ScreenShakeConfig
var Pause PauseConfig
var Settings SettingsConfig
var Menu MenuConfig
var GameOver GameOverConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	SteelGray    = color.RGBA{R: 150, G: 160, B: 175, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// DeltaTime is the fixed simulation step in seconds.
func DeltaTime() float64 {
	return 1.0 / float64(C.TPS)
}

func init() {
	C = &Config{
		Title:  "Sky Raid",
		Width:  800,
		Height: 600,
		TPS:    60,
	}

	Player = PlayerConfig{
		StartX: 400,
		StartY: 500,

		MoveIncrement: 0.7,

		ShootCooldown: 200 * time.Millisecond,

		StartingLives: 3,

		JetStartSpeed:    35.0,
		JetStopSpeed:     25.0,
		JetCabinInterval: 1.0,

		FrameWidth:  64,
		FrameHeight: 64,
	}

	Bullet = BulletConfig{
		Speed:       300,
		Length:      18,
		Thickness:   6,
		PlayerColor: BrightYellow,
		EnemyColor:  LightRed,
	}

	Wave = WaveConfig{
		EnemyCount:    8,
		EnemiesPerRow: 8,
		OriginX:       45,
		OriginY:       100,
		SpacingX:      100,
		SpacingY:      100,
		FireInterval:  time.Second,
		EnemyWidth:    64,
		EnemyHeight:   48,
		SpaceCellSize: 32,
		ProbeMargin:   2,
	}

	// 128x128 frames, 16 of them
	Explosion = ExplosionConfig{
		FrameCount:    16,
		FrameSize:     128,
		TicksPerFrame: 2,
	}

	HUD = HUDConfig{
		Margin:         10,
		TextColor:      White,
		LivesColor:     LightRed,
		BannerColor:    BrightOrange,
		BannerDuration: 2.0,
		ScorePopScale:  1.6,
		ScorePopTime:   0.3,
	}

	Starfield = StarfieldConfig{
		Count:    80,
		MinSpeed: 30,
		MaxSpeed: 120,
		Color:    color.RGBA{R: 200, G: 200, B: 220, A: 255},
	}

	ScreenShake = ScreenShakeConfig{
		HitIntensity: 8,
		HitDuration:  20,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		Title:        "PAUSED",
		Hint:         "Press ESC or START to resume",
	}

	Settings = SettingsConfig{
		VolumeStep: 0.1,
		MinLives:   1,
		MaxLives:   9,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 10, G: 18, B: 40, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		Title:             "SKY RAID",
		TitleY:            160,
		HighScoreY:        200,
		MenuStartY:        260,
		MenuItemHeight:    30,
		MenuItemGap:       12,
		MenuOptions:       []string{"Start", "Settings", "Exit"},
	}

	GameOver = GameOverConfig{
		BackgroundColor:   color.RGBA{R: 40, G: 10, B: 10, A: 255},
		TitleColor:        LightRed,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            180,
		ScoreY:            230,
		MenuStartY:        290,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Retry", "Main Menu"},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
	}
}
