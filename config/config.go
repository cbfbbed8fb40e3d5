package config

import (
	"image/color"
	"strconv"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer; everything draws in registration order.
const Default ecs.LayerID = 0

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// InterpConfig tunes the visual interpolation engine.
type InterpConfig struct {
	Rate             float64 // exponential smoothing rate, 1/sec
	TeleportDistance float64 // divergence beyond which visual state snaps
}

// CameraConfig tunes the three camera modes.
type CameraConfig struct {
	FollowRate   float64 // position smoothing rate while alive
	SnapDistance float64 // follow distance beyond which the camera snaps

	AliveScaleRate float64
	ScaleFloor     float64 // zoom target never drops below this while alive

	DeathDriftSpeed  float64 // world units per second
	DeathScaleTarget float64
	DeathScaleRate   float64

	SpectateScaleRate  float64
	SpectateEnterScale float64
	RespawnScale       float64
	ScaleMin           float64 // free-fly wheel clamp
	ScaleMax           float64
	PanSpeed           float64 // screen pixels per second before zoom scaling
	WheelZoomStep      float64 // target-scale change per wheel notch
}

// RenderConfig tunes the draw pipeline.
type RenderConfig struct {
	GridStep        float64 // background grid spacing in world units
	CullMargin      float64 // extra world-space margin past the half viewport
	LootPulseSpeed  float64 // radians per second for the loot sinusoid
	LootPulseRange  float64 // radius swing of the pulse
	MinimapSize     float64 // screen pixels
	MinimapMargin   float64
	MinimapTrailHop int // body points skipped per minimap trail sample
	LeaderboardRows int
}

// DebugConfig contains command-line/testing options
type DebugConfig struct {
	SkipMenu bool
	Address  string // pre-filled server address when skipping the menu
}

var C *Config
var Interp InterpConfig
var Camera CameraConfig
var Render RenderConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Gold         = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	GridLine     = color.RGBA{R: 40, G: 45, B: 55, A: 255}
	Background   = color.RGBA{R: 17, G: 17, B: 26, A: 255}
	BorderStroke = color.RGBA{R: 180, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	PanelFill    = color.RGBA{R: 0, G: 0, B: 0, A: 140}
)

// ParseHexColor converts the server's "#rrggbb" color strings. Malformed
// input falls back to white rather than erroring mid-frame.
func ParseHexColor(s string) color.RGBA {
	if len(s) != 7 || s[0] != '#' {
		return White
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return White
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "slitherio",
	}

	Interp = InterpConfig{
		Rate:             10.0,
		TeleportDistance: 500.0,
	}

	Camera = CameraConfig{
		FollowRate:   10.0,
		SnapDistance: 1000.0,

		AliveScaleRate: 2.0,
		ScaleFloor:     0.4,

		DeathDriftSpeed:  20.0,
		DeathScaleTarget: 0.4,
		DeathScaleRate:   1.0,

		SpectateScaleRate:  5.0,
		SpectateEnterScale: 0.2,
		RespawnScale:       1.0,
		ScaleMin:           0.05,
		ScaleMax:           5.0,
		PanSpeed:           600.0,
		WheelZoomStep:      0.1,
	}

	Render = RenderConfig{
		GridStep:        400.0,
		CullMargin:      300.0,
		LootPulseSpeed:  6.0,
		LootPulseRange:  3.0,
		MinimapSize:     140.0,
		MinimapMargin:   12.0,
		MinimapTrailHop: 4,
		LeaderboardRows: 5,
	}

	Debug = DebugConfig{
		SkipMenu: false,
		Address:  "localhost:5001",
	}
}
